//go:build e2e

package resource_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"slotdesk/internal/domain/user"
	"slotdesk/internal/handler/dto/response"
	"slotdesk/tests/common/authtest"
	"slotdesk/tests/common/dbtest"
	"slotdesk/tests/common/httptest"
	"slotdesk/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	resourcesURL     = "/api/resources"
	resourceURL      = "/api/resources/%d"
	resourceTypesURL = "/api/resource-types"
	bookingsURL      = "/api/bookings"
	dashboardURL     = "/api/admin/dashboard"
)

type ResourceSuite struct {
	e2e.SharedSuite
}

func (s *ResourceSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestResourceSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ResourceSuite))
}

func (s *ResourceSuite) TestListResources() {
	s.Run("Normal case: Type filter narrows the list", func() {
		t := s.T()

		dbtest.CreateTestResource(t, s.DB, "Desk 1", "desk")
		dbtest.CreateTestResource(t, s.DB, "Desk 2", "desk")
		dbtest.CreateTestResource(t, s.DB, "Room A", "meeting_room")
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "member@example.com", string(user.RoleMember))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, resourcesURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		var all []response.ResourceResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &all))
		require.Len(t, all, 3)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, resourcesURL+"?type=desk", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		var desks []response.ResourceResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &desks))
		require.Len(t, desks, 2)
		for _, r := range desks {
			require.Equal(t, "desk", r.Type)
		}
	})

	s.Run("Normal case: Seeded resource types are listed", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "member@example.com", string(user.RoleMember))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, resourceTypesURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		var types []response.ResourceTypeResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &types))

		names := make([]string, len(types))
		for i, rt := range types {
			names[i] = rt.Name
		}
		require.ElementsMatch(t, []string{"desk", "meeting_room", "vr_headset", "ai_server"}, names)
	})
}

func (s *ResourceSuite) TestManageResources() {
	s.Run("Normal case: Admin creates, updates and deletes a resource", func() {
		t := s.T()

		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))

		var typeID int64
		require.NoError(t, s.DB.QueryRow(t.Context(),
			"SELECT id FROM resource_types WHERE name = 'vr_headset'").Scan(&typeID))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, resourcesURL,
			map[string]any{"name": "VR Headset 1", "typeId": typeID}, adminToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var created response.ResourceResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, "VR Headset 1", created.Name)
		require.Equal(t, "vr_headset", created.Type)

		w = httptest.PerformRequest(t, s.Router, http.MethodPut,
			fmt.Sprintf(resourceURL, created.ID),
			map[string]any{"name": "VR Headset 1b"}, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var updated response.ResourceResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &updated))
		require.Equal(t, "VR Headset 1b", updated.Name)
		require.Equal(t, "vr_headset", updated.Type, "type is unchanged when omitted")

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete,
			fmt.Sprintf(resourceURL, created.ID), nil, adminToken)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(resourceURL, created.ID), nil, adminToken)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Resource not found")
	})

	s.Run("Error case: Member is forbidden from managing resources", func() {
		t := s.T()

		memberToken := authtest.CreateAndLogin(t, s.DB, s.Router, "member@example.com", string(user.RoleMember))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, resourcesURL,
			map[string]any{"name": "Desk X", "typeId": 1}, memberToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("Error case: Unknown resource type is rejected", func() {
		t := s.T()

		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, resourcesURL,
			map[string]any{"name": "Desk X", "typeId": 99999}, adminToken)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Resource type not found")
	})

	s.Run("Error case: Resource with bookings cannot be deleted", func() {
		t := s.T()

		resourceID := dbtest.CreateTestResource(t, s.DB, "Desk 1", "desk")
		memberToken := authtest.CreateAndLogin(t, s.DB, s.Router, "member@example.com", string(user.RoleMember))
		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))

		date := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			map[string]any{"resourceId": resourceID, "bookingDate": date, "timeslot": "FM"}, memberToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete,
			fmt.Sprintf(resourceURL, resourceID), nil, adminToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "cannot be deleted")
	})
}

func (s *ResourceSuite) TestDashboard() {
	s.Run("Normal case: Dashboard aggregates bookings by type", func() {
		t := s.T()

		deskID := dbtest.CreateTestResource(t, s.DB, "Desk 1", "desk")
		roomID := dbtest.CreateTestResource(t, s.DB, "Room A", "meeting_room")
		memberToken := authtest.CreateAndLogin(t, s.DB, s.Router, "member@example.com", string(user.RoleMember))
		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))

		date := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
		for _, body := range []map[string]any{
			{"resourceId": deskID, "bookingDate": date, "timeslot": "FM"},
			{"resourceId": deskID, "bookingDate": date, "timeslot": "EM"},
			{"resourceId": roomID, "bookingDate": date, "timeslot": "FM"},
		} {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body, memberToken)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, dashboardURL, nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var dash response.DashboardResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &dash))
		require.Equal(t, int64(2), dash.TotalResources)
		require.Equal(t, int64(2), dash.TotalUsers)

		byType := map[string]int64{}
		for _, item := range dash.BookingsByType {
			byType[item.Type] = item.Active
		}
		require.Equal(t, int64(2), byType["desk"])
		require.Equal(t, int64(1), byType["meeting_room"])
	})

	s.Run("Error case: Member cannot access the dashboard", func() {
		t := s.T()

		memberToken := authtest.CreateAndLogin(t, s.DB, s.Router, "member@example.com", string(user.RoleMember))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, dashboardURL, nil, memberToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}
