//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"slotdesk/internal/domain/user"
	"slotdesk/internal/handler/api"
	resdto "slotdesk/internal/handler/dto/response"
	"slotdesk/internal/pkg/errs"
	"slotdesk/internal/usecase/queries"
	"slotdesk/tests/common/builder"
	"slotdesk/tests/common/httptest"
	"slotdesk/tests/common/testutil"
	commandsmock "slotdesk/tests/mock/commands"
	queriesmock "slotdesk/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	userID       uuid.UUID
	userRole     user.Role
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()
	s.userRole = user.RoleMember

	// mimics RequireAuth by injecting the authenticated user into context
	authStub := func(c *gin.Context) {
		c.Set("user_id", s.userID)
		c.Set("user_role", s.userRole)
	}

	s.router.POST("/bookings", authStub, s.handler.CreateBooking)
	s.router.POST("/bookings/cancel/:id", authStub, s.handler.CancelBooking)
	s.router.POST("/bookings/delete/:id", authStub, s.handler.DeleteBooking)
	s.router.GET("/bookings/getByResource/:resourceId", authStub, s.handler.GetBookingsByResource)
	s.router.GET("/bookings/myBookings", authStub, s.handler.GetMyBookings)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"
	reqBody := map[string]any{
		"resourceId":  int64(1),
		"bookingDate": "2026-09-15",
		"timeslot":    "FM",
	}

	s.Run("success: 201 Created with Location header", func() {
		view := builder.NewBookingBuilder().BuildView()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.userID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/bookings/1"})
		s.Equal(view.ID, response.BookingID)
		s.True(response.IsActive)
	})

	s.Run("error: 409 Conflict when the slot is taken", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.userID).
			Return(nil, errs.ErrSlotTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already booked")
	})

	s.Run("error: 404 Not Found for unknown resource", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.userID).
			Return(nil, errs.ErrResourceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Resource not found")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing resourceId", mutate: testutil.Field("resourceId", nil)},
			{name: "missing bookingDate", mutate: testutil.Field("bookingDate", nil)},
			{name: "missing timeslot", mutate: testutil.Field("timeslot", nil)},
			{name: "timeslot outside enum", mutate: testutil.Field("timeslot", "AM")},
			{name: "lowercase timeslot rejected", mutate: testutil.Field("timeslot", "fm")},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				s.Equal(http.StatusBadRequest, rec.Code)
			})
		}
	})

	s.Run("error: 400 Bad Request when domain validation fails", func() {
		// Marked the way the command layer reports it, not the bare sentinel.
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.userID).
			Return(nil, errs.Mark(errs.New("booking date is in the past"), errs.ErrDomainValidation)).Times(1)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("bookingDate", "2020-01-01"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking data")
	})
}

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	s.Run("success: 200 OK returns the canceled booking", func() {
		view := builder.NewBookingBuilder().Canceled().BuildView()
		s.mockCommands.EXPECT().Cancel(gomock.Any(), int64(1), s.userID, s.userRole).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/cancel/1", nil, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.IsActive)
	})

	s.Run("error: 403 Forbidden for foreign booking", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), int64(1), s.userID, s.userRole).
			Return(nil, errs.ErrNotBookingOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/cancel/1", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "another user")
	})

	s.Run("error: 404 Not Found for unknown booking", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), int64(99), s.userID, s.userRole).
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/cancel/99", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 400 Bad Request for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/cancel/abc", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestDeleteBooking() {
	s.Run("success: 200 OK", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/delete/1", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 404 Not Found for unknown booking", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), int64(99)).
			Return(errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/delete/99", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestGetBookingsByResource() {
	s.Run("success: expired bookings excluded by default", func() {
		items := []*queries.BookingListItem{builder.NewBookingBuilder().BuildListItem()}
		s.mockQueries.EXPECT().ListByResource(gomock.Any(), int64(1), false).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/getByResource/1", nil, "")

		var response []*resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("success: includeExpiredBookings=true is passed through", func() {
		s.mockQueries.EXPECT().ListByResource(gomock.Any(), int64(1), true).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/getByResource/1?includeExpiredBookings=true", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 Bad Request for malformed resource id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/getByResource/abc", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestGetMyBookings() {
	s.Run("success: lists only the caller's bookings", func() {
		item := builder.NewBookingBuilder().WithUser(s.userID).BuildListItem()
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, false).
			Return([]*queries.BookingListItem{item}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/myBookings", nil, "")

		var response []*resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})
}
