//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

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
	loginURL  = "/api/auth/login"
	logoutURL = "/api/auth/logout"
	meURL     = "/api/auth/me"
)

type AuthSuite struct {
	e2e.SharedSuite
}

func (s *AuthSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	// テスト用ユーザーを作成
	dbtest.CreateTestUser(s.T(), s.DB, "member@example.com", string(user.RoleMember))
	dbtest.CreateTestUser(s.T(), s.DB, "admin@example.com", string(user.RoleAdmin))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleMember))

	// 非アクティブユーザーを作成
	ctx := s.T().Context()
	_, err := s.DB.Exec(ctx, "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "Normal case: Member logs in with valid credentials",
			email:          "member@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Normal case: Admin logs in with valid credentials",
			email:          "admin@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Error case: Wrong password is rejected",
			email:          "member@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Error case: Unknown user is rejected",
			email:          "nobody@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Error case: Inactive user is forbidden",
			email:          "inactive@example.com",
			password:       "password123",
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				map[string]string{"email": tt.email, "password": tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var body response.LoginResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
				require.Equal(t, tt.email, body.User.Email)

				accessCookie := httptest.ExtractCookie(w, "access_token")
				require.NotNil(t, accessCookie)
				require.NotEmpty(t, accessCookie.Value)
				require.True(t, accessCookie.HttpOnly)
			} else {
				require.Nil(t, httptest.ExtractCookie(w, "access_token"),
					"no token cookie on failed login")
			}
		})
	}
}

func (s *AuthSuite) TestMe() {
	s.Run("Normal case: Cookie authentication returns the current user", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "member@example.com", "password123")
		cookies := []*http.Cookie{{Name: "access_token", Value: token}}

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, meURL, nil, cookies, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var body response.CurrentUserResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
		require.Equal(t, "member@example.com", body.User.Email)
		require.Equal(t, string(user.RoleMember), body.User.Role)
	})

	s.Run("Normal case: Bearer header works as a cookie fallback", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "member@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("Error case: Missing credentials are rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Error case: Garbage token is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "not.a.jwt")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *AuthSuite) TestLogout() {
	s.Run("Normal case: Logout clears the token cookie", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "member@example.com", "password123")
		cookies := []*http.Cookie{{Name: "access_token", Value: token}}

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, logoutURL, nil, cookies, "")
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		cleared := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, cleared)
		require.Empty(t, cleared.Value)
		require.Negative(t, cleared.MaxAge)
	})
}
