//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"slotdesk/internal/domain/user"
	"slotdesk/internal/pkg/jwt"
	"slotdesk/internal/pkg/password"
	"slotdesk/internal/usecase"
	"slotdesk/tests/common/builder"
	usecasemock "slotdesk/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthUseCaseTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockUserRepo *usecasemock.MockUserRepository
	jwtService   *jwt.Service
	sut          usecase.AuthUseCase
	passwordHash string
}

func (s *AuthUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUserRepo = usecasemock.NewMockUserRepository(s.mockCtrl)
	s.jwtService = jwt.NewService("test-secret-key-for-unit-tests", 15*time.Minute)
	s.sut = usecase.NewAuthUseCase(s.mockUserRepo, s.jwtService)

	hash, err := password.HashPassword("password123")
	s.Require().NoError(err)
	s.passwordHash = hash
}

func (s *AuthUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthUseCaseSuite(t *testing.T) {
	suite.Run(t, new(AuthUseCaseTestSuite))
}

func (s *AuthUseCaseTestSuite) credentials() user.Credentials {
	creds, err := user.NewCredentials("member@example.com", "password123")
	s.Require().NoError(err)
	return creds
}

func (s *AuthUseCaseTestSuite) TestLogin() {
	ctx := context.Background()

	s.Run("success: returns a verifiable token and the user view", func() {
		view := builder.NewUserBuilder().WithEmail("member@example.com").BuildView()
		s.mockUserRepo.EXPECT().FindByEmail(ctx, gomock.Any()).
			Return(view, s.passwordHash, nil).Times(1)
		s.mockUserRepo.EXPECT().UpdateLastLogin(ctx, view.ID).Return(nil).Times(1)

		token, gotView, err := s.sut.Login(ctx, s.credentials())
		s.Require().NoError(err)
		s.Equal(view, gotView)

		claims, err := s.jwtService.ValidateToken(token)
		s.Require().NoError(err)
		s.Equal(view.ID, claims.UserID)
		s.Equal("member", claims.Role)
	})

	s.Run("error: unknown email", func() {
		s.mockUserRepo.EXPECT().FindByEmail(ctx, gomock.Any()).
			Return(nil, "", errors.New("no rows")).Times(1)

		_, _, err := s.sut.Login(ctx, s.credentials())
		s.ErrorIs(err, usecase.ErrUserNotFound)
	})

	s.Run("error: wrong password", func() {
		view := builder.NewUserBuilder().BuildView()
		otherHash, hashErr := password.HashPassword("different-password")
		s.Require().NoError(hashErr)
		s.mockUserRepo.EXPECT().FindByEmail(ctx, gomock.Any()).
			Return(view, otherHash, nil).Times(1)

		_, _, err := s.sut.Login(ctx, s.credentials())
		s.ErrorIs(err, usecase.ErrInvalidCredentials)
	})

	s.Run("error: inactive account before password check", func() {
		view := builder.NewUserBuilder().Inactive().BuildView()
		s.mockUserRepo.EXPECT().FindByEmail(ctx, gomock.Any()).
			Return(view, s.passwordHash, nil).Times(1)

		_, _, err := s.sut.Login(ctx, s.credentials())
		s.ErrorIs(err, usecase.ErrUserInactive)
	})
}

func (s *AuthUseCaseTestSuite) TestGetCurrentUser() {
	ctx := context.Background()

	s.Run("success: active user is returned", func() {
		view := builder.NewUserBuilder().BuildView()
		s.mockUserRepo.EXPECT().FindByID(ctx, view.ID).Return(view, nil).Times(1)

		got, err := s.sut.GetCurrentUser(ctx, view.ID)
		s.Require().NoError(err)
		s.Equal(view, got)
	})

	s.Run("error: deactivated user", func() {
		view := builder.NewUserBuilder().Inactive().BuildView()
		s.mockUserRepo.EXPECT().FindByID(ctx, view.ID).Return(view, nil).Times(1)

		_, err := s.sut.GetCurrentUser(ctx, view.ID)
		s.ErrorIs(err, usecase.ErrUserInactive)
	})

	s.Run("error: missing user", func() {
		id := uuid.New()
		s.mockUserRepo.EXPECT().FindByID(ctx, id).Return(nil, errors.New("no rows")).Times(1)

		_, err := s.sut.GetCurrentUser(ctx, id)
		s.ErrorIs(err, usecase.ErrUserNotFound)
	})
}

func (s *AuthUseCaseTestSuite) TestValidateToken() {
	s.Run("success: round-trips a generated token", func() {
		userID := uuid.New()
		token, err := s.jwtService.GenerateToken(userID, user.RoleAdmin)
		s.Require().NoError(err)

		gotID, gotRole, err := s.sut.ValidateToken(token)
		s.Require().NoError(err)
		s.Equal(userID, gotID)
		s.Equal(user.RoleAdmin, gotRole)
	})

	s.Run("error: garbage token", func() {
		_, _, err := s.sut.ValidateToken("not.a.jwt")
		s.ErrorIs(err, usecase.ErrTokenValidation)
	})

	s.Run("error: expired token", func() {
		expiredService := jwt.NewService("test-secret-key-for-unit-tests", -time.Minute)
		token, err := expiredService.GenerateToken(uuid.New(), user.RoleMember)
		s.Require().NoError(err)

		_, _, err = s.sut.ValidateToken(token)
		s.ErrorIs(err, usecase.ErrTokenValidation)
	})

	s.Run("error: token signed with a different key", func() {
		otherService := jwt.NewService("another-secret-key", 15*time.Minute)
		token, err := otherService.GenerateToken(uuid.New(), user.RoleMember)
		s.Require().NoError(err)

		_, _, err = s.sut.ValidateToken(token)
		s.ErrorIs(err, usecase.ErrTokenValidation)
	})
}
