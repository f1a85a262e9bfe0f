//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"franguinho-pos/internal/domain/user"
	"franguinho-pos/internal/pkg/jwt"
	"franguinho-pos/internal/pkg/password"
	"franguinho-pos/internal/usecase"
	"franguinho-pos/internal/usecase/readmodel"
	usecasemock "franguinho-pos/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const loginPassword = "correct-horse-battery"

type authFixture struct {
	userRepo *usecasemock.MockUserRepository
	uc       usecase.AuthUseCase
	jwtSvc   *jwt.Service
	userRM   *readmodel.AuthorizedUserRM
	hash     string
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	userRepo := usecasemock.NewMockUserRepository(ctrl)
	jwtSvc := jwt.NewService("test-secret", time.Hour)

	hash, err := password.Hash(loginPassword)
	require.NoError(t, err)

	return &authFixture{
		userRepo: userRepo,
		uc:       usecase.NewAuthUseCase(userRepo, jwtSvc),
		jwtSvc:   jwtSvc,
		userRM: &readmodel.AuthorizedUserRM{
			ID:       uuid.New(),
			StoreID:  uuid.New(),
			Email:    "caixa@franguinho.com",
			Role:     "cashier",
			IsActive: true,
		},
		hash: hash,
	}
}

func mustCredentials(t *testing.T, email, pass string) user.Credentials {
	t.Helper()
	creds, err := user.NewCredentials(email, pass)
	require.NoError(t, err)
	return creds
}

func TestLogin(t *testing.T) {
	t.Run("valid credentials return a signed token", func(t *testing.T) {
		f := newAuthFixture(t)
		f.userRepo.EXPECT().FindByEmail(gomock.Any(), f.userRM.Email).Return(f.userRM, f.hash, nil)
		f.userRepo.EXPECT().UpdateLastLogin(gomock.Any(), f.userRM.ID).Return(nil)

		token, rm, err := f.uc.Login(context.Background(), mustCredentials(t, f.userRM.Email, loginPassword))
		require.NoError(t, err)
		assert.Equal(t, f.userRM, rm)

		claims, err := f.jwtSvc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, f.userRM.ID, claims.UserID)
		assert.Equal(t, f.userRM.StoreID, claims.StoreID)
		assert.Equal(t, "cashier", claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newAuthFixture(t)
		f.userRepo.EXPECT().FindByEmail(gomock.Any(), f.userRM.Email).Return(f.userRM, f.hash, nil)

		_, _, err := f.uc.Login(context.Background(), mustCredentials(t, f.userRM.Email, "wrong-password"))
		assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
	})

	t.Run("inactive account", func(t *testing.T) {
		f := newAuthFixture(t)
		f.userRM.IsActive = false
		f.userRepo.EXPECT().FindByEmail(gomock.Any(), f.userRM.Email).Return(f.userRM, f.hash, nil)

		_, _, err := f.uc.Login(context.Background(), mustCredentials(t, f.userRM.Email, loginPassword))
		assert.ErrorIs(t, err, usecase.ErrUserInactive)
	})
}

func TestValidateToken(t *testing.T) {
	f := newAuthFixture(t)

	t.Run("round trip", func(t *testing.T) {
		token, err := f.jwtSvc.GenerateToken(f.userRM.ID, f.userRM.StoreID, user.RoleManager)
		require.NoError(t, err)

		authCtx, err := f.uc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, f.userRM.ID, authCtx.UserID)
		assert.Equal(t, f.userRM.StoreID, authCtx.StoreID)
		assert.Equal(t, user.RoleManager, authCtx.Role)
	})

	t.Run("tampered token", func(t *testing.T) {
		other := jwt.NewService("other-secret", time.Hour)
		token, err := other.GenerateToken(f.userRM.ID, f.userRM.StoreID, user.RoleManager)
		require.NoError(t, err)

		_, err = f.uc.ValidateToken(token)
		assert.ErrorIs(t, err, usecase.ErrTokenValidation)
	})
}
