//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"franguinho-pos/internal/handler/api"
	"franguinho-pos/internal/pkg/config"
	"franguinho-pos/internal/usecase"
	"franguinho-pos/internal/usecase/readmodel"
	"franguinho-pos/tests/common/httptest"
	"franguinho-pos/tests/common/testutil"
	usecasemock "franguinho-pos/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockAuthUseCase
	handler     *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockAuthUseCase(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockUseCase, config.CookieConfig{SameSite: "Lax"}, time.Hour)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Next()
	}

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", authMiddleware, s.handler.Logout)
	s.router.GET("/auth/me", authMiddleware, s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := map[string]string{
		"email":    "caixa@franguinho.com",
		"password": "super-secret-1",
	}

	s.Run("success: returns token and sets the session cookie", func() {
		staff := &readmodel.AuthorizedUserRM{
			ID:       uuid.New(),
			StoreID:  uuid.New(),
			Email:    "caixa@franguinho.com",
			Role:     "cashier",
			IsActive: true,
		}
		s.mockUseCase.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return("signed-token", staff, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("signed-token", body["access_token"])

		cookies := rec.Result().Cookies()
		s.Require().NotEmpty(cookies)
		s.Equal("signed-token", cookies[0].Value)
	})

	s.Run("error: 401 on bad credentials", func() {
		s.mockUseCase.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return("", nil, usecase.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("error: 403 on inactive account", func() {
		s.mockUseCase.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return("", nil, usecase.ErrUserInactive).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "inactive")
	})

	s.Run("error: 400 on malformed body", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing email", mutate: testutil.Field("email", nil)},
			{name: "invalid email", mutate: testutil.Field("email", "not-an-email")},
			{name: "short password", mutate: testutil.Field("password", "short")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("success: returns the authenticated profile", func() {
		staff := &readmodel.AuthorizedUserRM{
			ID:       uuid.New(),
			Email:    "caixa@franguinho.com",
			Role:     "cashier",
			IsActive: true,
		}
		s.mockUseCase.EXPECT().GetCurrentUser(gomock.Any(), gomock.Any()).
			Return(staff, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	})

	s.Run("error: 401 without credentials", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "bearer-token")
	s.Equal(http.StatusNoContent, rec.Code)
}
