//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"franguinho-pos/internal/domain/order"
	"franguinho-pos/internal/domain/user"
	"franguinho-pos/internal/handler/api"
	"franguinho-pos/internal/usecase"
	"franguinho-pos/tests/common/httptest"
	usecasemock "franguinho-pos/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockUseCase  *usecasemock.MockOrderUseCase
	mockSettings *usecasemock.MockSettingsUseCase
	handler      *api.OrderHandler
	storeID      uuid.UUID
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockOrderUseCase(s.mockCtrl)
	s.mockSettings = usecasemock.NewMockSettingsUseCase(s.mockCtrl)
	s.handler = api.NewOrderHandler(s.mockUseCase, s.mockSettings)
	s.storeID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("store_id", s.storeID)
		c.Set("user_role", user.RoleCashier)
		c.Next()
	}

	s.router.GET("/orders/flow", authMiddleware, s.handler.Flow)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

// ================================================================================
// TestFlow
// ================================================================================

func (s *OrderHandlerTestSuite) TestFlow() {
	url := "/orders/flow"

	s.Run("success: full pipeline when every stage is enabled", func() {
		s.mockSettings.EXPECT().
			Flow(gomock.Any(), s.storeID).
			Return(order.NewFlow(order.DefaultFlowSettings()), nil)

		var body map[string]any
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)

		s.Equal([]any{"pending", "preparing", "ready"}, body["stages"])
	})

	s.Run("success: disabled pending stage is omitted", func() {
		s.mockSettings.EXPECT().
			Flow(gomock.Any(), s.storeID).
			Return(order.NewFlow(order.FlowSettings{PendingEnabled: false, PreparingEnabled: true}), nil)

		var body map[string]any
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)

		s.Equal([]any{"preparing", "ready"}, body["stages"])
	})

	s.Run("error: 401 without authentication", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token")
	})

	s.Run("error: 404 when the store settings are missing", func() {
		s.mockSettings.EXPECT().
			Flow(gomock.Any(), s.storeID).
			Return(order.Flow{}, usecase.ErrSettingsNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Store settings not found")
	})
}
