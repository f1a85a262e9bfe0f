//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"franguinho-pos/internal/domain/coupon"
	"franguinho-pos/internal/domain/user"
	"franguinho-pos/internal/handler/api"
	reqdto "franguinho-pos/internal/handler/dto/request"
	"franguinho-pos/internal/usecase"
	"franguinho-pos/internal/usecase/readmodel"
	"franguinho-pos/tests/common/builder"
	"franguinho-pos/tests/common/httptest"
	"franguinho-pos/tests/common/testutil"
	usecasemock "franguinho-pos/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CouponHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockCouponUseCase
	handler     *api.CouponHandler
	storeID     uuid.UUID
}

func (s *CouponHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockCouponUseCase(s.mockCtrl)
	s.handler = api.NewCouponHandler(s.mockUseCase)
	s.storeID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("store_id", s.storeID)
		c.Set("user_role", user.RoleManager)
		c.Next()
	}

	s.router.POST("/coupons/validate", authMiddleware, s.handler.Validate)
	s.router.POST("/coupons", authMiddleware, s.handler.Create)
	s.router.GET("/coupons", authMiddleware, s.handler.List)
	s.router.GET("/coupons/:id", authMiddleware, s.handler.Get)
	s.router.DELETE("/coupons/:id", authMiddleware, s.handler.Deactivate)
}

func (s *CouponHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCouponHandlerSuite(t *testing.T) {
	suite.Run(t, new(CouponHandlerTestSuite))
}

func validateRequestBody() reqdto.ValidateCouponRequest {
	return reqdto.ValidateCouponRequest{
		Code:  "WELCOME10",
		Items: []reqdto.CartItem{{ProductID: uuid.New(), Quantity: 1}},
	}
}

// ================================================================================
// TestValidate
// ================================================================================

func (s *CouponHandlerTestSuite) TestValidate() {
	url := "/coupons/validate"
	reqBody := validateRequestBody()

	s.Run("success: returns 200 with the computed application", func() {
		app := &readmodel.CouponApplicationRM{
			CouponID:      uuid.New(),
			CouponCode:    "WELCOME10",
			DiscountCents: 1000,
		}
		s.mockUseCase.EXPECT().Validate(gomock.Any(), s.storeID, gomock.Any()).
			Return(app, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(app.CouponID.String(), body["couponId"])
		s.EqualValues(1000, body["discountCents"])
	})

	s.Run("error: 401 without credentials", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token")
	})

	s.Run("error: 400 on malformed body", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing code", mutate: testutil.Field("code", nil)},
			{name: "empty items", mutate: testutil.Field("items", []any{})},
			{name: "zero quantity", mutate: func(m map[string]any) {
				items := m["items"].([]any)
				item := items[0].(map[string]any)
				item["quantity"] = 0
			}},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: redemption rejections map to distinct statuses", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{name: "unknown code", err: usecase.ErrCouponNotFound, expectCode: http.StatusNotFound, expectMsg: "Coupon not found"},
			{name: "expired", err: coupon.ErrCouponExpired, expectCode: http.StatusUnprocessableEntity, expectMsg: "expired"},
			{name: "exhausted", err: coupon.ErrCouponExhausted, expectCode: http.StatusUnprocessableEntity, expectMsg: "usage limit"},
			{name: "not applicable", err: coupon.ErrCouponNotApplicable, expectCode: http.StatusUnprocessableEntity, expectMsg: "does not apply"},
			{name: "already used", err: usecase.ErrCouponAlreadyUsed, expectCode: http.StatusUnprocessableEntity, expectMsg: "already used"},
			{name: "phone required", err: usecase.ErrPhoneRequired, expectCode: http.StatusUnprocessableEntity, expectMsg: "phone is required"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockUseCase.EXPECT().Validate(gomock.Any(), s.storeID, gomock.Any()).
					Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *CouponHandlerTestSuite) TestCreate() {
	url := "/coupons"
	reqBody := builder.NewCouponBuilder().BuildCreateRequestDTO()

	s.Run("success: returns 201 Created", func() {
		rm := builder.NewCouponBuilder().BuildReadModel()
		s.mockUseCase.EXPECT().Create(gomock.Any(), s.storeID, gomock.Any()).
			Return(rm, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(rm.ID.String(), body["id"])
	})

	s.Run("error: 409 on duplicate code", func() {
		s.mockUseCase.EXPECT().Create(gomock.Any(), s.storeID, gomock.Any()).
			Return(nil, usecase.ErrDuplicateCoupon).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already exists")
	})

	s.Run("error: 400 on invalid kind", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("kind", "bogus"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

// ================================================================================
// TestGet / TestDeactivate
// ================================================================================

func (s *CouponHandlerTestSuite) TestGet() {
	s.Run("success: returns 200", func() {
		rm := builder.NewCouponBuilder().BuildReadModel()
		s.mockUseCase.EXPECT().Get(gomock.Any(), s.storeID, rm.ID).Return(rm, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/coupons/"+rm.ID.String(), nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(rm.Code, body["code"])
	})

	s.Run("error: 404 when missing", func() {
		id := uuid.New()
		s.mockUseCase.EXPECT().Get(gomock.Any(), s.storeID, id).
			Return(nil, usecase.ErrCouponNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/coupons/"+id.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Coupon not found")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/coupons/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid coupon ID")
	})
}

func (s *CouponHandlerTestSuite) TestDeactivate() {
	s.Run("success: returns 204", func() {
		id := uuid.New()
		s.mockUseCase.EXPECT().Deactivate(gomock.Any(), s.storeID, id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/coupons/"+id.String(), nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}
