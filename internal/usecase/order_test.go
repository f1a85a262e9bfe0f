//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"franguinho-pos/internal/domain/coupon"
	"franguinho-pos/internal/domain/order"
	reqdto "franguinho-pos/internal/handler/dto/request"
	"franguinho-pos/internal/infra"
	"franguinho-pos/internal/infra/db"
	"franguinho-pos/internal/infra/events"
	"franguinho-pos/internal/pkg/clock"
	"franguinho-pos/internal/usecase"
	"franguinho-pos/internal/usecase/readmodel"
	"franguinho-pos/tests/common/builder"
	usecasemock "franguinho-pos/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type orderFixture struct {
	orderRepo   *usecasemock.MockOrderRepository
	couponRepo  *usecasemock.MockCouponRepository
	productRepo *usecasemock.MockProductRepository
	settings    *usecasemock.MockSettingsUseCase
	bus         *usecasemock.MockEventBus
	notifier    *usecasemock.MockOrderNotifier
	receipts    *usecasemock.MockReceiptRenderer
	txm         *usecasemock.MockTxManager
	uc          usecase.OrderUseCase
	storeID     uuid.UUID
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &orderFixture{
		orderRepo:   usecasemock.NewMockOrderRepository(ctrl),
		couponRepo:  usecasemock.NewMockCouponRepository(ctrl),
		productRepo: usecasemock.NewMockProductRepository(ctrl),
		settings:    usecasemock.NewMockSettingsUseCase(ctrl),
		bus:         usecasemock.NewMockEventBus(ctrl),
		notifier:    usecasemock.NewMockOrderNotifier(ctrl),
		receipts:    usecasemock.NewMockReceiptRenderer(ctrl),
		txm:         usecasemock.NewMockTxManager(ctrl),
		storeID:     uuid.New(),
	}
	f.uc = usecase.NewOrderUseCase(
		f.orderRepo, f.couponRepo, f.productRepo, f.settings,
		f.receipts, f.bus, f.notifier,
		f.txm, clock.NewMockClock(fixedNow), false,
	)
	return f
}

// expectTx runs the checkout unit of work against the mocked repositories.
func (f *orderFixture) expectTx() {
	f.txm.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, db.DBTX) error) error {
			return fn(ctx, nil)
		})
}

func (f *orderFixture) orderRM(status string, phone *string) *readmodel.OrderRM {
	return &readmodel.OrderRM{
		ID:            uuid.New(),
		StoreID:       f.storeID,
		CustomerName:  "Maria",
		CustomerPhone: phone,
		Lines: []readmodel.OrderLineRM{
			{ProductID: uuid.New(), ProductName: "Frango assado", UnitPriceCents: 5000, Quantity: 1},
		},
		SubtotalCents: 5000,
		TotalCents:    5000,
		Status:        status,
		CreatedAt:     fixedNow,
		UpdatedAt:     fixedNow,
	}
}

func (f *orderFixture) expectFlow(settings order.FlowSettings) {
	f.settings.EXPECT().Flow(gomock.Any(), f.storeID).Return(order.NewFlow(settings), nil)
}

func TestOrderCheckout(t *testing.T) {
	product := &readmodel.ProductRM{
		ID:         uuid.New(),
		Name:       "Frango assado",
		PriceCents: 2500,
		Active:     true,
	}

	checkoutReq := func(couponCode, phone *string) reqdto.CheckoutRequest {
		return reqdto.CheckoutRequest{
			CustomerName:  "Maria",
			CustomerPhone: phone,
			Items:         []reqdto.CartItem{{ProductID: product.ID, Quantity: 2}},
			CouponCode:    couponCode,
		}
	}

	t.Run("order without coupon is persisted and announced", func(t *testing.T) {
		f := newOrderFixture(t)
		f.productRepo.EXPECT().
			FindByIDs(gomock.Any(), f.storeID, gomock.Any()).
			Return([]*readmodel.ProductRM{product}, nil)
		f.expectFlow(order.DefaultFlowSettings())
		f.expectTx()

		var created *order.Order
		f.orderRepo.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, _ db.DBTX, o *order.Order) { created = o }).
			Return(nil)

		rm := f.orderRM("pending", nil)
		f.orderRepo.EXPECT().FindByID(gomock.Any(), f.storeID, gomock.Any()).Return(rm, nil)
		f.bus.EXPECT().Publish(f.storeID, events.EventOrderCreated, rm)

		got, err := f.uc.Checkout(context.Background(), f.storeID, checkoutReq(nil, nil))
		require.NoError(t, err)
		assert.Equal(t, rm, got)

		require.NotNil(t, created)
		assert.Equal(t, int64(5000), created.SubtotalCents())
		assert.Equal(t, int64(5000), created.TotalCents())
		assert.Equal(t, order.StatusPending, created.Status())
	})

	t.Run("coupon checkout consumes one use and records it", func(t *testing.T) {
		f := newOrderFixture(t)
		phone := "5511999990001"
		code := "WELCOME10"
		couponRM := builder.NewCouponBuilder().
			With(func(b *builder.CouponBuilder) { b.StoreID = f.storeID }).
			BuildReadModel()

		f.productRepo.EXPECT().
			FindByIDs(gomock.Any(), f.storeID, gomock.Any()).
			Return([]*readmodel.ProductRM{product}, nil)
		f.couponRepo.EXPECT().FindActiveByCode(gomock.Any(), f.storeID, code).Return(couponRM, nil)
		f.couponRepo.EXPECT().HasUseByPhone(gomock.Any(), couponRM.ID, phone).Return(false, nil)
		f.expectFlow(order.DefaultFlowSettings())
		f.expectTx()

		f.couponRepo.EXPECT().IncrementUses(gomock.Any(), gomock.Any(), couponRM.ID).Return(true, nil)

		var created *order.Order
		f.orderRepo.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, _ db.DBTX, o *order.Order) { created = o }).
			Return(nil)
		f.couponRepo.EXPECT().
			RecordUse(gomock.Any(), gomock.Any(), couponRM.ID, gomock.Any(), &phone).
			Return(nil)

		rm := f.orderRM("pending", &phone)
		f.orderRepo.EXPECT().FindByID(gomock.Any(), f.storeID, gomock.Any()).Return(rm, nil)
		f.bus.EXPECT().Publish(f.storeID, events.EventOrderCreated, rm)

		_, err := f.uc.Checkout(context.Background(), f.storeID, checkoutReq(&code, &phone))
		require.NoError(t, err)

		// 10% off 50.00
		require.NotNil(t, created)
		assert.Equal(t, int64(500), created.DiscountCents())
		assert.Equal(t, int64(4500), created.TotalCents())
	})

	t.Run("exhausted coupon rolls the checkout back", func(t *testing.T) {
		f := newOrderFixture(t)
		phone := "5511999990001"
		code := "WELCOME10"
		couponRM := builder.NewCouponBuilder().
			With(func(b *builder.CouponBuilder) { b.StoreID = f.storeID }).
			BuildReadModel()

		f.productRepo.EXPECT().
			FindByIDs(gomock.Any(), f.storeID, gomock.Any()).
			Return([]*readmodel.ProductRM{product}, nil)
		f.couponRepo.EXPECT().FindActiveByCode(gomock.Any(), f.storeID, code).Return(couponRM, nil)
		f.couponRepo.EXPECT().HasUseByPhone(gomock.Any(), couponRM.ID, phone).Return(false, nil)
		f.expectFlow(order.DefaultFlowSettings())
		f.expectTx()

		// A racing redemption took the last use between validation and commit.
		f.couponRepo.EXPECT().IncrementUses(gomock.Any(), gomock.Any(), couponRM.ID).Return(false, nil)

		_, err := f.uc.Checkout(context.Background(), f.storeID, checkoutReq(&code, &phone))
		assert.ErrorIs(t, err, coupon.ErrCouponExhausted)
	})

	t.Run("order creation failure aborts the checkout", func(t *testing.T) {
		f := newOrderFixture(t)
		f.productRepo.EXPECT().
			FindByIDs(gomock.Any(), f.storeID, gomock.Any()).
			Return([]*readmodel.ProductRM{product}, nil)
		f.expectFlow(order.DefaultFlowSettings())
		f.expectTx()
		f.orderRepo.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("insert failed", nil, infra.KindDBFailure))

		_, err := f.uc.Checkout(context.Background(), f.storeID, checkoutReq(nil, nil))
		assert.ErrorIs(t, err, usecase.ErrDatabaseOperationFailed)
	})
}

func TestOrderAdvance(t *testing.T) {
	t.Run("pending moves to preparing", func(t *testing.T) {
		f := newOrderFixture(t)
		rm := f.orderRM("pending", nil)
		f.orderRepo.EXPECT().FindByID(gomock.Any(), f.storeID, rm.ID).Return(rm, nil)
		f.expectFlow(order.DefaultFlowSettings())
		f.orderRepo.EXPECT().UpdateStatus(gomock.Any(), f.storeID, rm.ID, "preparing").Return(nil)
		f.bus.EXPECT().Publish(f.storeID, events.EventOrderStatusChanged, gomock.Any())

		got, err := f.uc.Advance(context.Background(), f.storeID, rm.ID)
		require.NoError(t, err)
		assert.Equal(t, "preparing", got.Status)
	})

	t.Run("reaching ready notifies the customer", func(t *testing.T) {
		f := newOrderFixture(t)
		phone := "5511999990001"
		rm := f.orderRM("preparing", &phone)
		f.orderRepo.EXPECT().FindByID(gomock.Any(), f.storeID, rm.ID).Return(rm, nil)
		f.expectFlow(order.DefaultFlowSettings())
		f.orderRepo.EXPECT().UpdateStatus(gomock.Any(), f.storeID, rm.ID, "ready").Return(nil)
		f.bus.EXPECT().Publish(f.storeID, events.EventOrderStatusChanged, gomock.Any())
		f.notifier.EXPECT().OrderStatusChanged(gomock.Any(), f.storeID, phone, rm.ID, order.StatusReady)

		got, err := f.uc.Advance(context.Background(), f.storeID, rm.ID)
		require.NoError(t, err)
		assert.Equal(t, "ready", got.Status)
	})

	t.Run("disabled preparing stage is skipped", func(t *testing.T) {
		f := newOrderFixture(t)
		phone := "5511999990001"
		rm := f.orderRM("pending", &phone)
		f.orderRepo.EXPECT().FindByID(gomock.Any(), f.storeID, rm.ID).Return(rm, nil)
		f.expectFlow(order.FlowSettings{PendingEnabled: true, PreparingEnabled: false})
		f.orderRepo.EXPECT().UpdateStatus(gomock.Any(), f.storeID, rm.ID, "ready").Return(nil)
		f.bus.EXPECT().Publish(f.storeID, events.EventOrderStatusChanged, gomock.Any())
		f.notifier.EXPECT().OrderStatusChanged(gomock.Any(), f.storeID, phone, rm.ID, order.StatusReady)

		got, err := f.uc.Advance(context.Background(), f.storeID, rm.ID)
		require.NoError(t, err)
		assert.Equal(t, "ready", got.Status)
	})

	t.Run("ready has no next stage", func(t *testing.T) {
		f := newOrderFixture(t)
		rm := f.orderRM("ready", nil)
		f.orderRepo.EXPECT().FindByID(gomock.Any(), f.storeID, rm.ID).Return(rm, nil)
		f.expectFlow(order.DefaultFlowSettings())

		_, err := f.uc.Advance(context.Background(), f.storeID, rm.ID)
		assert.ErrorIs(t, err, usecase.ErrOrderTerminal)
	})

	t.Run("order stranded on a stage disabled after creation", func(t *testing.T) {
		f := newOrderFixture(t)
		rm := f.orderRM("pending", nil)
		f.orderRepo.EXPECT().FindByID(gomock.Any(), f.storeID, rm.ID).Return(rm, nil)
		f.expectFlow(order.FlowSettings{PendingEnabled: false, PreparingEnabled: true})

		_, err := f.uc.Advance(context.Background(), f.storeID, rm.ID)
		assert.ErrorIs(t, err, usecase.ErrOrderTerminal)
	})

	t.Run("missing order", func(t *testing.T) {
		f := newOrderFixture(t)
		id := uuid.New()
		f.orderRepo.EXPECT().FindByID(gomock.Any(), f.storeID, id).
			Return(nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound))

		_, err := f.uc.Advance(context.Background(), f.storeID, id)
		assert.ErrorIs(t, err, usecase.ErrOrderNotFound)
	})
}

func TestOrderDeliver(t *testing.T) {
	t.Run("ready order is delivered and the customer notified", func(t *testing.T) {
		f := newOrderFixture(t)
		phone := "5511999990001"
		rm := f.orderRM("ready", &phone)
		f.orderRepo.EXPECT().FindByID(gomock.Any(), f.storeID, rm.ID).Return(rm, nil)
		f.orderRepo.EXPECT().UpdateStatus(gomock.Any(), f.storeID, rm.ID, "delivered").Return(nil)
		f.bus.EXPECT().Publish(f.storeID, events.EventOrderStatusChanged, gomock.Any())
		f.notifier.EXPECT().OrderStatusChanged(gomock.Any(), f.storeID, phone, rm.ID, order.StatusDelivered)

		got, err := f.uc.Deliver(context.Background(), f.storeID, rm.ID)
		require.NoError(t, err)
		assert.Equal(t, "delivered", got.Status)
	})

	t.Run("only ready orders can be delivered", func(t *testing.T) {
		f := newOrderFixture(t)
		rm := f.orderRM("preparing", nil)
		f.orderRepo.EXPECT().FindByID(gomock.Any(), f.storeID, rm.ID).Return(rm, nil)

		_, err := f.uc.Deliver(context.Background(), f.storeID, rm.ID)
		assert.ErrorIs(t, err, order.ErrNotDeliverable)
	})
}

func TestOrderListQueue(t *testing.T) {
	f := newOrderFixture(t)
	f.expectFlow(order.FlowSettings{PendingEnabled: false, PreparingEnabled: true})
	f.orderRepo.EXPECT().
		ListByStatuses(gomock.Any(), f.storeID, []string{"preparing", "ready"}).
		Return([]*readmodel.OrderListRM{{ID: uuid.New(), Status: "preparing"}}, nil)

	orders, err := f.uc.ListQueue(context.Background(), f.storeID)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestOrderReceipt(t *testing.T) {
	f := newOrderFixture(t)
	rm := f.orderRM("delivered", nil)
	f.orderRepo.EXPECT().FindByID(gomock.Any(), f.storeID, rm.ID).Return(rm, nil)
	f.settings.EXPECT().StoreName(gomock.Any(), f.storeID).Return("Franguinho da Vila", nil)
	f.receipts.EXPECT().
		Render("Franguinho da Vila", rm).
		Return([]byte("%PDF-"), "receipt-"+rm.ID.String()+".pdf", nil)

	data, filename, err := f.uc.Receipt(context.Background(), f.storeID, rm.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Contains(t, filename, rm.ID.String())
}
