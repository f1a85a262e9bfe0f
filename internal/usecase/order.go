package usecase

import (
	"context"
	"errors"

	"franguinho-pos/internal/domain/cart"
	"franguinho-pos/internal/domain/coupon"
	"franguinho-pos/internal/domain/order"
	reqdto "franguinho-pos/internal/handler/dto/request"
	"franguinho-pos/internal/infra"
	"franguinho-pos/internal/infra/db"
	"franguinho-pos/internal/infra/events"
	"franguinho-pos/internal/pkg/clock"
	"franguinho-pos/internal/pkg/errs"
	"franguinho-pos/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrOrderTerminal = errors.New("order has no next stage")
)

type OrderRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, o *order.Order) error
	FindByID(ctx context.Context, storeID, id uuid.UUID) (*readmodel.OrderRM, error)
	ListByStatuses(ctx context.Context, storeID uuid.UUID, statuses []string) ([]*readmodel.OrderListRM, error)
	UpdateStatus(ctx context.Context, storeID, id uuid.UUID, status string) error
}

// EventBus pushes store-scoped events to live queue views.
type EventBus interface {
	Publish(storeID uuid.UUID, eventType events.EventType, data any)
}

// TxManager scopes a unit of work to a single database transaction. An error
// from fn rolls the transaction back and is returned unchanged.
type TxManager interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
}

// OrderNotifier tells the customer about status changes over the messaging
// channel. Failures are logged, never surfaced to the cashier.
type OrderNotifier interface {
	OrderStatusChanged(ctx context.Context, storeID uuid.UUID, customerPhone string, orderID uuid.UUID, status order.Status)
}

// ReceiptRenderer produces a printable receipt document.
type ReceiptRenderer interface {
	Render(storeName string, o *readmodel.OrderRM) ([]byte, string, error)
}

type OrderUseCase interface {
	Checkout(ctx context.Context, storeID uuid.UUID, req reqdto.CheckoutRequest) (*readmodel.OrderRM, error)
	Get(ctx context.Context, storeID, id uuid.UUID) (*readmodel.OrderRM, error)
	ListQueue(ctx context.Context, storeID uuid.UUID) ([]*readmodel.OrderListRM, error)
	ListByStatus(ctx context.Context, storeID uuid.UUID, status string) ([]*readmodel.OrderListRM, error)
	Advance(ctx context.Context, storeID, id uuid.UUID) (*readmodel.OrderRM, error)
	Deliver(ctx context.Context, storeID, id uuid.UUID) (*readmodel.OrderRM, error)
	Receipt(ctx context.Context, storeID, id uuid.UUID) ([]byte, string, error)
}

type orderUseCaseImpl struct {
	orderRepo      OrderRepository
	couponRepo     CouponRepository
	productRepo    ProductRepository
	settings       SettingsUseCase
	receipts       ReceiptRenderer
	bus            EventBus
	notifier       OrderNotifier
	txm            TxManager
	clock          clock.Clock
	allowAnonymous bool
}

func NewOrderUseCase(
	orderRepo OrderRepository,
	couponRepo CouponRepository,
	productRepo ProductRepository,
	settings SettingsUseCase,
	receipts ReceiptRenderer,
	bus EventBus,
	notifier OrderNotifier,
	txm TxManager,
	clock clock.Clock,
	allowAnonymous bool,
) OrderUseCase {
	return &orderUseCaseImpl{
		orderRepo:      orderRepo,
		couponRepo:     couponRepo,
		productRepo:    productRepo,
		settings:       settings,
		receipts:       receipts,
		bus:            bus,
		notifier:       notifier,
		txm:            txm,
		clock:          clock,
		allowAnonymous: allowAnonymous,
	}
}

func (o *orderUseCaseImpl) Checkout(ctx context.Context, storeID uuid.UUID, req reqdto.CheckoutRequest) (*readmodel.OrderRM, error) {
	ct, err := buildCart(ctx, o.productRepo, storeID, req.Items)
	if err != nil {
		return nil, err
	}

	var couponEntity *coupon.Coupon
	var app *coupon.Application
	if req.CouponCode != nil && *req.CouponCode != "" {
		entity, application, err := evaluateCoupon(ctx, o.couponRepo, o.clock, storeID, *req.CouponCode, ct, req.CustomerPhone, o.allowAnonymous)
		if err != nil {
			return nil, err
		}
		couponEntity = entity
		app = &application
	}

	flow, err := o.settings.Flow(ctx, storeID)
	if err != nil {
		return nil, err
	}

	orderEntity, err := order.NewOrder(storeID, req.CustomerName, req.CustomerPhone, ct, app, flow)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	if err := o.executeCheckoutTransaction(ctx, orderEntity, couponEntity, req.CustomerPhone); err != nil {
		return nil, err
	}

	rm, err := o.orderRepo.FindByID(ctx, storeID, orderEntity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	o.bus.Publish(storeID, events.EventOrderCreated, rm)
	return rm, nil
}

// executeCheckoutTransaction persists the order and, when a coupon is in
// play, consumes one use atomically. The conditional counter update is the
// arbiter under concurrent redemptions of a capped coupon.
func (o *orderUseCaseImpl) executeCheckoutTransaction(
	ctx context.Context,
	orderEntity *order.Order,
	couponEntity *coupon.Coupon,
	customerPhone *string,
) error {
	return o.txm.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		if couponEntity != nil {
			consumed, err := o.couponRepo.IncrementUses(ctx, tx, couponEntity.ID())
			if err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			if !consumed {
				return coupon.ErrCouponExhausted
			}
		}

		if err := o.orderRepo.Create(ctx, tx, orderEntity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if couponEntity != nil {
			if err := o.couponRepo.RecordUse(ctx, tx, couponEntity.ID(), orderEntity.ID(), customerPhone); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
}

func (o *orderUseCaseImpl) Get(ctx context.Context, storeID, id uuid.UUID) (*readmodel.OrderRM, error) {
	rm, err := o.orderRepo.FindByID(ctx, storeID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

// ListQueue returns open orders across the store's enabled stages.
func (o *orderUseCaseImpl) ListQueue(ctx context.Context, storeID uuid.UUID) ([]*readmodel.OrderListRM, error) {
	flow, err := o.settings.Flow(ctx, storeID)
	if err != nil {
		return nil, err
	}

	stages := flow.Stages()
	statuses := make([]string, 0, len(stages))
	for _, s := range stages {
		statuses = append(statuses, s.String())
	}

	orders, err := o.orderRepo.ListByStatuses(ctx, storeID, statuses)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return orders, nil
}

func (o *orderUseCaseImpl) ListByStatus(ctx context.Context, storeID uuid.UUID, status string) ([]*readmodel.OrderListRM, error) {
	parsed, err := order.NewStatus(status)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	orders, err := o.orderRepo.ListByStatuses(ctx, storeID, []string{parsed.String()})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return orders, nil
}

// Advance moves an order to the next enabled stage of the store's current
// flow. Orders stranded on a disabled stage are terminal until the stage is
// re-enabled.
func (o *orderUseCaseImpl) Advance(ctx context.Context, storeID, id uuid.UUID) (*readmodel.OrderRM, error) {
	entity, rm, err := o.loadOrder(ctx, storeID, id)
	if err != nil {
		return nil, err
	}

	flow, err := o.settings.Flow(ctx, storeID)
	if err != nil {
		return nil, err
	}

	next, ok := entity.Advance(flow)
	if !ok {
		return nil, ErrOrderTerminal
	}

	return o.applyStatusChange(ctx, storeID, rm, next)
}

// Deliver marks a ready order as delivered; an explicit action outside the
// stage pipeline.
func (o *orderUseCaseImpl) Deliver(ctx context.Context, storeID, id uuid.UUID) (*readmodel.OrderRM, error) {
	entity, rm, err := o.loadOrder(ctx, storeID, id)
	if err != nil {
		return nil, err
	}

	if err := entity.Deliver(); err != nil {
		return nil, err
	}

	return o.applyStatusChange(ctx, storeID, rm, entity.Status())
}

func (o *orderUseCaseImpl) applyStatusChange(ctx context.Context, storeID uuid.UUID, rm *readmodel.OrderRM, next order.Status) (*readmodel.OrderRM, error) {
	if err := o.orderRepo.UpdateStatus(ctx, storeID, rm.ID, next.String()); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	rm.Status = next.String()
	o.bus.Publish(storeID, events.EventOrderStatusChanged, map[string]string{
		"order_id": rm.ID.String(),
		"status":   next.String(),
	})

	if rm.CustomerPhone != nil && (next == order.StatusReady || next == order.StatusDelivered) {
		o.notifier.OrderStatusChanged(ctx, storeID, *rm.CustomerPhone, rm.ID, next)
	}

	return rm, nil
}

func (o *orderUseCaseImpl) Receipt(ctx context.Context, storeID, id uuid.UUID) ([]byte, string, error) {
	rm, err := o.Get(ctx, storeID, id)
	if err != nil {
		return nil, "", err
	}

	storeName, err := o.settings.StoreName(ctx, storeID)
	if err != nil {
		return nil, "", err
	}

	return o.receipts.Render(storeName, rm)
}

func (o *orderUseCaseImpl) loadOrder(ctx context.Context, storeID, id uuid.UUID) (*order.Order, *readmodel.OrderRM, error) {
	rm, err := o.orderRepo.FindByID(ctx, storeID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrOrderNotFound
		}
		return nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	status, err := order.NewStatus(rm.Status)
	if err != nil {
		return nil, nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	lines := make([]cart.Line, 0, len(rm.Lines))
	for _, l := range rm.Lines {
		lines = append(lines, cart.Line{
			ProductID:          l.ProductID,
			UnitPriceCents:     l.UnitPriceCents,
			VariationCents:     l.VariationCents,
			Quantity:           l.Quantity,
			RedeemedWithPoints: l.RedeemedWithPoints,
		})
	}

	entity := order.ReconstructOrder(
		rm.ID, rm.StoreID,
		rm.CustomerName, rm.CustomerPhone,
		lines,
		rm.SubtotalCents, rm.DiscountCents, rm.TotalCents,
		rm.FreeShipping,
		rm.CouponID,
		status,
		rm.CreatedAt, rm.UpdatedAt,
	)
	return entity, rm, nil
}
