package usecase

import (
	"context"
	"errors"

	"franguinho-pos/internal/domain/cart"
	"franguinho-pos/internal/domain/coupon"
	reqdto "franguinho-pos/internal/handler/dto/request"
	"franguinho-pos/internal/infra"
	"franguinho-pos/internal/infra/db"
	"franguinho-pos/internal/pkg/clock"
	"franguinho-pos/internal/pkg/errs"
	"franguinho-pos/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrCouponNotFound    = errors.New("coupon not found")
	ErrCouponAlreadyUsed = errors.New("coupon already used by this customer")
	ErrPhoneRequired     = errors.New("customer phone is required for coupon use")
	ErrDuplicateCoupon   = errors.New("coupon code already exists for this store")

	// Error markers for categorization
	ErrDomainValidationFailed  = errors.New("domain validation failed")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

type CouponRepository interface {
	Create(ctx context.Context, c *coupon.Coupon) (*readmodel.CouponRM, error)
	FindActiveByCode(ctx context.Context, storeID uuid.UUID, code string) (*readmodel.CouponRM, error)
	FindByID(ctx context.Context, storeID, id uuid.UUID) (*readmodel.CouponRM, error)
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]*readmodel.CouponRM, error)
	Deactivate(ctx context.Context, storeID, id uuid.UUID) error
	IncrementUses(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (bool, error)
	RecordUse(ctx context.Context, dbtx db.DBTX, couponID, orderID uuid.UUID, customerPhone *string) error
	HasUseByPhone(ctx context.Context, couponID uuid.UUID, customerPhone string) (bool, error)
}

type CouponUseCase interface {
	Validate(ctx context.Context, storeID uuid.UUID, req reqdto.ValidateCouponRequest) (*readmodel.CouponApplicationRM, error)
	Create(ctx context.Context, storeID uuid.UUID, req reqdto.CreateCouponRequest) (*readmodel.CouponRM, error)
	Get(ctx context.Context, storeID, id uuid.UUID) (*readmodel.CouponRM, error)
	List(ctx context.Context, storeID uuid.UUID) ([]*readmodel.CouponRM, error)
	Deactivate(ctx context.Context, storeID, id uuid.UUID) error
}

type couponUseCaseImpl struct {
	couponRepo     CouponRepository
	productRepo    ProductRepository
	clock          clock.Clock
	allowAnonymous bool
}

func NewCouponUseCase(
	couponRepo CouponRepository,
	productRepo ProductRepository,
	clock clock.Clock,
	allowAnonymous bool,
) CouponUseCase {
	return &couponUseCaseImpl{
		couponRepo:     couponRepo,
		productRepo:    productRepo,
		clock:          clock,
		allowAnonymous: allowAnonymous,
	}
}

// Validate runs the full redemption check against a cart without consuming
// the coupon. The same path runs again inside checkout before the use is
// recorded.
func (c *couponUseCaseImpl) Validate(ctx context.Context, storeID uuid.UUID, req reqdto.ValidateCouponRequest) (*readmodel.CouponApplicationRM, error) {
	ct, err := buildCart(ctx, c.productRepo, storeID, req.Items)
	if err != nil {
		return nil, err
	}

	_, app, err := evaluateCoupon(ctx, c.couponRepo, c.clock, storeID, req.Code, ct, req.CustomerPhone, c.allowAnonymous)
	if err != nil {
		return nil, err
	}

	return &readmodel.CouponApplicationRM{
		CouponID:      app.CouponID,
		CouponCode:    app.CouponCode,
		DiscountCents: app.DiscountCents,
		FreeShipping:  app.FreeShipping,
	}, nil
}

// evaluateCoupon is the shared validation path: lookup, usage gates, cart
// applicability, per-customer dedupe, then the pure discount computation.
func evaluateCoupon(
	ctx context.Context,
	couponRepo CouponRepository,
	clk clock.Clock,
	storeID uuid.UUID,
	code string,
	ct cart.Cart,
	customerPhone *string,
	allowAnonymous bool,
) (*coupon.Coupon, coupon.Application, error) {
	normalized, err := coupon.NewCode(code)
	if err != nil {
		return nil, coupon.Application{}, errs.Mark(err, ErrDomainValidationFailed)
	}

	rm, err := couponRepo.FindActiveByCode(ctx, storeID, normalized.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, coupon.Application{}, ErrCouponNotFound
		}
		return nil, coupon.Application{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	entity, err := couponFromRM(rm)
	if err != nil {
		return nil, coupon.Application{}, errs.Mark(err, ErrDomainValidationFailed)
	}

	if err := entity.ValidateUsage(clk.Now()); err != nil {
		return nil, coupon.Application{}, err
	}
	if err := entity.ValidateCart(ct); err != nil {
		return nil, coupon.Application{}, err
	}

	if customerPhone == nil || *customerPhone == "" {
		if !allowAnonymous {
			return nil, coupon.Application{}, ErrPhoneRequired
		}
	} else {
		used, err := couponRepo.HasUseByPhone(ctx, entity.ID(), *customerPhone)
		if err != nil {
			return nil, coupon.Application{}, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if used {
			return nil, coupon.Application{}, ErrCouponAlreadyUsed
		}
	}

	return entity, entity.Apply(ct), nil
}

func couponFromRM(rm *readmodel.CouponRM) (*coupon.Coupon, error) {
	code, err := coupon.NewCode(rm.Code)
	if err != nil {
		return nil, err
	}
	kind, err := coupon.NewKind(rm.Kind)
	if err != nil {
		return nil, err
	}

	var discount coupon.Discount
	if kind != coupon.KindFreeShipping {
		discount, err = coupon.NewDiscount(rm.AmountOffCents, rm.PercentOff)
		if err != nil {
			return nil, err
		}
	}

	return coupon.ReconstructCoupon(
		rm.ID, rm.StoreID,
		code, kind, discount,
		rm.ProductScope,
		rm.ExpiresAt,
		rm.MaxUses, rm.CurrentUses,
		rm.Active,
		rm.CreatedAt, rm.UpdatedAt,
	), nil
}

func (c *couponUseCaseImpl) Create(ctx context.Context, storeID uuid.UUID, req reqdto.CreateCouponRequest) (*readmodel.CouponRM, error) {
	entity, err := coupon.NewCoupon(
		storeID,
		req.Code,
		req.Kind,
		req.AmountOffCents,
		req.PercentOff,
		req.ProductScope,
		req.ExpiresAt,
		req.MaxUses,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	rm, err := c.couponRepo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateCoupon
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (c *couponUseCaseImpl) Get(ctx context.Context, storeID, id uuid.UUID) (*readmodel.CouponRM, error) {
	rm, err := c.couponRepo.FindByID(ctx, storeID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (c *couponUseCaseImpl) List(ctx context.Context, storeID uuid.UUID) ([]*readmodel.CouponRM, error) {
	coupons, err := c.couponRepo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return coupons, nil
}

func (c *couponUseCaseImpl) Deactivate(ctx context.Context, storeID, id uuid.UUID) error {
	if err := c.couponRepo.Deactivate(ctx, storeID, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCouponNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
