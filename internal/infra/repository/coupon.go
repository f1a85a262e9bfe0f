package repository

import (
	"context"

	"franguinho-pos/internal/domain/coupon"
	"franguinho-pos/internal/infra"
	"franguinho-pos/internal/infra/db"
	"franguinho-pos/internal/pkg/pgconv"
	"franguinho-pos/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const couponColumns = `
	id, store_id, code, kind, amount_off_cents, percent_off, product_scope,
	expires_at, max_uses, current_uses, active, created_at, updated_at`

type CouponRepository struct {
	db db.DBTX
}

func NewCouponRepository(pool *pgxpool.Pool) *CouponRepository {
	return &CouponRepository{db: pool}
}

func (r *CouponRepository) Create(ctx context.Context, c *coupon.Coupon) (*readmodel.CouponRM, error) {
	var amountOff *int64
	var percentOff *float64
	if c.Kind() != coupon.KindFreeShipping {
		if c.Discount().IsFixed() {
			v := c.Discount().AmountOffCents()
			amountOff = &v
		} else {
			v := c.Discount().PercentOff()
			percentOff = &v
		}
	}

	row := r.db.QueryRow(ctx, `
		INSERT INTO coupons (
			id, store_id, code, kind, amount_off_cents, percent_off,
			product_scope, expires_at, max_uses, current_uses, active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 0, $10)
		RETURNING `+couponColumns,
		c.ID(), c.StoreID(), c.Code().String(), c.Kind().String(),
		pgconv.Int64PtrToPgtype(amountOff), pgconv.Float64PtrToPgtype(percentOff),
		scopeParam(c), pgconv.TimePtrToPgtype(c.ExpiresAt()),
		pgconv.Int32PtrToPgtype(c.MaxUses()), c.IsActive(),
	)

	rm, err := scanCoupon(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create coupon", err, kindFromPgErr(err))
	}
	return rm, nil
}

// scopeParam keeps the uuid[] column non-null: an unscoped coupon stores an
// empty array, never SQL NULL.
func scopeParam(c *coupon.Coupon) []uuid.UUID {
	if scope := c.ProductScope(); scope != nil {
		return scope
	}
	return []uuid.UUID{}
}

// FindActiveByCode expects an already-normalized code.
func (r *CouponRepository) FindActiveByCode(ctx context.Context, storeID uuid.UUID, code string) (*readmodel.CouponRM, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+couponColumns+`
		FROM coupons
		WHERE store_id = $1 AND code = $2 AND active`,
		storeID, code,
	)

	rm, err := scanCoupon(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}
	return rm, nil
}

func (r *CouponRepository) FindByID(ctx context.Context, storeID, id uuid.UUID) (*readmodel.CouponRM, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+couponColumns+`
		FROM coupons
		WHERE store_id = $1 AND id = $2`,
		storeID, id,
	)

	rm, err := scanCoupon(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by ID", err)
	}
	return rm, nil
}

func (r *CouponRepository) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*readmodel.CouponRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+couponColumns+`
		FROM coupons
		WHERE store_id = $1
		ORDER BY created_at DESC`,
		storeID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupons", err)
	}
	defer rows.Close()

	var out []*readmodel.CouponRM
	for rows.Next() {
		rm, scanErr := scanCoupon(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan coupon row", scanErr)
		}
		out = append(out, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate coupon rows", err)
	}
	return out, nil
}

func (r *CouponRepository) Deactivate(ctx context.Context, storeID, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE coupons
		SET active = false, updated_at = now()
		WHERE store_id = $1 AND id = $2`,
		storeID, id,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to deactivate coupon", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return nil
}

// IncrementUses consumes one use atomically. Returns false when the cap is
// already reached (or the coupon went inactive), so racing redemptions can
// never push current_uses past max_uses.
func (r *CouponRepository) IncrementUses(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (bool, error) {
	tag, err := dbtx.Exec(ctx, `
		UPDATE coupons
		SET current_uses = current_uses + 1, updated_at = now()
		WHERE id = $1
		  AND active
		  AND (max_uses IS NULL OR current_uses < max_uses)`,
		id,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to increment coupon uses", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *CouponRepository) RecordUse(ctx context.Context, dbtx db.DBTX, couponID, orderID uuid.UUID, customerPhone *string) error {
	_, err := dbtx.Exec(ctx, `
		INSERT INTO coupon_uses (coupon_id, order_id, customer_phone)
		VALUES ($1, $2, $3)`,
		couponID, orderID, pgconv.StringPtrToPgtype(customerPhone),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to record coupon use", err, kindFromPgErr(err))
	}
	return nil
}

func (r *CouponRepository) HasUseByPhone(ctx context.Context, couponID uuid.UUID, customerPhone string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM coupon_uses
			WHERE coupon_id = $1 AND customer_phone = $2
		)`,
		couponID, customerPhone,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check coupon use by phone", err)
	}
	return exists, nil
}

func scanCoupon(row pgx.Row) (*readmodel.CouponRM, error) {
	var rm readmodel.CouponRM
	err := row.Scan(
		&rm.ID, &rm.StoreID, &rm.Code, &rm.Kind,
		&rm.AmountOffCents, &rm.PercentOff, &rm.ProductScope,
		&rm.ExpiresAt, &rm.MaxUses, &rm.CurrentUses, &rm.Active,
		&rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}
