package repository

import (
	"context"

	"franguinho-pos/internal/domain/order"
	"franguinho-pos/internal/infra"
	"franguinho-pos/internal/infra/db"
	"franguinho-pos/internal/pkg/pgconv"
	"franguinho-pos/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{db: pool}
}

// Create persists the order and its lines inside the caller's transaction.
func (r *OrderRepository) Create(ctx context.Context, dbtx db.DBTX, o *order.Order) error {
	_, err := dbtx.Exec(ctx, `
		INSERT INTO orders (
			id, store_id, customer_name, customer_phone,
			subtotal_cents, discount_cents, total_cents,
			free_shipping, coupon_id, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		o.ID(), o.StoreID(), o.CustomerName(), pgconv.StringPtrToPgtype(o.CustomerPhone()),
		o.SubtotalCents(), o.DiscountCents(), o.TotalCents(),
		o.FreeShipping(), pgconv.UUIDPtrToPgtype(o.CouponID()), o.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create order", err, kindFromPgErr(err))
	}

	for _, line := range o.Lines() {
		_, err = dbtx.Exec(ctx, `
			INSERT INTO order_items (
				order_id, product_id, unit_price_cents, variation_cents,
				quantity, redeemed_with_points
			)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			o.ID(), line.ProductID, line.UnitPriceCents, line.VariationCents,
			line.Quantity, line.RedeemedWithPoints,
		)
		if err != nil {
			return infra.WrapRepoErr("failed to create order item", err, kindFromPgErr(err))
		}
	}

	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, storeID, id uuid.UUID) (*readmodel.OrderRM, error) {
	var rm readmodel.OrderRM
	err := r.db.QueryRow(ctx, `
		SELECT o.id, o.store_id, o.customer_name, o.customer_phone,
		       o.subtotal_cents, o.discount_cents, o.total_cents,
		       o.free_shipping, o.coupon_id, c.code, o.status,
		       o.created_at, o.updated_at
		FROM orders o
		LEFT JOIN coupons c ON c.id = o.coupon_id
		WHERE o.store_id = $1 AND o.id = $2`,
		storeID, id,
	).Scan(
		&rm.ID, &rm.StoreID, &rm.CustomerName, &rm.CustomerPhone,
		&rm.SubtotalCents, &rm.DiscountCents, &rm.TotalCents,
		&rm.FreeShipping, &rm.CouponID, &rm.CouponCode, &rm.Status,
		&rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by ID", err)
	}

	lines, err := r.findLines(ctx, id)
	if err != nil {
		return nil, err
	}
	rm.Lines = lines

	return &rm, nil
}

func (r *OrderRepository) findLines(ctx context.Context, orderID uuid.UUID) ([]readmodel.OrderLineRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT i.product_id, p.name, i.unit_price_cents, i.variation_cents,
		       i.quantity, i.redeemed_with_points
		FROM order_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.order_id = $1
		ORDER BY p.name`,
		orderID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}
	defer rows.Close()

	var lines []readmodel.OrderLineRM
	for rows.Next() {
		var l readmodel.OrderLineRM
		if scanErr := rows.Scan(
			&l.ProductID, &l.ProductName, &l.UnitPriceCents, &l.VariationCents,
			&l.Quantity, &l.RedeemedWithPoints,
		); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan order item row", scanErr)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order item rows", err)
	}
	return lines, nil
}

func (r *OrderRepository) ListByStatuses(ctx context.Context, storeID uuid.UUID, statuses []string) ([]*readmodel.OrderListRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, customer_name, customer_phone, total_cents, status, created_at
		FROM orders
		WHERE store_id = $1 AND status = ANY($2)
		ORDER BY created_at ASC`,
		storeID, statuses,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	var out []*readmodel.OrderListRM
	for rows.Next() {
		var rm readmodel.OrderListRM
		if scanErr := rows.Scan(
			&rm.ID, &rm.CustomerName, &rm.CustomerPhone,
			&rm.TotalCents, &rm.Status, &rm.CreatedAt,
		); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan order row", scanErr)
		}
		out = append(out, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order rows", err)
	}
	return out, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, storeID, id uuid.UUID, status string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE orders
		SET status = $3, updated_at = now()
		WHERE store_id = $1 AND id = $2`,
		storeID, id, status,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}
