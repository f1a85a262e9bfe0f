package repository

import (
	"context"
	"time"

	"franguinho-pos/internal/infra"
	"franguinho-pos/internal/infra/db"
	"franguinho-pos/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DashboardRepository struct {
	db db.DBTX
}

func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{db: pool}
}

// Summary aggregates delivered orders in the half-open window [from, to).
func (r *DashboardRepository) Summary(ctx context.Context, storeID uuid.UUID, from, to time.Time) (*readmodel.DashboardSummaryRM, error) {
	var rm readmodel.DashboardSummaryRM
	err := r.db.QueryRow(ctx, `
		SELECT count(*),
			coalesce(sum(total_cents), 0),
			coalesce(avg(total_cents), 0)::bigint
		FROM orders
		WHERE store_id = $1 AND created_at >= $2 AND created_at < $3 AND status = 'delivered'`,
		storeID, from, to,
	).Scan(&rm.OrdersToday, &rm.RevenueCentsToday, &rm.AvgTicketCents)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate orders", err)
	}

	err = r.db.QueryRow(ctx, `
		SELECT count(*)
		FROM coupon_uses u
		JOIN coupons c ON c.id = u.coupon_id
		WHERE c.store_id = $1 AND u.used_at >= $2 AND u.used_at < $3`,
		storeID, from, to,
	).Scan(&rm.CouponUsesToday)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count coupon uses", err)
	}

	top, err := r.topProducts(ctx, storeID, from, to, 5)
	if err != nil {
		return nil, err
	}
	rm.TopProducts = top
	return &rm, nil
}

func (r *DashboardRepository) topProducts(ctx context.Context, storeID uuid.UUID, from, to time.Time, limit int32) ([]readmodel.TopProductRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT i.product_id, p.name,
			sum(i.quantity),
			sum((i.unit_price_cents + i.variation_cents) * i.quantity)
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
		JOIN products p ON p.id = i.product_id
		WHERE o.store_id = $1 AND o.created_at >= $2 AND o.created_at < $3 AND o.status = 'delivered'
		GROUP BY i.product_id, p.name
		ORDER BY sum(i.quantity) DESC
		LIMIT $4`,
		storeID, from, to, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query top products", err)
	}
	defer rows.Close()

	var products []readmodel.TopProductRM
	for rows.Next() {
		var rm readmodel.TopProductRM
		if err := rows.Scan(&rm.ProductID, &rm.ProductName, &rm.QuantitySold, &rm.RevenueCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan top product", err)
		}
		products = append(products, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate top products", err)
	}
	return products, nil
}
