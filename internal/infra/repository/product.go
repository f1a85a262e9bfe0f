package repository

import (
	"context"

	"franguinho-pos/internal/domain/product"
	"franguinho-pos/internal/infra"
	"franguinho-pos/internal/infra/db"
	"franguinho-pos/internal/pkg/pgconv"
	"franguinho-pos/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const productColumns = `
	id, store_id, name, description, price_cents, category, active,
	created_at, updated_at`

type ProductRepository struct {
	db db.DBTX
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{db: pool}
}

func (r *ProductRepository) Create(ctx context.Context, p *product.Product) (*readmodel.ProductRM, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO products (id, store_id, name, description, price_cents, category, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+productColumns,
		p.ID(), p.StoreID(), p.Name(), p.Description(), p.PriceCents(), p.Category(), p.IsActive(),
	)

	rm, err := scanProduct(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create product", err, kindFromPgErr(err))
	}
	return rm, nil
}

func (r *ProductRepository) Update(ctx context.Context, p *product.Product) (*readmodel.ProductRM, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE products
		SET name = $3, description = $4, price_cents = $5, category = $6,
		    active = $7, updated_at = now()
		WHERE store_id = $1 AND id = $2
		RETURNING `+productColumns,
		p.StoreID(), p.ID(), p.Name(), p.Description(), p.PriceCents(), p.Category(), p.IsActive(),
	)

	rm, err := scanProduct(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update product", err)
	}
	return rm, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, storeID, id uuid.UUID) (*readmodel.ProductRM, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE store_id = $1 AND id = $2`,
		storeID, id,
	)

	rm, err := scanProduct(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product by ID", err)
	}
	return rm, nil
}

func (r *ProductRepository) FindByIDs(ctx context.Context, storeID uuid.UUID, ids []uuid.UUID) ([]*readmodel.ProductRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE store_id = $1 AND id = ANY($2)`,
		storeID, ids,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find products by IDs", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

func (r *ProductRepository) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*readmodel.ProductRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE store_id = $1
		ORDER BY category, name`,
		storeID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

func (r *ProductRepository) Delete(ctx context.Context, storeID, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM products
		WHERE store_id = $1 AND id = $2`,
		storeID, id,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to delete product", err, kindFromPgErr(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

func collectProducts(rows pgx.Rows) ([]*readmodel.ProductRM, error) {
	var out []*readmodel.ProductRM
	for rows.Next() {
		rm, err := scanProduct(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan product row", err)
		}
		out = append(out, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate product rows", err)
	}
	return out, nil
}

func scanProduct(row pgx.Row) (*readmodel.ProductRM, error) {
	var rm readmodel.ProductRM
	err := row.Scan(
		&rm.ID, &rm.StoreID, &rm.Name, &rm.Description, &rm.PriceCents,
		&rm.Category, &rm.Active, &rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}
