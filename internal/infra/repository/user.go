package repository

import (
	"context"

	"franguinho-pos/internal/infra"
	"franguinho-pos/internal/infra/db"
	"franguinho-pos/internal/pkg/pgconv"
	"franguinho-pos/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: pool}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*readmodel.AuthorizedUserRM, string, error) {
	var rm readmodel.AuthorizedUserRM
	var passwordHash string
	err := r.db.QueryRow(ctx, `
		SELECT id, store_id, email, role, is_active, last_login, created_at, password_hash
		FROM users
		WHERE email = $1`,
		email,
	).Scan(
		&rm.ID, &rm.StoreID, &rm.Email, &rm.Role,
		&rm.IsActive, &rm.LastLogin, &rm.CreatedAt, &passwordHash,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &rm, passwordHash, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	var rm readmodel.AuthorizedUserRM
	err := r.db.QueryRow(ctx, `
		SELECT id, store_id, email, role, is_active, last_login, created_at
		FROM users
		WHERE id = $1`,
		id,
	).Scan(
		&rm.ID, &rm.StoreID, &rm.Email, &rm.Role,
		&rm.IsActive, &rm.LastLogin, &rm.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &rm, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET last_login = now(), updated_at = now()
		WHERE id = $1`,
		userID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
