package repository

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"

	"franguinho-pos/internal/infra"
	"franguinho-pos/internal/infra/db"
	"franguinho-pos/internal/pkg/pgconv"
	"franguinho-pos/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SettingsRepository struct {
	db db.DBTX
}

func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{db: pool}
}

func (r *SettingsRepository) Get(ctx context.Context, storeID uuid.UUID) (*readmodel.StoreSettingsRM, error) {
	var rm readmodel.StoreSettingsRM
	err := r.db.QueryRow(ctx, `
		SELECT store_id, pending_enabled, preparing_enabled, whatsapp_webhook_url, store_token, updated_at
		FROM store_settings
		WHERE store_id = $1`,
		storeID,
	).Scan(
		&rm.StoreID, &rm.PendingEnabled, &rm.PreparingEnabled,
		&rm.WhatsAppWebhookURL, &rm.StoreToken, &rm.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("store settings not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get store settings", err)
	}
	return &rm, nil
}

func (r *SettingsRepository) Update(ctx context.Context, storeID uuid.UUID, pendingEnabled, preparingEnabled bool, webhookURL *string) (*readmodel.StoreSettingsRM, error) {
	var rm readmodel.StoreSettingsRM
	err := r.db.QueryRow(ctx, `
		UPDATE store_settings
		SET pending_enabled = $2, preparing_enabled = $3, whatsapp_webhook_url = $4, updated_at = now()
		WHERE store_id = $1
		RETURNING store_id, pending_enabled, preparing_enabled, whatsapp_webhook_url, store_token, updated_at`,
		storeID, pendingEnabled, preparingEnabled, webhookURL,
	).Scan(
		&rm.StoreID, &rm.PendingEnabled, &rm.PreparingEnabled,
		&rm.WhatsAppWebhookURL, &rm.StoreToken, &rm.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("store settings not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update store settings", err)
	}
	return &rm, nil
}

func (r *SettingsRepository) FindStoreName(ctx context.Context, storeID uuid.UUID) (string, error) {
	var name string
	err := r.db.QueryRow(ctx, `SELECT name FROM stores WHERE id = $1`, storeID).Scan(&name)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", infra.WrapRepoErr("store not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to find store", err)
	}
	return name, nil
}

// FindStoreIDByToken authenticates inbound webhook calls carrying a store
// token. Candidates are compared in Go rather than in the WHERE clause so the
// comparison stays constant-time; the settings table holds one row per store.
func (r *SettingsRepository) FindStoreIDByToken(ctx context.Context, token string) (uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `SELECT store_id, store_token FROM store_settings`)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to list store tokens", err)
	}
	defer rows.Close()

	var matched uuid.UUID
	found := false
	for rows.Next() {
		var storeID uuid.UUID
		var stored string
		if err := rows.Scan(&storeID, &stored); err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to scan store token", err)
		}
		// No early exit: every candidate is compared.
		if tokenEqual(stored, token) && !found {
			matched = storeID
			found = true
		}
	}
	if err := rows.Err(); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to list store tokens", err)
	}
	if !found {
		return uuid.Nil, infra.WrapRepoErr("store token not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return matched, nil
}

// tokenEqual hashes both sides before the constant-time compare so neither
// content nor length differences leak through timing.
func tokenEqual(stored, presented string) bool {
	a := sha256.Sum256([]byte(stored))
	b := sha256.Sum256([]byte(presented))
	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}
