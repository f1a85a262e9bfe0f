package repository

import (
	"context"

	"franguinho-pos/internal/infra"
	"franguinho-pos/internal/infra/db"
	"franguinho-pos/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MessageRepository struct {
	db db.DBTX
}

func NewMessageRepository(pool *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{db: pool}
}

func (r *MessageRepository) Create(ctx context.Context, storeID uuid.UUID, clientPhone, body, direction, status string) (*readmodel.MessageRM, error) {
	var rm readmodel.MessageRM
	err := r.db.QueryRow(ctx, `
		INSERT INTO whatsapp_messages (id, store_id, client_phone, body, direction, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, store_id, client_phone, body, direction, status, created_at`,
		uuid.New(), storeID, clientPhone, body, direction, status,
	).Scan(
		&rm.ID, &rm.StoreID, &rm.ClientPhone, &rm.Body,
		&rm.Direction, &rm.Status, &rm.CreatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create message", err, kindFromPgErr(err))
	}
	return &rm, nil
}

func (r *MessageRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE whatsapp_messages SET status = $2 WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update message status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("message not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *MessageRepository) ListByClient(ctx context.Context, storeID uuid.UUID, clientPhone string, limit int32) ([]readmodel.MessageRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, store_id, client_phone, body, direction, status, created_at
		FROM whatsapp_messages
		WHERE store_id = $1 AND client_phone = $2
		ORDER BY created_at DESC
		LIMIT $3`,
		storeID, clientPhone, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list messages", err)
	}
	defer rows.Close()

	var messages []readmodel.MessageRM
	for rows.Next() {
		var rm readmodel.MessageRM
		if err := rows.Scan(
			&rm.ID, &rm.StoreID, &rm.ClientPhone, &rm.Body,
			&rm.Direction, &rm.Status, &rm.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan message", err)
		}
		messages = append(messages, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate messages", err)
	}
	return messages, nil
}

func (r *MessageRepository) ListConversations(ctx context.Context, storeID uuid.UUID) ([]readmodel.ConversationRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT ON (m.client_phone)
			m.client_phone, m.body, m.direction, m.created_at,
			count(*) OVER (PARTITION BY m.client_phone)
		FROM whatsapp_messages m
		WHERE m.store_id = $1
		ORDER BY m.client_phone, m.created_at DESC`,
		storeID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list conversations", err)
	}
	defer rows.Close()

	var conversations []readmodel.ConversationRM
	for rows.Next() {
		var rm readmodel.ConversationRM
		if err := rows.Scan(
			&rm.ClientPhone, &rm.LastBody, &rm.LastDirection, &rm.LastAt, &rm.MessageCount,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan conversation", err)
		}
		conversations = append(conversations, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate conversations", err)
	}
	return conversations, nil
}
