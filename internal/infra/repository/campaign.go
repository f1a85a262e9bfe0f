package repository

import (
	"context"

	"franguinho-pos/internal/domain/campaign"
	"franguinho-pos/internal/infra"
	"franguinho-pos/internal/infra/db"
	"franguinho-pos/internal/pkg/pgconv"
	"franguinho-pos/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CampaignRepository struct {
	db db.DBTX
}

func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{db: pool}
}

const campaignSelect = `
	SELECT c.id, c.store_id, c.name, c.message, c.status, c.created_at, c.updated_at,
		count(*) FILTER (WHERE r.status = 'sent'),
		count(*) FILTER (WHERE r.status = 'failed'),
		count(*) FILTER (WHERE r.status = 'pending')
	FROM campaigns c
	LEFT JOIN campaign_recipients r ON r.campaign_id = c.id`

func (r *CampaignRepository) Create(ctx context.Context, dbtx db.DBTX, c *campaign.Campaign) error {
	_, err := dbtx.Exec(ctx, `
		INSERT INTO campaigns (id, store_id, name, message, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)`,
		c.ID(), c.StoreID(), c.Name(), c.Message(), string(c.Status()), c.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create campaign", err, kindFromPgErr(err))
	}
	for _, phone := range c.Recipients() {
		_, err := dbtx.Exec(ctx, `
			INSERT INTO campaign_recipients (campaign_id, phone, status)
			VALUES ($1, $2, 'pending')`,
			c.ID(), phone,
		)
		if err != nil {
			return infra.WrapRepoErr("failed to create campaign recipient", err, kindFromPgErr(err))
		}
	}
	return nil
}

func (r *CampaignRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.CampaignRM, error) {
	var rm readmodel.CampaignRM
	err := r.db.QueryRow(ctx, campaignSelect+`
		WHERE c.id = $1
		GROUP BY c.id`,
		id,
	).Scan(
		&rm.ID, &rm.StoreID, &rm.Name, &rm.Message, &rm.Status,
		&rm.CreatedAt, &rm.UpdatedAt, &rm.Sent, &rm.Failed, &rm.Pending,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("campaign not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find campaign", err)
	}
	return &rm, nil
}

func (r *CampaignRepository) ListByStore(ctx context.Context, storeID uuid.UUID) ([]readmodel.CampaignRM, error) {
	rows, err := r.db.Query(ctx, campaignSelect+`
		WHERE c.store_id = $1
		GROUP BY c.id
		ORDER BY c.created_at DESC`,
		storeID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list campaigns", err)
	}
	defer rows.Close()

	var campaigns []readmodel.CampaignRM
	for rows.Next() {
		var rm readmodel.CampaignRM
		if err := rows.Scan(
			&rm.ID, &rm.StoreID, &rm.Name, &rm.Message, &rm.Status,
			&rm.CreatedAt, &rm.UpdatedAt, &rm.Sent, &rm.Failed, &rm.Pending,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan campaign", err)
		}
		campaigns = append(campaigns, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate campaigns", err)
	}
	return campaigns, nil
}

func (r *CampaignRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status campaign.Status) error {
	_, err := r.db.Exec(ctx, `
		UPDATE campaigns SET status = $2, updated_at = now() WHERE id = $1`,
		id, string(status),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update campaign status", err)
	}
	return nil
}

func (r *CampaignRepository) ListRecipients(ctx context.Context, campaignID uuid.UUID) ([]readmodel.CampaignRecipientRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT campaign_id, phone, status, error, updated_at
		FROM campaign_recipients
		WHERE campaign_id = $1
		ORDER BY phone`,
		campaignID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list campaign recipients", err)
	}
	defer rows.Close()

	var recipients []readmodel.CampaignRecipientRM
	for rows.Next() {
		var rm readmodel.CampaignRecipientRM
		if err := rows.Scan(&rm.CampaignID, &rm.Phone, &rm.Status, &rm.Error, &rm.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan campaign recipient", err)
		}
		recipients = append(recipients, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate campaign recipients", err)
	}
	return recipients, nil
}

func (r *CampaignRepository) UpdateRecipientStatus(ctx context.Context, campaignID uuid.UUID, phone string, status campaign.RecipientStatus, sendErr *string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE campaign_recipients
		SET status = $3, error = $4, updated_at = now()
		WHERE campaign_id = $1 AND phone = $2`,
		campaignID, phone, string(status), sendErr,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update recipient status", err)
	}
	return nil
}
