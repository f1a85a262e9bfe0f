package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"franguinho-pos/internal/domain/campaign"
	reqdto "franguinho-pos/internal/handler/dto/request"
	"franguinho-pos/internal/infra"
	"franguinho-pos/internal/infra/db"
	"franguinho-pos/internal/infra/events"
	"franguinho-pos/internal/pkg/errs"
	"franguinho-pos/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrCampaignNotFound    = errors.New("campaign not found")
	ErrCampaignNotRunnable = errors.New("campaign cannot be started")
)

type CampaignRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, c *campaign.Campaign) error
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.CampaignRM, error)
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]readmodel.CampaignRM, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status campaign.Status) error
	ListRecipients(ctx context.Context, campaignID uuid.UUID) ([]readmodel.CampaignRecipientRM, error)
	UpdateRecipientStatus(ctx context.Context, campaignID uuid.UUID, phone string, status campaign.RecipientStatus, sendErr *string) error
}

type CampaignUseCase interface {
	Create(ctx context.Context, storeID uuid.UUID, req reqdto.CreateCampaignRequest) (*readmodel.CampaignRM, error)
	Start(ctx context.Context, storeID, id uuid.UUID) (*readmodel.CampaignRM, error)
	Get(ctx context.Context, storeID, id uuid.UUID) (*readmodel.CampaignRM, error)
	List(ctx context.Context, storeID uuid.UUID) ([]readmodel.CampaignRM, error)
	Recipients(ctx context.Context, storeID, id uuid.UUID) ([]readmodel.CampaignRecipientRM, error)
}

type campaignUseCaseImpl struct {
	campaignRepo CampaignRepository
	messaging    MessagingUseCase
	bus          EventBus
	txm          TxManager
	workers      int
}

func NewCampaignUseCase(
	campaignRepo CampaignRepository,
	messaging MessagingUseCase,
	bus EventBus,
	txm TxManager,
	workers int,
) CampaignUseCase {
	if workers <= 0 {
		workers = 4
	}
	return &campaignUseCaseImpl{
		campaignRepo: campaignRepo,
		messaging:    messaging,
		bus:          bus,
		txm:          txm,
		workers:      workers,
	}
}

func (c *campaignUseCaseImpl) Create(ctx context.Context, storeID uuid.UUID, req reqdto.CreateCampaignRequest) (*readmodel.CampaignRM, error) {
	entity, err := campaign.NewCampaign(storeID, req.Name, req.Message, req.Recipients)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	err = c.txm.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := c.campaignRepo.Create(ctx, tx, entity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.campaignRepo.FindByID(ctx, entity.ID())
}

// Start flips the campaign to running and fans the sends out to a bounded
// worker pool in the background. Progress lands on the recipient rows and the
// event bus; the HTTP call returns immediately.
func (c *campaignUseCaseImpl) Start(ctx context.Context, storeID, id uuid.UUID) (*readmodel.CampaignRM, error) {
	rm, err := c.findOwned(ctx, storeID, id)
	if err != nil {
		return nil, err
	}

	status, err := campaign.NewStatus(rm.Status)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}
	if status != campaign.StatusDraft {
		return nil, ErrCampaignNotRunnable
	}

	if err := c.campaignRepo.UpdateStatus(ctx, id, campaign.StatusRunning); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	rm.Status = campaign.StatusRunning.String()

	go c.run(context.WithoutCancel(ctx), storeID, id, rm.Message)

	return rm, nil
}

func (c *campaignUseCaseImpl) run(ctx context.Context, storeID, campaignID uuid.UUID, message string) {
	recipients, err := c.campaignRepo.ListRecipients(ctx, campaignID)
	if err != nil {
		slog.Error("failed to load campaign recipients", "campaign_id", campaignID, "error", err)
		return
	}

	jobs := make(chan readmodel.CampaignRecipientRM)
	var wg sync.WaitGroup
	for i := 0; i < c.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for recipient := range jobs {
				c.sendToRecipient(ctx, storeID, campaignID, message, recipient.Phone)
			}
		}()
	}

	for _, recipient := range recipients {
		if recipient.Status != campaign.RecipientPending.String() {
			continue
		}
		jobs <- recipient
	}
	close(jobs)
	wg.Wait()

	if err := c.campaignRepo.UpdateStatus(ctx, campaignID, campaign.StatusCompleted); err != nil {
		slog.Error("failed to complete campaign", "campaign_id", campaignID, "error", err)
		return
	}

	c.bus.Publish(storeID, events.EventCampaignProgress, map[string]string{
		"campaign_id": campaignID.String(),
		"status":      campaign.StatusCompleted.String(),
	})
}

func (c *campaignUseCaseImpl) sendToRecipient(ctx context.Context, storeID, campaignID uuid.UUID, message, phone string) {
	_, err := c.messaging.Send(ctx, storeID, reqdto.SendMessageRequest{
		ClientPhone: phone,
		Message:     message,
	})

	status := campaign.RecipientSent
	var sendErr *string
	if err != nil {
		status = campaign.RecipientFailed
		msg := err.Error()
		sendErr = &msg
	}

	if updateErr := c.campaignRepo.UpdateRecipientStatus(ctx, campaignID, phone, status, sendErr); updateErr != nil {
		slog.Error("failed to update campaign recipient", "campaign_id", campaignID, "phone", phone, "error", updateErr)
	}
}

func (c *campaignUseCaseImpl) Get(ctx context.Context, storeID, id uuid.UUID) (*readmodel.CampaignRM, error) {
	return c.findOwned(ctx, storeID, id)
}

func (c *campaignUseCaseImpl) List(ctx context.Context, storeID uuid.UUID) ([]readmodel.CampaignRM, error) {
	campaigns, err := c.campaignRepo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return campaigns, nil
}

func (c *campaignUseCaseImpl) Recipients(ctx context.Context, storeID, id uuid.UUID) ([]readmodel.CampaignRecipientRM, error) {
	if _, err := c.findOwned(ctx, storeID, id); err != nil {
		return nil, err
	}

	recipients, err := c.campaignRepo.ListRecipients(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return recipients, nil
}

func (c *campaignUseCaseImpl) findOwned(ctx context.Context, storeID, id uuid.UUID) (*readmodel.CampaignRM, error) {
	rm, err := c.campaignRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if rm.StoreID != storeID {
		return nil, ErrCampaignNotFound
	}
	return rm, nil
}
