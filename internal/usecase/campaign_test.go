//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	reqdto "franguinho-pos/internal/handler/dto/request"
	"franguinho-pos/internal/infra"
	"franguinho-pos/internal/infra/events"
	"franguinho-pos/internal/usecase"
	"franguinho-pos/internal/usecase/readmodel"
	usecasemock "franguinho-pos/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type campaignFixture struct {
	campaignRepo *usecasemock.MockCampaignRepository
	messaging    *usecasemock.MockMessagingUseCase
	bus          *usecasemock.MockEventBus
	uc           usecase.CampaignUseCase
	storeID      uuid.UUID
}

func newCampaignFixture(t *testing.T, workers int) *campaignFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &campaignFixture{
		campaignRepo: usecasemock.NewMockCampaignRepository(ctrl),
		messaging:    usecasemock.NewMockMessagingUseCase(ctrl),
		bus:          usecasemock.NewMockEventBus(ctrl),
		storeID:      uuid.New(),
	}
	// nil tx manager: Start and the queries never open a transaction.
	f.uc = usecase.NewCampaignUseCase(f.campaignRepo, f.messaging, f.bus, nil, workers)
	return f
}

func (f *campaignFixture) campaignRM(status string) *readmodel.CampaignRM {
	return &readmodel.CampaignRM{
		ID:      uuid.New(),
		StoreID: f.storeID,
		Name:    "Promo de sexta",
		Message: "Frango em dobro hoje!",
		Status:  status,
	}
}

func TestCampaignStart(t *testing.T) {
	t.Run("draft campaign runs to completion", func(t *testing.T) {
		f := newCampaignFixture(t, 2)
		rm := f.campaignRM("draft")
		recipients := []readmodel.CampaignRecipientRM{
			{CampaignID: rm.ID, Phone: "5511999990001", Status: "pending"},
			{CampaignID: rm.ID, Phone: "5511999990002", Status: "pending"},
			{CampaignID: rm.ID, Phone: "5511999990003", Status: "sent"},
		}

		f.campaignRepo.EXPECT().FindByID(gomock.Any(), rm.ID).Return(rm, nil)
		f.campaignRepo.EXPECT().UpdateStatus(gomock.Any(), rm.ID, gomock.Any()).Return(nil).Times(2)
		f.campaignRepo.EXPECT().ListRecipients(gomock.Any(), rm.ID).Return(recipients, nil)

		// Only the two still-pending recipients get a send.
		f.messaging.EXPECT().
			Send(gomock.Any(), f.storeID, gomock.Any()).
			Return(&readmodel.MessageRM{}, nil).Times(2)
		f.campaignRepo.EXPECT().
			UpdateRecipientStatus(gomock.Any(), rm.ID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).Times(2)

		done := make(chan struct{})
		f.bus.EXPECT().
			Publish(f.storeID, events.EventCampaignProgress, gomock.Any()).
			Do(func(uuid.UUID, events.EventType, any) { close(done) })

		got, err := f.uc.Start(context.Background(), f.storeID, rm.ID)
		require.NoError(t, err)
		assert.Equal(t, "running", got.Status)

		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("campaign run did not complete")
		}
	})

	t.Run("failed sends mark the recipient failed", func(t *testing.T) {
		f := newCampaignFixture(t, 1)
		rm := f.campaignRM("draft")
		recipients := []readmodel.CampaignRecipientRM{
			{CampaignID: rm.ID, Phone: "5511999990001", Status: "pending"},
		}

		f.campaignRepo.EXPECT().FindByID(gomock.Any(), rm.ID).Return(rm, nil)
		f.campaignRepo.EXPECT().UpdateStatus(gomock.Any(), rm.ID, gomock.Any()).Return(nil).Times(2)
		f.campaignRepo.EXPECT().ListRecipients(gomock.Any(), rm.ID).Return(recipients, nil)
		f.messaging.EXPECT().
			Send(gomock.Any(), f.storeID, reqdto.SendMessageRequest{ClientPhone: "5511999990001", Message: rm.Message}).
			Return(nil, errors.New("bridge unreachable"))
		f.campaignRepo.EXPECT().
			UpdateRecipientStatus(gomock.Any(), rm.ID, "5511999990001", gomock.Any(), gomock.Any()).
			Return(nil)

		done := make(chan struct{})
		f.bus.EXPECT().
			Publish(f.storeID, events.EventCampaignProgress, gomock.Any()).
			Do(func(uuid.UUID, events.EventType, any) { close(done) })

		_, err := f.uc.Start(context.Background(), f.storeID, rm.ID)
		require.NoError(t, err)

		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("campaign run did not complete")
		}
	})

	t.Run("already running campaign cannot be restarted", func(t *testing.T) {
		f := newCampaignFixture(t, 1)
		rm := f.campaignRM("running")
		f.campaignRepo.EXPECT().FindByID(gomock.Any(), rm.ID).Return(rm, nil)

		_, err := f.uc.Start(context.Background(), f.storeID, rm.ID)
		assert.ErrorIs(t, err, usecase.ErrCampaignNotRunnable)
	})
}

func TestCampaignTenancy(t *testing.T) {
	t.Run("foreign store cannot see the campaign", func(t *testing.T) {
		f := newCampaignFixture(t, 1)
		rm := f.campaignRM("draft")
		rm.StoreID = uuid.New()
		f.campaignRepo.EXPECT().FindByID(gomock.Any(), rm.ID).Return(rm, nil)

		_, err := f.uc.Get(context.Background(), f.storeID, rm.ID)
		assert.ErrorIs(t, err, usecase.ErrCampaignNotFound)
	})

	t.Run("missing campaign", func(t *testing.T) {
		f := newCampaignFixture(t, 1)
		id := uuid.New()
		f.campaignRepo.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("campaign not found", nil, infra.KindNotFound))

		_, err := f.uc.Get(context.Background(), f.storeID, id)
		assert.ErrorIs(t, err, usecase.ErrCampaignNotFound)
	})
}
