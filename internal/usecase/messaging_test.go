//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"

	"franguinho-pos/internal/domain/order"
	reqdto "franguinho-pos/internal/handler/dto/request"
	"franguinho-pos/internal/infra/events"
	"franguinho-pos/internal/usecase"
	"franguinho-pos/internal/usecase/readmodel"
	usecasemock "franguinho-pos/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type messagingFixture struct {
	messageRepo *usecasemock.MockMessageRepository
	gateway     *usecasemock.MockWhatsAppGateway
	settings    *usecasemock.MockSettingsUseCase
	bus         *usecasemock.MockEventBus
	uc          usecase.MessagingUseCase
	storeID     uuid.UUID
}

func newMessagingFixture(t *testing.T) *messagingFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &messagingFixture{
		messageRepo: usecasemock.NewMockMessageRepository(ctrl),
		gateway:     usecasemock.NewMockWhatsAppGateway(ctrl),
		settings:    usecasemock.NewMockSettingsUseCase(ctrl),
		bus:         usecasemock.NewMockEventBus(ctrl),
		storeID:     uuid.New(),
	}
	f.uc = usecase.NewMessagingUseCase(f.messageRepo, f.gateway, f.settings, f.bus)
	return f
}

func (f *messagingFixture) storedMessage(direction, status string) *readmodel.MessageRM {
	return &readmodel.MessageRM{
		ID:          uuid.New(),
		StoreID:     f.storeID,
		ClientPhone: "5511999990001",
		Body:        "oi",
		Direction:   direction,
		Status:      status,
	}
}

func TestMessagingSend(t *testing.T) {
	req := reqdto.SendMessageRequest{ClientPhone: "5511999990001", Message: "oi"}

	t.Run("delivered message ends up sent", func(t *testing.T) {
		f := newMessagingFixture(t)
		rm := f.storedMessage("outbound", "pending")
		webhook := "https://bridge.example.com/send"

		f.messageRepo.EXPECT().
			Create(gomock.Any(), f.storeID, "5511999990001", "oi", "outbound", "pending").
			Return(rm, nil)
		f.settings.EXPECT().Get(gomock.Any(), f.storeID).
			Return(&readmodel.StoreSettingsRM{StoreID: f.storeID, WhatsAppWebhookURL: &webhook}, nil)
		f.gateway.EXPECT().Send(gomock.Any(), f.storeID, "5511999990001", "oi", &webhook).Return(nil)
		f.messageRepo.EXPECT().UpdateStatus(gomock.Any(), rm.ID, "sent").Return(nil)

		got, err := f.uc.Send(context.Background(), f.storeID, req)
		require.NoError(t, err)
		assert.Equal(t, "sent", got.Status)
	})

	t.Run("gateway failure marks the row failed", func(t *testing.T) {
		f := newMessagingFixture(t)
		rm := f.storedMessage("outbound", "pending")

		f.messageRepo.EXPECT().
			Create(gomock.Any(), f.storeID, "5511999990001", "oi", "outbound", "pending").
			Return(rm, nil)
		f.settings.EXPECT().Get(gomock.Any(), f.storeID).
			Return(nil, usecase.ErrSettingsNotFound)
		f.gateway.EXPECT().Send(gomock.Any(), f.storeID, "5511999990001", "oi", nil).
			Return(errors.New("bridge unreachable"))
		f.messageRepo.EXPECT().UpdateStatus(gomock.Any(), rm.ID, "failed").Return(nil)

		_, err := f.uc.Send(context.Background(), f.storeID, req)
		assert.ErrorIs(t, err, usecase.ErrMessageDelivery)
	})
}

func TestMessagingReceiveInbound(t *testing.T) {
	req := reqdto.InboundMessageRequest{
		ClientNumber: "5511999990001",
		Message:      "quero fazer um pedido",
		StoreToken:   "tok-123",
	}

	t.Run("store token resolves the tenant and the queue is notified", func(t *testing.T) {
		f := newMessagingFixture(t)
		rm := f.storedMessage("inbound", "received")

		f.settings.EXPECT().ResolveStoreToken(gomock.Any(), "tok-123").Return(f.storeID, nil)
		f.messageRepo.EXPECT().
			Create(gomock.Any(), f.storeID, "5511999990001", "quero fazer um pedido", "inbound", "received").
			Return(rm, nil)
		f.bus.EXPECT().Publish(f.storeID, events.EventMessageReceived, rm)

		got, err := f.uc.ReceiveInbound(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "received", got.Status)
	})

	t.Run("unknown token is rejected", func(t *testing.T) {
		f := newMessagingFixture(t)
		f.settings.EXPECT().ResolveStoreToken(gomock.Any(), "tok-123").
			Return(uuid.Nil, usecase.ErrStoreTokenInvalid)

		_, err := f.uc.ReceiveInbound(context.Background(), req)
		assert.ErrorIs(t, err, usecase.ErrStoreTokenInvalid)
	})
}

func TestOrderStatusChanged(t *testing.T) {
	t.Run("ready order sends a pickup notice", func(t *testing.T) {
		f := newMessagingFixture(t)
		orderID := uuid.New()
		rm := f.storedMessage("outbound", "pending")

		f.messageRepo.EXPECT().
			Create(gomock.Any(), f.storeID, "5511999990001", gomock.Any(), "outbound", "pending").
			Return(rm, nil)
		f.settings.EXPECT().Get(gomock.Any(), f.storeID).
			Return(&readmodel.StoreSettingsRM{StoreID: f.storeID}, nil)
		f.gateway.EXPECT().Send(gomock.Any(), f.storeID, "5511999990001", gomock.Any(), nil).Return(nil)
		f.messageRepo.EXPECT().UpdateStatus(gomock.Any(), rm.ID, "sent").Return(nil)

		f.uc.OrderStatusChanged(context.Background(), f.storeID, "5511999990001", orderID, order.StatusReady)
	})

	t.Run("intermediate stages are silent", func(t *testing.T) {
		f := newMessagingFixture(t)
		f.uc.OrderStatusChanged(context.Background(), f.storeID, "5511999990001", uuid.New(), order.StatusPreparing)
	})
}
