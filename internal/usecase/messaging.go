package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"franguinho-pos/internal/domain/order"
	reqdto "franguinho-pos/internal/handler/dto/request"
	"franguinho-pos/internal/infra/events"
	"franguinho-pos/internal/pkg/errs"
	"franguinho-pos/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var ErrMessageDelivery = errors.New("message delivery failed")

const (
	MessageDirectionInbound  = "inbound"
	MessageDirectionOutbound = "outbound"

	MessageStatusPending  = "pending"
	MessageStatusSent     = "sent"
	MessageStatusFailed   = "failed"
	MessageStatusReceived = "received"
)

type MessageRepository interface {
	Create(ctx context.Context, storeID uuid.UUID, clientPhone, body, direction, status string) (*readmodel.MessageRM, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	ListByClient(ctx context.Context, storeID uuid.UUID, clientPhone string, limit int32) ([]readmodel.MessageRM, error)
	ListConversations(ctx context.Context, storeID uuid.UUID) ([]readmodel.ConversationRM, error)
}

// WhatsAppGateway posts outbound messages to the store's bridge endpoint.
type WhatsAppGateway interface {
	Send(ctx context.Context, storeID uuid.UUID, clientNumber, message string, webhookURL *string) error
}

type MessagingUseCase interface {
	Send(ctx context.Context, storeID uuid.UUID, req reqdto.SendMessageRequest) (*readmodel.MessageRM, error)
	ReceiveInbound(ctx context.Context, req reqdto.InboundMessageRequest) (*readmodel.MessageRM, error)
	ListByClient(ctx context.Context, storeID uuid.UUID, clientPhone string, limit int32) ([]readmodel.MessageRM, error)
	ListConversations(ctx context.Context, storeID uuid.UUID) ([]readmodel.ConversationRM, error)

	OrderNotifier
}

type messagingUseCaseImpl struct {
	messageRepo MessageRepository
	gateway     WhatsAppGateway
	settings    SettingsUseCase
	bus         EventBus
}

func NewMessagingUseCase(
	messageRepo MessageRepository,
	gateway WhatsAppGateway,
	settings SettingsUseCase,
	bus EventBus,
) MessagingUseCase {
	return &messagingUseCaseImpl{
		messageRepo: messageRepo,
		gateway:     gateway,
		settings:    settings,
		bus:         bus,
	}
}

// Send persists the outbound message first, then delivers it; the stored row
// carries the final sent/failed status either way.
func (m *messagingUseCaseImpl) Send(ctx context.Context, storeID uuid.UUID, req reqdto.SendMessageRequest) (*readmodel.MessageRM, error) {
	rm, err := m.messageRepo.Create(ctx, storeID, req.ClientPhone, req.Message, MessageDirectionOutbound, MessageStatusPending)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := m.deliver(ctx, storeID, rm); err != nil {
		return nil, err
	}
	return rm, nil
}

func (m *messagingUseCaseImpl) deliver(ctx context.Context, storeID uuid.UUID, rm *readmodel.MessageRM) error {
	var webhookURL *string
	if settings, err := m.settings.Get(ctx, storeID); err == nil {
		webhookURL = settings.WhatsAppWebhookURL
	}

	if err := m.gateway.Send(ctx, storeID, rm.ClientPhone, rm.Body, webhookURL); err != nil {
		if statusErr := m.messageRepo.UpdateStatus(ctx, rm.ID, MessageStatusFailed); statusErr != nil {
			slog.Warn("failed to record message failure", "message_id", rm.ID, "error", statusErr)
		}
		rm.Status = MessageStatusFailed
		return errs.Mark(err, ErrMessageDelivery)
	}

	if err := m.messageRepo.UpdateStatus(ctx, rm.ID, MessageStatusSent); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	rm.Status = MessageStatusSent
	return nil
}

// ReceiveInbound handles a webhook delivery from the messaging bridge. The
// store token authenticates the call; there is no staff session on this path.
func (m *messagingUseCaseImpl) ReceiveInbound(ctx context.Context, req reqdto.InboundMessageRequest) (*readmodel.MessageRM, error) {
	storeID, err := m.settings.ResolveStoreToken(ctx, req.StoreToken)
	if err != nil {
		return nil, err
	}

	rm, err := m.messageRepo.Create(ctx, storeID, req.ClientNumber, req.Message, MessageDirectionInbound, MessageStatusReceived)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	m.bus.Publish(storeID, events.EventMessageReceived, rm)
	return rm, nil
}

func (m *messagingUseCaseImpl) ListByClient(ctx context.Context, storeID uuid.UUID, clientPhone string, limit int32) ([]readmodel.MessageRM, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	messages, err := m.messageRepo.ListByClient(ctx, storeID, clientPhone, limit)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return messages, nil
}

func (m *messagingUseCaseImpl) ListConversations(ctx context.Context, storeID uuid.UUID) ([]readmodel.ConversationRM, error) {
	conversations, err := m.messageRepo.ListConversations(ctx, storeID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return conversations, nil
}

// OrderStatusChanged notifies the customer about a ready or delivered order.
// Best effort; checkout and the queue never fail on messaging problems.
func (m *messagingUseCaseImpl) OrderStatusChanged(ctx context.Context, storeID uuid.UUID, customerPhone string, orderID uuid.UUID, status order.Status) {
	body := statusMessageBody(orderID, status)
	if body == "" {
		return
	}

	rm, err := m.messageRepo.Create(ctx, storeID, customerPhone, body, MessageDirectionOutbound, MessageStatusPending)
	if err != nil {
		slog.Warn("failed to persist order notification", "order_id", orderID, "error", err)
		return
	}
	if err := m.deliver(ctx, storeID, rm); err != nil {
		slog.Warn("failed to deliver order notification", "order_id", orderID, "error", err)
	}
}

func statusMessageBody(orderID uuid.UUID, status order.Status) string {
	short := orderID.String()[:8]
	switch status {
	case order.StatusReady:
		return fmt.Sprintf("Seu pedido %s esta pronto para retirada!", short)
	case order.StatusDelivered:
		return fmt.Sprintf("Pedido %s entregue. Obrigado pela preferencia!", short)
	default:
		return ""
	}
}
