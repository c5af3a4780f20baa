package services

import (
	"context"
	"fmt"
	"time"

	"handsup-market/internal/domain"
	"handsup-market/pkg/logger"
	"handsup-market/pkg/utils"
)

type NotificationService struct {
	tokens        domain.FCMTokenStore
	messenger     domain.PushMessenger
	notifications domain.NotificationRepository
	log           logger.Logger
}

func NewNotificationService(
	tokens domain.FCMTokenStore,
	messenger domain.PushMessenger,
	notifications domain.NotificationRepository,
	log logger.Logger,
) *NotificationService {
	return &NotificationService{
		tokens:        tokens,
		messenger:     messenger,
		notifications: notifications,
		log:           log,
	}
}

// SendMessage pushes one notification to the receiver's registered device
// and records it. The send is a single attempt: a provider rejection
// surfaces as a validation error carrying the provider's message and
// nothing is persisted. A persist failure after a successful send is
// returned but the send is not compensated.
func (s *NotificationService) SendMessage(
	ctx context.Context,
	senderEmail, senderNickname, receiverEmail string,
	notificationType domain.NotificationType,
	auction *domain.Auction,
) error {
	hasToken, err := s.tokens.HasToken(ctx, receiverEmail)
	if err != nil {
		return err
	}
	if !hasToken {
		return fmt.Errorf("%w for %s", domain.ErrFCMTokenNotFound, receiverEmail)
	}

	if notificationType.SuppressesNickname() {
		senderNickname = ""
	}

	// The token may disappear between the existence check and this read;
	// that still surfaces as not-found.
	token, err := s.tokens.GetToken(ctx, receiverEmail)
	if err != nil {
		return err
	}

	content := senderNickname + notificationType.Content()
	if err := s.messenger.Send(ctx, token, notificationType.Title(), content); err != nil {
		s.log.Error("Push send failed", "receiver", receiverEmail, "type", string(notificationType), "error", err)
		return fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}
	s.log.Info("Sent push message", "receiver", receiverEmail, "type", string(notificationType))

	auctionID := ""
	if auction != nil {
		auctionID = auction.ID
	}

	return s.notifications.SaveNotification(ctx, &domain.Notification{
		ID:            utils.GenerateID("notification"),
		SenderEmail:   senderEmail,
		ReceiverEmail: receiverEmail,
		Content:       notificationType.Content(),
		Type:          notificationType,
		AuctionID:     auctionID,
		CreatedAt:     time.Now(),
	})
}

// SaveToken registers a device token, replacing any previous one.
func (s *NotificationService) SaveToken(ctx context.Context, userEmail, token string) error {
	return s.tokens.SaveToken(ctx, userEmail, token)
}

// DeleteToken unregisters a user's token; absent tokens are a no-op.
func (s *NotificationService) DeleteToken(ctx context.Context, userEmail string) error {
	return s.tokens.DeleteToken(ctx, userEmail)
}

func (s *NotificationService) ListNotifications(ctx context.Context, receiverEmail string, page domain.PageRequest) (*domain.NotificationSlice, error) {
	return s.notifications.FindByReceiver(ctx, receiverEmail, page)
}
