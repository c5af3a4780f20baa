package domain

import "time"

// NotificationType identifies a push notification by the label the client
// renders. Each type carries a fixed title and body template; the sender's
// nickname is prefixed to the body except where the type suppresses it.
type NotificationType string

const (
	NotificationPurchaseBidding          NotificationType = "구매 입찰"
	NotificationPurchaseWinning          NotificationType = "구매 낙찰"
	NotificationCanceledPurchaseTrading  NotificationType = "구매 취소"
	NotificationCompletedPurchaseTrading NotificationType = "거래 완료"
)

func (t NotificationType) Title() string {
	switch t {
	case NotificationPurchaseBidding:
		return "입찰 알림"
	case NotificationPurchaseWinning:
		return "낙찰 알림"
	case NotificationCanceledPurchaseTrading:
		return "거래 취소 알림"
	case NotificationCompletedPurchaseTrading:
		return "거래 완료 알림"
	default:
		return "알림"
	}
}

func (t NotificationType) Content() string {
	switch t {
	case NotificationPurchaseBidding:
		return "님이 회원님의 경매에 입찰했어요."
	case NotificationPurchaseWinning:
		return "축하해요! 경매에 낙찰됐어요."
	case NotificationCanceledPurchaseTrading:
		return "거래가 취소됐어요."
	case NotificationCompletedPurchaseTrading:
		return "님과의 거래가 완료됐어요."
	default:
		return ""
	}
}

// SuppressesNickname reports whether the sender nickname must be left out
// of the message body for this type. Cancellations and winning notices are
// system messages, not messages from a counterpart.
func (t NotificationType) SuppressesNickname() bool {
	return t == NotificationCanceledPurchaseTrading || t == NotificationPurchaseWinning
}

// Notification is the durable record of a successfully delivered push
// message. Written exactly once per send, never mutated.
type Notification struct {
	ID            string           `json:"id"`
	SenderEmail   string           `json:"sender_email"`
	ReceiverEmail string           `json:"receiver_email"`
	Content       string           `json:"content"`
	Type          NotificationType `json:"type"`
	AuctionID     string           `json:"auction_id"`
	CreatedAt     time.Time        `json:"created_at"`
}

type NotificationSlice struct {
	Items   []Notification `json:"items"`
	HasNext bool           `json:"has_next"`
}
