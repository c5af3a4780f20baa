package domain

import (
	"context"
)

// Repository interfaces
type AuctionRepository interface {
	CreateAuction(ctx context.Context, auction *Auction) error
	GetAuction(ctx context.Context, auctionID string) (*Auction, error)
}

type AuctionQueryRepository interface {
	SearchAuctions(ctx context.Context, cond SearchCondition, page PageRequest) (*AuctionSlice, error)
	RecommendAuctions(ctx context.Context, si, gu, dong string, page PageRequest) (*AuctionSlice, error)
	FindByProductCategories(ctx context.Context, categoryValues []string, page PageRequest) (*AuctionSlice, error)
	UpdateStatusesAfterEndDate(ctx context.Context) (canceled, trading int64, err error)
}

type NotificationRepository interface {
	SaveNotification(ctx context.Context, n *Notification) error
	FindByReceiver(ctx context.Context, receiverEmail string, page PageRequest) (*NotificationSlice, error)
}

// Token store interface
type FCMTokenStore interface {
	SaveToken(ctx context.Context, userEmail, token string) error
	GetToken(ctx context.Context, userEmail string) (string, error)
	HasToken(ctx context.Context, userEmail string) (bool, error)
	DeleteToken(ctx context.Context, userEmail string) error
}

// Push provider interface
type PushMessenger interface {
	Send(ctx context.Context, token, title, content string) error
}

// Cache interface
type AuctionPageCache interface {
	GetPage(ctx context.Context, key string) (*AuctionSlice, bool)
	SetPage(ctx context.Context, key string, slice *AuctionSlice)
}
