package domain

import (
	"fmt"
	"time"
)

type Auction struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Status        AuctionStatus   `json:"status"`
	TradeMethod   TradeMethod     `json:"trade_method"`
	InitPrice     int             `json:"init_price"`
	EndDate       time.Time       `json:"end_date"`
	BiddingCount  int             `json:"bidding_count"`
	BookmarkCount int             `json:"bookmark_count"`
	Location      TradingLocation `json:"trading_location"`
	Product       Product         `json:"product"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type AuctionStatus string

const (
	AuctionBidding   AuctionStatus = "BIDDING"
	AuctionTrading   AuctionStatus = "TRADING"
	AuctionCompleted AuctionStatus = "COMPLETED"
	AuctionCanceled  AuctionStatus = "CANCELED"
)

// TradingLocation is the three-level administrative hierarchy
// (si > gu > dong) an auction trades in.
type TradingLocation struct {
	Si   string `json:"si"`
	Gu   string `json:"gu"`
	Dong string `json:"dong"`
}

type TradeMethod string

const (
	TradeMethodInPerson TradeMethod = "직거래"
	TradeMethodParcel   TradeMethod = "택배"
)

// ParseTradeMethod maps a caller-supplied label to a TradeMethod.
// Unknown labels are a validation error; blank input never reaches here.
func ParseTradeMethod(s string) (TradeMethod, error) {
	switch TradeMethod(s) {
	case TradeMethodInPerson, TradeMethodParcel:
		return TradeMethod(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTradeMethod, s)
	}
}

type Product struct {
	ID       string          `json:"id"`
	Status   ProductStatus   `json:"status"`
	Category ProductCategory `json:"category"`
}

// ProductStatus grades the condition of a listed product.
type ProductStatus string

const (
	ProductNew   ProductStatus = "NEW"
	ProductClean ProductStatus = "CLEAN"
	ProductDirty ProductStatus = "DIRTY"
)

type ProductCategory struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}
