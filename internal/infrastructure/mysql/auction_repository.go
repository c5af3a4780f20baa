package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"handsup-market/internal/domain"

	_ "github.com/go-sql-driver/mysql"
)

type MySQLAuctionRepository struct {
	db *sql.DB
}

func NewMySQLAuctionRepository(db *sql.DB) *MySQLAuctionRepository {
	return &MySQLAuctionRepository{db: db}
}

func (r *MySQLAuctionRepository) CreateAuction(ctx context.Context, auction *domain.Auction) error {
	query := `
        INSERT INTO auctions (id, title, status, trade_method, init_price, end_date,
                              bidding_count, bookmark_count, si, gu, dong,
                              product_id, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		auction.ID, auction.Title, string(auction.Status), string(auction.TradeMethod),
		auction.InitPrice, auction.EndDate,
		auction.BiddingCount, auction.BookmarkCount,
		auction.Location.Si, auction.Location.Gu, auction.Location.Dong,
		auction.Product.ID, auction.CreatedAt, auction.UpdatedAt)
	return err
}

func (r *MySQLAuctionRepository) GetAuction(ctx context.Context, auctionID string) (*domain.Auction, error) {
	query := auctionSelect + ` WHERE a.id = ?`

	rows, err := r.db.QueryContext(ctx, query, auctionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items, err := scanAuctionRows(rows)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: auction %s", domain.ErrNotFound, auctionID)
	}
	return &items[0], nil
}
