package mysql

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"handsup-market/internal/domain"

	_ "github.com/go-sql-driver/mysql"
)

const auctionSelect = `
        SELECT a.id, a.title, a.status, a.trade_method, a.init_price, a.end_date,
               a.bidding_count, a.bookmark_count, a.si, a.gu, a.dong,
               a.created_at, a.updated_at,
               p.id, p.status, c.id, c.value
        FROM auctions a
        JOIN products p ON p.id = a.product_id
        LEFT JOIN product_categories c ON c.id = p.category_id`

type MySQLAuctionQueryRepository struct {
	db *sql.DB
}

func NewMySQLAuctionQueryRepository(db *sql.DB) *MySQLAuctionQueryRepository {
	return &MySQLAuctionQueryRepository{db: db}
}

// SearchAuctions runs one joined query with the caller's optional filters,
// fetching one row past the page size to answer "has next" without a
// count query. Unknown sort keys silently fall back to newest-first.
func (r *MySQLAuctionQueryRepository) SearchAuctions(ctx context.Context, cond domain.SearchCondition, page domain.PageRequest) (*domain.AuctionSlice, error) {
	preds, err := buildSearchPredicates(cond)
	if err != nil {
		return nil, err
	}

	order, err := domain.ResolveSort(page.Sort, domain.SortDefaultNewest)
	if err != nil {
		return nil, err
	}

	return r.queryPage(ctx, preds, order, page)
}

// RecommendAuctions lists in-progress auctions near a location. The sort
// key is required here and validated before any SQL is issued.
func (r *MySQLAuctionQueryRepository) RecommendAuctions(ctx context.Context, si, gu, dong string, page domain.PageRequest) (*domain.AuctionSlice, error) {
	order, err := domain.ResolveSort(page.Sort, domain.SortStrict)
	if err != nil {
		return nil, err
	}

	preds := &predicates{}
	preds.add("a.status = ?", string(domain.AuctionBidding))
	if hasText(si) {
		preds.add("a.si = ?", si)
	}
	if hasText(gu) {
		preds.add("a.gu = ?", gu)
	}
	if hasText(dong) {
		preds.add("a.dong = ?", dong)
	}

	return r.queryPage(ctx, preds, order, page)
}

// FindByProductCategories pages auctions whose product belongs to any of
// the given categories, most-bookmarked first.
func (r *MySQLAuctionQueryRepository) FindByProductCategories(ctx context.Context, categoryValues []string, page domain.PageRequest) (*domain.AuctionSlice, error) {
	if len(categoryValues) == 0 {
		return &domain.AuctionSlice{Items: []domain.Auction{}}, nil
	}

	preds := &predicates{}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(categoryValues)), ", ")
	args := make([]interface{}, 0, len(categoryValues))
	for _, v := range categoryValues {
		args = append(args, v)
	}
	preds.add("c.value IN ("+placeholders+")", args...)

	order := domain.SortOrder{Field: domain.SortFieldBookmarkCount, Desc: true}
	return r.queryPage(ctx, preds, order, page)
}

// UpdateStatusesAfterEndDate reclassifies every auction whose end date has
// passed: no bids means canceled, at least one bid means trading. The two
// updates are independent and each is idempotent, so repeated runs settle
// on the same state.
func (r *MySQLAuctionQueryRepository) UpdateStatusesAfterEndDate(ctx context.Context) (canceled, trading int64, err error) {
	now := time.Now()

	res, err := r.db.ExecContext(ctx,
		`UPDATE auctions SET status = ?, updated_at = ? WHERE end_date < CURDATE() AND bidding_count = 0`,
		string(domain.AuctionCanceled), now)
	if err != nil {
		return 0, 0, err
	}
	canceled, _ = res.RowsAffected()

	res, err = r.db.ExecContext(ctx,
		`UPDATE auctions SET status = ?, updated_at = ? WHERE end_date < CURDATE() AND bidding_count >= 1`,
		string(domain.AuctionTrading), now)
	if err != nil {
		return canceled, 0, err
	}
	trading, _ = res.RowsAffected()

	return canceled, trading, nil
}

func (r *MySQLAuctionQueryRepository) queryPage(ctx context.Context, preds *predicates, order domain.SortOrder, page domain.PageRequest) (*domain.AuctionSlice, error) {
	query := auctionSelect + preds.whereSQL() +
		" ORDER BY " + orderBySQL(order) +
		" LIMIT ? OFFSET ?"

	args := append(preds.args, page.Size+1, page.Offset())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items, err := scanAuctionRows(rows)
	if err != nil {
		return nil, err
	}

	return trimToPage(items, page.Size), nil
}

func scanAuctionRows(rows *sql.Rows) ([]domain.Auction, error) {
	items := []domain.Auction{}
	for rows.Next() {
		var a domain.Auction
		var status, tradeMethod, productStatus string
		var categoryID, categoryValue sql.NullString

		err := rows.Scan(&a.ID, &a.Title, &status, &tradeMethod, &a.InitPrice, &a.EndDate,
			&a.BiddingCount, &a.BookmarkCount, &a.Location.Si, &a.Location.Gu, &a.Location.Dong,
			&a.CreatedAt, &a.UpdatedAt,
			&a.Product.ID, &productStatus, &categoryID, &categoryValue)
		if err != nil {
			return nil, err
		}

		a.Status = domain.AuctionStatus(status)
		a.TradeMethod = domain.TradeMethod(tradeMethod)
		a.Product.Status = domain.ProductStatus(productStatus)
		if categoryID.Valid {
			a.Product.Category = domain.ProductCategory{ID: categoryID.String, Value: categoryValue.String}
		}
		items = append(items, a)
	}

	return items, rows.Err()
}

// trimToPage drops the over-fetched row, if present, and derives HasNext.
func trimToPage(items []domain.Auction, size int) *domain.AuctionSlice {
	if len(items) <= size {
		return &domain.AuctionSlice{Items: items, HasNext: false}
	}
	return &domain.AuctionSlice{Items: items[:size], HasNext: true}
}
