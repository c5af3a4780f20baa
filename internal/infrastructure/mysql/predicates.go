package mysql

import (
	"strings"

	"handsup-market/internal/domain"
)

// predicates collects optional WHERE fragments and their args. A filter
// that is absent from the input contributes nothing, so the final clause
// is the conjunction of only the constraints the caller supplied.
type predicates struct {
	clauses []string
	args    []interface{}
}

func (p *predicates) add(clause string, args ...interface{}) {
	p.clauses = append(p.clauses, clause)
	p.args = append(p.args, args...)
}

func (p *predicates) whereSQL() string {
	if len(p.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(p.clauses, " AND ")
}

func hasText(s string) bool {
	return strings.TrimSpace(s) != ""
}

// buildSearchPredicates translates a search condition into predicates.
// The trade method is parsed up front: a malformed value fails here,
// before any SQL is issued.
func buildSearchPredicates(cond domain.SearchCondition) (*predicates, error) {
	p := &predicates{}

	if cond.Keyword != nil {
		p.add("a.title LIKE ?", "%"+*cond.Keyword+"%")
	}
	if hasText(cond.ProductCategory) {
		p.add("c.value = ?", cond.ProductCategory)
	}
	if hasText(cond.TradeMethod) {
		method, err := domain.ParseTradeMethod(cond.TradeMethod)
		if err != nil {
			return nil, err
		}
		p.add("a.trade_method = ?", string(method))
	}
	if hasText(cond.Si) {
		p.add("a.si = ?", cond.Si)
	}
	if hasText(cond.Gu) {
		p.add("a.gu = ?", cond.Gu)
	}
	if hasText(cond.Dong) {
		p.add("a.dong = ?", cond.Dong)
	}
	if cond.MinPrice != nil {
		p.add("a.init_price >= ?", *cond.MinPrice)
	}
	if cond.MaxPrice != nil {
		p.add("a.init_price <= ?", *cond.MaxPrice)
	}
	if cond.IsNewProduct != nil {
		if *cond.IsNewProduct {
			p.add("p.status = ?", string(domain.ProductNew))
		} else {
			p.add("p.status IN (?, ?)", string(domain.ProductClean), string(domain.ProductDirty))
		}
	}
	// Only the true case constrains; false and absent both mean "any status".
	if cond.IsProgress {
		p.add("a.status = ?", string(domain.AuctionBidding))
	}

	return p, nil
}

var sortColumns = map[domain.SortField]string{
	domain.SortFieldCreatedAt:     "a.created_at",
	domain.SortFieldBookmarkCount: "a.bookmark_count",
	domain.SortFieldEndDate:       "a.end_date",
	domain.SortFieldBiddingCount:  "a.bidding_count",
}

func orderBySQL(order domain.SortOrder) string {
	direction := "ASC"
	if order.Desc {
		direction = "DESC"
	}
	return sortColumns[order.Field] + " " + direction
}
