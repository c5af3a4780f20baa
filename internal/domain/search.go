package domain

import "fmt"

// SearchCondition carries the optional filters of an auction search.
// Every field is optional: a nil pointer or blank string contributes no
// predicate. Keyword keeps pointer semantics on purpose — only an absent
// keyword (nil) skips the predicate, a blank keyword still matches all
// titles through an empty substring.
type SearchCondition struct {
	Keyword         *string
	ProductCategory string
	TradeMethod     string
	Si              string
	Gu              string
	Dong            string
	MinPrice        *int
	MaxPrice        *int
	IsNewProduct    *bool
	IsProgress      bool
}

type PageRequest struct {
	Page int
	Size int
	Sort string
}

func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// AuctionSlice is one page of auctions plus a flag telling whether more
// rows exist past it, derived by over-fetching one row instead of running
// a count query.
type AuctionSlice struct {
	Items   []Auction `json:"items"`
	HasNext bool      `json:"has_next"`
}

// Sort keys accepted from clients. The labels are fixed by the mobile
// client's sort picker.
const (
	SortByBookmarks = "북마크수"
	SortByEndDate   = "마감일"
	SortByBids      = "입찰수"
	SortByNewest    = "최근생성"
)

type SortField int

const (
	SortFieldCreatedAt SortField = iota
	SortFieldBookmarkCount
	SortFieldEndDate
	SortFieldBiddingCount
)

type SortOrder struct {
	Field SortField
	Desc  bool
}

// SortPolicy decides what happens to unknown or absent sort keys.
type SortPolicy int

const (
	// SortDefaultNewest silently falls back to newest-first. Used by the
	// search endpoint, which tolerates free-form input.
	SortDefaultNewest SortPolicy = iota
	// SortStrict rejects unknown and absent keys. Used by the
	// recommendation endpoint, where the key comes from a fixed client
	// enumeration and anything else indicates an integration bug.
	SortStrict
)

// ResolveSort maps a requested sort key to a concrete ordering under the
// given policy. Only the first sort term is ever considered; callers pass
// a single key.
func ResolveSort(key string, policy SortPolicy) (SortOrder, error) {
	switch key {
	case SortByBookmarks:
		return SortOrder{Field: SortFieldBookmarkCount, Desc: true}, nil
	case SortByEndDate:
		return SortOrder{Field: SortFieldEndDate, Desc: false}, nil
	case SortByBids:
		return SortOrder{Field: SortFieldBiddingCount, Desc: true}, nil
	case SortByNewest:
		if policy == SortStrict {
			return SortOrder{Field: SortFieldCreatedAt, Desc: true}, nil
		}
	case "":
		if policy == SortStrict {
			return SortOrder{}, ErrEmptySortInput
		}
	}
	if policy == SortStrict {
		return SortOrder{}, fmt.Errorf("%w: %q", ErrInvalidSortInput, key)
	}
	return SortOrder{Field: SortFieldCreatedAt, Desc: true}, nil
}
