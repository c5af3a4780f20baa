package services

import (
	"context"
	"fmt"
	"strings"

	"handsup-market/internal/domain"
	"handsup-market/pkg/logger"
)

// SearchService fronts the auction query repository with a short-lived
// page cache on the search path. Cache trouble never fails a request; the
// query just goes to the database.
type SearchService struct {
	queryRepo domain.AuctionQueryRepository
	cache     domain.AuctionPageCache
	log       logger.Logger
}

func NewSearchService(queryRepo domain.AuctionQueryRepository, cache domain.AuctionPageCache, log logger.Logger) *SearchService {
	return &SearchService{
		queryRepo: queryRepo,
		cache:     cache,
		log:       log,
	}
}

func (s *SearchService) SearchAuctions(ctx context.Context, cond domain.SearchCondition, page domain.PageRequest) (*domain.AuctionSlice, error) {
	key := searchCacheKey(cond, page)
	if slice, ok := s.cache.GetPage(ctx, key); ok {
		return slice, nil
	}

	slice, err := s.queryRepo.SearchAuctions(ctx, cond, page)
	if err != nil {
		return nil, err
	}

	s.cache.SetPage(ctx, key, slice)
	return slice, nil
}

func (s *SearchService) RecommendAuctions(ctx context.Context, si, gu, dong string, page domain.PageRequest) (*domain.AuctionSlice, error) {
	return s.queryRepo.RecommendAuctions(ctx, si, gu, dong, page)
}

func (s *SearchService) AuctionsByCategories(ctx context.Context, categoryValues []string, page domain.PageRequest) (*domain.AuctionSlice, error) {
	return s.queryRepo.FindByProductCategories(ctx, categoryValues, page)
}

// searchCacheKey flattens every filter and the page request into one
// deterministic key. Absent fields must key differently from zero-valued
// ones, hence the explicit nil markers.
func searchCacheKey(cond domain.SearchCondition, page domain.PageRequest) string {
	parts := []string{
		strOrNil(cond.Keyword),
		cond.ProductCategory,
		cond.TradeMethod,
		cond.Si, cond.Gu, cond.Dong,
		intOrNil(cond.MinPrice),
		intOrNil(cond.MaxPrice),
		boolOrNil(cond.IsNewProduct),
		fmt.Sprintf("%t", cond.IsProgress),
		fmt.Sprintf("%d:%d:%s", page.Page, page.Size, page.Sort),
	}
	return strings.Join(parts, "|")
}

func strOrNil(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}

func intOrNil(n *int) string {
	if n == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%d", *n)
}

func boolOrNil(b *bool) string {
	if b == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%t", *b)
}
