package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"handsup-market/internal/domain"
	"handsup-market/internal/services"
	"handsup-market/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Fatal(string, ...interface{}) {}

var testLog logger.Logger = nopLogger{}

// stubQueryRepo records the condition and page the handler produced.
type stubQueryRepo struct {
	cond domain.SearchCondition
	page domain.PageRequest
}

func (s *stubQueryRepo) SearchAuctions(ctx context.Context, cond domain.SearchCondition, page domain.PageRequest) (*domain.AuctionSlice, error) {
	s.cond, s.page = cond, page
	return &domain.AuctionSlice{Items: []domain.Auction{}}, nil
}
func (s *stubQueryRepo) RecommendAuctions(ctx context.Context, si, gu, dong string, page domain.PageRequest) (*domain.AuctionSlice, error) {
	s.page = page
	if _, err := domain.ResolveSort(page.Sort, domain.SortStrict); err != nil {
		return nil, err
	}
	return &domain.AuctionSlice{Items: []domain.Auction{}}, nil
}
func (s *stubQueryRepo) FindByProductCategories(ctx context.Context, categoryValues []string, page domain.PageRequest) (*domain.AuctionSlice, error) {
	return &domain.AuctionSlice{Items: []domain.Auction{}}, nil
}
func (s *stubQueryRepo) UpdateStatusesAfterEndDate(ctx context.Context) (int64, int64, error) {
	return 0, 0, nil
}

// stubPageCache always misses.
type stubPageCache struct{}

func (stubPageCache) GetPage(context.Context, string) (*domain.AuctionSlice, bool) { return nil, false }
func (stubPageCache) SetPage(context.Context, string, *domain.AuctionSlice)        {}

func newSearchHandler(repo *stubQueryRepo) *AuctionHandler {
	svc := services.NewSearchService(repo, stubPageCache{}, testLog)
	return NewAuctionHandler(svc, nil, testLog)
}

func doGet(t *testing.T, handler echo.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	return rec
}

func TestSearchAuctions_NoParamsMeansNoConstraints(t *testing.T) {
	repo := &stubQueryRepo{}
	rec := doGet(t, newSearchHandler(repo).SearchAuctions, "/api/v1/auctions")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, repo.cond.Keyword)
	assert.Empty(t, repo.cond.ProductCategory)
	assert.Nil(t, repo.cond.MinPrice)
	assert.Nil(t, repo.cond.MaxPrice)
	assert.Nil(t, repo.cond.IsNewProduct)
	assert.False(t, repo.cond.IsProgress)
	assert.Equal(t, 0, repo.page.Page)
	assert.Equal(t, defaultPageSize, repo.page.Size)
}

func TestSearchAuctions_AllParams(t *testing.T) {
	repo := &stubQueryRepo{}
	rec := doGet(t, newSearchHandler(repo).SearchAuctions,
		"/api/v1/auctions?keyword=%EC%9E%90%EC%A0%84%EA%B1%B0&category=%EA%B0%80%EA%B5%AC&tradeMethod=%ED%83%9D%EB%B0%B0"+
			"&si=%EC%84%9C%EC%9A%B8%EC%8B%9C&gu=%EA%B0%95%EB%82%A8%EA%B5%AC&dong=%EC%97%AD%EC%82%BC%EB%8F%99"+
			"&minPrice=1000&maxPrice=9000&isNewProduct=false&isProgress=true&page=2&size=5&sort=%EC%9E%85%EC%B0%B0%EC%88%98")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, repo.cond.Keyword)
	assert.Equal(t, "자전거", *repo.cond.Keyword)
	assert.Equal(t, "가구", repo.cond.ProductCategory)
	assert.Equal(t, "택배", repo.cond.TradeMethod)
	assert.Equal(t, "서울시", repo.cond.Si)
	assert.Equal(t, "강남구", repo.cond.Gu)
	assert.Equal(t, "역삼동", repo.cond.Dong)
	require.NotNil(t, repo.cond.MinPrice)
	assert.Equal(t, 1000, *repo.cond.MinPrice)
	require.NotNil(t, repo.cond.MaxPrice)
	assert.Equal(t, 9000, *repo.cond.MaxPrice)
	require.NotNil(t, repo.cond.IsNewProduct)
	assert.False(t, *repo.cond.IsNewProduct)
	assert.True(t, repo.cond.IsProgress)
	assert.Equal(t, domain.PageRequest{Page: 2, Size: 5, Sort: "입찰수"}, repo.page)
}

func TestSearchAuctions_PresentButBlankKeyword(t *testing.T) {
	repo := &stubQueryRepo{}
	rec := doGet(t, newSearchHandler(repo).SearchAuctions, "/api/v1/auctions?keyword=")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, repo.cond.Keyword)
	assert.Empty(t, *repo.cond.Keyword)
}

func TestSearchAuctions_BadNumericParam(t *testing.T) {
	repo := &stubQueryRepo{}
	rec := doGet(t, newSearchHandler(repo).SearchAuctions, "/api/v1/auctions?minPrice=cheap")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchAuctions_BadBoolParam(t *testing.T) {
	repo := &stubQueryRepo{}
	rec := doGet(t, newSearchHandler(repo).SearchAuctions, "/api/v1/auctions?isNewProduct=maybe")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchAuctions_PageSizeClamped(t *testing.T) {
	repo := &stubQueryRepo{}
	doGet(t, newSearchHandler(repo).SearchAuctions, "/api/v1/auctions?size=100000&page=-3")

	assert.Equal(t, maxPageSize, repo.page.Size)
	assert.Equal(t, 0, repo.page.Page)
}

func TestRecommendAuctions_MissingSortRejected(t *testing.T) {
	repo := &stubQueryRepo{}
	rec := doGet(t, newSearchHandler(repo).RecommendAuctions, "/api/v1/auctions/recommend?si=%EC%84%9C%EC%9A%B8%EC%8B%9C")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecommendAuctions_KnownSortAccepted(t *testing.T) {
	repo := &stubQueryRepo{}
	rec := doGet(t, newSearchHandler(repo).RecommendAuctions, "/api/v1/auctions/recommend?sort=%EC%B5%9C%EA%B7%BC%EC%83%9D%EC%84%B1")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "최근생성", repo.page.Sort)
}

func TestAuctionsByCategories_RequiresValues(t *testing.T) {
	repo := &stubQueryRepo{}
	rec := doGet(t, newSearchHandler(repo).AuctionsByCategories, "/api/v1/categories/auctions")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
