package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"handsup-market/internal/domain"
	"handsup-market/internal/services"
	"handsup-market/pkg/logger"
	"handsup-market/pkg/utils"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type AuctionHandler struct {
	searchService *services.SearchService
	auctionRepo   domain.AuctionRepository
	log           logger.Logger
}

func NewAuctionHandler(searchService *services.SearchService, auctionRepo domain.AuctionRepository, log logger.Logger) *AuctionHandler {
	return &AuctionHandler{
		searchService: searchService,
		auctionRepo:   auctionRepo,
		log:           log,
	}
}

func (h *AuctionHandler) Register(g *echo.Group) {
	g.GET("/auctions", h.SearchAuctions)
	g.GET("/auctions/recommend", h.RecommendAuctions)
	g.GET("/auctions/:id", h.GetAuction)
	g.POST("/auctions", h.CreateAuction)
	g.GET("/categories/auctions", h.AuctionsByCategories)
}

// SearchAuctions answers GET /auctions. Every filter is optional; a
// missing parameter means "no constraint", which is why keyword and the
// numeric bounds are only set when the parameter is actually present.
func (h *AuctionHandler) SearchAuctions(c echo.Context) error {
	params := c.QueryParams()

	var cond domain.SearchCondition
	if values, ok := params["keyword"]; ok {
		keyword := values[0]
		cond.Keyword = &keyword
	}
	cond.ProductCategory = c.QueryParam("category")
	cond.TradeMethod = c.QueryParam("tradeMethod")
	cond.Si = c.QueryParam("si")
	cond.Gu = c.QueryParam("gu")
	cond.Dong = c.QueryParam("dong")

	var err error
	if cond.MinPrice, err = optionalInt(params, "minPrice"); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "minPrice must be an integer"})
	}
	if cond.MaxPrice, err = optionalInt(params, "maxPrice"); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "maxPrice must be an integer"})
	}
	if cond.IsNewProduct, err = optionalBool(params, "isNewProduct"); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "isNewProduct must be a boolean"})
	}
	cond.IsProgress = c.QueryParam("isProgress") == "true"

	slice, err := h.searchService.SearchAuctions(c.Request().Context(), cond, pageRequest(c))
	if err != nil {
		h.log.Error("Auction search failed", "error", err)
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, slice)
}

// RecommendAuctions answers GET /auctions/recommend. Unlike search, the
// sort key is required and validated.
func (h *AuctionHandler) RecommendAuctions(c echo.Context) error {
	slice, err := h.searchService.RecommendAuctions(
		c.Request().Context(),
		c.QueryParam("si"), c.QueryParam("gu"), c.QueryParam("dong"),
		pageRequest(c),
	)
	if err != nil {
		h.log.Error("Auction recommendation failed", "error", err)
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, slice)
}

func (h *AuctionHandler) GetAuction(c echo.Context) error {
	auction, err := h.auctionRepo.GetAuction(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, auction)
}

func (h *AuctionHandler) AuctionsByCategories(c echo.Context) error {
	raw := c.QueryParam("values")
	if strings.TrimSpace(raw) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "values parameter required"})
	}

	values := []string{}
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}

	slice, err := h.searchService.AuctionsByCategories(c.Request().Context(), values, pageRequest(c))
	if err != nil {
		h.log.Error("Category listing failed", "error", err)
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, slice)
}

type CreateAuctionRequest struct {
	Title       string    `json:"title"`
	TradeMethod string    `json:"trade_method"`
	InitPrice   int       `json:"init_price"`
	EndDate     time.Time `json:"end_date"`
	Si          string    `json:"si"`
	Gu          string    `json:"gu"`
	Dong        string    `json:"dong"`
	ProductID   string    `json:"product_id"`
}

func (h *AuctionHandler) CreateAuction(c echo.Context) error {
	var req CreateAuctionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	if req.Title == "" || req.ProductID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "title and product_id are required"})
	}
	if req.InitPrice < 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "init_price must not be negative"})
	}
	if req.EndDate.Before(time.Now()) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "end_date must be in the future"})
	}

	method, err := domain.ParseTradeMethod(req.TradeMethod)
	if err != nil {
		return errorResponse(c, err)
	}

	now := time.Now()
	auction := &domain.Auction{
		ID:          utils.GenerateID("auction"),
		Title:       req.Title,
		Status:      domain.AuctionBidding,
		TradeMethod: method,
		InitPrice:   req.InitPrice,
		EndDate:     req.EndDate,
		Location:    domain.TradingLocation{Si: req.Si, Gu: req.Gu, Dong: req.Dong},
		Product:     domain.Product{ID: req.ProductID},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.auctionRepo.CreateAuction(c.Request().Context(), auction); err != nil {
		h.log.Error("Failed to create auction", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create auction"})
	}

	h.log.Info("Auction created", "auction_id", auction.ID)
	return c.JSON(http.StatusCreated, auction)
}

func pageRequest(c echo.Context) domain.PageRequest {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 0 {
		page = 0
	}

	size, err := strconv.Atoi(c.QueryParam("size"))
	if err != nil || size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	return domain.PageRequest{Page: page, Size: size, Sort: c.QueryParam("sort")}
}

func optionalInt(params map[string][]string, name string) (*int, error) {
	values, ok := params[name]
	if !ok || values[0] == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(values[0])
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func optionalBool(params map[string][]string, name string) (*bool, error) {
	values, ok := params[name]
	if !ok || values[0] == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(values[0])
	if err != nil {
		return nil, err
	}
	return &b, nil
}
