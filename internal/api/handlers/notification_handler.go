package handlers

import (
	"net/http"

	"handsup-market/internal/domain"
	"handsup-market/internal/services"
	"handsup-market/pkg/logger"

	"github.com/labstack/echo/v4"
)

type NotificationHandler struct {
	notificationService *services.NotificationService
	auctionRepo         domain.AuctionRepository
	log                 logger.Logger
}

func NewNotificationHandler(notificationService *services.NotificationService, auctionRepo domain.AuctionRepository, log logger.Logger) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		auctionRepo:         auctionRepo,
		log:                 log,
	}
}

func (h *NotificationHandler) Register(g *echo.Group) {
	g.POST("/fcm/token", h.SaveToken)
	g.DELETE("/fcm/token", h.DeleteToken)
	g.GET("/notifications", h.ListNotifications)
	g.POST("/notifications/send", h.SendNotification)
}

type SaveTokenRequest struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

func (h *NotificationHandler) SaveToken(c echo.Context) error {
	var req SaveTokenRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if req.Email == "" || req.Token == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "email and token are required"})
	}

	if err := h.notificationService.SaveToken(c.Request().Context(), req.Email, req.Token); err != nil {
		h.log.Error("Failed to save fcm token", "email", req.Email, "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save token"})
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *NotificationHandler) DeleteToken(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "email parameter required"})
	}

	if err := h.notificationService.DeleteToken(c.Request().Context(), email); err != nil {
		h.log.Error("Failed to delete fcm token", "email", email, "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete token"})
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "email parameter required"})
	}

	slice, err := h.notificationService.ListNotifications(c.Request().Context(), email, pageRequest(c))
	if err != nil {
		h.log.Error("Failed to list notifications", "email", email, "error", err)
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, slice)
}

type SendNotificationRequest struct {
	SenderEmail    string `json:"sender_email"`
	SenderNickname string `json:"sender_nickname"`
	ReceiverEmail  string `json:"receiver_email"`
	Type           string `json:"type"`
	AuctionID      string `json:"auction_id"`
}

// SendNotification is the dispatch seam for business events (winning bid,
// trade cancellation and the like) raised elsewhere.
func (h *NotificationHandler) SendNotification(c echo.Context) error {
	var req SendNotificationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if req.ReceiverEmail == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "receiver_email is required"})
	}

	notificationType := domain.NotificationType(req.Type)
	switch notificationType {
	case domain.NotificationPurchaseBidding, domain.NotificationPurchaseWinning,
		domain.NotificationCanceledPurchaseTrading, domain.NotificationCompletedPurchaseTrading:
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown notification type"})
	}

	var auction *domain.Auction
	if req.AuctionID != "" {
		var err error
		auction, err = h.auctionRepo.GetAuction(c.Request().Context(), req.AuctionID)
		if err != nil {
			return errorResponse(c, err)
		}
	}

	err := h.notificationService.SendMessage(
		c.Request().Context(),
		req.SenderEmail, req.SenderNickname, req.ReceiverEmail,
		notificationType, auction,
	)
	if err != nil {
		h.log.Error("Notification dispatch failed", "receiver", req.ReceiverEmail, "error", err)
		return errorResponse(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
