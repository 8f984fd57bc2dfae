package handler

import (
	"log/slog"
	"net/http"

	"greenloop/internal/delivery/api/middleware"
	"greenloop/internal/delivery/api/response"
	"greenloop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CollectionHandlerParams holds dependencies for CollectionHandler, injected by Fx.
type CollectionHandlerParams struct {
	fx.In

	CollectionUC usecase.CollectionUsecase
	Logger       *slog.Logger
}

// CollectionHandler holds dependencies for the QR collection flow handlers
type CollectionHandler struct {
	collectionUC usecase.CollectionUsecase
	logger       *slog.Logger
}

// NewCollectionHandler is the constructor for CollectionHandler
func NewCollectionHandler(params CollectionHandlerParams) *CollectionHandler {
	return &CollectionHandler{
		collectionUC: params.CollectionUC,
		logger:       params.Logger,
	}
}

// ScanRequest represents the request body for confirming a pickup by QR scan
type ScanRequest struct {
	QRData      string   `json:"qr_data" validate:"required"`
	KgCollected *float64 `json:"kg_collected" validate:"omitempty,gt=0"`
}

// IssueQR renders the collection QR code PNG for the depositor
func (h *CollectionHandler) IssueQR(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Identifiant utilisateur invalide dans le jeton")
	}

	announcementID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identifiant d'annonce invalide")
	}

	out, err := h.collectionUC.IssueQR(c.Request().Context(), announcementID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("X-Token-Expires-At", out.ExpiresAt.UTC().Format(http.TimeFormat))

	return c.Blob(http.StatusOK, "image/png", out.PNG)
}

// Scan validates a scanned QR payload and confirms the pickup
func (h *CollectionHandler) Scan(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Identifiant utilisateur invalide dans le jeton")
	}

	announcementID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identifiant d'annonce invalide")
	}

	var req ScanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Corps de requête invalide")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	announcement, err := h.collectionUC.ScanAndConfirm(c.Request().Context(), announcementID, userID, req.QRData, req.KgCollected)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, announcement)
}

// History lists the user's collection records
func (h *CollectionHandler) History(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Identifiant utilisateur invalide dans le jeton")
	}

	collections, err := h.collectionUC.History(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, collections)
}
