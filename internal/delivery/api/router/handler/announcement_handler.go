package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"greenloop/internal/delivery/api/middleware"
	"greenloop/internal/delivery/api/response"
	"greenloop/internal/domain/entity"
	"greenloop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AnnouncementHandlerParams holds dependencies for AnnouncementHandler, injected by Fx.
type AnnouncementHandlerParams struct {
	fx.In

	AnnouncementUC usecase.AnnouncementUsecase
	Logger         *slog.Logger
}

// AnnouncementHandler holds dependencies for announcement-related handlers
type AnnouncementHandler struct {
	announcementUC usecase.AnnouncementUsecase
	logger         *slog.Logger
}

// NewAnnouncementHandler is the constructor for AnnouncementHandler
func NewAnnouncementHandler(params AnnouncementHandlerParams) *AnnouncementHandler {
	return &AnnouncementHandler{
		announcementUC: params.AnnouncementUC,
		logger:         params.Logger,
	}
}

// CreateAnnouncementRequest represents the request body for publishing a listing
type CreateAnnouncementRequest struct {
	Title       string               `json:"title" validate:"required"`
	Description string               `json:"description"`
	Category    string               `json:"category" validate:"required"`
	Quantity    string               `json:"quantity"`
	Latitude    float64              `json:"latitude" validate:"min=-90,max=90"`
	Longitude   float64              `json:"longitude" validate:"min=-180,max=180"`
	Address     string               `json:"address"`
	Schedule    []entity.DaySchedule `json:"schedule"`
}

// SetStatusRequest represents the request body for the depositor's status override
type SetStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=available reserved collected"`
}

// ConfirmRequest represents the request body for a direct confirmation
type ConfirmRequest struct {
	KgCollected *float64 `json:"kg_collected" validate:"omitempty,gt=0"`
}

// Create handles publishing a new announcement
func (h *AnnouncementHandler) Create(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Identifiant utilisateur invalide dans le jeton")
	}

	var req CreateAnnouncementRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Corps de requête invalide")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	announcement, err := h.announcementUC.Create(c.Request().Context(), userID, &usecase.CreateAnnouncementInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    entity.WasteCategory(req.Category),
		Quantity:    req.Quantity,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Address:     req.Address,
		Schedule:    req.Schedule,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, announcement)
}

// List handles browsing announcements with optional filters
func (h *AnnouncementHandler) List(c echo.Context) error {
	input := &usecase.ListAnnouncementsInput{}

	if raw := c.QueryParam("status"); raw != "" {
		status := entity.AnnouncementStatus(raw)
		if !status.IsValid() {
			return response.BadRequest(c, "VALIDATION_ERROR", "Statut inconnu: "+raw)
		}
		input.Status = &status
	}

	if raw := c.QueryParam("category"); raw != "" {
		category := entity.WasteCategory(raw)
		if !category.IsValid() {
			return response.BadRequest(c, "INVALID_CATEGORY", "Catégorie inconnue: "+raw)
		}
		input.Category = &category
	}

	var err error
	if input.Latitude, err = parseFloatQuery(c, "lat"); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Paramètre numérique invalide: lat")
	}
	if input.Longitude, err = parseFloatQuery(c, "lon"); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Paramètre numérique invalide: lon")
	}
	if input.RadiusKm, err = parseFloatQuery(c, "radius_km"); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Paramètre numérique invalide: radius_km")
	}

	announcements, err := h.announcementUC.List(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, announcements)
}

// parseFloatQuery reads an optional float query parameter.
func parseFloatQuery(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}

	return &value, nil
}

// Get handles retrieving one announcement
func (h *AnnouncementHandler) Get(c echo.Context) error {
	announcementID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identifiant d'annonce invalide")
	}

	announcement, err := h.announcementUC.Get(c.Request().Context(), announcementID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, announcement)
}

// Reserve handles placing a 24h hold on an announcement
func (h *AnnouncementHandler) Reserve(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Identifiant utilisateur invalide dans le jeton")
	}

	announcementID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identifiant d'annonce invalide")
	}

	announcement, err := h.announcementUC.Reserve(c.Request().Context(), announcementID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, announcement)
}

// Confirm handles a direct collection confirmation by the reservation holder
func (h *AnnouncementHandler) Confirm(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Identifiant utilisateur invalide dans le jeton")
	}

	announcementID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identifiant d'annonce invalide")
	}

	var req ConfirmRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Corps de requête invalide")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	announcement, err := h.announcementUC.Confirm(c.Request().Context(), announcementID, userID, req.KgCollected)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, announcement)
}

// SetStatus handles the depositor's explicit status override
func (h *AnnouncementHandler) SetStatus(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Identifiant utilisateur invalide dans le jeton")
	}

	announcementID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identifiant d'annonce invalide")
	}

	var req SetStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Corps de requête invalide")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	announcement, err := h.announcementUC.SetStatus(c.Request().Context(), announcementID, userID, entity.AnnouncementStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, announcement)
}

// AttachImage handles uploading the announcement photo
func (h *AnnouncementHandler) AttachImage(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Identifiant utilisateur invalide dans le jeton")
	}

	announcementID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identifiant d'annonce invalide")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Fichier image manquant")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Fichier image illisible")
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	announcement, err := h.announcementUC.AttachImage(c.Request().Context(), announcementID, userID, contentType, file)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, announcement)
}
