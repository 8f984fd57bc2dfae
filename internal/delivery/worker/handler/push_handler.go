// Package handler processes Pub/Sub push deliveries for the notification worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"greenloop/config"
	deliverycontext "greenloop/internal/delivery/context"
	"greenloop/internal/domain/constants"
	"greenloop/internal/domain/entity"
	"greenloop/internal/domain/repository"
	"greenloop/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler fans announcement events out to the recipients' devices.
type PushHandler struct {
	verifyPushAuth  bool
	logger          *slog.Logger
	notificationSvc service.NotificationService
	deviceRepo      repository.DeviceRepository
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	NotificationSvc service.NotificationService
	DeviceRepo      repository.DeviceRepository
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google-delivered pushes outside development carry a verifiable token
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth:  verifyPushAuth,
		logger:          params.Logger,
		notificationSvc: params.NotificationSvc,
		deviceRepo:      params.DeviceRepo,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.AnnouncementEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse announcement event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)

	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing announcement event",
		slog.String("announcement_id", event.AnnouncementID),
		slog.String("depositor_id", event.DepositorID),
		slog.Int("recipient_count", len(event.RecipientIDs)),
	)

	if err := h.processAnnouncement(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process announcement event",
			slog.String("announcement_id", event.AnnouncementID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Announcement event processed successfully",
		slog.String("announcement_id", event.AnnouncementID),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.AnnouncementEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// processAnnouncement fans the event out to every recipient device over FCM.
func (h *PushHandler) processAnnouncement(ctx context.Context, event *service.AnnouncementEvent) error {
	recipientIDs := parseRecipientIDs(event.RecipientIDs)
	if len(recipientIDs) == 0 {
		h.logger.Info("[Worker] No recipients to notify",
			slog.String("announcement_id", event.AnnouncementID),
		)

		return nil
	}

	devices, err := h.deviceRepo.FindForUsers(ctx, recipientIDs)
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	if len(devices) == 0 {
		h.logger.Info("[Worker] No devices found for recipients",
			slog.String("announcement_id", event.AnnouncementID),
		)

		return nil
	}

	deviceMap := make(map[string]*entity.UserDevice, len(devices))
	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		deviceMap[device.FCMToken] = device
		tokens = append(tokens, device.FCMToken)
	}

	title, body, data := buildNotificationContent(event)

	totalSent, totalFailed, invalidTokens := h.sendBatchedNotifications(ctx, tokens, title, body, data)

	h.cleanupInvalidTokens(ctx, invalidTokens, deviceMap)

	h.logger.Info("[Worker] Announcement fan-out completed",
		slog.String("announcement_id", event.AnnouncementID),
		slog.Int("total_sent", totalSent),
		slog.Int("total_failed", totalFailed),
		slog.Int("invalid_tokens", len(invalidTokens)),
	)

	return nil
}

// parseRecipientIDs keeps only well-formed recipient UUIDs.
func parseRecipientIDs(raw []string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, idStr := range raw {
		if id, err := uuid.Parse(idStr); err == nil {
			ids = append(ids, id)
		}
	}

	return ids
}

// buildNotificationContent creates the notification title, body, and data payload.
func buildNotificationContent(event *service.AnnouncementEvent) (title, body string, data map[string]string) {
	title = "Nouvelle annonce près de chez vous"
	body = fmt.Sprintf("%s (%s)", event.Title, event.Category)

	data = map[string]string{
		"announcement_id": event.AnnouncementID,
		"category":        event.Category,
		"latitude":        fmt.Sprintf("%f", event.Latitude),
		"longitude":       fmt.Sprintf("%f", event.Longitude),
	}

	return title, body, data
}

// sendBatchedNotifications sends the push in FCM-sized batches.
func (h *PushHandler) sendBatchedNotifications(ctx context.Context, tokens []string, title, body string, data map[string]string) (sent, failed int, invalidTokens []string) {
	const batchSize = 500

	for idx := 0; idx < len(tokens); idx += batchSize {
		end := min(idx+batchSize, len(tokens))
		batch := tokens[idx:end]

		successCount, failureCount, batchInvalidTokens, sendErr := h.notificationSvc.SendBatchNotification(
			ctx, batch, title, body, data,
		)
		if sendErr != nil {
			h.logger.Error("[Worker] Failed to send batch",
				slog.Int("batch_start", idx),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", sendErr),
			)
			failed += len(batch)

			continue
		}

		sent += successCount
		failed += failureCount
		invalidTokens = append(invalidTokens, batchInvalidTokens...)
	}

	return sent, failed, invalidTokens
}

// cleanupInvalidTokens deactivates devices whose FCM tokens were rejected.
func (h *PushHandler) cleanupInvalidTokens(ctx context.Context, invalidTokens []string, deviceMap map[string]*entity.UserDevice) {
	for _, token := range invalidTokens {
		if device, ok := deviceMap[token]; ok {
			if err := h.deviceRepo.Deactivate(ctx, device.ID); err != nil {
				h.logger.Warn("[Worker] Failed to deactivate invalid device",
					slog.String("device_id", device.ID.String()),
					slog.Any("error", err),
				)
			}
		}
	}
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience must match this endpoint's URL
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
