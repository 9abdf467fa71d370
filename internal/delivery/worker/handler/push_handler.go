// Package handler contains the Pub/Sub push handlers for the notifier worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"automo/config"
	deliverycontext "automo/internal/delivery/context"
	"automo/internal/domain/constants"
	"automo/internal/domain/repository"
	"automo/internal/domain/service"

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

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler handles Pub/Sub push messages carrying booking events.
type PushHandler struct {
	verifyPushAuth  bool
	logger          *slog.Logger
	notificationSvc service.NotificationService
	providerRepo    repository.ProviderRepository
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	NotificationSvc service.NotificationService
	ProviderRepo    repository.ProviderRepository
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Google-delivered pushes carry a signed token outside development.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth:  verifyPushAuth,
		logger:          params.Logger,
		notificationSvc: params.NotificationSvc,
		providerRepo:    params.ProviderRepo,
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

	var event service.BookingEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse booking event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing booking event",
		slog.String("booking_id", event.BookingID),
		slog.String("status", event.Status),
		slog.Int("token_count", len(event.Tokens)),
	)

	if err := h.processBookingEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process booking event",
			slog.String("booking_id", event.BookingID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// 503 triggers a Pub/Sub redelivery; 200 swallows unrecoverable
		// events so they do not retry forever.
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Booking event processed",
		slog.String("booking_id", event.BookingID),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.BookingEvent) string {
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

// processBookingEvent pushes the booking state change to the provider's
// registered devices and drops tokens FCM reports as invalid.
func (h *PushHandler) processBookingEvent(ctx context.Context, event *service.BookingEvent) error {
	providerID, err := uuid.Parse(event.ProviderID)
	if err != nil {
		return errors.WithStack(err)
	}

	tokens := event.Tokens
	if len(tokens) == 0 {
		// Events published before the owner registered a device carry no
		// tokens; re-read the listing in case one arrived since.
		provider, findErr := h.providerRepo.FindByID(ctx, providerID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrProviderNotFound) {
				return errors.Wrap(findErr, "provider gone")
			}

			return newRetryableError(errors.WithStack(findErr))
		}
		tokens = provider.DeviceTokens
	}

	if len(tokens) == 0 {
		h.logger.Info("[Worker] No device tokens to notify",
			slog.String("booking_id", event.BookingID),
		)

		return nil
	}

	title, body, data := h.prepareNotificationContent(event)

	successCount, failureCount, invalidTokens, sendErr := h.notificationSvc.SendBatchNotification(ctx, tokens, title, body, data)
	if sendErr != nil {
		return newRetryableError(errors.WithStack(sendErr))
	}

	h.logger.Info("[Worker] Notification sending completed",
		slog.String("booking_id", event.BookingID),
		slog.Int("total_sent", successCount),
		slog.Int("total_failed", failureCount),
		slog.Int("invalid_tokens", len(invalidTokens)),
	)

	h.cleanupInvalidTokens(ctx, providerID, invalidTokens)

	return nil
}

// prepareNotificationContent creates the notification title, body, and data
func (h *PushHandler) prepareNotificationContent(event *service.BookingEvent) (title, body string, data map[string]string) {
	switch event.Status {
	case "pending":
		title = "New booking request"
		body = fmt.Sprintf("Booking %s is waiting for your confirmation", event.Reference)
	case "cancelled":
		title = "Booking cancelled"
		body = fmt.Sprintf("Booking %s was cancelled by the customer", event.Reference)
	default:
		title = "Booking update"
		body = fmt.Sprintf("Booking %s is now %s", event.Reference, event.Status)
	}

	data = map[string]string{
		"booking_id":  event.BookingID,
		"reference":   event.Reference,
		"status":      event.Status,
		"total_cents": fmt.Sprintf("%d", event.TotalCents),
	}

	return title, body, data
}

// cleanupInvalidTokens removes tokens FCM reported as unregistered from the
// provider listing. Failures are logged; the notification already went out.
func (h *PushHandler) cleanupInvalidTokens(ctx context.Context, providerID uuid.UUID, invalidTokens []string) {
	if len(invalidTokens) == 0 {
		return
	}

	provider, err := h.providerRepo.FindByID(ctx, providerID)
	if err != nil {
		h.logger.Warn("[Worker] Failed to load provider for token cleanup",
			slog.String("provider_id", providerID.String()),
			slog.Any("error", err),
		)

		return
	}

	kept := make([]string, 0, len(provider.DeviceTokens))
	for _, token := range provider.DeviceTokens {
		if !slices.Contains(invalidTokens, token) {
			kept = append(kept, token)
		}
	}
	if len(kept) == len(provider.DeviceTokens) {
		return
	}

	provider.DeviceTokens = kept
	if err := h.providerRepo.Update(ctx, provider); err != nil {
		h.logger.Warn("[Worker] Failed to drop invalid device tokens",
			slog.String("provider_id", providerID.String()),
			slog.Any("error", err),
		)
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

	// The audience must match the push endpoint URL.
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
