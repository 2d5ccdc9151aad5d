package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"mimapa/config"
	deliverycontext "mimapa/internal/delivery/context"
	"mimapa/internal/domain/entity"
	"mimapa/internal/domain/service"
	"mimapa/internal/infra/cache"
	"mimapa/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// Outcomes recorded per consumed event.
const (
	outcomeProcessed = "processed"
	outcomeDuplicate = "duplicate"
	outcomeFailed    = "failed"
)

// MessageDeduper remembers delivered message ids.
type MessageDeduper interface {
	SetNX(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error)
}

// TokenVerifier validates the OIDC token Google attaches to push requests.
type TokenVerifier func(req *http.Request) error

// PushHandler consumes review events delivered in the Pub/Sub push format
type PushHandler struct {
	verify    TokenVerifier
	deduper   MessageDeduper
	dedupeTTL time.Duration
	metrics   service.MetricsRecorder
	logger    *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Cache   *cache.Client
	Metrics service.MetricsRecorder
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	var verify TokenVerifier
	// Only real Google push subscriptions sign their requests
	if params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == pubsub.ProviderGoogle &&
		params.Config.Env.Env != config.EnvLocal {
		verify = verifyPubSubToken
	}

	return newPushHandler(verify, params.Cache, params.Config.Worker.DedupeTTL, params.Metrics, params.Logger)
}

func newPushHandler(verify TokenVerifier, deduper MessageDeduper, dedupeTTL time.Duration, metrics service.MetricsRecorder, logger *slog.Logger) *PushHandler {
	return &PushHandler{
		verify:    verify,
		deduper:   deduper,
		dedupeTTL: dedupeTTL,
		metrics:   metrics,
		logger:    logger,
	}
}

// HandlePush handles POST /push
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verify != nil {
		if err := h.verify(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := decodeEvent(&pushMsg)
	if err != nil {
		h.logger.Error("[Worker] Rejected push message",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &pushMsg, event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	first, err := h.deduper.SetNX(ctx, cache.Key("events", messageKey(&pushMsg, event)), []byte(requestID), h.dedupeTTL)
	if err != nil {
		reqLogger.Error("[Worker] Failed to record delivery", slog.Any("error", err))
		h.metrics.RecordReviewEvent(string(event.Type), outcomeFailed)

		// Pub/Sub redelivers anything that is not acknowledged with 2xx
		return c.NoContent(http.StatusServiceUnavailable)
	}
	if !first {
		reqLogger.Info("[Worker] Duplicate delivery acknowledged",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.String("type", string(event.Type)),
		)
		h.metrics.RecordReviewEvent(string(event.Type), outcomeDuplicate)

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Review event",
		slog.String("type", string(event.Type)),
		slog.String("review_id", event.ReviewID.String()),
		slog.String("email_autor", event.EmailAutor),
		slog.Time("occurred_at", event.OccurredAt),
		slog.Duration("lag", time.Since(event.OccurredAt)),
		slog.String("subscription", pushMsg.Subscription),
	)
	h.metrics.RecordReviewEvent(string(event.Type), outcomeProcessed)

	return c.NoContent(http.StatusOK)
}

func decodeEvent(pushMsg *pubsub.PushMessage) (*entity.ReviewEvent, error) {
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var event entity.ReviewEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "parse review event")
	}
	if !event.Type.Known() {
		return nil, errors.Errorf("unknown event type %q", event.Type)
	}
	if event.ReviewID == uuid.Nil {
		return nil, errors.New("event without review_id")
	}

	return &event, nil
}

// messageKey falls back to the event identity when the sender omits messageId.
func messageKey(pushMsg *pubsub.PushMessage, event *entity.ReviewEvent) string {
	if pushMsg.Message.MessageID != "" {
		return pushMsg.Message.MessageID
	}

	return pubsub.MessageID(event)
}

// extractRequestID prefers message attributes, then the event, then the
// X-Request-Id header, and generates one as a last resort
func extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *entity.ReviewEvent) string {
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
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

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
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
