package http

import (
	"encoding/json"
	"net/http"

	"github.com/google/go-github/v75/github"
	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	ghparser "github.com/m-mizutani/hookcord/pkg/controller/github"
	"github.com/m-mizutani/hookcord/pkg/domain/interfaces"
	"github.com/m-mizutani/hookcord/pkg/domain/types"
)

// WebhookHandler handles GitHub webhooks
type WebhookHandler struct {
	secret    string
	webhookUC interfaces.WebhookUseCase
}

// NewWebhookHandler creates a new WebhookHandler
func NewWebhookHandler(secret string, webhookUC interfaces.WebhookUseCase) *WebhookHandler {
	return &WebhookHandler{
		secret:    secret,
		webhookUC: webhookUC,
	}
}

// Handle processes webhook requests
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := ctxlog.From(ctx)

	// Reads the body and checks X-Hub-Signature-256 (or the legacy SHA-1 header)
	body, err := github.ValidatePayload(r, []byte(h.secret))
	if err != nil {
		logger.Warn("Invalid webhook signature", "error", err)
		writeError(w, goerr.Wrap(err, "invalid signature"), http.StatusUnauthorized)
		return
	}

	eventType := github.WebHookType(r)
	if eventType == "" {
		logger.Error("Missing X-GitHub-Event header")
		writeError(w, goerr.New("missing X-GitHub-Event header"), http.StatusBadRequest)
		return
	}

	deliveryID := github.DeliveryID(r)
	if deliveryID == "" {
		deliveryID = uuid.NewString()
	}

	logger = logger.With("event_type", eventType, "delivery_id", deliveryID)
	ctx = ctxlog.With(ctx, logger)
	logger.Info("Received event")

	env, err := ghparser.ParseEnvelope(eventType, types.DeliveryID(deliveryID), body)
	if err != nil {
		logger.Error("Failed to parse event", "error", err)
		writeError(w, goerr.Wrap(err, "invalid JSON payload"), http.StatusBadRequest)
		return
	}

	if err := h.webhookUC.ProcessEvent(ctx, env); err != nil {
		logger.Error("Failed to process webhook event", "error", err)
		writeError(w, err, http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":      "accepted",
		"delivery_id": deliveryID,
	}); err != nil {
		logger.Error("Failed to encode success response", "error", err)
	}
}
