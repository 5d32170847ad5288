package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/payment-gateway/internal/domain"
	"github.com/google/uuid"
)

type PaymentProcessor interface {
	Process(ctx context.Context, req domain.PaymentRequest) (*domain.PaymentResponse, error)
}

type PaymentRetriever interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.PaymentResponse, bool, error)
}

type Handlers struct {
	processor PaymentProcessor
	retriever PaymentRetriever
	logger    *slog.Logger
}

func NewHandlers(
	processor PaymentProcessor,
	retriever PaymentRetriever,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		processor: processor,
		retriever: retriever,
		logger:    logger,
	}
}

// RegisterRoutes mounts the payment and documentation endpoints on mux.
func (h *Handlers) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/payments", h.SubmitPayment)
	mux.HandleFunc("GET /api/payments/{id}", h.GetPayment)
	mux.HandleFunc("GET /swagger/doc.json", h.SwaggerDoc)
	mux.HandleFunc("GET /openapi.yaml", h.OpenAPIDocument)
}
