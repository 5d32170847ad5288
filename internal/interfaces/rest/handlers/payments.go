package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/DanielPopoola/payment-gateway/internal/application"
	"github.com/DanielPopoola/payment-gateway/internal/domain"
	"github.com/DanielPopoola/payment-gateway/internal/interfaces/rest"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"
)

const maxRequestBytes = 64 << 10

// SubmitPayment processes a card payment
// @Summary      Submit a payment
// @Description  Validates the card details, asks the acquiring bank for authorization and records the outcome.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      domain.PaymentRequest   true  "Card payment details"
// @Success      200      {object}  domain.PaymentResponse  "Authorized or Declined"
// @Failure      400      {object}  domain.PaymentResponse  "Rejected by validation"
// @Failure      500      {object}  rest.ErrorResponse      "Internal server error"
// @Router       /api/payments [post]
func (h *Handlers) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	var req domain.PaymentRequest

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err := decoder.Decode(&req); err != nil {
		rest.WriteError(w, application.NewInvalidInputError(fmt.Errorf("decode payment request: %w", err)))
		return
	}

	resp, err := h.processor.Process(r.Context(), req)
	if err != nil {
		h.logger.Error("payment processing failed", "error", err)
		rest.WriteError(w, err)
		return
	}

	status := http.StatusOK
	if resp.Status == domain.StatusRejected {
		status = http.StatusBadRequest
	}

	rest.WriteJSON(w, status, resp)
}

// GetPayment returns a previously processed payment
// @Summary      Get a payment
// @Description  Returns the public view of a payment. The card number is reduced to its last four digits.
// @Tags         payments
// @Produce      json
// @Param        id   path      string                  true  "Payment ID"  format(uuid)
// @Success      200  {object}  domain.PaymentResponse
// @Failure      400  {object}  rest.ErrorResponse      "Malformed payment ID"
// @Failure      404  {object}  rest.ErrorResponse      "Payment not found"
// @Failure      500  {object}  rest.ErrorResponse      "Internal server error"
// @Router       /api/payments/{id} [get]
func (h *Handlers) GetPayment(w http.ResponseWriter, r *http.Request) {
	var id uuid.UUID

	err := runtime.BindStyledParameterWithOptions("simple", "id", r.PathValue("id"), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		rest.WriteError(w, application.NewInvalidInputError(fmt.Errorf("invalid format for parameter id: %w", err)))
		return
	}

	resp, found, err := h.retriever.Get(r.Context(), id)
	if err != nil {
		h.logger.Error("payment lookup failed", "payment_id", id, "error", err)
		rest.WriteError(w, err)
		return
	}
	if !found {
		rest.WriteError(w, application.NewPaymentNotFoundError(fmt.Errorf("payment %s", id)))
		return
	}

	rest.WriteJSON(w, http.StatusOK, resp)
}
