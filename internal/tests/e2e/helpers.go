package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DanielPopoola/payment-gateway/internal/application"
	"github.com/DanielPopoola/payment-gateway/internal/application/services"
	"github.com/DanielPopoola/payment-gateway/internal/domain"
	"github.com/DanielPopoola/payment-gateway/internal/infrastructure/bank"
	"github.com/DanielPopoola/payment-gateway/internal/infrastructure/persistence/memory"
	"github.com/DanielPopoola/payment-gateway/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/payment-gateway/internal/interfaces/rest/middleware"
	"github.com/DanielPopoola/payment-gateway/internal/interfaces/rest/openapi"
	"github.com/DanielPopoola/payment-gateway/internal/tests/e2e/testdata"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TestClient wraps HTTP calls to gateway
type TestClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewTestClient(baseURL string) *TestClient {
	return &TestClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Submit posts a payment and returns the status code with the raw body.
func (c *TestClient) Submit(t *testing.T, req domain.PaymentRequest) (int, []byte) {
	t.Helper()

	status, body, err := c.submit(req)
	require.NoError(t, err)
	return status, body
}

func (c *TestClient) submit(req domain.PaymentRequest) (int, []byte, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return 0, nil, err
	}

	httpReq, err := http.NewRequest(http.MethodPost, c.baseURL+"/api/payments", bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	return c.roundTrip(httpReq)
}

// Get fetches a payment by id.
func (c *TestClient) Get(t *testing.T, id string) (int, []byte) {
	t.Helper()

	httpReq, err := http.NewRequest(http.MethodGet, c.baseURL+"/api/payments/"+id, nil)
	require.NoError(t, err)

	return c.do(t, httpReq)
}

func (c *TestClient) do(t *testing.T, req *http.Request) (int, []byte) {
	t.Helper()

	status, body, err := c.roundTrip(req)
	require.NoError(t, err)
	return status, body
}

func (c *TestClient) roundTrip(req *http.Request) (int, []byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}

	return resp.StatusCode, bodyBytes, nil
}

func decodePayment(t *testing.T, body []byte) domain.PaymentResponse {
	t.Helper()
	var resp domain.PaymentResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

func requestFor(card testdata.TestCard) domain.PaymentRequest {
	return domain.PaymentRequest{
		CardNumber:  card.CardNumber,
		ExpiryMonth: card.ExpiryMonth,
		ExpiryYear:  card.ExpiryYear,
		Currency:    "GBP",
		Amount:      1050,
		CVV:         card.CVV,
	}
}

// newStubBank mimics the acquiring bank simulator.
func newStubBank(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.BankAuthorizationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CardNumber == "" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error_message":"Not all required properties were sent in the request"}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		switch last := req.CardNumber[len(req.CardNumber)-1]; {
		case last == '0':
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("service unavailable"))
		case (last-'0')%2 == 1:
			_, _ = w.Write([]byte(`{"authorized":true,"authorization_code":"` + uuid.NewString() + `"}`))
		default:
			_, _ = w.Write([]byte(`{"authorized":false,"authorization_code":""}`))
		}
	}))
	t.Cleanup(srv.Close)

	return srv
}

// newGateway assembles the gateway the same way the binary does, on the memory store.
func newGateway(t *testing.T, bankURL string) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.NewPaymentStore()

	bankClient := bank.NewBankClientWithHTTPClient(bankURL, &http.Client{Timeout: 5 * time.Second})
	processor := services.NewPaymentProcessor(bankClient, store, application.NewPaymentRequestValidator(nil), logger)
	retriever := services.NewPaymentRetriever(store)

	mux := http.NewServeMux()
	handlers.NewHandlers(processor, retriever, logger).RegisterRoutes(mux)

	doc, err := openapi.Load()
	require.NoError(t, err)
	validate, err := middleware.OpenAPIValidator(doc)
	require.NoError(t, err)

	handler := validate(mux)
	handler = middleware.Recovery(logger)(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Timeout(10 * time.Second)(handler)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return srv
}
