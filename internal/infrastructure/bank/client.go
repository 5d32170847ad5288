package bank

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/DanielPopoola/payment-gateway/internal/application"
	"github.com/DanielPopoola/payment-gateway/internal/config"
	"github.com/DanielPopoola/payment-gateway/internal/domain"
)

const (
	EmptyResponseMessage = "Acquiring bank returned an empty response."
	parseFailurePrefix   = "Failed to parse acquiring bank response: "

	maxResponseBytes = 1 << 20
)

// HTTPBankClient makes one POST per authorization. Every failure is returned as *application.BankError.
type HTTPBankClient struct {
	url        string
	httpClient *http.Client
}

func NewBankClient(cfg config.BankConfig) *HTTPBankClient {
	return NewBankClientWithHTTPClient(cfg.URL, &http.Client{
		Timeout: cfg.Timeout,
	})
}

func NewBankClientWithHTTPClient(url string, httpClient *http.Client) *HTTPBankClient {
	return &HTTPBankClient{
		url:        url,
		httpClient: httpClient,
	}
}

// authorizationResponse distinguishes a missing "authorized" field from false.
type authorizationResponse struct {
	Authorized        *bool   `json:"authorized"`
	AuthorizationCode *string `json:"authorization_code"`
}

func (c *HTTPBankClient) Authorize(ctx context.Context, req domain.BankAuthorizationRequest) (*domain.BankAuthorizationResponse, error) {
	status, body, err := sendRequest(c, ctx, http.MethodPost, c.url, &req)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, &application.BankError{
			StatusCode: status,
			Message:    EmptyResponseMessage,
		}
	}

	var wire authorizationResponse
	if err := json.Unmarshal(trimmed, &wire); err != nil {
		return nil, parseFailure(status, err)
	}
	if wire.Authorized == nil {
		return nil, parseFailure(status, fmt.Errorf("missing required field %q", "authorized"))
	}

	return &domain.BankAuthorizationResponse{
		Authorized:        *wire.Authorized,
		AuthorizationCode: wire.AuthorizationCode,
	}, nil
}

func parseFailure(status int, err error) *application.BankError {
	return &application.BankError{
		StatusCode: status,
		Message:    parseFailurePrefix + err.Error(),
		Err:        err,
	}
}

// sendRequest returns the status and body of a 2xx answer. Transport failures and
// non-2xx answers come back as *application.BankError.
func sendRequest[Req any](c *HTTPBankClient, ctx context.Context, method, url string, reqBody *Req) (int, []byte, error) {
	var bodyReader io.Reader
	if reqBody != nil {
		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return 0, nil, transportError(fmt.Errorf("error marshalling json: %w", err))
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return 0, nil, transportError(fmt.Errorf("error creating request: %w", err))
	}

	if reqBody != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, nil, transportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return resp.StatusCode, nil, &application.BankError{
			StatusCode: resp.StatusCode,
			Message:    err.Error(),
			Err:        err,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, body, &application.BankError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
	}

	return resp.StatusCode, body, nil
}

func transportError(err error) *application.BankError {
	return &application.BankError{
		StatusCode: 0,
		Message:    err.Error(),
		Err:        err,
	}
}
