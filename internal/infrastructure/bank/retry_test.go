package bank_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/DanielPopoola/payment-gateway/internal/application"
	"github.com/DanielPopoola/payment-gateway/internal/application/mocks"
	"github.com/DanielPopoola/payment-gateway/internal/config"
	"github.com/DanielPopoola/payment-gateway/internal/domain"
	"github.com/DanielPopoola/payment-gateway/internal/infrastructure/bank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestRetryBankClient_Authorize_Success(t *testing.T) {
	mockClient := mocks.NewMockBankClient(t)
	retryClient := bank.NewRetryBankClient(mockClient, config.RetryConfig{
		BaseDelay:   time.Millisecond,
		MaxAttempts: 3,
	}, discardLogger)

	req := authorizationRequest()
	expectedResp := &domain.BankAuthorizationResponse{Authorized: true}

	mockClient.EXPECT().
		Authorize(mock.Anything, req).
		Return(expectedResp, nil).
		Once()

	resp, err := retryClient.Authorize(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, expectedResp, resp)
}

func TestRetryBankClient_Authorize_RetriesOnUnavailable(t *testing.T) {
	mockClient := mocks.NewMockBankClient(t)
	retryClient := bank.NewRetryBankClient(mockClient, config.RetryConfig{
		BaseDelay:   time.Millisecond,
		MaxAttempts: 3,
	}, discardLogger)

	req := authorizationRequest()
	expectedResp := &domain.BankAuthorizationResponse{Authorized: true}

	// First two calls fail with 503
	mockClient.EXPECT().
		Authorize(mock.Anything, req).
		Return(nil, &application.BankError{
			StatusCode: http.StatusServiceUnavailable,
			Message:    "service unavailable",
		}).
		Twice()

	// Third call succeeds
	mockClient.EXPECT().
		Authorize(mock.Anything, req).
		Return(expectedResp, nil).
		Once()

	resp, err := retryClient.Authorize(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, expectedResp, resp)
}

func TestRetryBankClient_Authorize_ReturnsLastErrorWhenExhausted(t *testing.T) {
	mockClient := mocks.NewMockBankClient(t)
	retryClient := bank.NewRetryBankClient(mockClient, config.RetryConfig{
		BaseDelay:   time.Millisecond,
		MaxAttempts: 2,
	}, discardLogger)

	req := authorizationRequest()
	bankErr := &application.BankError{
		StatusCode: http.StatusBadGateway,
		Message:    "bad gateway",
	}

	mockClient.EXPECT().
		Authorize(mock.Anything, req).
		Return(nil, bankErr).
		Twice()

	resp, err := retryClient.Authorize(context.Background(), req)

	assert.Nil(t, resp)
	assert.Same(t, bankErr, err)
}

func TestRetryBankClient_Authorize_DoesNotRetry(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"client error", &application.BankError{StatusCode: http.StatusBadRequest, Message: "bad card"}},
		{"internal server error", &application.BankError{StatusCode: http.StatusInternalServerError, Message: "boom"}},
		{"transport failure", &application.BankError{StatusCode: 0, Message: "connection refused"}},
		{"parse failure", &application.BankError{StatusCode: http.StatusOK, Message: "Failed to parse acquiring bank response: eof"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockClient := mocks.NewMockBankClient(t)
			retryClient := bank.NewRetryBankClient(mockClient, config.RetryConfig{
				BaseDelay:   time.Millisecond,
				MaxAttempts: 3,
			}, discardLogger)

			req := authorizationRequest()

			// Should only be called once
			mockClient.EXPECT().
				Authorize(mock.Anything, req).
				Return(nil, tt.err).
				Once()

			_, err := retryClient.Authorize(context.Background(), req)

			assert.Same(t, tt.err, err)
		})
	}
}

func TestRetryBankClient_Authorize_SingleAttemptByDefault(t *testing.T) {
	mockClient := mocks.NewMockBankClient(t)
	retryClient := bank.NewRetryBankClient(mockClient, config.RetryConfig{}, discardLogger)

	req := authorizationRequest()

	mockClient.EXPECT().
		Authorize(mock.Anything, req).
		Return(nil, &application.BankError{StatusCode: http.StatusServiceUnavailable, Message: "service unavailable"}).
		Once()

	_, err := retryClient.Authorize(context.Background(), req)

	require.Error(t, err)
}

func TestRetryBankClient_Authorize_StopsWhenContextCancelled(t *testing.T) {
	mockClient := mocks.NewMockBankClient(t)
	retryClient := bank.NewRetryBankClient(mockClient, config.RetryConfig{
		BaseDelay:   time.Hour,
		MaxAttempts: 3,
	}, discardLogger)

	req := authorizationRequest()
	ctx, cancel := context.WithCancel(context.Background())

	mockClient.EXPECT().
		Authorize(mock.Anything, req).
		Run(func(ctx context.Context, req domain.BankAuthorizationRequest) { cancel() }).
		Return(nil, &application.BankError{StatusCode: http.StatusGatewayTimeout, Message: "gateway timeout"}).
		Once()

	_, err := retryClient.Authorize(ctx, req)

	bankErr, ok := application.IsBankError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusGatewayTimeout, bankErr.StatusCode)
}
