package services_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DanielPopoola/payment-gateway/internal/application"
	"github.com/DanielPopoola/payment-gateway/internal/application/mocks"
	"github.com/DanielPopoola/payment-gateway/internal/application/services"
	"github.com/DanielPopoola/payment-gateway/internal/application/services/testhelpers"
	"github.com/DanielPopoola/payment-gateway/internal/domain"
	"github.com/DanielPopoola/payment-gateway/internal/infrastructure/persistence/memory"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type PaymentProcessorTestSuite struct {
	suite.Suite
	store     *memory.PaymentStore
	mockBank  *mocks.MockBankClient
	processor *services.PaymentProcessor
	retriever *services.PaymentRetriever
}

func TestPaymentProcessorSuite(t *testing.T) {
	suite.Run(t, new(PaymentProcessorTestSuite))
}

func (suite *PaymentProcessorTestSuite) SetupTest() {
	suite.store = memory.NewPaymentStore()
	suite.mockBank = mocks.NewMockBankClient(suite.T())
	suite.processor = services.NewPaymentProcessor(
		suite.mockBank,
		suite.store,
		application.NewPaymentRequestValidator(nil),
		testhelpers.DiscardLogger(),
	)
	suite.retriever = services.NewPaymentRetriever(suite.store)
}

func (suite *PaymentProcessorTestSuite) storedRecord(id uuid.UUID) *domain.PaymentRecord {
	record, err := suite.store.Get(context.Background(), id)
	suite.Require().NoError(err)
	return record
}

// ============================================================================
// BANK OUTCOMES
// ============================================================================

func (suite *PaymentProcessorTestSuite) Test_Process_Authorized() {
	ctx := context.Background()
	req := testhelpers.DefaultPaymentRequest()

	suite.mockBank.EXPECT().
		Authorize(mock.Anything, req.ToBankAuthorizationRequest()).
		Return(testhelpers.AuthorizedResponse("AUTH-XYZ"), nil).
		Once()

	resp, err := suite.processor.Process(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusAuthorized, resp.Status)
	suite.Equal("USD", resp.Currency)
	suite.Equal(int64(100), resp.Amount)
	suite.Equal(1111, resp.CardNumberLastFour)
	suite.Equal(12, resp.ExpiryMonth)
	suite.Equal(req.ExpiryYear, resp.ExpiryYear)
	suite.NotEqual(uuid.Nil, resp.ID)

	record := suite.storedRecord(resp.ID)
	suite.Equal(domain.StatusAuthorized, record.Status)
	suite.Empty(record.FailReason)
	suite.Require().NotNil(record.AuthorizationCode)
	suite.Equal("AUTH-XYZ", *record.AuthorizationCode)
	suite.False(record.CreatedAt.IsZero())
}

func (suite *PaymentProcessorTestSuite) Test_Process_DeclinedByBank() {
	ctx := context.Background()
	req := testhelpers.DefaultPaymentRequest()

	suite.mockBank.EXPECT().
		Authorize(mock.Anything, req.ToBankAuthorizationRequest()).
		Return(testhelpers.DeclinedResponse(), nil).
		Once()

	resp, err := suite.processor.Process(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusDeclined, resp.Status)

	record := suite.storedRecord(resp.ID)
	suite.Equal(domain.StatusDeclined, record.Status)
	suite.Equal("Payment was declined by acquiring bank.", record.FailReason)
	suite.Nil(record.AuthorizationCode)
}

func (suite *PaymentProcessorTestSuite) Test_Process_BankUnavailable() {
	ctx := context.Background()
	req := testhelpers.DefaultPaymentRequest()

	suite.mockBank.EXPECT().
		Authorize(mock.Anything, req.ToBankAuthorizationRequest()).
		Return(nil, &application.BankError{
			StatusCode: http.StatusServiceUnavailable,
			Message:    "service unavailable",
		}).
		Once()

	resp, err := suite.processor.Process(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusDeclined, resp.Status)
	suite.Equal("USD", resp.Currency)
	suite.Equal(int64(100), resp.Amount)

	record := suite.storedRecord(resp.ID)
	suite.Equal("service unavailable", record.FailReason)
}

func (suite *PaymentProcessorTestSuite) Test_Process_UntypedBankErrorUsesErrorText() {
	ctx := context.Background()
	req := testhelpers.DefaultPaymentRequest()

	suite.mockBank.EXPECT().
		Authorize(mock.Anything, mock.Anything).
		Return(nil, errors.New("dial tcp: connection refused")).
		Once()

	resp, err := suite.processor.Process(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusDeclined, resp.Status)
	suite.Equal("dial tcp: connection refused", suite.storedRecord(resp.ID).FailReason)
}

func (suite *PaymentProcessorTestSuite) Test_Process_ErrorWinsOverResponse() {
	ctx := context.Background()
	req := testhelpers.DefaultPaymentRequest()

	suite.mockBank.EXPECT().
		Authorize(mock.Anything, mock.Anything).
		Return(testhelpers.AuthorizedResponse("AUTH-1"), &application.BankError{Message: "timeout"}).
		Once()

	resp, err := suite.processor.Process(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusDeclined, resp.Status)
	suite.Nil(suite.storedRecord(resp.ID).AuthorizationCode)
}

func (suite *PaymentProcessorTestSuite) Test_Process_ContractViolationPersistsNothing() {
	ctx := context.Background()
	req := testhelpers.DefaultPaymentRequest()

	suite.mockBank.EXPECT().
		Authorize(mock.Anything, mock.Anything).
		Return(nil, nil).
		Once()

	resp, err := suite.processor.Process(ctx, req)

	suite.Nil(resp)
	suite.Require().Error(err)
	suite.ErrorIs(err, application.ErrBankContractViolation)
	suite.Equal(http.StatusInternalServerError, application.ToHTTPStatus(err))
	suite.Equal(0, suite.store.Len())
}

func (suite *PaymentProcessorTestSuite) Test_Process_StoresDespiteCancelledCaller() {
	ctx, cancel := context.WithCancel(context.Background())
	req := testhelpers.DefaultPaymentRequest()

	suite.mockBank.EXPECT().
		Authorize(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, req domain.BankAuthorizationRequest) { cancel() }).
		Return(nil, &application.BankError{Message: context.Canceled.Error(), Err: context.Canceled}).
		Once()

	resp, err := suite.processor.Process(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusDeclined, resp.Status)
	suite.Equal(1, suite.store.Len())
}

// ============================================================================
// VALIDATION
// ============================================================================

func (suite *PaymentProcessorTestSuite) Test_Process_RejectedNeverCallsBank() {
	ctx := context.Background()
	req := testhelpers.InvalidPaymentRequest()

	resp, err := suite.processor.Process(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusRejected, resp.Status)
	suite.Equal("US", resp.Currency)
	suite.Equal(int64(100), resp.Amount)
	suite.Equal(0, resp.CardNumberLastFour)
	suite.mockBank.AssertNotCalled(suite.T(), "Authorize", mock.Anything, mock.Anything)

	record := suite.storedRecord(resp.ID)
	suite.Equal(domain.StatusRejected, record.Status)
	suite.Equal("US", record.Currency)
	suite.Equal(strings.Join([]string{
		application.MsgCardNumberNumeric,
		application.MsgCardNumberLength,
		application.MsgExpiryInPast,
		application.MsgCurrencyCode,
		application.MsgCVVNumeric,
		application.MsgCVVLength,
	}, "; "), record.FailReason)
}

func (suite *PaymentProcessorTestSuite) Test_Process_EveryAttemptGetsFreshID() {
	ctx := context.Background()
	req := testhelpers.InvalidPaymentRequest()

	first, err := suite.processor.Process(ctx, req)
	suite.Require().NoError(err)
	second, err := suite.processor.Process(ctx, req)
	suite.Require().NoError(err)

	suite.NotEqual(first.ID, second.ID)
	suite.Equal(2, suite.store.Len())
}

// ============================================================================
// RETRIEVAL
// ============================================================================

func (suite *PaymentProcessorTestSuite) Test_RoundTrip_AuthorizedPayment() {
	ctx := context.Background()
	req := testhelpers.DefaultPaymentRequest()

	suite.mockBank.EXPECT().
		Authorize(mock.Anything, mock.Anything).
		Return(testhelpers.AuthorizedResponse("AUTH-XYZ"), nil).
		Once()

	processed, err := suite.processor.Process(ctx, req)
	suite.Require().NoError(err)

	first, found, err := suite.retriever.Get(ctx, processed.ID)
	suite.Require().NoError(err)
	suite.Require().True(found)
	second, found, err := suite.retriever.Get(ctx, processed.ID)
	suite.Require().NoError(err)
	suite.Require().True(found)

	suite.Equal(processed, first)
	suite.Equal(first, second)
	suite.Equal(domain.StatusAuthorized, first.Status)
	suite.Equal(1111, first.CardNumberLastFour)
}

func (suite *PaymentProcessorTestSuite) Test_Retriever_UnknownID() {
	resp, found, err := suite.retriever.Get(context.Background(), uuid.New())

	suite.NoError(err)
	suite.False(found)
	suite.Nil(resp)
}

// ============================================================================
// CONCURRENCY
// ============================================================================

func (suite *PaymentProcessorTestSuite) Test_Process_ConcurrentRequests() {
	ctx := context.Background()
	const workers = 20

	suite.mockBank.EXPECT().
		Authorize(mock.Anything, mock.Anything).
		Return(testhelpers.AuthorizedResponse("AUTH-1"), nil).
		Times(workers)

	ids := make(chan uuid.UUID, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := suite.processor.Process(ctx, testhelpers.DefaultPaymentRequest())
			if assert.NoError(suite.T(), err) {
				ids <- resp.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[uuid.UUID]struct{})
	for id := range ids {
		seen[id] = struct{}{}
	}
	suite.Len(seen, workers)
	suite.Equal(workers, suite.store.Len())
}

// ============================================================================
// STORE FAILURES (mocked store)
// ============================================================================

func TestPaymentProcessor_StoreFailure(t *testing.T) {
	mockBank := mocks.NewMockBankClient(t)
	mockStore := mocks.NewMockPaymentStore(t)
	fixedID := uuid.MustParse("6f1c1f5e-3f41-4f2c-9a54-0f4d3b2f7a10")
	fixedNow := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	processor := services.NewPaymentProcessor(
		mockBank,
		mockStore,
		nil,
		testhelpers.DiscardLogger(),
		services.WithIDGenerator(func() uuid.UUID { return fixedID }),
		services.WithClock(func() time.Time { return fixedNow }),
	)
	req := testhelpers.DefaultPaymentRequest()

	mockBank.EXPECT().
		Authorize(mock.Anything, req.ToBankAuthorizationRequest()).
		Return(testhelpers.DeclinedResponse(), nil).
		Once()

	expected := domain.NewPaymentRecord(fixedID, domain.StatusDeclined, domain.DeclinedByBankReason, req, fixedNow)
	mockStore.EXPECT().
		Add(mock.Anything, expected).
		Return(errors.New("connection reset")).
		Once()

	resp, err := processor.Process(context.Background(), req)

	assert.Nil(t, resp)
	require.Error(t, err)
	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeInternal, svcErr.Code)
}

func TestPaymentProcessor_WithoutValidatorForwardsToBank(t *testing.T) {
	mockBank := mocks.NewMockBankClient(t)
	store := memory.NewPaymentStore()
	processor := services.NewPaymentProcessor(mockBank, store, nil, testhelpers.DiscardLogger())
	req := testhelpers.InvalidPaymentRequest()

	mockBank.EXPECT().
		Authorize(mock.Anything, req.ToBankAuthorizationRequest()).
		Return(nil, &application.BankError{StatusCode: http.StatusBadRequest, Message: "invalid card"}).
		Once()

	resp, err := processor.Process(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusDeclined, resp.Status)
}

func TestPaymentRetriever_StoreFailure(t *testing.T) {
	mockStore := mocks.NewMockPaymentStore(t)
	retriever := services.NewPaymentRetriever(mockStore)
	id := uuid.New()

	mockStore.EXPECT().
		Get(mock.Anything, id).
		Return(nil, errors.New("connection reset")).
		Once()

	resp, found, err := retriever.Get(context.Background(), id)

	assert.Nil(t, resp)
	assert.False(t, found)
	assert.Error(t, err)
}
