package services_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/DanielPopoola/bambora-gateway/internal/application"
	"github.com/DanielPopoola/bambora-gateway/internal/application/services"
	"github.com/DanielPopoola/bambora-gateway/internal/application/services/testhelpers"
	"github.com/DanielPopoola/bambora-gateway/internal/bambora"
	"github.com/DanielPopoola/bambora-gateway/internal/bambora/mocks"
	"github.com/DanielPopoola/bambora-gateway/internal/gateway"
	"github.com/DanielPopoola/bambora-gateway/internal/journal"
	"github.com/DanielPopoola/bambora-gateway/internal/observability/metrics"
)

type memoryJournal struct {
	mu        sync.Mutex
	entries   []*journal.Entry
	recordErr error
	findErr   error
}

func (j *memoryJournal) Record(_ context.Context, entry *journal.Entry) error {
	if j.recordErr != nil {
		return j.recordErr
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, entry)
	return nil
}

func (j *memoryJournal) FindByOrderID(_ context.Context, orderID string) ([]*journal.Entry, error) {
	if j.findErr != nil {
		return nil, j.findErr
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	var out []*journal.Entry
	for i := len(j.entries) - 1; i >= 0; i-- {
		if j.entries[i].OrderID == orderID {
			out = append(out, j.entries[i])
		}
	}
	return out, nil
}

func newService(t *testing.T, j application.Journal) (*services.PaymentService, *mocks.MockClient) {
	t.Helper()
	client := mocks.NewMockClient(t)
	gw, err := gateway.New(gateway.Config{MerchantID: "300205948", PaymentsAPIKey: "key"}, client, nil)
	require.NoError(t, err)

	m := metrics.NewGatewayMetrics(prometheus.NewRegistry(), metrics.Config{Environment: "test"})
	return services.NewPaymentService(gw, j, m, nil), client
}

func TestPaymentService_Purchase_RecordsApproval(t *testing.T) {
	j := &memoryJournal{}
	svc, client := newService(t, j)
	ctx := context.Background()
	orderID := testhelpers.NewOrderID()

	client.EXPECT().Create(ctx, mock.Anything).Return(testhelpers.Approved("10000021"), nil).Once()

	resp, err := svc.Purchase(ctx, services.PurchaseCommand{
		Amount:  1000,
		Card:    testhelpers.DefaultCard(),
		Options: testhelpers.DefaultOptions(orderID),
	})

	require.NoError(t, err)
	assert.True(t, resp.Success)

	require.Len(t, j.entries, 1)
	entry := j.entries[0]
	assert.Equal(t, orderID, entry.OrderID)
	assert.Equal(t, services.OperationPurchase, entry.Operation)
	assert.Equal(t, int64(1000), entry.Amount)
	assert.Equal(t, "10000021", entry.Authorization)
	assert.JSONEq(t, `{"id":"10000021","approved":"1","message":"Approved","auth_code":"TEST"}`, string(entry.Raw))
}

func TestPaymentService_Decline_IsNotAnError(t *testing.T) {
	j := &memoryJournal{}
	svc, client := newService(t, j)
	ctx := context.Background()
	orderID := testhelpers.NewOrderID()

	client.EXPECT().Preauth(ctx, mock.Anything).Return(testhelpers.Declined("217"), nil).Once()

	resp, err := svc.Authorize(ctx, services.AuthorizeCommand{
		Amount:  1000,
		Card:    testhelpers.DefaultCard(),
		Options: testhelpers.DefaultOptions(orderID),
	})

	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "card_declined", resp.ErrorCode())

	require.Len(t, j.entries, 1)
	assert.False(t, j.entries[0].Success)
	assert.Equal(t, "card_declined", j.entries[0].ErrorCode)
}

func TestPaymentService_ValidationError(t *testing.T) {
	j := &memoryJournal{}
	svc, _ := newService(t, j)

	_, err := svc.Purchase(context.Background(), services.PurchaseCommand{
		Amount:  1000,
		Options: testhelpers.DefaultOptions(testhelpers.NewOrderID()),
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, application.ToHTTPStatus(err))
	assert.Equal(t, gateway.MISSING_REQUIRED_FIELD, application.ToErrorCode(err))
	assert.Empty(t, j.entries)
}

func TestPaymentService_TransportError(t *testing.T) {
	j := &memoryJournal{}
	svc, client := newService(t, j)
	ctx := context.Background()

	client.EXPECT().Complete(ctx, mock.Anything).
		Return(bambora.Result{}, &bambora.TransportError{Op: "complete", StatusCode: 503, Body: "unavailable"}).Once()

	_, err := svc.Capture(ctx, services.CaptureCommand{
		Amount:        500,
		Authorization: "10000021",
		Options:       testhelpers.DefaultOptions(testhelpers.NewOrderID()),
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, application.ToHTTPStatus(err))
	assert.Equal(t, application.ErrCodeProcessorUnavailable, application.ToErrorCode(err))
	_, ok := bambora.IsTransportError(err)
	assert.True(t, ok, "transport error stays reachable through the service error")
	assert.Empty(t, j.entries)
}

func TestPaymentService_Timeout(t *testing.T) {
	svc, client := newService(t, &memoryJournal{})
	ctx := context.Background()

	client.EXPECT().Return(ctx, mock.Anything).Return(bambora.Result{}, context.DeadlineExceeded).Once()

	_, err := svc.Refund(ctx, services.RefundCommand{
		Amount:  500,
		Options: testhelpers.DefaultOptions(testhelpers.NewOrderID()),
	})

	assert.Equal(t, http.StatusGatewayTimeout, application.ToHTTPStatus(err))
}

func TestPaymentService_JournalFailureDoesNotChangeResponse(t *testing.T) {
	j := &memoryJournal{recordErr: errors.New("connection refused")}
	svc, client := newService(t, j)
	ctx := context.Background()

	client.EXPECT().Void(ctx, mock.Anything).Return(testhelpers.Approved("10000033"), nil).Once()

	resp, err := svc.Void(ctx, services.VoidCommand{
		Authorization: "10000021",
		Options:       testhelpers.DefaultOptions(testhelpers.NewOrderID()),
	})

	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestPaymentService_Verify_RecordsOneEntry(t *testing.T) {
	j := &memoryJournal{}
	svc, client := newService(t, j)
	ctx := context.Background()
	orderID := testhelpers.NewOrderID()

	client.EXPECT().Preauth(ctx, mock.Anything).Return(testhelpers.Approved("10000040"), nil).Once()
	client.EXPECT().Void(ctx, mock.Anything).Return(testhelpers.Approved("10000041"), nil).Once()

	resp, err := svc.Verify(ctx, services.VerifyCommand{
		Card:    testhelpers.DefaultCard(),
		Options: testhelpers.DefaultOptions(orderID),
	})

	require.NoError(t, err)
	assert.Equal(t, "10000040", resp.Authorization())
	require.Len(t, j.entries, 1)
	assert.Equal(t, services.OperationVerify, j.entries[0].Operation)
	assert.Equal(t, gateway.VerifyAmount, j.entries[0].Amount)
}

func TestPaymentService_History(t *testing.T) {
	j := &memoryJournal{}
	svc, client := newService(t, j)
	ctx := context.Background()
	orderID := testhelpers.NewOrderID()

	client.EXPECT().Preauth(ctx, mock.Anything).Return(testhelpers.Approved("10000050"), nil).Once()
	client.EXPECT().Complete(ctx, mock.Anything).Return(testhelpers.Approved("10000051"), nil).Once()

	_, err := svc.Authorize(ctx, services.AuthorizeCommand{Amount: 700, Card: testhelpers.DefaultCard(), Options: testhelpers.DefaultOptions(orderID)})
	require.NoError(t, err)
	_, err = svc.Capture(ctx, services.CaptureCommand{Amount: 700, Authorization: "10000050", Options: testhelpers.DefaultOptions(orderID)})
	require.NoError(t, err)

	entries, err := svc.History(ctx, orderID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, services.OperationCapture, entries[0].Operation)
	assert.Equal(t, services.OperationAuthorize, entries[1].Operation)

	_, err = svc.History(ctx, "")
	assert.Equal(t, http.StatusBadRequest, application.ToHTTPStatus(err))

	j.findErr = errors.New("boom")
	_, err = svc.History(ctx, orderID)
	assert.Equal(t, http.StatusInternalServerError, application.ToHTTPStatus(err))
}

func TestPaymentService_HistoryWithoutJournal(t *testing.T) {
	svc, _ := newService(t, nil)

	_, err := svc.History(context.Background(), "order-1")

	assert.Equal(t, application.ErrCodeJournalDisabled, application.ToErrorCode(err))
	assert.Equal(t, http.StatusNotImplemented, application.ToHTTPStatus(err))
}
