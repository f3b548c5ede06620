package services_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/DanielPopoola/bambora-gateway/internal/application/services"
	"github.com/DanielPopoola/bambora-gateway/internal/application/services/testhelpers"
	"github.com/DanielPopoola/bambora-gateway/internal/bambora/mocks"
	"github.com/DanielPopoola/bambora-gateway/internal/gateway"
	"github.com/DanielPopoola/bambora-gateway/internal/journal"
	"github.com/DanielPopoola/bambora-gateway/internal/observability/metrics"
)

type JournalIntegrationTestSuite struct {
	suite.Suite
	testDB     *testhelpers.TestDatabase
	repo       *journal.Repository
	mockClient *mocks.MockClient
	service    *services.PaymentService
}

func TestJournalIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping testcontainers suite in short mode")
	}
	suite.Run(t, new(JournalIntegrationTestSuite))
}

func (suite *JournalIntegrationTestSuite) SetupSuite() {
	suite.testDB = testhelpers.SetupTestDatabase(suite.T())
	suite.repo = journal.NewRepository(suite.testDB.DB.Pool)
}

func (suite *JournalIntegrationTestSuite) TearDownSuite() {
	suite.testDB.Cleanup(suite.T())
}

func (suite *JournalIntegrationTestSuite) SetupTest() {
	suite.testDB.CleanTables(suite.T())
	suite.mockClient = mocks.NewMockClient(suite.T())

	gw, err := gateway.New(gateway.Config{MerchantID: "300205948", PaymentsAPIKey: "key"}, suite.mockClient, nil)
	suite.Require().NoError(err)

	m := metrics.NewGatewayMetrics(prometheus.NewRegistry(), metrics.Config{Environment: "test"})
	suite.service = services.NewPaymentService(gw, suite.repo, m, nil)
}

func (suite *JournalIntegrationTestSuite) Test_AuthorizeCaptureRefund_History() {
	ctx := context.Background()
	orderID := testhelpers.NewOrderID()
	opts := testhelpers.DefaultOptions(orderID)

	suite.mockClient.EXPECT().Preauth(ctx, mock.Anything).Return(testhelpers.Approved("10000060"), nil).Once()
	suite.mockClient.EXPECT().Complete(ctx, mock.Anything).Return(testhelpers.Approved("10000061"), nil).Once()
	suite.mockClient.EXPECT().Return(ctx, mock.Anything).Return(testhelpers.Declined("217"), nil).Once()

	_, err := suite.service.Authorize(ctx, services.AuthorizeCommand{Amount: 2500, Card: testhelpers.DefaultCard(), Options: opts})
	suite.Require().NoError(err)
	_, err = suite.service.Capture(ctx, services.CaptureCommand{Amount: 2500, Authorization: "10000060", Options: opts})
	suite.Require().NoError(err)
	resp, err := suite.service.Refund(ctx, services.RefundCommand{Amount: 2500, Authorization: "10000061", Options: opts})
	suite.Require().NoError(err)
	suite.False(resp.Success)

	entries, err := suite.service.History(ctx, orderID)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 3)

	suite.Equal(services.OperationRefund, entries[0].Operation)
	suite.False(entries[0].Success)
	suite.Equal("card_declined", entries[0].ErrorCode)
	suite.Equal(services.OperationCapture, entries[1].Operation)
	suite.Equal("10000061", entries[1].Authorization)
	suite.Equal(services.OperationAuthorize, entries[2].Operation)
	suite.Equal(int64(2500), entries[2].Amount)
}
