package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fechasapp/fechas_backend/internal/apperrors"
	"github.com/fechasapp/fechas_backend/internal/core/domain"
	portsrepo "github.com/fechasapp/fechas_backend/internal/core/ports/repositories"
	portssvc "github.com/fechasapp/fechas_backend/internal/core/ports/services"
	"github.com/fechasapp/fechas_backend/internal/core/services"
	"github.com/fechasapp/fechas_backend/internal/dto"
)

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

var _ portsrepo.PaymentRepositoryFacade = (*MockPaymentRepository)(nil)

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.PaymentEntry, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentEntry), args.Error(1)
}

func (m *MockPaymentRepository) FindPaymentsByEventID(ctx context.Context, eventID string) ([]domain.PaymentEntry, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentEntry), args.Error(1)
}

func (m *MockPaymentRepository) SavePaymentEntry(ctx context.Context, entry domain.PaymentEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockPaymentRepository) UpdatePaymentEntry(ctx context.Context, entry domain.PaymentEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockPaymentRepository) DeletePaymentEntry(ctx context.Context, paymentID string) error {
	args := m.Called(ctx, paymentID)
	return args.Error(0)
}

// --- Test Suite Setup ---
type PaymentServiceTestSuite struct {
	suite.Suite
	mockPaymentRepo *MockPaymentRepository
	mockEventRepo   *MockEventRepository
	service         portssvc.PaymentSvcFacade
	userID          string
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockEventRepo = new(MockEventRepository)
	suite.service = services.NewPaymentService(suite.mockPaymentRepo, suite.mockEventRepo)
	suite.userID = uuid.NewString()
}

// eventWithLedger builds an event with a 100,000 ceiling and the given ledger.
func (suite *PaymentServiceTestSuite) eventWithLedger(payments ...domain.PaymentEntry) *domain.Event {
	return &domain.Event{
		EventID:         uuid.NewString(),
		Name:            "Feria de Primavera",
		Status:          domain.StatusConfirmada,
		NegotiatedTotal: decimal.NewFromInt(100000),
		AdvanceAmount:   decimal.NewFromInt(30000),
		Payments:        payments,
	}
}

// --- RecordPayment ---

func (suite *PaymentServiceTestSuite) TestRecordPayment_Success() {
	ctx := context.Background()
	event := suite.eventWithLedger(anticipo(30000))
	req := dto.CreatePaymentRequest{
		Type:   string(domain.PaymentSegundo),
		Amount: decimal.NewFromInt(40000),
		Method: string(domain.MethodTransferencia),
	}

	suite.mockEventRepo.On("FindEventByID", ctx, event.EventID).Return(event, nil).Once()
	suite.mockPaymentRepo.On("SavePaymentEntry", ctx, mock.AnythingOfType("domain.PaymentEntry")).Return(nil).Once()

	entry, err := suite.service.RecordPayment(ctx, event.EventID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.NotEmpty(entry.PaymentID)
	suite.Equal(event.EventID, entry.EventID)
	suite.Equal(domain.PaymentSegundo, entry.Type)
	suite.Equal(suite.userID, entry.CreatedBy)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_ExactlyFillsCeiling() {
	ctx := context.Background()
	event := suite.eventWithLedger(anticipo(30000))
	req := dto.CreatePaymentRequest{
		Type:   string(domain.PaymentSegundo),
		Amount: decimal.NewFromInt(70000),
		Method: string(domain.MethodEfectivo),
	}

	suite.mockEventRepo.On("FindEventByID", ctx, event.EventID).Return(event, nil).Once()
	suite.mockPaymentRepo.On("SavePaymentEntry", ctx, mock.AnythingOfType("domain.PaymentEntry")).Return(nil).Once()

	_, err := suite.service.RecordPayment(ctx, event.EventID, req, suite.userID)

	suite.Require().NoError(err)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_ExceedsCeiling() {
	ctx := context.Background()
	event := suite.eventWithLedger(anticipo(30000), segundo(60000))
	req := dto.CreatePaymentRequest{
		Type:   string(domain.PaymentSegundo),
		Amount: decimal.NewFromInt(10001),
		Method: string(domain.MethodTransferencia),
	}

	suite.mockEventRepo.On("FindEventByID", ctx, event.EventID).Return(event, nil).Once()

	_, err := suite.service.RecordPayment(ctx, event.EventID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, domain.ErrExceedsNegotiatedTotal)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePaymentEntry", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreatePaymentRequest{
		Type:   string(domain.PaymentAnticipo),
		Amount: decimal.Zero,
		Method: string(domain.MethodEfectivo),
	}

	_, err := suite.service.RecordPayment(ctx, uuid.NewString(), req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockEventRepo.AssertNotCalled(suite.T(), "FindEventByID", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_EventNotFound() {
	ctx := context.Background()
	eventID := uuid.NewString()
	req := dto.CreatePaymentRequest{
		Type:   string(domain.PaymentAnticipo),
		Amount: decimal.NewFromInt(1000),
		Method: string(domain.MethodEfectivo),
	}

	suite.mockEventRepo.On("FindEventByID", ctx, eventID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.RecordPayment(ctx, eventID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// RecordPayment passes a repository-level ceiling rejection through
// unwrapped, since the repository re-checks against fresh sums.
func (suite *PaymentServiceTestSuite) TestRecordPayment_RepoCeilingRejection() {
	ctx := context.Background()
	event := suite.eventWithLedger()
	req := dto.CreatePaymentRequest{
		Type:   string(domain.PaymentAnticipo),
		Amount: decimal.NewFromInt(30000),
		Method: string(domain.MethodTransferencia),
	}

	suite.mockEventRepo.On("FindEventByID", ctx, event.EventID).Return(event, nil).Once()
	suite.mockPaymentRepo.On("SavePaymentEntry", ctx, mock.AnythingOfType("domain.PaymentEntry")).Return(domain.ErrExceedsNegotiatedTotal).Once()

	_, err := suite.service.RecordPayment(ctx, event.EventID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, domain.ErrExceedsNegotiatedTotal)
}

// --- UpdatePayment ---

func (suite *PaymentServiceTestSuite) TestUpdatePayment_AmountWithinHeadroom() {
	ctx := context.Background()
	existing := anticipo(30000)
	event := suite.eventWithLedger(existing, segundo(40000))
	existing.EventID = event.EventID
	event.Payments[0].EventID = event.EventID
	newAmount := decimal.NewFromInt(50000)

	suite.mockPaymentRepo.On("FindPaymentByID", ctx, existing.PaymentID).Return(&existing, nil).Once()
	suite.mockEventRepo.On("FindEventByID", ctx, event.EventID).Return(event, nil).Once()
	suite.mockPaymentRepo.On("UpdatePaymentEntry", ctx, mock.AnythingOfType("domain.PaymentEntry")).Return(nil).Once()

	entry, err := suite.service.UpdatePayment(ctx, event.EventID, existing.PaymentID, dto.UpdatePaymentRequest{Amount: &newAmount}, suite.userID)

	suite.Require().NoError(err)
	suite.True(entry.Amount.Equal(newAmount))
	suite.Equal(suite.userID, entry.LastUpdatedBy)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestUpdatePayment_AmountExceedsCeiling() {
	ctx := context.Background()
	existing := anticipo(30000)
	event := suite.eventWithLedger(existing, segundo(40000))
	existing.EventID = event.EventID
	event.Payments[0].EventID = event.EventID
	// 40000 other + 70000 new = 110000 > 100000 ceiling.
	newAmount := decimal.NewFromInt(70000)

	suite.mockPaymentRepo.On("FindPaymentByID", ctx, existing.PaymentID).Return(&existing, nil).Once()
	suite.mockEventRepo.On("FindEventByID", ctx, event.EventID).Return(event, nil).Once()

	_, err := suite.service.UpdatePayment(ctx, event.EventID, existing.PaymentID, dto.UpdatePaymentRequest{Amount: &newAmount}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, domain.ErrExceedsNegotiatedTotal)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "UpdatePaymentEntry", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestUpdatePayment_WrongEvent() {
	ctx := context.Background()
	existing := anticipo(30000)
	existing.EventID = uuid.NewString()

	suite.mockPaymentRepo.On("FindPaymentByID", ctx, existing.PaymentID).Return(&existing, nil).Once()

	_, err := suite.service.UpdatePayment(ctx, uuid.NewString(), existing.PaymentID, dto.UpdatePaymentRequest{}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- ListPayments ---

func (suite *PaymentServiceTestSuite) TestListPayments_Totals() {
	ctx := context.Background()
	event := suite.eventWithLedger(anticipo(30000), segundo(40000))

	suite.mockEventRepo.On("FindEventByID", ctx, event.EventID).Return(event, nil).Once()

	resp, err := suite.service.ListPayments(ctx, event.EventID)

	suite.Require().NoError(err)
	suite.Len(resp.Payments, 2)
	suite.True(resp.TotalPayments.Equal(decimal.NewFromInt(70000)))
	suite.True(resp.Outstanding.Equal(decimal.NewFromInt(30000)))
}

// --- DeletePayment ---

func (suite *PaymentServiceTestSuite) TestDeletePayment_Success() {
	ctx := context.Background()
	existing := anticipo(30000)
	eventID := uuid.NewString()
	existing.EventID = eventID

	suite.mockPaymentRepo.On("FindPaymentByID", ctx, existing.PaymentID).Return(&existing, nil).Once()
	suite.mockPaymentRepo.On("DeletePaymentEntry", ctx, existing.PaymentID).Return(nil).Once()

	err := suite.service.DeletePayment(ctx, eventID, existing.PaymentID, suite.userID)

	suite.Require().NoError(err)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
