package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

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

// --- Mock EventRepository ---
type MockEventRepository struct {
	mock.Mock
}

var _ portsrepo.EventRepositoryFacade = (*MockEventRepository)(nil)

func (m *MockEventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventRepository) ListEvents(ctx context.Context, params dto.ListEventsParams) ([]domain.Event, *string, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var nextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		nextToken = &tokenVal
	}
	return args.Get(0).([]domain.Event), nextToken, args.Error(2)
}

func (m *MockEventRepository) SaveEvent(ctx context.Context, event domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) UpdateEvent(ctx context.Context, event domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) ChangeEventStatus(ctx context.Context, eventID string, toStatus domain.EventStatus, updatedByUserID string) (*domain.Event, error) {
	args := m.Called(ctx, eventID, toStatus, updatedByUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventRepository) DeleteEvent(ctx context.Context, eventID string) error {
	args := m.Called(ctx, eventID)
	return args.Error(0)
}

// --- Mock ArtistRepository ---
type MockArtistRepository struct {
	mock.Mock
}

var _ portsrepo.ArtistRepositoryFacade = (*MockArtistRepository)(nil)

func (m *MockArtistRepository) SaveArtist(ctx context.Context, artist domain.Artist) error {
	args := m.Called(ctx, artist)
	return args.Error(0)
}

func (m *MockArtistRepository) FindArtistByID(ctx context.Context, artistID string) (*domain.Artist, error) {
	args := m.Called(ctx, artistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artist), args.Error(1)
}

func (m *MockArtistRepository) ListArtists(ctx context.Context, includeInactive bool) ([]domain.Artist, error) {
	args := m.Called(ctx, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Artist), args.Error(1)
}

func (m *MockArtistRepository) UpdateArtist(ctx context.Context, artist domain.Artist) error {
	args := m.Called(ctx, artist)
	return args.Error(0)
}

// --- Mock PromoterRepository ---
type MockPromoterRepository struct {
	mock.Mock
}

var _ portsrepo.PromoterRepositoryFacade = (*MockPromoterRepository)(nil)

func (m *MockPromoterRepository) SavePromoter(ctx context.Context, promoter domain.Promoter) error {
	args := m.Called(ctx, promoter)
	return args.Error(0)
}

func (m *MockPromoterRepository) FindPromoterByID(ctx context.Context, promoterID string) (*domain.Promoter, error) {
	args := m.Called(ctx, promoterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Promoter), args.Error(1)
}

func (m *MockPromoterRepository) ListPromoters(ctx context.Context, includeInactive bool) ([]domain.Promoter, error) {
	args := m.Called(ctx, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Promoter), args.Error(1)
}

func (m *MockPromoterRepository) UpdatePromoter(ctx context.Context, promoter domain.Promoter) error {
	args := m.Called(ctx, promoter)
	return args.Error(0)
}

// --- Test Suite Setup ---
type EventServiceTestSuite struct {
	suite.Suite
	mockEventRepo    *MockEventRepository
	mockArtistRepo   *MockArtistRepository
	mockPromoterRepo *MockPromoterRepository
	service          portssvc.EventSvcFacade
	artist           domain.Artist
	promoter         domain.Promoter
	userID           string
}

func (suite *EventServiceTestSuite) SetupTest() {
	suite.mockEventRepo = new(MockEventRepository)
	suite.mockArtistRepo = new(MockArtistRepository)
	suite.mockPromoterRepo = new(MockPromoterRepository)
	suite.service = services.NewEventService(suite.mockEventRepo, suite.mockArtistRepo, suite.mockPromoterRepo)

	suite.userID = uuid.NewString()
	suite.artist = domain.Artist{ArtistID: uuid.NewString(), Name: "Los Norteños", IsActive: true}
	suite.promoter = domain.Promoter{PromoterID: uuid.NewString(), Name: "Eventos del Valle", IsActive: true}
}

// newEvent builds a booking in the given status with the given ledger.
func (suite *EventServiceTestSuite) newEvent(status domain.EventStatus, payments ...domain.PaymentEntry) *domain.Event {
	return &domain.Event{
		EventID:             uuid.NewString(),
		Name:                "Feria de Primavera",
		Venue:               "Palenque Central",
		City:                "Guadalajara",
		EventDate:           time.Now().AddDate(0, 1, 0),
		ArtistID:            suite.artist.ArtistID,
		PromoterID:          suite.promoter.PromoterID,
		Status:              status,
		NegotiatedTotal:     decimal.NewFromInt(100000),
		AdvanceAmount:       decimal.NewFromInt(30000),
		SecondPaymentAmount: decimal.NewFromInt(70000),
		Payments:            payments,
	}
}

func anticipo(amount int64) domain.PaymentEntry {
	return domain.PaymentEntry{
		PaymentID: uuid.NewString(),
		Type:      domain.PaymentAnticipo,
		Amount:    decimal.NewFromInt(amount),
		Method:    domain.MethodTransferencia,
	}
}

func segundo(amount int64) domain.PaymentEntry {
	return domain.PaymentEntry{
		PaymentID: uuid.NewString(),
		Type:      domain.PaymentSegundo,
		Amount:    decimal.NewFromInt(amount),
		Method:    domain.MethodTransferencia,
	}
}

// --- CreateEvent ---

func (suite *EventServiceTestSuite) TestCreateEvent_Success() {
	ctx := context.Background()
	req := dto.CreateEventRequest{
		Name:                "Feria de Primavera",
		Venue:               "Palenque Central",
		City:                "Guadalajara",
		EventDate:           time.Now().AddDate(0, 2, 0),
		ArtistID:            suite.artist.ArtistID,
		PromoterID:          suite.promoter.PromoterID,
		NegotiatedTotal:     decimal.NewFromInt(100000),
		AdvanceAmount:       decimal.NewFromInt(30000),
		SecondPaymentAmount: decimal.NewFromInt(70000),
	}

	suite.mockArtistRepo.On("FindArtistByID", ctx, suite.artist.ArtistID).Return(&suite.artist, nil).Once()
	suite.mockPromoterRepo.On("FindPromoterByID", ctx, suite.promoter.PromoterID).Return(&suite.promoter, nil).Once()
	suite.mockEventRepo.On("SaveEvent", ctx, mock.AnythingOfType("domain.Event")).Return(nil).Once()

	created, err := suite.service.CreateEvent(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.EventID)
	suite.Equal(domain.StatusPropuesta, created.Status)
	suite.Equal(suite.userID, created.CreatedBy)
	suite.mockEventRepo.AssertExpectations(suite.T())
	suite.mockArtistRepo.AssertExpectations(suite.T())
	suite.mockPromoterRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestCreateEvent_NonPositiveTotal() {
	ctx := context.Background()
	req := dto.CreateEventRequest{
		Name:            "Feria de Primavera",
		Venue:           "Palenque Central",
		EventDate:       time.Now(),
		ArtistID:        suite.artist.ArtistID,
		PromoterID:      suite.promoter.PromoterID,
		NegotiatedTotal: decimal.Zero,
	}

	_, err := suite.service.CreateEvent(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockEventRepo.AssertNotCalled(suite.T(), "SaveEvent", mock.Anything, mock.Anything)
}

func (suite *EventServiceTestSuite) TestCreateEvent_UnknownArtist() {
	ctx := context.Background()
	req := dto.CreateEventRequest{
		Name:            "Feria de Primavera",
		Venue:           "Palenque Central",
		EventDate:       time.Now(),
		ArtistID:        uuid.NewString(),
		PromoterID:      suite.promoter.PromoterID,
		NegotiatedTotal: decimal.NewFromInt(100000),
	}

	suite.mockArtistRepo.On("FindArtistByID", ctx, req.ArtistID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateEvent(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockEventRepo.AssertNotCalled(suite.T(), "SaveEvent", mock.Anything, mock.Anything)
}

// --- ChangeStatus ---

func (suite *EventServiceTestSuite) TestChangeStatus_Success() {
	ctx := context.Background()
	event := suite.newEvent(domain.StatusPropuesta)
	updated := *event
	updated.Status = domain.StatusNegociacion

	suite.mockEventRepo.On("FindEventByID", ctx, event.EventID).Return(event, nil).Once()
	suite.mockEventRepo.On("ChangeEventStatus", ctx, event.EventID, domain.StatusNegociacion, suite.userID).Return(&updated, nil).Once()

	result, err := suite.service.ChangeStatus(ctx, event.EventID, domain.StatusNegociacion, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusNegociacion, result.Status)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestChangeStatus_IllegalEdge() {
	ctx := context.Background()
	event := suite.newEvent(domain.StatusPropuesta)

	suite.mockEventRepo.On("FindEventByID", ctx, event.EventID).Return(event, nil).Once()

	_, err := suite.service.ChangeStatus(ctx, event.EventID, domain.StatusCerrada, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, domain.ErrInvalidTransition)
	suite.mockEventRepo.AssertNotCalled(suite.T(), "ChangeEventStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EventServiceTestSuite) TestChangeStatus_ConfirmadaWithoutAdvance() {
	ctx := context.Background()
	event := suite.newEvent(domain.StatusPendienteAnticipo)

	suite.mockEventRepo.On("FindEventByID", ctx, event.EventID).Return(event, nil).Once()

	_, err := suite.service.ChangeStatus(ctx, event.EventID, domain.StatusConfirmada, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, domain.ErrInsufficientAdvance)
	suite.mockEventRepo.AssertNotCalled(suite.T(), "ChangeEventStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EventServiceTestSuite) TestChangeStatus_ConfirmadaShortAdvance() {
	ctx := context.Background()
	event := suite.newEvent(domain.StatusPendienteAnticipo, anticipo(20000))

	suite.mockEventRepo.On("FindEventByID", ctx, event.EventID).Return(event, nil).Once()

	_, err := suite.service.ChangeStatus(ctx, event.EventID, domain.StatusConfirmada, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, domain.ErrInsufficientAdvance)
}

func (suite *EventServiceTestSuite) TestChangeStatus_ConfirmadaCoveredAdvance() {
	ctx := context.Background()
	event := suite.newEvent(domain.StatusPendienteAnticipo, anticipo(30000))
	updated := *event
	updated.Status = domain.StatusConfirmada

	suite.mockEventRepo.On("FindEventByID", ctx, event.EventID).Return(event, nil).Once()
	suite.mockEventRepo.On("ChangeEventStatus", ctx, event.EventID, domain.StatusConfirmada, suite.userID).Return(&updated, nil).Once()

	result, err := suite.service.ChangeStatus(ctx, event.EventID, domain.StatusConfirmada, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusConfirmada, result.Status)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestChangeStatus_CerradaIncompletePayment() {
	ctx := context.Background()
	event := suite.newEvent(domain.StatusEjecutada, anticipo(30000), segundo(40000))

	suite.mockEventRepo.On("FindEventByID", ctx, event.EventID).Return(event, nil).Once()

	_, err := suite.service.ChangeStatus(ctx, event.EventID, domain.StatusCerrada, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, domain.ErrIncompletePayment)
	suite.mockEventRepo.AssertNotCalled(suite.T(), "ChangeEventStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EventServiceTestSuite) TestChangeStatus_CerradaFullyPaid() {
	ctx := context.Background()
	event := suite.newEvent(domain.StatusEjecutada, anticipo(30000), segundo(70000))
	updated := *event
	updated.Status = domain.StatusCerrada

	suite.mockEventRepo.On("FindEventByID", ctx, event.EventID).Return(event, nil).Once()
	suite.mockEventRepo.On("ChangeEventStatus", ctx, event.EventID, domain.StatusCerrada, suite.userID).Return(&updated, nil).Once()

	result, err := suite.service.ChangeStatus(ctx, event.EventID, domain.StatusCerrada, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusCerrada, result.Status)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestChangeStatus_EventNotFound() {
	ctx := context.Background()
	eventID := uuid.NewString()

	suite.mockEventRepo.On("FindEventByID", ctx, eventID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ChangeStatus(ctx, eventID, domain.StatusNegociacion, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- UpdateEvent ---

func (suite *EventServiceTestSuite) TestUpdateEvent_LowerCeilingBelowCollected() {
	ctx := context.Background()
	event := suite.newEvent(domain.StatusConfirmada, anticipo(30000), segundo(40000))
	lowered := decimal.NewFromInt(50000)

	suite.mockEventRepo.On("FindEventByID", ctx, event.EventID).Return(event, nil).Once()

	_, err := suite.service.UpdateEvent(ctx, event.EventID, dto.UpdateEventRequest{NegotiatedTotal: &lowered}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, domain.ErrExceedsNegotiatedTotal)
	suite.mockEventRepo.AssertNotCalled(suite.T(), "UpdateEvent", mock.Anything, mock.Anything)
}

// A payment committed after the snapshot was loaded makes the repository's
// in-transaction re-check the last line of defense: its rejection must reach
// the caller unchanged.
func (suite *EventServiceTestSuite) TestUpdateEvent_StaleSnapshotCeilingRejection() {
	ctx := context.Background()
	event := suite.newEvent(domain.StatusContratada) // snapshot sees an empty ledger
	lowered := decimal.NewFromInt(50000)

	suite.mockEventRepo.On("FindEventByID", ctx, event.EventID).Return(event, nil).Once()
	suite.mockEventRepo.On("UpdateEvent", ctx, mock.AnythingOfType("domain.Event")).
		Return(fmt.Errorf("%w: negotiated total 50000 is below already collected 100000", domain.ErrExceedsNegotiatedTotal)).Once()

	_, err := suite.service.UpdateEvent(ctx, event.EventID, dto.UpdateEventRequest{NegotiatedTotal: &lowered}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, domain.ErrExceedsNegotiatedTotal)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestUpdateEvent_Success() {
	ctx := context.Background()
	event := suite.newEvent(domain.StatusNegociacion)
	newName := "Feria de Primavera 2026"

	suite.mockEventRepo.On("FindEventByID", ctx, event.EventID).Return(event, nil).Once()
	suite.mockEventRepo.On("UpdateEvent", ctx, mock.AnythingOfType("domain.Event")).Return(nil).Once()

	updated, err := suite.service.UpdateEvent(ctx, event.EventID, dto.UpdateEventRequest{Name: &newName}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.Equal(suite.userID, updated.LastUpdatedBy)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

// --- GetStatusOptions ---

func (suite *EventServiceTestSuite) TestGetStatusOptions_NonTerminal() {
	ctx := context.Background()
	event := suite.newEvent(domain.StatusPropuesta)

	suite.mockEventRepo.On("FindEventByID", ctx, event.EventID).Return(event, nil).Once()

	resp, err := suite.service.GetStatusOptions(ctx, event.EventID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPropuesta, resp.Current.Status)
	suite.Len(resp.Options, 2)
	suite.Equal(domain.StatusNegociacion, resp.Options[0].Status)
	suite.Equal(domain.StatusCancelada, resp.Options[1].Status)
}

func (suite *EventServiceTestSuite) TestGetStatusOptions_Terminal() {
	ctx := context.Background()
	event := suite.newEvent(domain.StatusCerrada)

	suite.mockEventRepo.On("FindEventByID", ctx, event.EventID).Return(event, nil).Once()

	resp, err := suite.service.GetStatusOptions(ctx, event.EventID)

	suite.Require().NoError(err)
	suite.Empty(resp.Options)
}

// --- ListEvents ---

func (suite *EventServiceTestSuite) TestListEvents_UnknownStatusFilter() {
	ctx := context.Background()

	_, err := suite.service.ListEvents(ctx, dto.ListEventsParams{Status: "PAGADA"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockEventRepo.AssertNotCalled(suite.T(), "ListEvents", mock.Anything, mock.Anything)
}

func (suite *EventServiceTestSuite) TestListEvents_PassesNextToken() {
	ctx := context.Background()
	events := []domain.Event{*suite.newEvent(domain.StatusPropuesta)}

	suite.mockEventRepo.On("ListEvents", ctx, mock.AnythingOfType("dto.ListEventsParams")).Return(events, "next-page-token", nil).Once()

	resp, err := suite.service.ListEvents(ctx, dto.ListEventsParams{Limit: 1})

	suite.Require().NoError(err)
	suite.Len(resp.Events, 1)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal("next-page-token", *resp.NextToken)
}

// --- DeleteEvent ---

func (suite *EventServiceTestSuite) TestDeleteEvent_NotFound() {
	ctx := context.Background()
	eventID := uuid.NewString()

	suite.mockEventRepo.On("FindEventByID", ctx, eventID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteEvent(ctx, eventID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockEventRepo.AssertNotCalled(suite.T(), "DeleteEvent", mock.Anything, mock.Anything)
}

func TestEventServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EventServiceTestSuite))
}
