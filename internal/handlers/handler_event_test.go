package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fechasapp/fechas_backend/internal/apperrors"
	"github.com/fechasapp/fechas_backend/internal/core/domain"
	portssvc "github.com/fechasapp/fechas_backend/internal/core/ports/services"
	"github.com/fechasapp/fechas_backend/internal/dto"
	"github.com/fechasapp/fechas_backend/internal/middleware"
)

// --- Mock EventService ---
type MockEventService struct {
	mock.Mock
}

var _ portssvc.EventSvcFacade = (*MockEventService)(nil)

func (m *MockEventService) GetEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventService) ListEvents(ctx context.Context, params dto.ListEventsParams) (*dto.ListEventsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListEventsResponse), args.Error(1)
}

func (m *MockEventService) GetStatusOptions(ctx context.Context, eventID string) (*dto.StatusOptionsResponse, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StatusOptionsResponse), args.Error(1)
}

func (m *MockEventService) CreateEvent(ctx context.Context, req dto.CreateEventRequest, creatorUserID string) (*domain.Event, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventService) UpdateEvent(ctx context.Context, eventID string, req dto.UpdateEventRequest, requestingUserID string) (*domain.Event, error) {
	args := m.Called(ctx, eventID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventService) ChangeStatus(ctx context.Context, eventID string, toStatus domain.EventStatus, requestingUserID string) (*domain.Event, error) {
	args := m.Called(ctx, eventID, toStatus, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventService) DeleteEvent(ctx context.Context, eventID string, requestingUserID string) error {
	args := m.Called(ctx, eventID, requestingUserID)
	return args.Error(0)
}

// --- Mock PaymentService ---
type MockPaymentService struct {
	mock.Mock
}

var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)

func (m *MockPaymentService) RecordPayment(ctx context.Context, eventID string, req dto.CreatePaymentRequest, creatorUserID string) (*domain.PaymentEntry, error) {
	args := m.Called(ctx, eventID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentEntry), args.Error(1)
}

func (m *MockPaymentService) UpdatePayment(ctx context.Context, eventID string, paymentID string, req dto.UpdatePaymentRequest, requestingUserID string) (*domain.PaymentEntry, error) {
	args := m.Called(ctx, eventID, paymentID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentEntry), args.Error(1)
}

func (m *MockPaymentService) ListPayments(ctx context.Context, eventID string) (*dto.ListPaymentsResponse, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListPaymentsResponse), args.Error(1)
}

func (m *MockPaymentService) DeletePayment(ctx context.Context, eventID string, paymentID string, requestingUserID string) error {
	args := m.Called(ctx, eventID, paymentID, requestingUserID)
	return args.Error(0)
}

// --- Mock ExpenseService ---
type MockExpenseService struct {
	mock.Mock
}

var _ portssvc.ExpenseSvcFacade = (*MockExpenseService)(nil)

func (m *MockExpenseService) RecordExpense(ctx context.Context, eventID string, req dto.CreateExpenseRequest, creatorUserID string) (*domain.ExpenseEntry, error) {
	args := m.Called(ctx, eventID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseEntry), args.Error(1)
}

func (m *MockExpenseService) UpdateExpense(ctx context.Context, eventID string, expenseID string, req dto.UpdateExpenseRequest, requestingUserID string) (*domain.ExpenseEntry, error) {
	args := m.Called(ctx, eventID, expenseID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseEntry), args.Error(1)
}

func (m *MockExpenseService) ListExpenses(ctx context.Context, eventID string) (*dto.ListExpensesResponse, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListExpensesResponse), args.Error(1)
}

func (m *MockExpenseService) DeleteExpense(ctx context.Context, eventID string, expenseID string, requestingUserID string) error {
	args := m.Called(ctx, eventID, expenseID, requestingUserID)
	return args.Error(0)
}

// --- Test Suite ---
type EventHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockEventService   *MockEventService
	mockPaymentService *MockPaymentService
	mockExpenseService *MockExpenseService
	jwtSecret          string
	userID             string
}

func (suite *EventHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "fechas-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *EventHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockEventService = new(MockEventService)
	suite.mockPaymentService = new(MockPaymentService)
	suite.mockExpenseService = new(MockExpenseService)

	v1 := suite.router.Group("/api/v1")
	registerEventRoutes(v1, suite.mockEventService, suite.mockPaymentService, suite.mockExpenseService)
}

func (suite *EventHandlerTestSuite) doRequest(method, url string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reqBody = bytes.NewBuffer(raw)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, reqBody)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *EventHandlerTestSuite) TestGetEvent_Success() {
	event := &domain.Event{
		EventID:         uuid.NewString(),
		Name:            "Feria de Primavera",
		Venue:           "Palenque Central",
		Status:          domain.StatusPropuesta,
		NegotiatedTotal: decimal.NewFromInt(100000),
	}

	suite.mockEventService.On("GetEventByID", mock.Anything, event.EventID).Return(event, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/events/"+event.EventID, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.EventResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(event.EventID, resp.EventID)
	suite.Equal(string(domain.StatusPropuesta), resp.Status)
	suite.mockEventService.AssertExpectations(suite.T())
}

func (suite *EventHandlerTestSuite) TestGetEvent_NotFound() {
	eventID := uuid.NewString()

	suite.mockEventService.On("GetEventByID", mock.Anything, eventID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/events/"+eventID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *EventHandlerTestSuite) TestGetEvent_Unauthenticated() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/events/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockEventService.AssertNotCalled(suite.T(), "GetEventByID", mock.Anything, mock.Anything)
}

func (suite *EventHandlerTestSuite) TestCreateEvent_Success() {
	req := dto.CreateEventRequest{
		Name:            "Feria de Primavera",
		Venue:           "Palenque Central",
		EventDate:       time.Now().AddDate(0, 1, 0),
		ArtistID:        uuid.NewString(),
		PromoterID:      uuid.NewString(),
		NegotiatedTotal: decimal.NewFromInt(100000),
	}
	created := &domain.Event{
		EventID:         uuid.NewString(),
		Name:            req.Name,
		Venue:           req.Venue,
		Status:          domain.StatusPropuesta,
		NegotiatedTotal: req.NegotiatedTotal,
	}

	suite.mockEventService.On("CreateEvent", mock.Anything, mock.AnythingOfType("dto.CreateEventRequest"), suite.userID).Return(created, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/events", req)

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockEventService.AssertExpectations(suite.T())
}

func (suite *EventHandlerTestSuite) TestChangeStatus_RejectedTransition() {
	eventID := uuid.NewString()

	suite.mockEventService.On("ChangeStatus", mock.Anything, eventID, domain.StatusCerrada, suite.userID).
		Return(nil, fmt.Errorf("%w: collected 50000 of 100000", domain.ErrIncompletePayment)).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/events/"+eventID+"/status", dto.ChangeStatusRequest{ToStatus: "CERRADA"})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.mockEventService.AssertExpectations(suite.T())
}

func (suite *EventHandlerTestSuite) TestChangeStatus_UnknownStatus() {
	eventID := uuid.NewString()

	w := suite.doRequest(http.MethodPost, "/api/v1/events/"+eventID+"/status", dto.ChangeStatusRequest{ToStatus: "PAGADA"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockEventService.AssertNotCalled(suite.T(), "ChangeStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EventHandlerTestSuite) TestUpdateEvent_LoweredCeilingRejected() {
	eventID := uuid.NewString()
	lowered := decimal.NewFromInt(50000)

	suite.mockEventService.On("UpdateEvent", mock.Anything, eventID, mock.AnythingOfType("dto.UpdateEventRequest"), suite.userID).
		Return(nil, fmt.Errorf("%w: negotiated total 50000 is below already collected 100000", domain.ErrExceedsNegotiatedTotal)).Once()

	w := suite.doRequest(http.MethodPut, "/api/v1/events/"+eventID, dto.UpdateEventRequest{NegotiatedTotal: &lowered})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.mockEventService.AssertExpectations(suite.T())
}

func (suite *EventHandlerTestSuite) TestRecordPayment_ExceedsCeiling() {
	eventID := uuid.NewString()
	req := dto.CreatePaymentRequest{
		Type:   "SEGUNDO",
		Amount: decimal.NewFromInt(99999),
		Method: "TRANSFERENCIA",
	}

	suite.mockPaymentService.On("RecordPayment", mock.Anything, eventID, mock.AnythingOfType("dto.CreatePaymentRequest"), suite.userID).
		Return(nil, domain.ErrExceedsNegotiatedTotal).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/events/"+eventID+"/payments", req)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.mockPaymentService.AssertExpectations(suite.T())
}

func (suite *EventHandlerTestSuite) TestListPayments_Success() {
	eventID := uuid.NewString()
	resp := &dto.ListPaymentsResponse{
		Payments:        []dto.PaymentResponse{},
		TotalPayments:   decimal.NewFromInt(30000),
		NegotiatedTotal: decimal.NewFromInt(100000),
		Outstanding:     decimal.NewFromInt(70000),
	}

	suite.mockPaymentService.On("ListPayments", mock.Anything, eventID).Return(resp, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/events/"+eventID+"/payments", nil)

	suite.Equal(http.StatusOK, w.Code)
	var got dto.ListPaymentsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.True(got.Outstanding.Equal(decimal.NewFromInt(70000)))
}

func (suite *EventHandlerTestSuite) TestGetStatusOptions_Success() {
	eventID := uuid.NewString()
	resp := &dto.StatusOptionsResponse{
		Current: domain.MetaForStatus(domain.StatusPropuesta),
		Options: []domain.StatusMeta{
			domain.MetaForStatus(domain.StatusNegociacion),
			domain.MetaForStatus(domain.StatusCancelada),
		},
	}

	suite.mockEventService.On("GetStatusOptions", mock.Anything, eventID).Return(resp, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/events/"+eventID+"/status-options", nil)

	suite.Equal(http.StatusOK, w.Code)
	var got dto.StatusOptionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Len(got.Options, 2)
}

func TestEventHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EventHandlerTestSuite))
}
