package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fechasapp/fechas_backend/internal/apperrors"
	"github.com/fechasapp/fechas_backend/internal/core/domain"
	portsrepo "github.com/fechasapp/fechas_backend/internal/core/ports/repositories"
	portssvc "github.com/fechasapp/fechas_backend/internal/core/ports/services"
	"github.com/fechasapp/fechas_backend/internal/core/services"
	"github.com/fechasapp/fechas_backend/internal/dto"
	"github.com/fechasapp/fechas_backend/internal/utils"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByRefreshTokenHash(ctx context.Context, refreshTokenHash string) (*domain.User, error) {
	args := m.Called(ctx, refreshTokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiryTime *time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, expiryTime)
	return args.Error(0)
}

// --- Test Suite Setup ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

// --- CreateUser ---

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Name: "Marisol", Email: "marisol@example.com", Password: "s3cret-pass"}

	suite.mockUserRepo.On("FindUserByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.Equal(req.Email, user.Email)
	suite.NotEqual(req.Password, user.PasswordHash)
	suite.Equal(user.UserID, user.CreatedBy)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateEmail() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Name: "Marisol", Email: "marisol@example.com", Password: "s3cret-pass"}
	existing := &domain.User{UserID: uuid.NewString(), Email: req.Email}

	suite.mockUserRepo.On("FindUserByEmail", ctx, req.Email).Return(existing, nil).Once()

	_, err := suite.service.CreateUser(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

// --- AuthenticateUser ---

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)
	user := &domain.User{UserID: uuid.NewString(), Email: "marisol@example.com", PasswordHash: hash}

	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	got, err := suite.service.AuthenticateUser(ctx, user.Email, "correct-horse")

	suite.Require().NoError(err)
	suite.Equal(user.UserID, got.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)
	user := &domain.User{UserID: uuid.NewString(), Email: "marisol@example.com", PasswordHash: hash}

	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	_, err = suite.service.AuthenticateUser(ctx, user.Email, "battery-staple")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownEmail() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.AuthenticateUser(ctx, "nobody@example.com", "whatever")

	suite.Require().Error(err)
	// Same error as a wrong password, so callers cannot tell which failed.
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

// --- UpdateUser / DeleteUser ownership ---

func (suite *UserServiceTestSuite) TestUpdateUser_OtherUserForbidden() {
	ctx := context.Background()
	name := "New Name"

	_, err := suite.service.UpdateUser(ctx, uuid.NewString(), dto.UpdateUserRequest{Name: &name}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestDeleteUser_OtherUserForbidden() {
	ctx := context.Background()

	err := suite.service.DeleteUser(ctx, uuid.NewString(), uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "DeleteUser", mock.Anything, mock.Anything)
}

// --- Refresh token bookkeeping ---

func (suite *UserServiceTestSuite) TestGetUserByRefreshTokenHash_Unknown() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByRefreshTokenHash", ctx, "deadbeef").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetUserByRefreshTokenHash(ctx, "deadbeef")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestClearRefreshToken() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("UpdateRefreshToken", ctx, userID, "", (*time.Time)(nil)).Return(nil).Once()

	err := suite.service.ClearRefreshToken(ctx, userID)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
