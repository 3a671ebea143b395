package auth

import (
	"context"
	"testing"

	"marinahub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Mock repositories
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockJWTService struct {
	mock.Mock
}

func (m *MockJWTService) GenerateToken(userID int64, role string, marinaID *int64) (string, error) {
	args := m.Called(userID, role, marinaID)
	return args.String(0), args.Error(1)
}

func TestService_Register_Success(t *testing.T) {
	users := new(MockUserRepository)
	jwtSvc := new(MockJWTService)
	svc := NewService(users, jwtSvc)

	users.On("GetByEmail", mock.Anything, "harbor@example.com").Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	user, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "Harbor@Example.com",
		Password: "supersecret",
		Name:     "Harbor Master",
	})

	assert.NoError(t, err)
	assert.Equal(t, "harbor@example.com", user.Email)
	assert.Equal(t, domain.RoleStaff, user.Role)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "supersecret", user.PasswordHash)
	users.AssertExpectations(t)
}

// Self-registration must never grant a privileged role; that path goes
// through the admin-gated CreateUser.
func TestService_Register_AlwaysStaff(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, new(MockJWTService))

	users.On("GetByEmail", mock.Anything, "sneaky@example.com").Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	user, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "sneaky@example.com",
		Password: "supersecret",
		Name:     "Sneaky",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleStaff, user.Role)
}

func TestService_CreateUser_AssignsRole(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, new(MockJWTService))

	users.On("GetByEmail", mock.Anything, "manager@example.com").Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	marinaID := int64(2)
	user, err := svc.CreateUser(context.Background(), CreateUserRequest{
		Email:    "manager@example.com",
		Password: "supersecret",
		Name:     "Pier Manager",
		Role:     "manager",
		MarinaID: &marinaID,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleManager, user.Role)
	assert.Equal(t, &marinaID, user.MarinaID)
}

func TestService_Register_EmailTaken(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, new(MockJWTService))

	users.On("GetByEmail", mock.Anything, "taken@example.com").
		Return(&domain.User{ID: 1, Email: "taken@example.com"}, nil)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "taken@example.com",
		Password: "supersecret",
		Name:     "Someone",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestService_Login_Success(t *testing.T) {
	users := new(MockUserRepository)
	jwtSvc := new(MockJWTService)
	svc := NewService(users, jwtSvc)

	hash, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.DefaultCost)
	users.On("GetByEmail", mock.Anything, "harbor@example.com").Return(&domain.User{
		ID:           7,
		Email:        "harbor@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}, nil)
	jwtSvc.On("GenerateToken", int64(7), "admin", (*int64)(nil)).Return("token-abc", nil)

	result, err := svc.Login(context.Background(), LoginRequest{
		Email:    "harbor@example.com",
		Password: "supersecret",
	})

	assert.NoError(t, err)
	assert.Equal(t, "token-abc", result.AccessToken)
	assert.Equal(t, int64(7), result.User.ID)
}

func TestService_Login_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, new(MockJWTService))

	hash, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.DefaultCost)
	users.On("GetByEmail", mock.Anything, "harbor@example.com").Return(&domain.User{
		ID:           7,
		PasswordHash: string(hash),
		IsActive:     true,
	}, nil)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "harbor@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, new(MockJWTService))

	users.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_DisabledAccount(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, new(MockJWTService))

	hash, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.DefaultCost)
	users.On("GetByEmail", mock.Anything, "gone@example.com").Return(&domain.User{
		ID:           8,
		PasswordHash: string(hash),
		IsActive:     false,
	}, nil)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "gone@example.com",
		Password: "supersecret",
	})

	assert.ErrorIs(t, err, ErrAccountDisabled)
}
