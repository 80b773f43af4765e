package user

import (
	"context"
	"testing"

	"github.com/Om136/rentals/domain"
	"github.com/Om136/rentals/entities"
	gojwt "github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	usersByEmail map[string]*entities.User
	nextID       uint
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{usersByEmail: map[string]*entities.User{}, nextID: 1}
}

func (r *fakeUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	user.ID = r.nextID
	r.nextID++
	r.usersByEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	user, ok := r.usersByEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepository) GetUserByID(_ context.Context, id uint) (*entities.User, error) {
	for _, user := range r.usersByEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type stubJWTService struct {
	lastUserID string
	lastRole   string
}

func (s *stubJWTService) GenerateTokenUser(userID string, role string) string {
	s.lastUserID = userID
	s.lastRole = role
	return "token-" + userID
}

func (s *stubJWTService) ValidateTokenUser(string) (*gojwt.Token, error) { return nil, nil }

func (s *stubJWTService) GetUserIDByToken(string) (string, string, error) {
	return s.lastUserID, s.lastRole, nil
}

func TestUserServiceRegister(t *testing.T) {
	repo := newFakeUserRepository()
	jwtStub := &stubJWTService{}
	service := NewUserService(repo, jwtStub)

	resp, err := service.Register(context.Background(), domain.RegisterRequest{
		Email:    "renter@example.com",
		Password: "hunter2hunter2",
		Name:     "Renter",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-1", resp.Token)
	assert.Equal(t, domain.RoleUser, jwtStub.lastRole)

	stored := repo.usersByEmail["renter@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "hunter2hunter2", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("hunter2hunter2")))
}

func TestUserServiceRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, &stubJWTService{})

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Email:    "renter@example.com",
		Password: "hunter2hunter2",
		Name:     "Renter",
	})
	require.NoError(t, err)

	_, err = service.Register(context.Background(), domain.RegisterRequest{
		Email:    "renter@example.com",
		Password: "different-pass",
		Name:     "Impostor",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.EqualError(t, err, "User[email] already exists")
}

func TestUserServiceLogin(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, &stubJWTService{})

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Email:    "renter@example.com",
		Password: "hunter2hunter2",
		Name:     "Renter",
	})
	require.NoError(t, err)

	resp, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "renter@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-1", resp.Token)
}

func TestUserServiceLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, &stubJWTService{})

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Email:    "renter@example.com",
		Password: "hunter2hunter2",
		Name:     "Renter",
	})
	require.NoError(t, err)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "renter@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestUserServiceLoginUnknownEmail(t *testing.T) {
	service := NewUserService(newFakeUserRepository(), &stubJWTService{})

	_, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}
