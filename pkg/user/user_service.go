package user

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/Om136/rentals/domain"
	"github.com/Om136/rentals/entities"
	"github.com/Om136/rentals/internal/utils/mailing"
	"github.com/Om136/rentals/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error) {
	_, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err == nil {
		return domain.AuthResponse{}, domain.ErrEmailAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.AuthResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.AuthResponse{}, domain.ErrPasswordHashFailed
	}

	user := &entities.User{
		Email:    req.Email,
		Password: string(hashed),
		Name:     req.Name,
	}
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.AuthResponse{}, err
	}

	go func() {
		body := fmt.Sprintf("<p>Hi %s,</p><p>Your account is ready. Happy renting!</p>", user.Name)
		if err := mailing.SendMail(user.Email, "Welcome to Rentals", body); err != nil {
			log.Printf("failed to send welcome mail to %s: %v", user.Email, err)
		}
	}()

	token := s.jwtService.GenerateTokenUser(strconv.FormatUint(uint64(user.ID), 10), domain.RoleUser)
	return domain.AuthResponse{Token: token}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AuthResponse{}, domain.ErrCredentialsInvalid
		}
		return domain.AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.AuthResponse{}, domain.ErrCredentialsInvalid
	}

	token := s.jwtService.GenerateTokenUser(strconv.FormatUint(uint64(user.ID), 10), domain.RoleUser)
	return domain.AuthResponse{Token: token}, nil
}
