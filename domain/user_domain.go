package domain

import (
	"errors"
)

var (
	MessageSuccessRegister = "user registered successfully"
	MessageSuccessLogin    = "login successful"

	MessageFailedRegister = "failed to register user"
	MessageFailedLogin    = "failed to login"

	ErrEmailAlreadyExists = errors.New("User[email] already exists")
	ErrCredentialsInvalid = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrPasswordHashFailed = errors.New("failed to hash password")
	ErrTokenSigningFailed = errors.New("failed to sign token")
)

type (
	RegisterRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
		Name     string `json:"name" validate:"required"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	AuthResponse struct {
		Token string `json:"token"`
	}
)
