package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister = "Registration successful! Please log in."
	MessageSuccessLogin    = "Login successful!"
	MessageSuccessLogout   = "You have been logged out."

	MessageFailedRegister = "failed to register user"
	MessageFailedLogin    = "failed to login"

	ErrUserAlreadyExists    = errors.New("username or email already exists")
	ErrCredentialsInvalid   = errors.New("invalid username or password")
	ErrUserNotFound         = errors.New("user not found")
	ErrPasswordNotGenerated = errors.New("failed to hash password")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" form:"name" validate:"required"`
		Username string `json:"username" form:"username" validate:"required"`
		Email    string `json:"email" form:"email" validate:"required,email"`
		Phone    string `json:"phone" form:"phone" validate:"required"`
		Password string `json:"password" form:"password" validate:"required,min=6"`
	}

	RegisterResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Username  string    `json:"username"`
		Email     string    `json:"email"`
		CreatedAt time.Time `json:"created_at"`
	}

	LoginRequest struct {
		Username string `json:"username" form:"username" validate:"required"`
		Password string `json:"password" form:"password" validate:"required"`
	}

	LoginResponse struct {
		UserID   string `json:"user_id"`
		Username string `json:"username"`
		Token    string `json:"token"`
	}
)
