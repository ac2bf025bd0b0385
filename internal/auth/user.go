package auth

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrCredentialTaken    = errors.New("username or email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidUser        = errors.New("invalid user")
)

var (
	usernameRe  = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	userEmailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)
)

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in *RegisterInput) Normalize() {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
}

func (in *RegisterInput) Validate() error {
	if len(in.Username) < 3 || len(in.Username) > 30 {
		return fmt.Errorf("%w: username harus 3-30 karakter", ErrInvalidUser)
	}
	if !usernameRe.MatchString(in.Username) {
		return fmt.Errorf("%w: username hanya boleh huruf, angka, underscore", ErrInvalidUser)
	}
	if !userEmailRe.MatchString(in.Email) {
		return fmt.Errorf("%w: email tidak valid", ErrInvalidUser)
	}
	if len(in.Password) < 6 || len(in.Password) > 100 {
		return fmt.Errorf("%w: password harus 6-100 karakter", ErrInvalidUser)
	}
	return nil
}
