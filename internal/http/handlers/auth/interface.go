// Package auth реализует HTTP-обработчики аутентификации стаба бэкенда:
// /auth/login, /auth/register, /auth/me, /auth/verify-email и
// /auth/resend-verification.
package auth

import (
	"github.com/proval-lk/valuer-client/internal/models"
)

// Service описывает контракт сервиса аутентификации.
type Service interface {
	Register(req models.RegisterRequest) (*models.AuthResponse, error)
	Login(email, password string) (*models.AuthResponse, error)
	Me(email string) (*models.User, error)
	VerifyEmail(token string) (string, error)
	ResendVerification(email string) (string, error)
}
