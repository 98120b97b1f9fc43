// Package auth содержит логику аутентификации стаба бэкенда: регистрацию,
// вход, выдачу профиля и подтверждение почты.
package auth

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/proval-lk/valuer-client/internal/lib/jwt"
	"github.com/proval-lk/valuer-client/internal/lib/password"
	"github.com/proval-lk/valuer-client/internal/models"
	"github.com/proval-lk/valuer-client/internal/storage"
)

// ErrInvalidCredentials возвращается при неверной паре email/пароль.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AccountRepository описывает контракт хранилища учётных записей.
type AccountRepository interface {
	// Create сохраняет новую учётную запись и возвращает профиль
	// вместе с токеном подтверждения почты.
	Create(req models.RegisterRequest, passwordHash string) (*models.User, string, error)

	// Get возвращает учётную запись по email или ошибку, если не найдена.
	Get(email string) (*storage.Account, error)

	// VerifyByToken помечает почту подтверждённой.
	VerifyByToken(token string) (*models.User, error)

	// RotateVerificationToken выдаёт новый токен подтверждения.
	RotateVerificationToken(email string) (string, error)
}

// Service отвечает за регистрацию, вход и подтверждение почты.
type Service struct {
	accounts AccountRepository
	jwtMaker jwt.Maker
	log      *slog.Logger
}

// New создаёт новый экземпляр Service.
func New(accounts AccountRepository, jwtMaker jwt.Maker, log *slog.Logger) *Service {
	return &Service{
		accounts: accounts,
		jwtMaker: jwtMaker,
		log:      log,
	}
}

// Register создаёт учётную запись с хэшированием пароля и выдаёт токен
// доступа. Письмо стаб не отправляет — токен подтверждения пишется в лог.
func (s *Service) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	const op = "auth.Register"

	hashed, err := password.GetHash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	user, verificationToken, err := s.accounts.Create(req, hashed)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("verification email would be sent",
		slog.String("email", user.Email),
		slog.String("verification_token", verificationToken),
	)

	token, err := s.jwtMaker.GenerateToken(user.Email, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &models.AuthResponse{User: user, Token: token, RequiresVerification: true}, nil
}

// Login проверяет пароль и выдаёт токен доступа.
func (s *Service) Login(email, rawPassword string) (*models.AuthResponse, error) {
	const op = "auth.Login"

	acc, err := s.accounts.Get(email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}
	if err := password.CompareHash(acc.PasswordHash, rawPassword); err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	token, err := s.jwtMaker.GenerateToken(acc.User.Email, acc.User.IsVerified)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	user := acc.User
	return &models.AuthResponse{
		User:                 &user,
		Token:                token,
		RequiresVerification: !user.IsVerified,
	}, nil
}

// Me возвращает профиль учётной записи.
func (s *Service) Me(email string) (*models.User, error) {
	const op = "auth.Me"

	acc, err := s.accounts.Get(email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	user := acc.User
	return &user, nil
}

// VerifyEmail подтверждает почту по токену из письма.
func (s *Service) VerifyEmail(token string) (string, error) {
	const op = "auth.VerifyEmail"

	if _, err := s.accounts.VerifyByToken(token); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return "Email verified successfully", nil
}

// ResendVerification выдаёт новый токен подтверждения; личность определяется
// по токену доступа, который прислал клиент.
func (s *Service) ResendVerification(email string) (string, error) {
	const op = "auth.ResendVerification"

	token, err := s.accounts.RotateVerificationToken(email)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("verification email would be re-sent",
		slog.String("email", email),
		slog.String("verification_token", token),
	)
	return "Verification email sent", nil
}
