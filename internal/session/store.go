// Package session реализует хранилище клиентской сессии: текущую
// аутентифицированную личность, операции её жизненного цикла и защиту
// маршрутов.
//
// Хранилище — явный объект, передаваемый представлениям через конструкторы,
// а не скрытый синглтон. Токеном владеет credential.Store: он же является
// TokenSource для HTTP-клиента, поэтому "очистить заголовок авторизации"
// здесь означает "очистить хранилище токена". Мутирующие операции
// сериализованы одним мьютексом: состояние пользователя всегда равно
// последнему принятому представлению сервера, гонка "последний ответ
// побеждает" из оригинала исключена.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/proval-lk/valuer-client/internal/api"
	"github.com/proval-lk/valuer-client/internal/lib/sl"
	"github.com/proval-lk/valuer-client/internal/models"
)

// API описывает контракт HTTP-клиента, нужный хранилищу сессии.
type API interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
}

// CredentialStore описывает контракт хранилища bearer-токена.
type CredentialStore interface {
	Save(token string) error
	Clear()
	Token() (string, bool)
}

// State снимок состояния сессии.
// Инвариант: IsAuthenticated истинно тогда и только тогда, когда User задан
// и токен был принят последним аутентификационным вызовом.
type State struct {
	User            *models.User
	IsAuthenticated bool
	Loading         bool
}

// LoginResult результат успешного входа или регистрации.
type LoginResult struct {
	User                 *models.User
	RequiresVerification bool
}

// Store хранилище сессии. Создаётся один раз при старте приложения.
type Store struct {
	api   API
	creds CredentialStore
	log   *slog.Logger

	mu              sync.RWMutex
	user            *models.User
	isAuthenticated bool
	loading         bool

	opMu sync.Mutex // сериализует мутирующие операции

	expiredMu sync.Mutex
	onExpired func()
}

// New создаёт хранилище в состоянии начальной загрузки (loading=true).
func New(apiClient API, creds CredentialStore, log *slog.Logger) *Store {
	return &Store{
		api:     apiClient,
		creds:   creds,
		log:     log,
		loading: true,
	}
}

// OnSessionExpired регистрирует навигационный callback, вызываемый при
// глобальном сбросе сессии (ответ 401 на любом аутентифицированном запросе).
func (s *Store) OnSessionExpired(fn func()) {
	s.expiredMu.Lock()
	defer s.expiredMu.Unlock()
	s.onExpired = fn
}

// State возвращает снимок текущего состояния.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return State{User: copyUser(s.user), IsAuthenticated: s.isAuthenticated, Loading: s.loading}
}

// IsAuthenticated сообщает, аутентифицирована ли сессия.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isAuthenticated
}

// User возвращает копию текущего профиля или nil.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyUser(s.user)
}

// Bootstrap выполняется один раз при старте. Если токен сохранён, запрашивает
// профиль и аутентифицирует сессию; отвергнутый токен удаляется, сессия
// остаётся разлогиненной. Никогда не возвращает ошибку вызывающему — сбой
// деградирует в разлогиненное состояние с записью в лог.
func (s *Store) Bootstrap(ctx context.Context) {
	if err := s.bootstrap(ctx); err != nil {
		s.log.Error("auth initialization failed", sl.Err(err))
	}
}

func (s *Store) bootstrap(ctx context.Context) error {
	const op = "session.bootstrap"

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	if _, ok := s.creds.Token(); !ok {
		return nil
	}

	var resp models.UserResponse
	if err := s.api.Get(ctx, "/auth/me", &resp); err != nil {
		s.creds.Clear()
		return fmt.Errorf("%s: %w: %w", op, ErrStoredCredentialRejected, err)
	}

	s.mu.Lock()
	s.user = resp.User
	s.isAuthenticated = true
	s.mu.Unlock()
	return nil
}

// Login аутентифицирует пользователя. На успех сохраняет токен и заменяет
// состояние сессии; возвращает профиль и признак необходимости подтверждения
// почты. На отказ возвращает ошибку с сообщением сервера или запасным текстом.
func (s *Store) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	var resp models.AuthResponse
	err := s.api.Post(ctx, "/auth/login", models.LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		s.log.Error("login failed", sl.Err(err))
		return nil, messageError(err, fallbackLogin)
	}
	return s.acceptAuth(&resp, fallbackLogin)
}

// Register регистрирует пользователя; контракт идентичен Login.
func (s *Store) Register(ctx context.Context, req models.RegisterRequest) (*LoginResult, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	var resp models.AuthResponse
	err := s.api.Post(ctx, "/auth/register", req, &resp)
	if err != nil {
		s.log.Error("registration failed", sl.Err(err))
		return nil, messageError(err, fallbackRegister)
	}
	return s.acceptAuth(&resp, fallbackRegister)
}

// acceptAuth сохраняет принятый токен и заменяет состояние сессии целиком.
func (s *Store) acceptAuth(resp *models.AuthResponse, fallback string) (*LoginResult, error) {
	if err := s.creds.Save(resp.Token); err != nil {
		// токен не сохранён — сессия остаётся неаутентифицированной
		s.log.Error("failed to persist credential", sl.Err(err))
		s.creds.Clear()
		return nil, errors.New(fallback)
	}
	s.mu.Lock()
	s.user = resp.User
	s.isAuthenticated = true
	s.mu.Unlock()
	return &LoginResult{User: copyUser(resp.User), RequiresVerification: resp.RequiresVerification}, nil
}

// Logout синхронно и безусловно завершает сессию: удаляет токен и очищает
// состояние. Идемпотентна.
func (s *Store) Logout() {
	s.creds.Clear()
	s.mu.Lock()
	s.user = nil
	s.isAuthenticated = false
	s.mu.Unlock()
}

// Expire обрабатывает глобальное истечение сессии, о котором сообщает
// HTTP-слой (ответ 401): состояние сбрасывается как при Logout, затем
// вызывается зарегистрированный навигационный callback.
func (s *Store) Expire() {
	s.Logout()

	s.expiredMu.Lock()
	fn := s.onExpired
	s.expiredMu.Unlock()
	if fn != nil {
		fn()
	}
}

// VerifyEmail подтверждает почту по токену из письма. На успех локально
// помечает текущего пользователя подтверждённым и возвращает сообщение
// сервера.
func (s *Store) VerifyEmail(ctx context.Context, token string) (string, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	var resp models.MessageResponse
	err := s.api.Post(ctx, "/auth/verify-email", models.VerifyEmailRequest{Token: token}, &resp)
	if err != nil {
		s.log.Error("email verification failed", sl.Err(err))
		return "", messageError(err, fallbackVerify)
	}

	s.mu.Lock()
	if s.user != nil {
		s.user.IsVerified = true
	}
	s.mu.Unlock()
	return resp.Message, nil
}

// ResendVerification запрашивает повторную отправку письма подтверждения.
// Личность сервер определяет по приложенному токену; состояние сессии
// не меняется.
func (s *Store) ResendVerification(ctx context.Context) (string, error) {
	var resp models.MessageResponse
	err := s.api.Post(ctx, "/auth/resend-verification", nil, &resp)
	if err != nil {
		s.log.Error("resend verification failed", sl.Err(err))
		return "", messageError(err, fallbackResendVerify)
	}
	return resp.Message, nil
}

// UpdateProfile обновляет профиль. На успех локальное состояние заменяется
// целиком представлением сервера — частичное слияние запрещено, чтобы клиент
// не расходился с системой записи.
func (s *Store) UpdateProfile(ctx context.Context, req models.ProfileUpdateRequest) (*models.User, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	var resp models.UserResponse
	err := s.api.Put(ctx, "/users/profile", req, &resp)
	if err != nil {
		s.log.Error("profile update failed", sl.Err(err))
		return nil, messageError(err, fallbackUpdate)
	}

	s.mu.Lock()
	s.user = resp.User
	s.mu.Unlock()
	return copyUser(resp.User), nil
}

// RefreshUserData повторно запрашивает профиль и заменяет локальную копию.
// Единственная операция, которая отдаёт вызывающему сырую ошибку без
// переупаковки в сообщение.
func (s *Store) RefreshUserData(ctx context.Context) (*models.User, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	var resp models.UserResponse
	if err := s.api.Get(ctx, "/auth/me", &resp); err != nil {
		s.log.Error("failed to refresh user data", sl.Err(err))
		return nil, err
	}

	s.mu.Lock()
	s.user = resp.User
	s.mu.Unlock()
	return copyUser(resp.User), nil
}

// messageError переупаковывает ошибку операции в ошибку с единственным
// человекочитаемым сообщением: текст сервера, если он есть, иначе запасной.
// Вызывающие не должны зависеть от структуры ошибки глубже этого сообщения.
func messageError(err error, fallback string) error {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return errors.New(apiErr.Message)
	}
	return errors.New(fallback)
}

func copyUser(u *models.User) *models.User {
	if u == nil {
		return nil
	}
	cp := *u
	if u.Qualifications != nil {
		cp.Qualifications = append([]string(nil), u.Qualifications...)
	}
	return &cp
}
