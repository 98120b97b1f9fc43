// Package credential реализует хранение bearer-токена на диске.
//
// Хранится единственная запись с окном действия 7 дней. Файл доступен только
// владельцу (0600) — аналог флагов secure/httpOnly браузерной куки. Если сам
// токен является JWT и несёт более ранний exp, окно сокращается до него.
package credential

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TTL окно действия сохранённого токена, как у куки оригинального клиента.
const TTL = 7 * 24 * time.Hour

// ErrNotFound возвращается, когда действующий токен отсутствует.
var ErrNotFound = errors.New("credential not found")

type record struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store файловое хранилище единственного токена.
// Потокобезопасно; единственные писатели — операции сессии и обработчик 401.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore создаёт хранилище с файлом по указанному пути.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Save записывает токен с окном действия TTL от текущего момента.
func (s *Store) Save(token string) error {
	const op = "credential.Save"

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := record{Token: token, ExpiresAt: time.Now().Add(TTL)}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Load возвращает сохранённый токен. Просроченная или отсутствующая запись
// считается отсутствием токена и возвращает ErrNotFound.
func (s *Store) Load() (string, error) {
	const op = "credential.Load"

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		// повреждённый файл равносилен отсутствию токена
		return "", ErrNotFound
	}
	if time.Now().After(expiry(rec)) {
		return "", ErrNotFound
	}
	return rec.Token, nil
}

// Clear удаляет сохранённый токен. Идемпотентна.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = os.Remove(s.path)
}

// Token реализует api.TokenSource: действующий токен и признак его наличия.
func (s *Store) Token() (string, bool) {
	tok, err := s.Load()
	if err != nil {
		return "", false
	}
	return tok, true
}

// expiry возвращает момент истечения записи: сохранённое окно, либо exp из
// самого JWT, если он наступает раньше. Подпись не проверяется — клиенту
// токен непрозрачен, exp читается только чтобы не отправлять заведомо
// мёртвый токен.
func expiry(rec record) time.Time {
	exp := rec.ExpiresAt
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(rec.Token, claims); err != nil {
		return exp
	}
	tokenExp, err := claims.GetExpirationTime()
	if err != nil || tokenExp == nil {
		return exp
	}
	if tokenExp.Time.Before(exp) {
		return tokenExp.Time
	}
	return exp
}
