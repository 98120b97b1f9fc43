// Package storage реализует хранилище учётных записей стаба бэкенда.
//
// Хранилище целиком в памяти: стаб существует, чтобы клиент работал без
// какой-либо инфраструктуры, поэтому база данных здесь неуместна.
package storage

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/proval-lk/valuer-client/internal/models"
)

// Ошибки хранилища.
var (
	ErrNotFound        = errors.New("account not found")
	ErrEmailTaken      = errors.New("email already registered")
	ErrTokenNotFound   = errors.New("verification token not found")
	ErrIndexOutOfRange = errors.New("qualification index out of range")
)

// Account учётная запись стаба: профиль плюс служебные поля.
type Account struct {
	User              models.User
	PasswordHash      string
	VerificationToken string
}

// MemoryStore потокобезопасное in-memory хранилище учётных записей.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[string]*Account // ключ — email
	byToken  map[string]string   // verification token -> email
}

// NewMemoryStore создаёт пустое хранилище.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		accounts: make(map[string]*Account),
		byToken:  make(map[string]string),
	}
}

// Create сохраняет новую учётную запись и выдаёт токен подтверждения почты.
func (s *MemoryStore) Create(req models.RegisterRequest, passwordHash string) (*models.User, string, error) {
	const op = "storage.Create"

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[req.Email]; ok {
		return nil, "", fmt.Errorf("%s: %w", op, ErrEmailTaken)
	}

	user := models.User{
		ID:                 uuid.NewString(),
		Email:              req.Email,
		FullName:           req.FullName,
		Honorable:          req.Honorable,
		ProfessionalTitle:  req.ProfessionalTitle,
		IVSLRegistration:   req.IVSLRegistration,
		IVSLMembership:     req.IVSLMembership,
		ProfessionalStatus: req.ProfessionalStatus,
		Qualifications:     append([]string(nil), req.Qualifications...),
		ContactNumber:      req.ContactNumber,
		MobileNumber:       req.MobileNumber,
		AlternativeContact: req.AlternativeContact,
		AddressHouse:       req.AddressHouse,
		AddressStreet:      req.AddressStreet,
		AddressArea:        req.AddressArea,
		AddressCity:        req.AddressCity,
		AddressDistrict:    req.AddressDistrict,
	}
	user.ProfileCompleteness = completeness(&user)

	token := uuid.NewString()
	s.accounts[req.Email] = &Account{
		User:              user,
		PasswordHash:      passwordHash,
		VerificationToken: token,
	}
	s.byToken[token] = req.Email

	u := user
	return &u, token, nil
}

// Get возвращает учётную запись по email.
func (s *MemoryStore) Get(email string) (*Account, error) {
	const op = "storage.Get"

	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[email]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	cp := *acc
	cp.User.Qualifications = append([]string(nil), acc.User.Qualifications...)
	return &cp, nil
}

// UpdateProfile заменяет редактируемые поля профиля и пересчитывает
// заполненность. Возвращает обновлённый профиль целиком.
func (s *MemoryStore) UpdateProfile(email string, req models.ProfileUpdateRequest) (*models.User, error) {
	const op = "storage.UpdateProfile"

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[email]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	u := &acc.User
	u.FullName = req.FullName
	u.Honorable = req.Honorable
	u.ProfessionalTitle = req.ProfessionalTitle
	u.IVSLRegistration = req.IVSLRegistration
	u.IVSLMembership = req.IVSLMembership
	u.ProfessionalStatus = req.ProfessionalStatus
	u.ContactNumber = req.ContactNumber
	u.MobileNumber = req.MobileNumber
	u.AlternativeContact = req.AlternativeContact
	u.AddressHouse = req.AddressHouse
	u.AddressStreet = req.AddressStreet
	u.AddressArea = req.AddressArea
	u.AddressCity = req.AddressCity
	u.AddressDistrict = req.AddressDistrict
	u.ProfileCompleteness = completeness(u)

	cp := *u
	cp.Qualifications = append([]string(nil), u.Qualifications...)
	return &cp, nil
}

// AddQualification добавляет квалификацию в конец списка. Порядок
// сохраняется, дубликаты допустимы.
func (s *MemoryStore) AddQualification(email, qualification string) ([]string, error) {
	const op = "storage.AddQualification"

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[email]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	acc.User.Qualifications = append(acc.User.Qualifications, qualification)
	acc.User.ProfileCompleteness = completeness(&acc.User)
	return append([]string(nil), acc.User.Qualifications...), nil
}

// RemoveQualification удаляет квалификацию по индексу.
func (s *MemoryStore) RemoveQualification(email string, index int) ([]string, error) {
	const op = "storage.RemoveQualification"

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[email]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if index < 0 || index >= len(acc.User.Qualifications) {
		return nil, fmt.Errorf("%s: %w", op, ErrIndexOutOfRange)
	}
	acc.User.Qualifications = append(acc.User.Qualifications[:index], acc.User.Qualifications[index+1:]...)
	acc.User.ProfileCompleteness = completeness(&acc.User)
	return append([]string(nil), acc.User.Qualifications...), nil
}

// VerifyByToken помечает почту подтверждённой по токену из письма.
func (s *MemoryStore) VerifyByToken(token string) (*models.User, error) {
	const op = "storage.VerifyByToken"

	s.mu.Lock()
	defer s.mu.Unlock()

	email, ok := s.byToken[token]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrTokenNotFound)
	}
	acc := s.accounts[email]
	acc.User.IsVerified = true
	acc.VerificationToken = ""
	delete(s.byToken, token)

	cp := acc.User
	return &cp, nil
}

// RotateVerificationToken выдаёт новый токен подтверждения для повторного
// письма.
func (s *MemoryStore) RotateVerificationToken(email string) (string, error) {
	const op = "storage.RotateVerificationToken"

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[email]
	if !ok {
		return "", fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if acc.VerificationToken != "" {
		delete(s.byToken, acc.VerificationToken)
	}
	token := uuid.NewString()
	acc.VerificationToken = token
	s.byToken[token] = email
	return token, nil
}

// completeness считает процент заполненных полей профиля.
func completeness(u *models.User) int {
	fields := []string{
		u.FullName,
		u.Honorable,
		u.ProfessionalTitle,
		u.IVSLRegistration,
		u.IVSLMembership,
		u.ProfessionalStatus,
		u.ContactNumber,
		u.MobileNumber,
		u.AlternativeContact,
		u.AddressHouse,
		u.AddressStreet,
		u.AddressArea,
		u.AddressCity,
		u.AddressDistrict,
	}
	filled := 0
	for _, f := range fields {
		if f != "" {
			filled++
		}
	}
	if len(u.Qualifications) > 0 {
		filled++
	}
	return filled * 100 / (len(fields) + 1)
}
