package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proval-lk/valuer-client/internal/models"
)

func newAccount(t *testing.T, s *MemoryStore) (*models.User, string) {
	t.Helper()
	user, token, err := s.Create(models.RegisterRequest{
		Email:    "valuer@example.lk",
		Password: "password123",
		FullName: "Test Valuer",
	}, "hash")
	require.NoError(t, err)
	return user, token
}

func TestMemoryStore_Create(t *testing.T) {
	s := NewMemoryStore()

	user, token := newAccount(t, s)
	assert.NotEmpty(t, user.ID)
	assert.NotEmpty(t, token)
	assert.False(t, user.IsVerified)

	_, _, err := s.Create(models.RegisterRequest{Email: "valuer@example.lk", Password: "x", FullName: "Another"}, "hash")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestMemoryStore_Get(t *testing.T) {
	s := NewMemoryStore()
	newAccount(t, s)

	acc, err := s.Get("valuer@example.lk")
	require.NoError(t, err)
	assert.Equal(t, "Test Valuer", acc.User.FullName)
	assert.Equal(t, "hash", acc.PasswordHash)

	_, err = s.Get("nobody@example.lk")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_UpdateProfile(t *testing.T) {
	s := NewMemoryStore()
	user, _ := newAccount(t, s)
	before := user.ProfileCompleteness

	updated, err := s.UpdateProfile("valuer@example.lk", models.ProfileUpdateRequest{
		FullName:        "Renamed Valuer",
		ContactNumber:   "0112345678",
		AddressCity:     "Colombo",
		AddressDistrict: "Colombo",
	})
	require.NoError(t, err)

	assert.Equal(t, "Renamed Valuer", updated.FullName)
	assert.Greater(t, updated.ProfileCompleteness, before)

	// замена целиком: пустое поле в запросе очищает поле профиля
	updated, err = s.UpdateProfile("valuer@example.lk", models.ProfileUpdateRequest{FullName: "Renamed Valuer"})
	require.NoError(t, err)
	assert.Empty(t, updated.ContactNumber)

	_, err = s.UpdateProfile("nobody@example.lk", models.ProfileUpdateRequest{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Qualifications(t *testing.T) {
	s := NewMemoryStore()
	newAccount(t, s)

	list, err := s.AddQualification("valuer@example.lk", "BSc Estate Management")
	require.NoError(t, err)
	list, err = s.AddQualification("valuer@example.lk", "RICS")
	require.NoError(t, err)
	assert.Equal(t, []string{"BSc Estate Management", "RICS"}, list)

	list, err = s.RemoveQualification("valuer@example.lk", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"RICS"}, list)

	_, err = s.RemoveQualification("valuer@example.lk", 5)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = s.RemoveQualification("valuer@example.lk", -1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestMemoryStore_VerifyByToken(t *testing.T) {
	s := NewMemoryStore()
	_, token := newAccount(t, s)

	user, err := s.VerifyByToken(token)
	require.NoError(t, err)
	assert.True(t, user.IsVerified)

	// токен одноразовый
	_, err = s.VerifyByToken(token)
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestMemoryStore_RotateVerificationToken(t *testing.T) {
	s := NewMemoryStore()
	_, old := newAccount(t, s)

	fresh, err := s.RotateVerificationToken("valuer@example.lk")
	require.NoError(t, err)
	assert.NotEqual(t, old, fresh)

	// старый токен отозван, новый действует
	_, err = s.VerifyByToken(old)
	assert.ErrorIs(t, err, ErrTokenNotFound)

	user, err := s.VerifyByToken(fresh)
	require.NoError(t, err)
	assert.True(t, user.IsVerified)

	_, err = s.RotateVerificationToken("nobody@example.lk")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCompleteness(t *testing.T) {
	u := &models.User{}
	assert.Zero(t, completeness(u))

	u.FullName = "Test Valuer"
	assert.Equal(t, 6, completeness(u)) // 1 из 15 слотов

	u = &models.User{
		FullName:           "Test Valuer",
		Honorable:          "Mr.",
		ProfessionalTitle:  "Chartered Valuer",
		IVSLRegistration:   "IVSL/123",
		IVSLMembership:     "Fellow",
		ProfessionalStatus: "Active",
		ContactNumber:      "0112345678",
		MobileNumber:       "0711234567",
		AlternativeContact: "0777654321",
		AddressHouse:       "12A",
		AddressStreet:      "Galle Road",
		AddressArea:        "Kollupitiya",
		AddressCity:        "Colombo",
		AddressDistrict:    "Colombo",
		Qualifications:     []string{"RICS"},
	}
	assert.Equal(t, 100, completeness(u))
}
