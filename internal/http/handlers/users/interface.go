// Package users реализует HTTP-обработчики кабинета стаба бэкенда:
// /users/profile, /users/dashboard и /users/qualifications.
package users

import (
	"github.com/proval-lk/valuer-client/internal/models"
)

// ProfileRepository описывает контракт хранилища для операций с профилем.
type ProfileRepository interface {
	UpdateProfile(email string, req models.ProfileUpdateRequest) (*models.User, error)
	AddQualification(email, qualification string) ([]string, error)
	RemoveQualification(email string, index int) ([]string, error)
}

// DashboardBuilder описывает контракт построителя сводки кабинета.
type DashboardBuilder interface {
	Build(email string) *models.Dashboard
}
