// Package models содержит доменные структуры клиента: профиль пользователя,
// полезные нагрузки запросов и формы ответов бэкенда.
package models

// User представляет профиль оценщика, возвращаемый бэкендом.
// Бэкенд является источником истины: после любой мутации локальная копия
// заменяется целиком представлением сервера, без частичного слияния.
type User struct {
	ID                  string   `json:"id,omitempty"`
	Email               string   `json:"email"`
	FullName            string   `json:"full_name"`
	Honorable           string   `json:"honorable,omitempty"`           // Обращение (Mr, Mrs, Dr и т.п.)
	ProfessionalTitle   string   `json:"professional_title,omitempty"`  // Должность
	IVSLRegistration    string   `json:"ivsl_registration,omitempty"`   // Регистрационный номер IVSL
	IVSLMembership      string   `json:"ivsl_membership,omitempty"`     // Уровень членства IVSL
	ProfessionalStatus  string   `json:"professional_status,omitempty"` // Профессиональный статус
	Qualifications      []string `json:"qualifications,omitempty"`      // Квалификации, порядок сохраняется
	ContactNumber       string   `json:"contact_number,omitempty"`
	MobileNumber        string   `json:"mobile_number,omitempty"`
	AlternativeContact  string   `json:"alternative_contact,omitempty"`
	AddressHouse        string   `json:"address_house,omitempty"`
	AddressStreet       string   `json:"address_street,omitempty"`
	AddressArea         string   `json:"address_area,omitempty"`
	AddressCity         string   `json:"address_city,omitempty"`
	AddressDistrict     string   `json:"address_district,omitempty"`
	IsVerified          bool     `json:"is_verified"`
	ProfileCompleteness int      `json:"profile_completeness"` // Процент заполненности профиля, считает сервер
}

// RegisterRequest описывает полезную нагрузку регистрации.
// Валидируется на клиенте перед отправкой и на сервере повторно.
type RegisterRequest struct {
	Email              string   `json:"email" validate:"required,email"`
	Password           string   `json:"password" validate:"required,min=8"`
	FullName           string   `json:"full_name" validate:"required,min=2,max=100"`
	Honorable          string   `json:"honorable,omitempty"`
	ProfessionalTitle  string   `json:"professional_title,omitempty"`
	IVSLRegistration   string   `json:"ivsl_registration,omitempty"`
	IVSLMembership     string   `json:"ivsl_membership,omitempty"`
	ProfessionalStatus string   `json:"professional_status,omitempty"`
	Qualifications     []string `json:"qualifications,omitempty"`
	ContactNumber      string   `json:"contact_number,omitempty"`
	MobileNumber       string   `json:"mobile_number,omitempty"`
	AlternativeContact string   `json:"alternative_contact,omitempty"`
	AddressHouse       string   `json:"address_house,omitempty"`
	AddressStreet      string   `json:"address_street,omitempty"`
	AddressArea        string   `json:"address_area,omitempty"`
	AddressCity        string   `json:"address_city,omitempty"`
	AddressDistrict    string   `json:"address_district,omitempty"`
}

// ProfileUpdateRequest описывает полезную нагрузку PUT /users/profile.
type ProfileUpdateRequest struct {
	FullName           string `json:"full_name" validate:"required,min=2,max=100"`
	Honorable          string `json:"honorable,omitempty"`
	ProfessionalTitle  string `json:"professional_title,omitempty"`
	IVSLRegistration   string `json:"ivsl_registration,omitempty"`
	IVSLMembership     string `json:"ivsl_membership,omitempty"`
	ProfessionalStatus string `json:"professional_status,omitempty"`
	ContactNumber      string `json:"contact_number,omitempty"`
	MobileNumber       string `json:"mobile_number,omitempty"`
	AlternativeContact string `json:"alternative_contact,omitempty"`
	AddressHouse       string `json:"address_house,omitempty"`
	AddressStreet      string `json:"address_street,omitempty"`
	AddressArea        string `json:"address_area,omitempty"`
	AddressCity        string `json:"address_city,omitempty"`
	AddressDistrict    string `json:"address_district,omitempty"`
}
