package models

// Dashboard представляет ответ GET /users/dashboard.
type Dashboard struct {
	Statistics    DashboardStatistics `json:"statistics"`
	RecentReports []Report            `json:"recent_reports"`
}

// DashboardStatistics сводная статистика по отчётам и документам пользователя.
type DashboardStatistics struct {
	Reports   ReportStats   `json:"reports"`
	Documents DocumentStats `json:"documents"`
}

// ReportStats счётчики отчётов об оценке.
type ReportStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Draft     int `json:"draft"`
}

// DocumentStats счётчики загруженных документов.
type DocumentStats struct {
	Total     int `json:"total"`
	Processed int `json:"processed"`
	Pending   int `json:"pending"`
}

// Report краткая карточка отчёта об оценке в списке последних.
type Report struct {
	ID              string `json:"id"`
	ReferenceNumber string `json:"reference_number,omitempty"`
	Status          string `json:"status"` // draft, in_progress или completed
	PropertyType    string `json:"property_type,omitempty"`
	PropertyAddress string `json:"property_address,omitempty"`
	ClientName      string `json:"client_name,omitempty"`
	CreatedAt       string `json:"created_at,omitempty"`
}
