// Package dashboard формирует сводку кабинета для стаба бэкенда.
//
// Отчёты и документы живут в бэкенде и в стабе не моделируются; сводка
// детерминированно выводится из email, чтобы клиент видел стабильные числа.
package dashboard

import (
	"fmt"
	"hash/fnv"

	"github.com/proval-lk/valuer-client/internal/models"
)

// Service строит сводку кабинета.
type Service struct{}

// New создаёт новый экземпляр Service.
func New() *Service {
	return &Service{}
}

// Build возвращает сводку для учётной записи.
func (s *Service) Build(email string) *models.Dashboard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(email))
	seed := h.Sum32()

	total := int(seed%7) + 2
	completed := total / 2
	draft := total - completed

	docsTotal := int(seed%5) + 1
	processed := docsTotal - 1

	reports := make([]models.Report, 0, 3)
	statuses := []string{"completed", "draft", "in_progress"}
	types := []string{"Residential", "Commercial", "Land"}
	for i := 0; i < 3 && i < total; i++ {
		reports = append(reports, models.Report{
			ID:              fmt.Sprintf("rep-%d-%d", seed%1000, i+1),
			ReferenceNumber: fmt.Sprintf("VAL/%04d/%02d", seed%10000, i+1),
			Status:          statuses[i%len(statuses)],
			PropertyType:    types[i%len(types)],
			PropertyAddress: fmt.Sprintf("No. %d, Main Street, Colombo", int(seed%80)+i+1),
			ClientName:      "Sample Client",
			CreatedAt:       fmt.Sprintf("2026-08-%02dT09:00:00Z", (int(seed)%27)+1),
		})
	}

	return &models.Dashboard{
		Statistics: models.DashboardStatistics{
			Reports:   models.ReportStats{Total: total, Completed: completed, Draft: draft},
			Documents: models.DocumentStats{Total: docsTotal, Processed: processed, Pending: docsTotal - processed},
		},
		RecentReports: reports,
	}
}
