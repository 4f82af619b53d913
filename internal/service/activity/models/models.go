package models

import (
	"time"

	"github.com/m04kA/HD-AppointmentService/internal/domain"
)

// ActivityResponse ответ с одной записью журнала активности
type ActivityResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Type      string    `json:"type"`
	Details   *string   `json:"details,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ActivityListResponse ответ со списком записей журнала
type ActivityListResponse struct {
	Activities []ActivityResponse `json:"activities"`
}

// FromDomainActivity конвертирует domain модель в DTO
func FromDomainActivity(a *domain.UserActivity) *ActivityResponse {
	if a == nil {
		return nil
	}

	return &ActivityResponse{
		ID:        a.ID,
		UserID:    a.UserID,
		Type:      string(a.Type),
		Details:   a.Details,
		CreatedAt: a.CreatedAt,
	}
}

// FromDomainActivityList конвертирует список domain моделей в DTO
func FromDomainActivityList(activities []*domain.UserActivity) *ActivityListResponse {
	result := make([]ActivityResponse, 0, len(activities))
	for _, a := range activities {
		if a == nil {
			continue
		}
		result = append(result, *FromDomainActivity(a))
	}
	return &ActivityListResponse{Activities: result}
}
