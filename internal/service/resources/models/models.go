package models

import (
	"time"

	"github.com/m04kA/HD-AppointmentService/internal/domain"
)

// Request модели

// UpsertResourceRequest запрос на добавление или обновление материала
type UpsertResourceRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	URL         string  `json:"url"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	Content     *string `json:"content,omitempty"`
}

// ToDomainResource конвертирует request в domain модель
func (r *UpsertResourceRequest) ToDomainResource() *domain.Resource {
	return &domain.Resource{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		URL:         r.URL,
		ImageURL:    r.ImageURL,
		Content:     r.Content,
	}
}

// Response модели

// ResourceResponse ответ с данными материала
type ResourceResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	URL         string    `json:"url"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	Content     *string   `json:"content,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
}

// ResourceListResponse ответ со списком материалов
type ResourceListResponse struct {
	Resources []ResourceResponse `json:"resources"`
}

// Методы конвертации

// FromDomainResource конвертирует domain модель в DTO
func FromDomainResource(r *domain.Resource) *ResourceResponse {
	if r == nil {
		return nil
	}

	return &ResourceResponse{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		URL:         r.URL,
		ImageURL:    r.ImageURL,
		Content:     r.Content,
		PublishedAt: r.PublishedAt,
	}
}

// FromDomainResourceList конвертирует список domain моделей в DTO
func FromDomainResourceList(resources []*domain.Resource) *ResourceListResponse {
	result := make([]ResourceResponse, 0, len(resources))
	for _, r := range resources {
		if r == nil {
			continue
		}
		result = append(result, *FromDomainResource(r))
	}
	return &ResourceListResponse{Resources: result}
}
