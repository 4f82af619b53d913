package resources

import (
	"context"
	"errors"
	"fmt"
	"strings"

	resourceRepo "github.com/m04kA/HD-AppointmentService/internal/infra/storage/resource"
	"github.com/m04kA/HD-AppointmentService/internal/service/resources/models"
)

// Service сервис образовательных материалов
type Service struct {
	resourceRepo ResourceRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса материалов
func NewService(resourceRepo ResourceRepository, logger Logger) *Service {
	return &Service{
		resourceRepo: resourceRepo,
		logger:       logger,
	}
}

// Create добавляет новый материал
func (s *Service) Create(ctx context.Context, req *models.UpsertResourceRequest) (*models.ResourceResponse, error) {
	s.logger.Info("Create: creating resource %q, category=%s", req.Title, req.Category)

	if err := validateUpsertRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.resourceRepo.Create(ctx, req.ToDomainResource())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created resource id=%d", created.ID)
	return models.FromDomainResource(created), nil
}

// GetByID получает материал по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ResourceResponse, error) {
	s.logger.Info("GetByID: fetching resource id=%d", id)

	res, err := s.resourceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			s.logger.Warn("GetByID: resource id=%d not found", id)
			return nil, ErrResourceNotFound
		}
		s.logger.Error("GetByID: repository error for resource id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainResource(res), nil
}

// List получает список материалов, опционально по категории
func (s *Service) List(ctx context.Context, category *string) (*models.ResourceListResponse, error) {
	s.logger.Info("List: fetching resources, category=%v", category)

	resources, err := s.resourceRepo.List(ctx, category)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d resources", len(resources))
	return models.FromDomainResourceList(resources), nil
}

// Update обновляет материал целиком
func (s *Service) Update(ctx context.Context, id int64, req *models.UpsertResourceRequest) (*models.ResourceResponse, error) {
	s.logger.Info("Update: updating resource id=%d", id)

	if err := validateUpsertRequest(req); err != nil {
		s.logger.Warn("Update: validation failed for resource id=%d: %v", id, err)
		return nil, err
	}

	res := req.ToDomainResource()
	res.ID = id

	updated, err := s.resourceRepo.Update(ctx, res)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			s.logger.Warn("Update: resource id=%d not found", id)
			return nil, ErrResourceNotFound
		}
		s.logger.Error("Update: repository error for resource id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated resource id=%d", id)
	return models.FromDomainResource(updated), nil
}

// Delete удаляет материал
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting resource id=%d", id)

	if err := s.resourceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			s.logger.Warn("Delete: resource id=%d not found", id)
			return ErrResourceNotFound
		}
		s.logger.Error("Delete: repository error for resource id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted resource id=%d", id)
	return nil
}

// Вспомогательные методы

func validateUpsertRequest(req *models.UpsertResourceRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Category) == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidInput)
	}

	return nil
}
