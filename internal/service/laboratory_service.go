package service

import (
	"context"
	"fmt"

	"labadmin/internal/model"
	"labadmin/internal/repository"
)

// LaboratoryService handles laboratory operations.
type LaboratoryService interface {
	ListLaboratories(ctx context.Context) ([]model.LaboratoryListing, error)
	// CreateLaboratory does not check that responsibleEmail belongs to a user.
	CreateLaboratory(ctx context.Context, name, responsibleEmail string) (uint64, error)
	// DeleteLaboratory succeeds whether or not a laboratory had that ID.
	DeleteLaboratory(ctx context.Context, id uint64) error
}

type laboratoryService struct {
	repo repository.LaboratoryRepository
}

// NewLaboratoryService creates a new laboratory service.
func NewLaboratoryService(repo repository.LaboratoryRepository) LaboratoryService {
	return &laboratoryService{repo: repo}
}

func (s *laboratoryService) ListLaboratories(ctx context.Context) ([]model.LaboratoryListing, error) {
	return s.repo.ListWithResponsible(ctx)
}

func (s *laboratoryService) CreateLaboratory(ctx context.Context, name, responsibleEmail string) (uint64, error) {
	lab := &model.Laboratory{Name: name, ResponsibleEmail: responsibleEmail}
	if err := s.repo.Create(ctx, lab); err != nil {
		return 0, fmt.Errorf("create laboratory: %w", err)
	}
	return lab.ID, nil
}

func (s *laboratoryService) DeleteLaboratory(ctx context.Context, id uint64) error {
	if _, err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete laboratory: %w", err)
	}
	return nil
}
