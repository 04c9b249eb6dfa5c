package repository

import (
	"context"

	"gorm.io/gorm"

	"labadmin/internal/model"
)

const listLaboratoriesQuery = `SELECT laboratorio.id_laboratorio, laboratorio.nome_laboratorio,
       usuario.nome_usuario AS responsavel, usuario.email
FROM laboratorio
LEFT JOIN usuario ON laboratorio.usuario_email = usuario.email`

// LaboratoryRepository defines laboratory persistence operations.
type LaboratoryRepository interface {
	Create(ctx context.Context, lab *model.Laboratory) error
	ListWithResponsible(ctx context.Context) ([]model.LaboratoryListing, error)
	Delete(ctx context.Context, id uint64) (int64, error)
}

type laboratoryRepository struct {
	db *gorm.DB
}

// NewLaboratoryRepository creates a new laboratory repository.
func NewLaboratoryRepository(db *gorm.DB) LaboratoryRepository {
	return &laboratoryRepository{db: db}
}

// Create inserts the laboratory and fills in its generated ID.
func (r *laboratoryRepository) Create(ctx context.Context, lab *model.Laboratory) error {
	return r.db.WithContext(ctx).Create(lab).Error
}

// ListWithResponsible joins each laboratory with the user owning its email.
// Laboratories whose email matches nobody come back with nil user fields.
func (r *laboratoryRepository) ListWithResponsible(ctx context.Context) ([]model.LaboratoryListing, error) {
	labs := make([]model.LaboratoryListing, 0)
	if err := r.db.WithContext(ctx).Raw(listLaboratoriesQuery).Scan(&labs).Error; err != nil {
		return nil, err
	}
	return labs, nil
}

func (r *laboratoryRepository) Delete(ctx context.Context, id uint64) (int64, error) {
	res := r.db.WithContext(ctx).Where("id_laboratorio = ?", id).Delete(&model.Laboratory{})
	return res.RowsAffected, res.Error
}
