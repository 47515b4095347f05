package cooperatives

import (
	"context"

	"gorm.io/gorm"

	"github.com/ecolinkdev/ecolink-back/pkg/db/models"
	"github.com/ecolinkdev/ecolink-back/pkg/pagination"
)

// Repository exposes cooperative persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a cooperatives repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new cooperative and returns the persisted model.
func (r *Repository) Create(ctx context.Context, dto CreateCooperativeDTO) (*models.Cooperative, error) {
	row := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// List returns the shared directory ordered by creation time.
func (r *Repository) List(ctx context.Context, page pagination.Params) ([]models.Cooperative, error) {
	page = page.Normalize()

	var rows []models.Cooperative
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
