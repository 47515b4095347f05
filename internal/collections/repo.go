package collections

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ecolinkdev/ecolink-back/pkg/db/models"
	"github.com/ecolinkdev/ecolink-back/pkg/pagination"
)

// Repository exposes collection persistence operations. All owner-scoped
// reads filter on user_id so a missing row and a foreign row are
// indistinguishable.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a collections repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new collection and returns the persisted model.
func (r *Repository) Create(ctx context.Context, dto CreateCollectionDTO) (*models.Collection, error) {
	row := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// ListByOwner returns the caller's collections ordered by creation time.
func (r *Repository) ListByOwner(ctx context.Context, ownerID uuid.UUID, page pagination.Params) ([]models.Collection, error) {
	page = page.Normalize()

	var rows []models.Collection
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at ASC").
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListAll returns every collection regardless of owner.
func (r *Repository) ListAll(ctx context.Context, page pagination.Params) ([]models.Collection, error) {
	page = page.Normalize()

	var rows []models.Collection
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

// FindByIDForOwner loads a collection only if it belongs to the owner.
func (r *Repository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*models.Collection, error) {
	var row models.Collection
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Save writes the full model back, refreshing updated_at.
func (r *Repository) Save(ctx context.Context, row *models.Collection) error {
	return r.db.WithContext(ctx).Save(row).Error
}
