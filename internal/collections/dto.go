package collections

import (
	"time"

	"github.com/google/uuid"

	"github.com/ecolinkdev/ecolink-back/pkg/db/models"
	dbtypes "github.com/ecolinkdev/ecolink-back/pkg/db/types"
	"github.com/ecolinkdev/ecolink-back/pkg/enums"
)

const dateLayout = "2006-01-02"

// CreateCollectionRequest is the payload for scheduling a new pickup.
type CreateCollectionRequest struct {
	Date      string                 `json:"date" validate:"required"`
	Time      string                 `json:"time" validate:"required"`
	Address   string                 `json:"address" validate:"required"`
	Materials []dbtypes.MaterialItem `json:"materials" validate:"required,min=1,dive"`
	Status    *string                `json:"status,omitempty"`
}

// UpdateCollectionRequest carries a partial update. Only fields present in
// the body are applied; latitude and longitude travel as a pair.
type UpdateCollectionRequest struct {
	Status    *string  `json:"status,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (r UpdateCollectionRequest) IsEmpty() bool {
	return r.Status == nil && r.Latitude == nil && r.Longitude == nil
}

// CollectionDTO is the transport shape of a pickup request.
type CollectionDTO struct {
	ID        uuid.UUID              `json:"id"`
	UserID    uuid.UUID              `json:"user_id"`
	Date      string                 `json:"date"`
	Time      string                 `json:"time"`
	Address   string                 `json:"address"`
	Materials []dbtypes.MaterialItem `json:"materials"`
	Status    enums.CollectionStatus `json:"status"`
	Latitude  *float64               `json:"latitude"`
	Longitude *float64               `json:"longitude"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// CreateCollectionDTO holds the data the repo persists for a new pickup.
// ID is optional; when unset the database generates one.
type CreateCollectionDTO struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Date      time.Time
	Time      string
	Address   string
	Materials dbtypes.MaterialList
	Status    enums.CollectionStatus
	Latitude  float64
	Longitude float64
}

func FromModel(c *models.Collection) *CollectionDTO {
	if c == nil {
		return nil
	}

	return &CollectionDTO{
		ID:        c.ID,
		UserID:    c.UserID,
		Date:      c.Date.Format(dateLayout),
		Time:      c.Time,
		Address:   c.Address,
		Materials: append([]dbtypes.MaterialItem(nil), c.Materials...),
		Status:    c.Status,
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func FromModels(rows []models.Collection) []CollectionDTO {
	out := make([]CollectionDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out
}

func (c CreateCollectionDTO) ToModel() *models.Collection {
	lat := c.Latitude
	lng := c.Longitude

	return &models.Collection{
		ID:        c.ID,
		UserID:    c.UserID,
		Date:      c.Date,
		Time:      c.Time,
		Address:   c.Address,
		Materials: c.Materials,
		Status:    c.Status,
		Latitude:  &lat,
		Longitude: &lng,
	}
}
