package models

import (
	"time"

	dbtypes "github.com/ecolinkdev/ecolink-back/pkg/db/types"
	"github.com/ecolinkdev/ecolink-back/pkg/enums"
	"github.com/google/uuid"
)

// Collection is a user-submitted recycling pickup request. Latitude and
// longitude are filled from geocoding and are always set or cleared as a pair.
type Collection struct {
	ID        uuid.UUID              `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    uuid.UUID              `gorm:"column:user_id;type:uuid;not null;index"`
	Date      time.Time              `gorm:"column:date;not null"`
	Time      string                 `gorm:"column:time;not null"`
	Address   string                 `gorm:"column:address;not null"`
	Materials dbtypes.MaterialList   `gorm:"column:materials;type:jsonb;not null"`
	Status    enums.CollectionStatus `gorm:"column:status;type:collection_status;not null;default:'pending'"`
	Latitude  *float64               `gorm:"column:latitude"`
	Longitude *float64               `gorm:"column:longitude"`
	CreatedAt time.Time              `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time              `gorm:"column:updated_at;autoUpdateTime"`
}
