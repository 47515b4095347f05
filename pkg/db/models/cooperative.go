package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Cooperative is a recycling partner in the shared directory. It has no
// owner: any caller may register one and everyone can read the listing.
type Cooperative struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	CorporateName string         `gorm:"column:corporate_name;not null"`
	Address       string         `gorm:"column:address;not null"`
	CNPJ          string         `gorm:"column:cnpj;not null"`
	Materials     pq.StringArray `gorm:"column:materials;type:text[];not null"`
	Phone         string         `gorm:"column:phone;not null"`
	OpenTime      string         `gorm:"column:open_time;not null"`
	CloseTime     string         `gorm:"column:close_time;not null"`
	Latitude      *float64       `gorm:"column:latitude"`
	Longitude     *float64       `gorm:"column:longitude"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime"`
}

// TableName keeps the historical singular table name.
func (Cooperative) TableName() string {
	return "cooperative"
}
