package models

import (
	"time"

	"github.com/ecolinkdev/ecolink-back/pkg/enums"
	"github.com/google/uuid"
)

// User represents a registered resident or business that schedules pickups.
type User struct {
	ID           uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Email        string            `gorm:"type:text;not null;uniqueIndex:idx_users_email"`
	PasswordHash string            `gorm:"column:password_hash;not null"`
	Name         string            `gorm:"column:name;not null"`
	Type         enums.AccountType `gorm:"column:type;type:account_type;not null"`
	Address      string            `gorm:"column:address;not null"`
	Phone        string            `gorm:"column:phone;not null"`
	Document     string            `gorm:"column:document;not null"`
	SystemRole   *string           `gorm:"column:system_role"`
	CreatedAt    time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
