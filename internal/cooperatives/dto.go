package cooperatives

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/ecolinkdev/ecolink-back/pkg/db/models"
)

// CreateCooperativeRequest is the payload for adding a partner to the
// shared directory.
type CreateCooperativeRequest struct {
	CorporateName string   `json:"corporate_name" validate:"required"`
	Address       string   `json:"address" validate:"required"`
	CNPJ          string   `json:"cnpj" validate:"required"`
	Materials     []string `json:"materials" validate:"required,min=1,dive,required"`
	Phone         string   `json:"phone" validate:"required"`
	OpenTime      string   `json:"open_time" validate:"required"`
	CloseTime     string   `json:"close_time" validate:"required"`
}

// CooperativeDTO is the transport shape of a directory entry.
type CooperativeDTO struct {
	ID            uuid.UUID `json:"id"`
	CorporateName string    `json:"corporate_name"`
	Address       string    `json:"address"`
	CNPJ          string    `json:"cnpj"`
	Materials     []string  `json:"materials"`
	Phone         string    `json:"phone"`
	OpenTime      string    `json:"open_time"`
	CloseTime     string    `json:"close_time"`
	Latitude      *float64  `json:"latitude"`
	Longitude     *float64  `json:"longitude"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateCooperativeDTO holds the data the repo persists for a new entry.
// ID is optional; when unset the database generates one.
type CreateCooperativeDTO struct {
	ID            uuid.UUID
	CorporateName string
	Address       string
	CNPJ          string
	Materials     []string
	Phone         string
	OpenTime      string
	CloseTime     string
	Latitude      float64
	Longitude     float64
}

func FromModel(c *models.Cooperative) *CooperativeDTO {
	if c == nil {
		return nil
	}

	return &CooperativeDTO{
		ID:            c.ID,
		CorporateName: c.CorporateName,
		Address:       c.Address,
		CNPJ:          c.CNPJ,
		Materials:     append([]string(nil), c.Materials...),
		Phone:         c.Phone,
		OpenTime:      c.OpenTime,
		CloseTime:     c.CloseTime,
		Latitude:      c.Latitude,
		Longitude:     c.Longitude,
		CreatedAt:     c.CreatedAt,
	}
}

func FromModels(rows []models.Cooperative) []CooperativeDTO {
	out := make([]CooperativeDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out
}

func (c CreateCooperativeDTO) ToModel() *models.Cooperative {
	lat := c.Latitude
	lng := c.Longitude

	return &models.Cooperative{
		ID:            c.ID,
		CorporateName: c.CorporateName,
		Address:       c.Address,
		CNPJ:          c.CNPJ,
		Materials:     pq.StringArray(append([]string(nil), c.Materials...)),
		Phone:         c.Phone,
		OpenTime:      c.OpenTime,
		CloseTime:     c.CloseTime,
		Latitude:      &lat,
		Longitude:     &lng,
	}
}
