package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// MaterialItem is one line of a pickup request: what, how much, in which unit.
type MaterialItem struct {
	Name     string `json:"name" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
	Unit     string `json:"unit" validate:"required"`
}

// MaterialList is the ordered set of materials persisted as JSON.
type MaterialList []MaterialItem

// Value marshals the list into JSON for the database.
func (m MaterialList) Value() (driver.Value, error) {
	if m == nil {
		return "[]", nil
	}
	buf, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// Scan decodes the stored JSON back into the list.
func (m *MaterialList) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("material list: unsupported scan type %T", value)
	}

	var result MaterialList
	if err := json.Unmarshal(raw, &result); err != nil {
		return err
	}
	*m = result
	return nil
}
