package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// ColorPalette is the cosmetic color set a skin applies on the client.
// Stored as a JSON column.
type ColorPalette struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Button    string `json:"button"`
	Character string `json:"character"`
}

func (p ColorPalette) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *ColorPalette) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	case nil:
		*p = ColorPalette{}
		return nil
	default:
		return errors.New("unsupported color palette source")
	}
}

type Skin struct {
	ID          uint64       `gorm:"column:skin_id;primaryKey;autoIncrement"`
	UserID      uint64       `gorm:"column:user_id;index;not null"`
	Name        string       `gorm:"size:100;not null"`
	Description string       `gorm:"size:255"`
	BaseCost    int64        `gorm:"column:base_cost;not null"`
	IsActive    bool         `gorm:"column:is_active;not null;default:false"`
	Colors      ColorPalette `gorm:"type:json;not null"`
	AcquiredAt  *time.Time   `gorm:"column:acquired_at"`
}

func (Skin) TableName() string {
	return "skins"
}

// IsOwned reports whether the skin has been acquired (the free default
// skin is acquired at user creation).
func (s *Skin) IsOwned() bool {
	return s.AcquiredAt != nil
}
