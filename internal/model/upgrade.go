package model

import "time"

type Upgrade struct {
	ID             uint64     `gorm:"column:upgrade_id;primaryKey;autoIncrement"`
	UserID         uint64     `gorm:"column:user_id;not null;uniqueIndex:idx_upgrades_user_name"`
	Name           string     `gorm:"size:100;not null;uniqueIndex:idx_upgrades_user_name"`
	Description    string     `gorm:"size:255"`
	BaseCost       int64      `gorm:"column:base_cost;not null"`
	BaseProduction int64      `gorm:"column:base_production;not null"`
	Level          int        `gorm:"not null;default:0"`
	CostMultiplier float64    `gorm:"column:cost_multiplier;not null;default:1.15"`
	PurchasedAt    *time.Time `gorm:"column:purchased_at"`
}

func (Upgrade) TableName() string {
	return "upgrades"
}
