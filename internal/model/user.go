package model

import "time"

type User struct {
	ID         uint64    `gorm:"column:user_id;primaryKey;autoIncrement"`
	Username   string    `gorm:"size:36;uniqueIndex;not null"`
	Score      int64     `gorm:"not null;default:0"`
	LastUpdate time.Time `gorm:"column:last_update;not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`

	Upgrades     []Upgrade     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Achievements []Achievement `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Skins        []Skin        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (User) TableName() string {
	return "users"
}
