package model

import "time"

type Achievement struct {
	ID          uint64     `gorm:"column:achievement_id;primaryKey;autoIncrement"`
	UserID      uint64     `gorm:"column:user_id;index;not null"`
	Name        string     `gorm:"size:100;not null"`
	Description string     `gorm:"size:255"`
	Icon        string     `gorm:"size:255"`
	IsUnlocked  bool       `gorm:"column:is_unlocked;not null;default:false"`
	AchievedAt  *time.Time `gorm:"column:achieved_at"`
}

func (Achievement) TableName() string {
	return "achievements"
}

// Unlock flips the flag once; re-unlocking never moves the timestamp.
func (a *Achievement) Unlock(now time.Time) {
	if a.IsUnlocked {
		return
	}
	a.IsUnlocked = true
	a.AchievedAt = &now
}
