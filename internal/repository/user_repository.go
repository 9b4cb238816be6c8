package repository

import (
	"context"
	"errors"

	"github.com/mlukichev/clicker-backend/internal/model"
	"gorm.io/gorm"
)

var ErrDBNotReady = errors.New("database not initialized")

type UserRepository interface {
	// Create persists the user together with any attached achievement and
	// skin rows in one transaction (session bootstrap seeding).
	Create(ctx context.Context, u *model.User) error
	FindByID(ctx context.Context, id uint64) (*model.User, error)
	Save(ctx context.Context, u *model.User) error
	// SaveWithAchievements writes the user's score/last_update together
	// with freshly unlocked achievement rows in one transaction.
	SaveWithAchievements(ctx context.Context, u *model.User, unlocked []*model.Achievement) error
	SetDB(db *gorm.DB)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *model.User) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uint64) (*model.User, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Save(ctx context.Context, u *model.User) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Omit("Upgrades", "Achievements", "Skins").Save(u).Error
}

func (r *userRepository) SaveWithAchievements(ctx context.Context, u *model.User, unlocked []*model.Achievement) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Upgrades", "Achievements", "Skins").Save(u).Error; err != nil {
			return err
		}
		for _, a := range unlocked {
			if err := tx.Save(a).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *userRepository) SetDB(db *gorm.DB) {
	r.db = db
}
