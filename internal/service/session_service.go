package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mlukichev/clicker-backend/internal/game"
	"github.com/mlukichev/clicker-backend/internal/model"
	"github.com/mlukichev/clicker-backend/internal/repository"
	"gorm.io/gorm"
)

type SessionService interface {
	// Resolve returns the user a session token refers to. A stale token
	// (user row gone) yields ErrNotFound so the caller can start over.
	Resolve(ctx context.Context, userID uint64) (*model.User, error)
	// CreateUser makes a fresh anonymous user seeded with the full
	// achievement set (locked) and skin set (free default skin acquired
	// and active), all in one transaction.
	CreateUser(ctx context.Context) (*model.User, error)
}

type sessionService struct {
	users repository.UserRepository
	now   func() time.Time
}

func NewSessionService(users repository.UserRepository) SessionService {
	return &sessionService{users: users, now: time.Now}
}

func (s *sessionService) Resolve(ctx context.Context, userID uint64) (*model.User, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *sessionService) CreateUser(ctx context.Context) (*model.User, error) {
	now := s.now()
	u := &model.User{
		Username:   uuid.NewString(),
		LastUpdate: now,
	}
	for _, t := range game.Achievements() {
		u.Achievements = append(u.Achievements, model.Achievement{
			Name:        t.Name,
			Icon:        t.Icon,
			Description: t.Description,
		})
	}
	for _, t := range game.Skins() {
		skin := model.Skin{
			Name:        t.Name,
			Description: t.Description,
			BaseCost:    t.BaseCost,
			Colors:      t.Colors,
		}
		if t.BaseCost == 0 {
			acquired := now
			skin.AcquiredAt = &acquired
			skin.IsActive = true
		}
		u.Skins = append(u.Skins, skin)
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
