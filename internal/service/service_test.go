package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mlukichev/clicker-backend/internal/model"
	"github.com/mlukichev/clicker-backend/internal/repository"
)

// testClock drives idle accrual deterministically.
type testClock struct {
	t time.Time
}

func (c *testClock) Now() time.Time {
	return c.t
}

func (c *testClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

type testEnv struct {
	db       *gorm.DB
	clock    *testClock
	users    repository.UserRepository
	skinRepo repository.SkinRepository
	sessions SessionService
	game     GameService
	upgrades UpgradeService
	skins    SkinService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Upgrade{}, &model.Achievement{}, &model.Skin{}))

	clock := &testClock{t: time.Unix(1_700_000_000, 0)}

	userRepo := repository.NewUserRepository(db)
	upgradeRepo := repository.NewUpgradeRepository(db)
	achievementRepo := repository.NewAchievementRepository(db)
	skinRepo := repository.NewSkinRepository(db)
	locks := NewUserLocks()

	sessions := NewSessionService(userRepo)
	sessions.(*sessionService).now = clock.Now
	game := NewGameService(userRepo, upgradeRepo, achievementRepo, skinRepo, locks)
	game.(*gameService).now = clock.Now
	upgrades := NewUpgradeService(userRepo, upgradeRepo, achievementRepo, locks)
	upgrades.(*upgradeService).now = clock.Now
	skins := NewSkinService(userRepo, upgradeRepo, skinRepo, locks)
	skins.(*skinService).now = clock.Now

	return &testEnv{
		db:       db,
		clock:    clock,
		users:    userRepo,
		skinRepo: skinRepo,
		sessions: sessions,
		game:     game,
		upgrades: upgrades,
		skins:    skins,
	}
}

func unlockedNames(list []model.Achievement) []string {
	var out []string
	for _, a := range list {
		out = append(out, a.Name)
	}
	return out
}
