package server

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/mlukichev/clicker-backend/internal/config"
	"github.com/mlukichev/clicker-backend/internal/handler"
	appmw "github.com/mlukichev/clicker-backend/internal/middleware"
	"github.com/mlukichev/clicker-backend/internal/repository"
	"github.com/mlukichev/clicker-backend/internal/service"
	"gorm.io/gorm"
)

type Server struct {
	e               *echo.Echo
	userRepo        repository.UserRepository
	upgradeRepo     repository.UpgradeRepository
	achievementRepo repository.AchievementRepository
	skinRepo        repository.SkinRepository
	sha             string
	build           string
}

func New(db *gorm.DB, cfg *config.Config, sha, buildTime string) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) (bool, error) {
			low := strings.ToLower(origin)
			if strings.HasPrefix(low, "http://localhost:") || strings.HasPrefix(low, "http://127.0.0.1:") ||
				strings.HasPrefix(low, "https://localhost:") || strings.HasPrefix(low, "https://127.0.0.1:") {
				return true, nil
			}
			u, err := url.Parse(origin)
			if err != nil {
				return false, nil
			}
			if u.Scheme != "http" && u.Scheme != "https" {
				return false, nil
			}
			return cfg.AllowedOrigin != "" && u.Host == cfg.AllowedOrigin, nil
		},
	}))

	userRepo := repository.NewUserRepository(db)
	upgradeRepo := repository.NewUpgradeRepository(db)
	achievementRepo := repository.NewAchievementRepository(db)
	skinRepo := repository.NewSkinRepository(db)

	locks := service.NewUserLocks()
	sessionSvc := service.NewSessionService(userRepo)
	gameSvc := service.NewGameService(userRepo, upgradeRepo, achievementRepo, skinRepo, locks)
	upgradeSvc := service.NewUpgradeService(userRepo, upgradeRepo, achievementRepo, locks)
	skinSvc := service.NewSkinService(userRepo, upgradeRepo, skinRepo, locks)
	achievementSvc := service.NewAchievementService(achievementRepo)

	userHandler := handler.NewUserHandler(gameSvc)
	upgradeHandler := handler.NewUpgradeHandler(upgradeSvc)
	skinHandler := handler.NewSkinHandler(skinSvc)
	achievementHandler := handler.NewAchievementHandler(achievementSvc)

	sessionMw := appmw.NewSessionMiddleware(sessionSvc, cfg.SessionSecret, time.Duration(cfg.SessionTTLHours)*time.Hour)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"ok":         "true",
			"git_sha":    sha,
			"build_time": buildTime,
		})
	})

	api := e.Group("/api", sessionMw.WithUser)
	api.GET("/user/state", userHandler.State)
	api.POST("/user/click", userHandler.Click)
	api.POST("/upgrades/buy", upgradeHandler.Buy)
	api.POST("/skins/buy", skinHandler.Buy)
	api.POST("/skins/activate", skinHandler.Activate)
	api.GET("/achievements", achievementHandler.List)

	return &Server{
		e:               e,
		userRepo:        userRepo,
		upgradeRepo:     upgradeRepo,
		achievementRepo: achievementRepo,
		skinRepo:        skinRepo,
		sha:             sha,
		build:           buildTime,
	}
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}

// SetDB injects the connection once it is ready; requests arriving before
// that fail with a server error instead of blocking startup.
func (s *Server) SetDB(db *gorm.DB) {
	s.userRepo.SetDB(db)
	s.upgradeRepo.SetDB(db)
	s.achievementRepo.SetDB(db)
	s.skinRepo.SetDB(db)
}
