package initialize

import (
	"fmt"
	"net/http"
	"time"
	"wordquest/app/controllers"
	"wordquest/app/db"
	"wordquest/app/middleware"
	"wordquest/app/models"
	"wordquest/app/repo"
	"wordquest/app/services"
	"wordquest/app/session"
	"wordquest/app/web"
	"wordquest/config"
	"wordquest/global"
	"wordquest/router"

	"gorm.io/gorm"
)

type App struct {
	Cfg      *config.Config
	DB       *gorm.DB
	Router   http.Handler
	Sessions *session.Store
	Accounts *services.AccountService
	Words    *services.WordBankService
	Scores   *services.LeaderboardService
}

func Build(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = cfg

	gdb, err := db.Connect(db.Config{DSN: cfg.DB.DSN, Path: cfg.DB.Path})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	if err := gdb.AutoMigrate(&models.User{}, &models.Word{}, &models.LeaderboardEntry{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// Services
	userRepo := repo.NewUserRepository(gdb)
	wordRepo := repo.NewWordRepository(gdb)
	boardRepo := repo.NewLeaderboardRepository(gdb)
	accounts := services.NewAccountService(userRepo)
	words := services.NewWordBankService(wordRepo)
	scores := services.NewLeaderboardService(boardRepo)

	sessions := session.NewStore(cfg.Session.Secret, time.Duration(cfg.Session.ExpMin)*time.Minute)

	pages, err := web.New()
	if err != nil {
		return nil, fmt.Errorf("templates: %w", err)
	}

	// Controllers
	pageCtrl := controllers.NewPageController(accounts, sessions, pages)
	adminCtrl := controllers.NewAdminController(accounts, words, pages)
	apiCtrl := controllers.NewAPIController(words, scores)
	gate := &middleware.SessionGate{Sessions: sessions}

	// Router
	h := router.New(pageCtrl, adminCtrl, apiCtrl, gate)
	h = middleware.Logging(h)

	return &App{Cfg: cfg, DB: gdb, Router: h, Sessions: sessions, Accounts: accounts, Words: words, Scores: scores}, nil
}
