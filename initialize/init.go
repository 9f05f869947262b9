package initialize

import (
	"fmt"
	"net/http"
	"time"

	"csvvault/app/controllers"
	"csvvault/app/db"
	jwtutil "csvvault/app/jwt"
	"csvvault/app/middleware"
	"csvvault/app/models"
	"csvvault/app/repo"
	"csvvault/app/services"
	"csvvault/app/storage"
	"csvvault/config"
	"csvvault/global"
	"csvvault/router"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	Cfg    *config.Config
	DB     *gorm.DB
	Router http.Handler
	Auth   *controllers.AuthController
	Files  *controllers.FileController
	Admin  *controllers.AdminController
	Users  *services.UserService
	FileSv *services.FileService
}

func Build(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = cfg
	SetLogLevel(cfg.LogLevel)
	cfg.Watch(SetLogLevel)

	gdb, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	if err := gdb.AutoMigrate(&models.User{}, &models.CSVFile{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	if cfg.Redis.Addr != "" {
		global.Rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Pass})
	}

	blobs, err := storage.NewDisk(cfg.Storage.Dir)
	if err != nil {
		return nil, err
	}

	userRepo := repo.NewUserRepository(gdb)
	fileRepo := repo.NewFileRepository(gdb)
	fileSvc := services.NewFileService(fileRepo, blobs, cfg.Upload.MaxBytes)
	userSvc := services.NewUserService(userRepo, fileSvc)
	if err := userSvc.EnsureAdmin(cfg.Admin.Username, cfg.Admin.Password); err != nil {
		global.Logger.Warn().Err(err).Msg("ensure admin")
	}

	signer := jwtutil.NewSigner([]byte(cfg.JWT.Secret), cfg.JWT.Issuer)
	throttle := middleware.NewLoginThrottle(global.Rdb, cfg.Redis.LoginLimit,
		time.Duration(cfg.Redis.LoginWindowSec)*time.Second)

	httpCtrl := controllers.NewHTTPController()
	authCtrl := controllers.NewAuthController(userSvc, signer,
		time.Duration(cfg.JWT.LoginExpMin)*time.Minute, throttle)
	fileCtrl := controllers.NewFileController(fileSvc)
	adminCtrl := controllers.NewAdminController(userSvc)
	mw := &middleware.Auth{Signer: signer, Users: userRepo}

	h := router.NewRouter(httpCtrl, authCtrl, fileCtrl, adminCtrl, mw)
	h = middleware.Logging(h)

	return &App{
		Cfg:    cfg,
		DB:     gdb,
		Router: h,
		Auth:   authCtrl,
		Files:  fileCtrl,
		Admin:  adminCtrl,
		Users:  userSvc,
		FileSv: fileSvc,
	}, nil
}
