package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadapter "smartlend/internal/adapter/http"
	"smartlend/internal/adapter/middleware"
	"smartlend/internal/adapter/repository/mysql"
	"smartlend/internal/config"
	"smartlend/internal/contract"
	"smartlend/internal/domain/user"
	"smartlend/internal/infrastructure/cache"
	"smartlend/internal/infrastructure/db"
	"smartlend/internal/notifier"
	"smartlend/internal/storage"
	"smartlend/internal/usecase/approval"
	"smartlend/internal/usecase/auth"
	"smartlend/internal/usecase/loan"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	files, err := storage.New(cfg.UploadDir)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}

	userRepo := mysql.NewUserRepository(gormDB)
	loanRepo := mysql.NewLoanRepository(gormDB)
	unit := mysql.NewGormUoW(gormDB)

	mailer := notifier.New(notifier.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPass,
		From:     cfg.MailFrom,
	})

	authUC := auth.NewUsecase(userRepo)
	loanUC := loan.NewUsecase(loanRepo, files)
	approvalUC := approval.NewUsecase(unit, contract.NewGenerator(files.Dir()), mailer)

	authH := httpadapter.NewAuthHandler(authUC, cfg.JWTSecret)
	loanH := httpadapter.NewLoanHandler(loanUC, files)
	approvalH := httpadapter.NewApprovalHandler(approvalUC)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger(), echomw.Recover())
	e.Validator = httpadapter.NewValidator()

	e.GET("/health", httpadapter.NewHandler().Health)
	e.POST("/register", authH.Register)
	e.POST("/login", authH.Login)

	authed := e.Group("", middleware.JWTAuth(cfg.JWTSecret))
	authed.POST("/loans", loanH.Submit)
	authed.GET("/loans", loanH.List)
	authed.GET("/loans/:id", loanH.Get)
	authed.GET("/loans/:id/contract", loanH.DownloadContract)
	authed.GET("/loans/:id/identity", loanH.DownloadIdentity)

	admin := e.Group("/admin",
		middleware.JWTAuth(cfg.JWTSecret),
		middleware.RequireRole(user.RoleAdmin),
	)
	admin.PATCH("/loans/:id/status", approvalH.ChangeStatus,
		middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
