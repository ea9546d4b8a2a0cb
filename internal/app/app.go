package app

import (
	"errors"
	"fmt"
	"time"

	"patitas_backend/internal/auth"
	"patitas_backend/internal/config"
	"patitas_backend/internal/email"
	"patitas_backend/internal/handlers"
	"patitas_backend/internal/logger"
	"patitas_backend/internal/middleware"
	"patitas_backend/internal/models"
	"patitas_backend/internal/repositories"
	"patitas_backend/internal/routes"
	"patitas_backend/internal/services"
	"patitas_backend/internal/storage"
	"patitas_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected", "name", cfg.Database.Name)

	if err := Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := SeedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// Migrate keeps the schema in sync. The check and FK constraints carried
// on the model tags are created here too.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.CaregiverProfile{},
		&models.CaregiverService{},
		&models.Review{},
		&models.ContactMessage{},
	)
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	photoStore, err := storage.NewPhotoStore(storage.Config{
		Type:      cfg.Storage.Type,
		Region:    cfg.Storage.Region,
		Bucket:    cfg.Storage.Bucket,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
	})
	if err != nil {
		logger.Fatal("Failed to initialize photo storage", "error", err)
	}
	logger.Info("Photo storage initialized", "type", cfg.Storage.Type)

	userRepo := repositories.NewUserRepository(gormDB)
	caregiverRepo := repositories.NewCaregiverRepository(gormDB)
	reviewRepo := repositories.NewReviewRepository(gormDB)
	contactRepo := repositories.NewContactRepository(gormDB)

	sender := email.NewSMTPSender(cfg)

	authService := services.NewAuthService(userRepo, caregiverRepo, photoStore)
	directoryService := services.NewDirectoryService(caregiverRepo)
	reviewService := services.NewReviewService(reviewRepo)
	contactService := services.NewContactService(contactRepo, sender, cfg)
	adminService := services.NewAdminService(userRepo, caregiverRepo, reviewRepo, contactRepo, photoStore)

	base := handlers.NewBaseHandler(validator.New())
	sessionTTL := time.Duration(cfg.Session.TTL) * time.Minute
	appHandlers := &handlers.AppHandlers{
		AuthHandler:      handlers.NewAuthHandler(base, authService, cfg.Session.Secret, sessionTTL),
		DirectoryHandler: handlers.NewDirectoryHandler(base, directoryService),
		ReviewHandler:    handlers.NewReviewHandler(base, reviewService),
		ContactHandler:   handlers.NewContactHandler(base, contactService),
		AdminHandler:     handlers.NewAdminHandler(base, adminService),
	}

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(ginRouter, appHandlers, cfg.Session.Secret, userRepo)

	return ginRouter
}

// SeedFirstAdmin creates the back-office account named in the config when
// no user with that email exists yet. Seeding never reaches the request
// path.
func SeedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.Admin.Email
	adminPassword := cfg.Admin.Password

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("ADMIN_EMAIL or ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var existing models.User
	result := db.Where("email = ?", adminEmail).First(&existing)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found. Creating first admin...", "email", adminEmail)

	hashedPassword, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	name := cfg.Admin.Name
	if name == "" {
		name = "Admin"
	}
	newAdmin := &models.User{
		Name:         name,
		Email:        adminEmail,
		PasswordHash: hashedPassword,
		Role:         models.UserRoleAdmin,
	}
	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("First admin user created", "email", adminEmail, "id", newAdmin.ID)
	return nil
}
