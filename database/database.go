package database

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"matkabook/logger"
	"matkabook/models"
)

var DB *gorm.DB

func Connect() {
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")
	sslmode := os.Getenv("DB_SSLMODE")

	var dialector gorm.Dialector
	switch os.Getenv("DB_DRIVER") {
	case "mysql":
		dsn := fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			user, pass, host, port, name,
		)
		dialector = mysql.Open(dsn)
	default:
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			host, user, pass, name, port, sslmode,
		)
		dialector = postgres.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}

	DB = db
	logger.Info("connected to database")

	autoMigrateEnv := os.Getenv("DB_AUTO_MIGRATE")
	autoMigrate, err := strconv.ParseBool(autoMigrateEnv)
	if err != nil && autoMigrateEnv != "" {
		logger.Warn("invalid value for DB_AUTO_MIGRATE", "value", autoMigrateEnv)
	}

	if autoMigrate {
		logger.Info("starting auto-migration")

		if err := DB.AutoMigrate(
			&models.User{},
			&models.WalletTransaction{},
			&models.GameOdds{},
			&models.UserDiscount{},
			&models.CommissionRate{},
			&models.Market{},
			&models.Bet{},
			&models.SettlementReport{},
			&models.PaymentRequest{},
			&models.Session{},
		); err != nil {
			logger.Fatal("failed to auto-migrate database", "error", err)
		}

		logger.Info("auto migration completed")
	}

	seedRootAdmin()
}

// seedRootAdmin creates the root admin on first boot so the ownership
// hierarchy has an entry point. No-op unless ADMIN_PASSWORD is set and no
// admin exists yet.
func seedRootAdmin() {
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		return
	}

	var count int64
	if err := DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		logger.Error("admin seed check failed", "error", err)
		return
	}
	if count > 0 {
		return
	}

	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("admin seed hash failed", "error", err)
		return
	}

	admin := models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := DB.Create(&admin).Error; err != nil {
		logger.Error("admin seed failed", "error", err)
		return
	}
	logger.Info("root admin created", "username", username)
}
