package database

import (
	"fmt"
	"log"

	"budget-tracker/config"
	"budget-tracker/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init opens the MySQL connection, configures the pool and migrates the schema.
func Init(cfg *config.Config) error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
	)

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Income{},
		&models.Expense{},
		&models.Budget{},
		&models.AuthToken{},
	); err != nil {
		return err
	}

	// Seed default categories only when the table is empty.
	var catCount int64
	DB.Model(&models.Category{}).Count(&catCount)
	if catCount == 0 {
		var cats []models.Category
		for _, name := range models.DefaultCategories() {
			cats = append(cats, models.Category{Name: name})
		}
		if len(cats) > 0 {
			_ = DB.Create(&cats).Error
		}
	}

	log.Println("database initialized")
	return nil
}

// GetDB returns the database handle.
func GetDB() *gorm.DB {
	return DB
}
