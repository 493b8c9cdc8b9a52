package database

import (
	"fmt"
	"log"

	"schoolms/config"
	"schoolms/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init opens the MySQL connection, runs migrations and seeds defaults
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
		&models.Student{},
		&models.Teacher{},
		&models.SchoolClass{},
		&models.Fee{},
		&models.Income{},
		&models.Expense{},
		&models.Salary{},
		&models.Attendance{},
		&models.Exam{},
		&models.Result{},
		&models.Notice{},
		&models.Gallery{},
		&models.Admission{},
		&models.Sequence{},
	); err != nil {
		return err
	}

	// first run: create the default admin account
	var userCount int64
	DB.Model(&models.User{}).Count(&userCount)
	if userCount == 0 {
		admin := models.User{
			Username: "admin",
			Role:     models.RoleAdmin,
			Name:     "Administrator",
		}
		if err := admin.SetPassword("admin123"); err != nil {
			return err
		}
		if err := DB.Create(&admin).Error; err != nil {
			return err
		}
		log.Println("created default admin user (admin/admin123), change the password")
	}

	// seed the allocator rows so the first UPDATE has something to bump
	for _, name := range []string{models.SequenceReceipt, models.SequenceAdmission} {
		var cnt int64
		DB.Model(&models.Sequence{}).Where("name = ?", name).Count(&cnt)
		if cnt == 0 {
			_ = DB.Create(&models.Sequence{Name: name, Value: 0}).Error
		}
	}

	log.Println("database initialized")
	return nil
}

// GetDB returns the database handle
func GetDB() *gorm.DB {
	return DB
}
