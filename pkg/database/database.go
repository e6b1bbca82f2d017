package database

import (
	"fmt"
	"log"
	"training_backend/internal/config"
	"training_backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// shouldMigrate: always in non-release modes; in release only when the
// -migrate flag forces it.
func shouldMigrate(mode string, force bool) bool {
	return force || mode != "release"
}

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dbCfg := &cfg.Database
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		dbCfg.User,
		dbCfg.Password,
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.DBName,
		dbCfg.Charset,
		dbCfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if !shouldMigrate(cfg.Server.Mode, cfg.ForceMigrate) {
		return db, nil
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Student{},
		&model.Training{},
		&model.Group{},
		&model.Enrollment{},
		&model.AttendanceRecord{},
		&model.Seance{},
		&model.SessionReport{},
		&model.Notification{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// Default admin account for first boot
	var count int64
	db.Model(&model.User{}).Where("role = ?", model.RoleAdmin).Count(&count)
	if count == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin1234"), bcrypt.DefaultCost)
		if err == nil {
			db.Create(&model.User{
				Email:        "admin@localhost",
				PasswordHash: string(hash),
				FirstName:    "Default",
				LastName:     "Admin",
				Role:         model.RoleAdmin,
				Status:       model.UserActive,
			})
			log.Println("Seeded default admin account (admin@localhost)")
		}
	}

	return db, nil
}
