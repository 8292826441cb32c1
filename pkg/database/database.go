package database

import (
	"fmt"
	"log"

	"yonko_backend/internal/config"
	"yonko_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	// 编目是代码内静态数据，不进库；只迁移用户与路线图两张表
	err = db.AutoMigrate(
		&model.User{},
		&model.Roadmap{},
	)
	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")
	return db, nil
}
