package config

import (
	"context"
	"fmt"
	"time"

	"HomeChef-Backend/internal/utils"

	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func dialector() (gorm.Dialector, error) {
	switch driver := utils.GetConfig("DB_DRIVER"); driver {
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Asia/Jakarta",
			utils.GetConfig("DB_HOST"),
			utils.GetConfig("DB_USER"),
			utils.GetConfig("DB_PASSWORD"),
			utils.GetConfig("DB_NAME"),
			utils.GetConfig("DB_PORT"),
		)
		return postgres.Open(dsn), nil
	case "mysql":
		dsn := fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			utils.GetConfig("DB_USER"),
			utils.GetConfig("DB_PASSWORD"),
			utils.GetConfig("DB_HOST"),
			utils.GetConfig("DB_PORT"),
			utils.GetConfig("DB_NAME"),
		)
		return mysql.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(utils.GetConfig("DB_PATH")), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}

func ConnectDB() (*gorm.DB, error) {
	dial, err := dialector()
	if err != nil {
		return nil, err
	}

	logLevel := logger.Warn
	if utils.GetConfig("LOG_LEVEL") == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(dial, &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return db, nil
}

// ConnectRedis returns nil when REDIS_ADDR is empty.
func ConnectRedis(ctx context.Context) (*redis.Client, error) {
	addr := utils.GetConfig("REDIS_ADDR")
	if addr == "" {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: utils.GetConfig("REDIS_PASSWORD"),
		DB:       utils.GetConfigInt("REDIS_DB", 0),
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}
	return rdb, nil
}
