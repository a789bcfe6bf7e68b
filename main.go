package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"HomeChef-Backend/cmd/config"
	migration "HomeChef-Backend/cmd/database/migrate"
	"HomeChef-Backend/internal/utils"
)

func main() {
	utils.LoadConfig()
	utils.InitLogger(utils.GetConfig("LOG_LEVEL"))

	ctx := context.Background()

	db, err := config.ConnectDB()
	if err != nil {
		utils.Log.Fatalf("failed to connect to database: %v", err)
	}
	if err := migration.Migrate(db); err != nil {
		utils.Log.Fatalf("failed to migrate database: %v", err)
	}

	rdb, err := config.ConnectRedis(ctx)
	if err != nil {
		utils.Log.Fatalf("failed to connect to redis: %v", err)
	}

	deps, err := config.NewDependencies(ctx, db, rdb)
	if err != nil {
		utils.Log.Fatalf("failed to build dependencies: %v", err)
	}

	app, err := config.NewApp(deps)
	if err != nil {
		utils.Log.Fatalf("failed to create app: %v", err)
	}

	go func() {
		addr := ":" + utils.GetConfig("APP_PORT")
		utils.Log.Infof("server starting on %s", addr)
		if err := app.Listen(addr); err != nil {
			utils.Log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.Log.Info("shutting down server...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		utils.Log.Errorf("server forced to shutdown: %v", err)
	}

	if rdb != nil {
		_ = rdb.Close()
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	utils.Log.Info("server exited")
}
