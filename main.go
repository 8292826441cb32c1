// @title Yonko 后端 API
// @version 1.0
// @description 大学申请路线图追踪服务的后端：按国家编目派生申请清单，跟踪每个用户的完成进度。

// @host localhost:8080
// @BasePath /api

package main

import (
	"flag"
	"log"

	"yonko_backend/internal/app"
	"yonko_backend/internal/config"
	"yonko_backend/pkg/configwatcher"
	"yonko_backend/pkg/logger"
)

func main() {
	// 命令行参数
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	migrate := flag.Bool("migrate", false, "启动时强制执行数据库迁移（即使是 release 模式）")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// 迁移完成后直接退出
	if *migrateOnly {
		log.Println("数据库迁移完成，退出程序")
		return
	}

	go configwatcher.WatchConfig("configs/config.yaml", application.ApplyConfig)

	application.Run()
}
