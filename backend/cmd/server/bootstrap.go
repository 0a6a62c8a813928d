package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/CM6156/CoilmasterThailand/backend/config"
	"github.com/CM6156/CoilmasterThailand/backend/pkg/database"
	applogger "github.com/CM6156/CoilmasterThailand/backend/pkg/logger"
)

// app 各子命令共享的基础设施
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
}

// bootstrap 加载配置、初始化日志、连接数据库并执行迁移
func bootstrap(cmd *cobra.Command) (*app, error) {
	path, _ := cmd.Flags().GetString(configFlag)
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("加载配置失败: %w", err)
	}

	logger, err := applogger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("初始化日志失败: %w", err)
	}

	db, err := database.NewDB(&cfg.Database, applogger.GormLevel(cfg.Log.Level), logger)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("获取底层 sql.DB 失败: %w", err)
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return &app{cfg: cfg, logger: logger, db: db}, nil
}

func (a *app) close() {
	if err := database.Close(a.db); err != nil {
		a.logger.Error("关闭数据库失败", zap.Error(err))
	}
	_ = a.logger.Sync()
}
