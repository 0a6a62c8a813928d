package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// migrationsTable 记录迁移版本的表
const migrationsTable = "transfer_schema_migrations"

// requiredTables 启动后立即访问的表：会话校验、翻译预热与产品看板
var requiredTables = []string{
	"users",
	"sessions",
	"translations",
	"customers",
	"products",
	"shipping_statuses",
}

// RunMigrations 应用全部未执行的迁移，并确认转运跟踪所需的表已就绪
func RunMigrations(db *sql.DB, logger *zap.Logger) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("加载迁移文件失败: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{MigrationsTable: migrationsTable})
	if err != nil {
		return fmt.Errorf("创建迁移驱动失败: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("初始化迁移实例失败: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("执行迁移失败: %w", err)
	}

	version, dirty, _ := m.Version()
	if dirty {
		// dirty 时表结构不可信，交给运维手动 force
		logger.Warn("转运跟踪库迁移处于 dirty 状态", zap.Uint("version", version))
		return nil
	}

	missing, err := missingTables(db)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("迁移后缺少数据表: %v", missing)
	}

	logger.Info("转运跟踪库迁移完成",
		zap.Uint("version", version),
		zap.Int("tables_checked", len(requiredTables)),
	)
	return nil
}

func missingTables(db *sql.DB) ([]string, error) {
	var missing []string
	for _, table := range requiredTables {
		var exists bool
		if err := db.QueryRow(`SELECT to_regclass($1) IS NOT NULL`, table).Scan(&exists); err != nil {
			return nil, fmt.Errorf("检查数据表 %s 失败: %w", table, err)
		}
		if !exists {
			missing = append(missing, table)
		}
	}
	return missing, nil
}
