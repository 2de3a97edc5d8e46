package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/atareao/bloc/internal/config"
	"github.com/atareao/bloc/internal/migration"
	"github.com/atareao/bloc/pkg/database"
	pkglogger "github.com/atareao/bloc/pkg/logger"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	configPath := flag.String("config", "", "config file path (default configs/config.<APP_ENV>.yaml)")
	verbose := flag.Bool("verbose", false, "verbose SQL logging")
	flag.Parse()

	if _, err := config.LoadDotEnv("."); err != nil {
		fmt.Fprintf(os.Stderr, "loading .env: %v\n", err)
		os.Exit(1)
	}
	pkglogger.InitStructured(config.Env(), "info")

	path := *configPath
	if path == "" {
		path = config.Path()
	}
	cfg, err := config.Load(path)
	if err != nil {
		pkglogger.GetLogger().Fatal().Err(err).Msg("failed to load config")
	}

	logLevel := gormlogger.Warn
	if *verbose {
		logLevel = gormlogger.Info
	}

	db, err := database.Open(database.Options{
		Driver: cfg.Database.Driver,
		DSN:    cfg.Database.GetDSN(),
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		pkglogger.GetLogger().Fatal().Err(err).Msg("failed to connect to database")
	}
	defer func() { _ = database.Close(db) }()

	if err := migration.Run(db); err != nil {
		pkglogger.GetLogger().Fatal().Err(err).Msg("migration failed")
	}

	// 테이블별 행 수 보고
	for _, model := range migration.Models() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			continue
		}
		var count int64
		if err := db.Model(model).Count(&count).Error; err != nil {
			pkglogger.Warn("counting %s: %v", stmt.Schema.Table, err)
			continue
		}
		pkglogger.Info("%-10s %d rows", stmt.Schema.Table, count)
	}
	pkglogger.Info("Migration complete")
}
