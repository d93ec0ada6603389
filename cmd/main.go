package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/valeriaulyamaeva/finance-tracker-api/internal/config"
	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker-api/internal/routes"
)

// SchedulePoolStats раз в час пишет статистику пула соединений в лог.
func SchedulePoolStats(pool *pgxpool.Pool) {
	c := cron.New()
	_, err := c.AddFunc("@hourly", func() {
		stat := pool.Stat()
		logrus.Infof("пул соединений: всего %d, занято %d, свободно %d",
			stat.TotalConns(), stat.AcquiredConns(), stat.IdleConns())
	})
	if err != nil {
		logrus.Fatalf("Ошибка настройки CRON-задачи статистики пула: %v", err)
	}
	c.Start()
}

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	database.LenientEnumDecode = cfg.EnumDecodeFallback

	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		logrus.Fatalf("Ошибка разбора DATABASE_URL: %v", err)
	}
	poolCfg.MaxConns = cfg.PoolMaxConns

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		logrus.Fatalf("Ошибка подключения к БД: %v", err)
	}
	defer pool.Close()

	SchedulePoolStats(pool)

	r := routes.SetupRouter(pool)

	logrus.Infof("сервер запускается на порту %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
