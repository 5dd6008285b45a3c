// @title Thai Music Learning API
// @version 1.0
// @description Backend for a Thai musical instruments learning platform: instruments, lessons, tiered tests, and score-based levels.

// @contact.name API Support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"thaimusic_backend/internal/app"
	"thaimusic_backend/internal/config"
	"thaimusic_backend/pkg/configwatcher"
	"thaimusic_backend/pkg/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migration and exit")
	migrate := flag.Bool("migrate", false, "run database migration on startup")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	go configwatcher.WatchConfig("configs/config.yaml", cfg, func(updated interface{}) {
		logger.Log.Info("configuration reloaded")
	})

	application.Run()
}
