package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"slate/app"
	"slate/core"
	"slate/internal/config"
	"slate/internal/database"
	"slate/internal/llm"
	"slate/internal/logging"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer logger.Sync()

	if cfg.Database.Path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
			log.Fatalf("mkdir db dir: %v", err)
		}
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if err := database.SeedDefaults(ctx, db); err != nil {
		log.Fatalf("seed defaults: %v", err)
	}

	provider := llmProvider(cfg.LLM.Provider, resolveAPIKey(cfg), cfg.LLM.Model)

	region := core.NewStatusRegion()
	rt := app.NewRuntime(cfg, logger, db, provider, region)

	data, err := loadAppData(ctx, db)
	if err != nil {
		log.Fatalf("load counts: %v", err)
	}

	m := core.NewModel(
		rt.Tabs(),
		core.NewKeyRegistry(core.DefaultKeyBindings()),
		core.NewCommandRegistry(nil),
		db,
		data,
	)
	m.Live = region
	app.ConfigureModel(&m, rt)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

func loadAppData(ctx context.Context, db *sql.DB) (core.AppData, error) {
	var data core.AppData
	counts := []struct {
		query string
		dst   *int
	}{
		{"SELECT COUNT(*) FROM scripts", &data.Scripts},
		{"SELECT COUNT(*) FROM scenes", &data.Scenes},
		{"SELECT COUNT(*) FROM elements", &data.Elements},
		{"SELECT COUNT(*) FROM shoot_days", &data.ShootDays},
	}
	for _, c := range counts {
		if err := db.QueryRowContext(ctx, c.query).Scan(c.dst); err != nil {
			return core.AppData{}, err
		}
	}
	return data, nil
}

func llmProvider(name, apiKey, model string) llm.Provider {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "openai":
		return llm.NewOpenAIProvider(apiKey, model)
	default:
		return llm.NewGeminiProvider(apiKey, model)
	}
}

func resolveAPIKey(cfg config.Config) string {
	env := strings.TrimSpace(cfg.LLM.APIKeyEnv)
	if env == "" {
		if strings.EqualFold(cfg.LLM.Provider, "openai") {
			env = "OPENAI_API_KEY"
		} else {
			env = "GEMINI_API_KEY"
		}
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	return strings.TrimSpace(cfg.LLM.APIKey)
}
