// Package bootstrap builds the application's dependency graph from config:
// storage backend, LLM provider, rasterizer, session store and router.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"resume-builder-backend/internal/llm"
	"resume-builder-backend/internal/llm/gemini"
	"resume-builder-backend/internal/llm/openai"
	"resume-builder-backend/internal/resumes"
	"resume-builder-backend/internal/server"
	"resume-builder-backend/internal/session"
	"resume-builder-backend/internal/shared/config"
	"resume-builder-backend/internal/shared/storage/db"
	"resume-builder-backend/resume/export"
)

// App holds shared dependencies.
type App struct {
	Config   config.Config
	Router   *gin.Engine
	DB       *sql.DB
	Mongo    *mongo.Client
	Repo     resumes.Repo
	Sessions *session.Store
	LLM      llm.Client

	closers []func(context.Context) error
}

// Build prepares shared dependencies and wires the router.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	app := &App{
		Config:   cfg,
		Sessions: session.NewStore(),
	}

	if err := buildRepo(ctx, app); err != nil {
		return nil, err
	}
	if err := buildLLM(ctx, app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.Deps{
		Config:   app.Config,
		Sessions: app.Sessions,
		Repo:     app.Repo,
		LLM:      app.LLM,
		Raster:   &export.ChromeRasterizer{ChromePath: cfg.ChromePath},
	})

	return app, nil
}

// Close releases backend connections.
func (a *App) Close(ctx context.Context) error {
	var first error
	for _, closer := range a.closers {
		if err := closer(ctx); err != nil && first == nil {
			first = err
		}
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func buildRepo(ctx context.Context, app *App) error {
	cfg := app.Config
	switch cfg.StoreBackend {
	case "postgres":
		sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			if isDevLike(cfg.Env) {
				log.Printf("bootstrap: database connect failed; using in-memory store: %v", err)
				app.Repo = resumes.NewMemoryRepo()
				return nil
			}
			return err
		}
		if err := db.RunMigrations(ctx, sqlDB); err != nil {
			sqlDB.Close()
			return fmt.Errorf("bootstrap: migrations: %w", err)
		}
		app.DB = sqlDB
		app.Repo = &resumes.PGRepo{DB: sqlDB}
	case "mongo":
		if strings.TrimSpace(cfg.MongoURI) == "" {
			return fmt.Errorf("STORE_BACKEND=mongo requires MONGO_URI")
		}
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			return fmt.Errorf("bootstrap: mongo connect: %w", err)
		}
		if err := client.Ping(ctx, nil); err != nil {
			_ = client.Disconnect(ctx)
			return fmt.Errorf("bootstrap: mongo ping: %w", err)
		}
		app.Mongo = client
		app.closers = append(app.closers, client.Disconnect)
		app.Repo = resumes.NewMongoRepo(client.Database(cfg.MongoDB))
	default:
		if !isDevLike(cfg.Env) {
			log.Printf("bootstrap: STORE_BACKEND=memory in %s; saved resumes will not survive restarts", cfg.Env)
		}
		app.Repo = resumes.NewMemoryRepo()
	}
	return nil
}

func buildLLM(ctx context.Context, app *App) error {
	cfg := app.Config
	switch cfg.LLMProvider {
	case "openai":
		if strings.TrimSpace(cfg.OpenAIAPIKey) == "" {
			log.Printf("bootstrap: OPENAI_API_KEY empty; flows disabled")
			app.LLM = llm.PlaceholderClient{}
			return nil
		}
		client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel)
		if err != nil {
			return err
		}
		app.LLM = client
	case "gemini":
		if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
			log.Printf("bootstrap: GEMINI_API_KEY empty; flows disabled")
			app.LLM = llm.PlaceholderClient{}
			return nil
		}
		client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.LLMModel)
		if err != nil {
			return err
		}
		app.LLM = client
		app.closers = append(app.closers, func(context.Context) error { return client.Close() })
	default:
		app.LLM = llm.PlaceholderClient{}
	}
	return nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
