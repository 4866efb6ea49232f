package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"hospitality-concierge/config"
	_ "hospitality-concierge/docs" // Swagger docs
	"hospitality-concierge/internal/catalog"
	catalogInmem "hospitality-concierge/internal/catalog/inmem"
	catalogSqlite "hospitality-concierge/internal/catalog/sqlite"
	"hospitality-concierge/internal/category"
	"hospitality-concierge/internal/classifier"
	"hospitality-concierge/internal/dispatcher"
	"hospitality-concierge/internal/httpserver"
	"hospitality-concierge/internal/middleware"
	sessionHTTP "hospitality-concierge/internal/session/delivery/http"
	"hospitality-concierge/internal/session/repository"
	repoInmem "hospitality-concierge/internal/session/repository/inmem"
	repoSqlite "hospitality-concierge/internal/session/repository/sqlite"
	"hospitality-concierge/internal/session/usecase"
	"hospitality-concierge/internal/slotfill"
	"hospitality-concierge/pkg/datemath"
	"hospitality-concierge/pkg/gcalendar"
	"hospitality-concierge/pkg/log"
	"hospitality-concierge/pkg/openai"
)

// @title       Hospitality Concierge API
// @description Multi-turn concierge chat for holiday apartment guests.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Hospitality Concierge...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Property: %s", cfg.Property.Name)

	// 3. LLM client
	llm := openai.NewClient(cfg.OpenAI.APIKey)
	if cfg.OpenAI.Model != "" {
		llm.SetModel(cfg.OpenAI.Model)
	}
	if cfg.OpenAI.APIURL != "" {
		llm.SetAPIURL(cfg.OpenAI.APIURL)
	}

	// 4. Date parser
	dates, err := datemath.NewParser(cfg.Property.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Property.Timezone, err)
		dates, _ = datemath.NewParser("UTC")
	}

	// 5. Google Calendar client (optional)
	var calendarClient gcalendar.ICalendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendarClient = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. Storage: session repository + catalog
	var sessionRepo repository.Repository
	var cat catalog.Catalog

	switch cfg.Storage.Driver {
	case "sqlite":
		db, dbErr := gorm.Open(sqlite.Open(cfg.Storage.Path), &gorm.Config{})
		if dbErr != nil {
			logger.Errorf(ctx, "Failed to open database %q: %v", cfg.Storage.Path, dbErr)
			return
		}

		sessionRepo, err = repoSqlite.New(db, logger)
		if err != nil {
			logger.Errorf(ctx, "Failed to initialize session store: %v", err)
			return
		}

		sqlCatalog, catErr := catalogSqlite.New(db, logger)
		if catErr != nil {
			logger.Errorf(ctx, "Failed to initialize catalog: %v", catErr)
			return
		}
		restaurants, activities, properties := catalogInmem.SeedData()
		if seedErr := sqlCatalog.Seed(ctx, restaurants, activities, properties); seedErr != nil {
			logger.Warnf(ctx, "Catalog seeding failed: %v", seedErr)
		}
		cat = sqlCatalog

		logger.Infof(ctx, "SQLite storage ready at %s", cfg.Storage.Path)

	default:
		sessionRepo = repoInmem.New(logger)
		cat = catalogInmem.NewSeeded()
		logger.Info(ctx, "In-memory storage ready (sessions are not durable)")
	}

	if cfg.SessionCache.Size > 0 {
		sessionRepo = repository.NewCached(sessionRepo, cfg.SessionCache.Size, cfg.SessionCache.TTL, logger)
	}

	// 7. Dialogue engine
	cls := classifier.New(llm, logger)
	engine := slotfill.New(llm, logger)

	disp := dispatcher.New(logger)
	category.Register(disp, category.Deps{
		Engine:     engine,
		Catalog:    cat,
		LLM:        llm,
		Dates:      dates,
		Calendar:   calendarClient,
		CalendarID: cfg.GoogleCalendar.CalendarID,
		Property:   cfg.Property.Name,
		Logger:     logger,
	})

	sessionUC := usecase.New(logger, sessionRepo, cls, disp)

	// 8. HTTP server
	chatHandler := sessionHTTP.New(logger, sessionUC)
	mw := middleware.New(logger, cfg.Chat.RateLimitPerMin)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		ChatHandler: chatHandler,
		Middleware:  mw,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
