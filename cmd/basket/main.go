package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"github.com/jask/basket/internal/config"
	"github.com/jask/basket/internal/database"
	"github.com/jask/basket/internal/database/repository"
	"github.com/jask/basket/internal/grocery"
	"github.com/jask/basket/internal/prefs"
	"github.com/jask/basket/internal/scan"
	"github.com/jask/basket/internal/service"
	"github.com/jask/basket/internal/share"
	"github.com/jask/basket/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "config file (default ~/.config/basket/config.toml)")
	debug := flag.Bool("debug", os.Getenv("BASKET_DEBUG") != "", "write logs to basket-debug.log")
	startTab := flag.String("tab", "lists", "tab to open: lists, budget, scan, alerts or settings")
	filterName := flag.String("filter", "all", "list filter: all, shared, personal or completed")
	flag.Parse()

	filter, err := grocery.ParseFilter(*filterName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	if *debug {
		f, err := tea.LogToFile("basket-debug.log", "basket")
		if err != nil {
			log.Fatalf("log file: %v", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	settings, err := prefs.LoadSettings()
	if err != nil {
		log.Printf("warn: using default settings: %v", err)
	}

	db, err := database.OpenSession(ctx)
	if err != nil {
		log.Fatalf("open session store: %v", err)
	}
	defer db.Close()

	loc, err := time.LoadLocation(cfg.UI.Timezone)
	if err != nil {
		log.Printf("warn: using local timezone due to load failure: %v", err)
		loc = time.Local
	}
	now := func() time.Time { return time.Now().In(loc) }

	// repositories
	listRepo := repository.NewListRepo(db)
	notificationRepo := repository.NewNotificationRepo(db)
	suggestionRepo := repository.NewSuggestionRepo(db)
	budgetRepo := repository.NewBudgetRepo(db)
	storeRepo := repository.NewStoreRepo(db)

	services := tui.Services{
		Lists:         &service.ListService{Lists: listRepo, Now: now},
		Notifications: &service.NotificationService{Notifications: notificationRepo},
		Suggestions:   &service.SuggestionService{Suggestions: suggestionRepo},
		Budget:        &service.BudgetService{Budget: budgetRepo, Config: cfg.Budget},
		Shopping:      &service.ShoppingService{Stores: storeRepo},
		Maintenance:   &service.MaintenanceService{DB: db},
	}

	app := tui.New(ctx, cfg, services, tui.Options{
		Settings:     settings,
		SaveSettings: prefs.SaveSettings,
		SaveProfile:  func(pc config.ProfileConfig) error { return config.SaveProfile(*configPath, pc) },
		Scanner:      scan.New(log.Default()),
		Handoff:      share.NewHandoff(),
		Now:          now,
		StartTab:     *startTab,
		Filter:       filter,
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
}
