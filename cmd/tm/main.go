package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"taskmaster/internal/api"
	"taskmaster/internal/cli"
	"taskmaster/internal/config"
	"taskmaster/internal/location"
	"taskmaster/internal/network"
	"taskmaster/internal/notify"
	"taskmaster/internal/services"
	"taskmaster/pkg/logger"
)

func main() {
	// Load a local .env file if present; real environment wins.
	_ = godotenv.Load()

	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:    cfg.Logging.Level,
		Encoding: cfg.Logging.Encoding,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Create repository factory based on environment
	factory := NewRepositoryFactory(getEnvironment(), cfg)
	repo, err := factory.CreateRepository()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating repository: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	scheduler := notify.NewMemoryScheduler(log)

	geocoder := location.NewNominatimGeocoder(
		cfg.Geocoder.BaseURL,
		cfg.Geocoder.UserAgent,
		&http.Client{Timeout: cfg.Geocoder.Timeout},
	)

	monitor := network.NewMonitor(
		cfg.Network.ProbeAddress,
		cfg.Network.ProbeTimeout,
		cfg.Network.CheckInterval,
		nil,
		log,
	)
	monitor.Start()
	defer monitor.Stop()

	apiInstance := api.New(api.Deps{
		Repo:         repo,
		Editor:       services.NewEditorService(repo),
		Organizer:    services.NewOrganizerService(cfg.Time.DateFormat),
		Proximity:    services.NewProximityService(scheduler, cfg.Proximity.ThresholdMeters, cfg.Notification.NearbyTriggerDelay, log),
		Reminders:    services.NewReminderService(scheduler, log),
		Geocoder:     geocoder,
		Reachability: monitor,
		Logger:       log,
	})

	root := cli.NewRootCommand(apiInstance, cfg, log)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
