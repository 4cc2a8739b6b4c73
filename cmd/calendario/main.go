package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/mfalcone/calendario/internal/app"
	"github.com/mfalcone/calendario/internal/appstate"
	"github.com/mfalcone/calendario/internal/i18n"
	"github.com/mfalcone/calendario/internal/layout"
	"github.com/mfalcone/calendario/internal/logger"
	"github.com/mfalcone/calendario/internal/notify"
	"github.com/mfalcone/calendario/internal/storage"
	"github.com/mfalcone/calendario/internal/storagebuilder"
)

var configFile string

func init() {
	flag.StringVar(&configFile, "config", "./configs/config.yaml", "Path to configuration file")
	log.SetFormatter(&log.TextFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(log.WarnLevel)
}

func main() {
	// Top-level recovery boundary: a fault during startup is reported
	// instead of dying silently.
	defer func() {
		if r := recover(); r != nil {
			log.Fatalf("fatal error: %v", r)
		}
	}()

	flag.Parse()

	if flag.Arg(0) == "version" {
		printVersion()
		return
	}

	config, err := NewConfig(configFile)
	if err != nil {
		log.Errorf("failed to start %v", err)
		return
	}
	err = logger.PrepareLogger(config.Logger)
	if err != nil {
		log.Errorf("failed to start %v", err)
		return
	}

	stor, err := storagebuilder.New(config.Storage)
	if err != nil {
		// Degraded mode: keep running on a volatile store rather than
		// crash on a persistence failure.
		log.Errorf("failed to open storage, continuing with in-memory store: %v", err)
		stor, err = storagebuilder.New(storagebuilder.Config{StorageType: "memory"})
		if err != nil {
			log.Errorf("failed to start %v", err)
			return
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer cancel()

	calendar := app.New(stor)
	lang := i18n.Match(calendar.Language(ctx))
	state := appstate.New(time.Now())
	state.SetLanguage(lang)
	state.SetTheme(calendar.Theme(ctx))

	// Standing subscription: every event mutation recomputes the
	// current view from a fresh snapshot.
	unsubscribe := stor.Subscribe(storage.CollectionEvents, func() {
		events, err := stor.ListEvents(context.Background())
		if err != nil {
			log.Errorf("failed to list events: %v", err)
			return
		}
		filtered := app.FilterEvents(events, app.Filter{
			EntityIDs: state.SelectedEntities(),
			Search:    state.Search(),
		})
		model, err := layout.Layout(state.View(), state.CurrentDate(), filtered, layout.Config{Now: time.Now()})
		if err != nil {
			log.Errorf("failed to lay out view: %v", err)
			return
		}
		log.WithField("view", model.View).WithField("events", len(filtered)).
			Debug("view recomputed")
	})
	defer unsubscribe()

	notifier := notify.New(stor, config.Notifier.Spec, func(n notify.Notification) {
		log.WithField("event", n.EventID).WithField("entity", n.Entity).
			Infof("%s at %s", n.Title, n.StartTime)
	})
	if config.Notifier.Enabled && calendar.NotificationsEnabled(ctx) {
		if err := notifier.Start(); err != nil {
			log.Errorf("failed to start notifier: %v", err)
		}
	}

	log.Info(i18n.T(lang, "app_name") + " is running...")

	<-ctx.Done()

	notifier.Stop()
	closeCtx, closeCancel := context.WithTimeout(context.Background(), time.Second*3)
	defer closeCancel()
	if err := stor.Close(closeCtx); err != nil {
		log.Errorf("failed to close storage: %v", err)
	}
}
