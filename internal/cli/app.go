// Package cli implements the interactive moodlog client: a small REPL over
// the entry store, the aggregation engine, the export filter and the
// medication/reminder registries.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/jonboulle/clockwork"

	"moodlog/internal/config"
	"moodlog/internal/cryptox"
	"moodlog/internal/logging"
	"moodlog/internal/notify"
	"moodlog/internal/repositories/kv"
	"moodlog/internal/services"

	_ "modernc.org/sqlite"
)

type App struct {
	config    *config.Config
	log       logging.Logger
	clock     clockwork.Clock
	db        *sql.DB
	entries   *services.EntryService
	meds      *services.MedicationService
	trends    *services.TrendService
	export    *services.ExportService
	reminders *services.ReminderService
	scheduler *notify.Scheduler
	reader    *bufio.Reader
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.New(cfg.LogLevel)
	clock := clockwork.NewRealClock()

	db, err := kv.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "failed to initialize database", "error", err)
		return nil, err
	}

	var storage kv.Storage = kv.NewSQLiteStorage(db)
	if cfg.Encrypt {
		storage, err = sealedStorage(ctx, storage)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	meds := services.NewMedicationService(storage, log)
	entries := services.NewEntryService(storage, meds, clock, log)
	reminders := services.NewReminderService(storage, notify.NewLogNotifier(log), log)

	// load once at startup; failures leave empty defaults
	meds.Load(ctx)
	entries.Load(ctx)
	reminders.Load(ctx)

	scheduler, err := notify.NewScheduler(log, func(tod string) {
		printlnFn(fmt.Sprintf("Reminder (%s): time to log how you are feeling.", tod))
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	app := &App{
		config:    cfg,
		log:       log,
		clock:     clock,
		db:        db,
		entries:   entries,
		meds:      meds,
		trends:    services.NewTrendService(entries, clock),
		export:    services.NewExportService(entries),
		reminders: reminders,
		scheduler: scheduler,
		reader:    bufio.NewReader(os.Stdin),
	}

	if reminders.Enabled() {
		if err := scheduler.Reschedule(ctx, reminders.Times()); err != nil {
			log.Warn(ctx, "failed to arm reminder jobs", "error", err)
		}
		scheduler.Start()
	}

	return app, nil
}

// sealedStorage prompts for the passphrase and wraps storage so every blob
// is encrypted at rest.
func sealedStorage(ctx context.Context, storage kv.Storage) (kv.Storage, error) {
	pass, err := GetPassphrase(os.Stdout)
	if err != nil {
		return nil, err
	}
	salt, err := kv.EnsureSalt(ctx, storage)
	if err != nil {
		return nil, err
	}
	return kv.NewSealedStorage(storage, cryptox.DeriveKey(pass, salt)), nil
}

func (a *App) Run(ctx context.Context) {
	printlnFn("moodlog (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, scanner)
}

func (a *App) Close() {
	if err := a.scheduler.Stop(); err != nil {
		a.log.Warn(context.Background(), "failed to stop scheduler", "error", err)
	}
	if err := a.db.Close(); err != nil {
		a.log.Warn(context.Background(), "failed to close database", "error", err)
	}
}
