package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/praiadomeio/app-ampm/internal/config"
	"github.com/praiadomeio/app-ampm/internal/logging"
	"github.com/praiadomeio/app-ampm/internal/observability"
	"github.com/praiadomeio/app-ampm/internal/store"
	"github.com/praiadomeio/app-ampm/internal/utils"
	"go.uber.org/zap"
)

// importKeys are the browser storage keys carried over from an export
var importKeys = []string{store.KeyMembers, store.KeyPayments, store.KeyExpenses, store.KeyUsers}

func main() {
	file := flag.String("file", "", "path to the browser storage export (JSON object keyed by storage key)")
	dryRun := flag.Bool("dry-run", false, "validate the export without writing to the store")
	flag.Parse()

	if err := logging.InitLogger(); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer logging.Logger.Sync()

	if err := config.LoadConfig(); err != nil {
		logging.Logger.Fatal("failed to load config", zap.Error(err))
	}
	if *file == "" {
		logging.Logger.Fatal("missing -file")
	}

	raw, err := os.ReadFile(*file)
	if err != nil {
		logging.Logger.Fatal("failed to read export", zap.String("file", *file), zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	snapshot, err := decodeExport(ctx, raw, config.AppConfig.BootstrapAdminPassword)
	if err != nil {
		logging.Logger.Fatal("export rejected", zap.Error(err))
	}
	warnInvalidCPFs(snapshot)

	logging.Logger.Info("export validated",
		zap.Int("members", len(snapshot.Members)),
		zap.Int("payments", len(snapshot.Payments)),
		zap.Int("expenses", len(snapshot.Expenses)),
		zap.Int("users", len(snapshot.Users)),
		zap.Bool("dry_run", *dryRun))
	if *dryRun {
		return
	}

	backend, err := store.Open(ctx)
	if err != nil {
		logging.Logger.Fatal("failed to open record store", zap.Error(err))
	}
	defer store.Close(context.Background())

	if err := writeSnapshot(ctx, store.NewRepository(backend, ""), snapshot); err != nil {
		logging.Logger.Fatal("import failed", zap.String("store", backend.Name()), zap.Error(err))
	}
	logging.Logger.Info("import finished", zap.String("store", backend.Name()))
}

// decodeExport stages the export in memory and loads it through the repository,
// so records are validated and plaintext passwords hashed before anything is written.
// Browser storage holds every value as a string, so string-encoded arrays are unwrapped.
func decodeExport(ctx context.Context, raw []byte, adminPassword string) (*store.Snapshot, error) {
	var export map[string]json.RawMessage
	if err := json.Unmarshal(raw, &export); err != nil {
		return nil, fmt.Errorf("export is not a JSON object: %w", err)
	}

	staging := store.NewMemoryStore()
	for _, key := range importKeys {
		value, ok := export[key]
		if !ok {
			continue
		}
		value = bytes.TrimSpace(value)
		if len(value) > 0 && value[0] == '"' {
			var inner string
			if err := json.Unmarshal(value, &inner); err != nil {
				return nil, fmt.Errorf("decode %q: %w", key, err)
			}
			value = []byte(inner)
		}
		if err := staging.Persist(ctx, key, value); err != nil {
			return nil, err
		}
	}

	return store.NewRepository(staging, adminPassword).LoadAll(ctx)
}

func writeSnapshot(ctx context.Context, repo *store.Repository, snapshot *store.Snapshot) error {
	if err := repo.PersistMembers(ctx, snapshot.Members); err != nil {
		return fmt.Errorf("write members: %w", err)
	}
	if err := repo.PersistPayments(ctx, snapshot.Payments); err != nil {
		return fmt.Errorf("write payments: %w", err)
	}
	if err := repo.PersistExpenses(ctx, snapshot.Expenses); err != nil {
		return fmt.Errorf("write expenses: %w", err)
	}
	if err := repo.PersistUsers(ctx, snapshot.Users); err != nil {
		return fmt.Errorf("write users: %w", err)
	}
	return nil
}

// warnInvalidCPFs logs members whose CPF fails the check digits. They are imported anyway.
func warnInvalidCPFs(snapshot *store.Snapshot) int {
	invalid := 0
	for _, m := range snapshot.Members {
		if m.CPF != "" && !utils.ValidateCPF(m.CPF) {
			invalid++
			logging.Logger.Warn("member has an invalid CPF",
				zap.String("member_id", m.ID),
				zap.String("cpf", observability.MaskCPF(m.CPF)))
		}
	}
	return invalid
}
