package main

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"telephysio/internal/faq"
	"telephysio/internal/repository"
	"telephysio/internal/service"
	"telephysio/pkg/config"
	"telephysio/pkg/logger"
	"telephysio/pkg/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	var (
		file  string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the assistant knowledge base into the faq_entries table",
		Long: "Seeds faq_entries from a YAML file, or from the built-in clinic entries " +
			"when no file is given. Unchanged content is left alone unless --force is set.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), file, force)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML knowledge base to seed from")
	cmd.Flags().BoolVar(&force, "force", false, "rewrite entries even when unchanged")

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, file string, force bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	kb := faq.DefaultKnowledgeBase()
	if file != "" {
		kb, err = faq.LoadFile(file)
		if err != nil {
			return err
		}
	}

	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(db, cfg.Database.Migrations, 0, appLogger); err != nil {
			return err
		}
	}

	repo := repository.NewFAQRepository(db, appLogger)

	appLogger.Info("Starting knowledge base seeding...", zap.String("file", file), zap.Int("entries", kb.Len()))

	if !force {
		stored, err := repo.List(ctx)
		if err != nil {
			return err
		}
		same, err := sameEntries(kb.Entries(), service.EntriesFromModels(stored))
		if err != nil {
			return err
		}
		if same {
			appLogger.Info("Knowledge base already seeded, skipping", zap.Int("entries", len(stored)))
			return nil
		}
	}

	if err := repo.ReplaceAll(ctx, service.EntriesToModels(kb.Entries())); err != nil {
		return fmt.Errorf("failed to seed knowledge base: %w", err)
	}

	appLogger.Info("Knowledge base seeding completed successfully!", zap.Int("entries", kb.Len()))
	return nil
}

// sameEntries compares the YAML renderings, so nil and empty keyword lists
// count as equal.
func sameEntries(a, b []faq.Entry) (bool, error) {
	var bufA, bufB bytes.Buffer
	if err := faq.Encode(&bufA, a); err != nil {
		return false, err
	}
	if err := faq.Encode(&bufB, b); err != nil {
		return false, err
	}
	return bytes.Equal(bufA.Bytes(), bufB.Bytes()), nil
}
