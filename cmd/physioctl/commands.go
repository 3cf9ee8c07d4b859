package main

import (
	"context"
	"fmt"
	"strings"

	"telephysio/internal/faq"
	"telephysio/pkg/config"
	"telephysio/pkg/logger"
	"telephysio/pkg/postgres"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var kbFile string

	root := &cobra.Command{
		Use:           "physioctl",
		Short:         "Operator tools for the telephysio backend",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&kbFile, "kb", "", "YAML knowledge base (defaults to the built-in entries)")

	loadKB := func() (*faq.KnowledgeBase, error) {
		if kbFile == "" {
			return faq.DefaultKnowledgeBase(), nil
		}
		return faq.LoadFile(kbFile)
	}

	root.AddCommand(newAskCmd(loadKB), newKBCmd(loadKB), newMigrateCmd())
	return root
}

func newAskCmd(loadKB func() (*faq.KnowledgeBase, error)) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Print the assistant's reply to a question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kb, err := loadKB()
			if err != nil {
				return err
			}
			answer := faq.NewResponder(kb).Answer(strings.Join(args, " "))
			if verbose {
				fmt.Fprintf(cmd.OutOrStdout(), "outcome: %s\n", answer.Outcome)
				if answer.Match.Found() {
					fmt.Fprintf(cmd.OutOrStdout(), "entry: %s (score %d)\n", answer.Match.Entry.ID, answer.Match.Score)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), answer.Text)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "also print the outcome and matched entry")
	return cmd
}

func newKBCmd(loadKB func() (*faq.KnowledgeBase, error)) *cobra.Command {
	kb := &cobra.Command{
		Use:   "kb",
		Short: "Inspect knowledge base files",
	}

	kb.AddCommand(&cobra.Command{
		Use:   "export",
		Short: "Write the knowledge base as YAML to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			base, err := loadKB()
			if err != nil {
				return err
			}
			return faq.Encode(cmd.OutOrStdout(), base.Entries())
		},
	})

	kb.AddCommand(&cobra.Command{
		Use:   "check <file>",
		Short: "Validate a YAML knowledge base",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := faq.LoadFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d entries OK\n", args[0], base.Len())
			return nil
		},
	})

	return kb
}

func newMigrateCmd() *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:       "migrate up|down",
		Short:     "Apply or roll back database migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := migrationSteps(args[0], steps)
			if err != nil {
				return err
			}
			return migrate(cmd.Context(), n)
		},
	}
	cmd.Flags().IntVarP(&steps, "steps", "n", 0, "number of migrations (0 applies all for up, one for down)")
	return cmd
}

// migrationSteps converts a direction and count into the signed step count
// postgres.Migrate expects.
func migrationSteps(direction string, steps int) (int, error) {
	if steps < 0 {
		return 0, fmt.Errorf("steps must not be negative")
	}
	switch direction {
	case "up":
		return steps, nil
	case "down":
		if steps == 0 {
			steps = 1
		}
		return -steps, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", direction)
	}
}

func migrate(ctx context.Context, steps int) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(cfg.Logger.Level); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	return postgres.Migrate(db, cfg.Database.Migrations, steps, appLogger)
}
