package main

import (
	"errors"
	"fmt"

	"github.com/HendryAvila/careerfit/internal/content"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) newContentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Inspect and export quiz content",
	}
	cmd.AddCommand(a.newContentCheckCmd(), a.newContentExportCmd())
	return cmd
}

func (a *app) newContentCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the active content pack",
		Long: `Load the active content pack (embedded, --content or --content-db) and
run the startup checks: 16 questions with 4 per trait, and an explicit
profile for every one of the 16 High/Low combinations plus a default.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := a.deps()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "content %s (version %s): %d questions, %d profiles, OK\n",
				deps.Source, deps.Pack.Version,
				deps.Engine.Catalog().Len(), len(deps.Engine.Profiles().Keys()),
			)
			return nil
		},
	}
}

func (a *app) newContentExportCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the active content pack to a SQLite content database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbPath == "" {
				return errors.New("--db is required")
			}
			if dbPath == a.cfg.ContentDB {
				return errors.New("--db must differ from the content database being read")
			}

			deps, err := a.deps()
			if err != nil {
				return err
			}

			store, err := content.OpenSQLite(dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Save(deps.Pack); err != nil {
				return fmt.Errorf("exporting content: %w", err)
			}

			a.logger.Info("content exported", zap.String("db", dbPath), zap.Stringer("source", deps.Source))
			fmt.Fprintf(cmd.OutOrStdout(), "exported %s content to %s\n", deps.Source, dbPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "target SQLite database path")
	return cmd
}
