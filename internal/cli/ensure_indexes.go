package cli

import (
	"context"
	"fmt"

	"fitnesshub/fitness-app/internal/repository/mongo"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

var ensureIndexesCmd = &cobra.Command{
	Use:   "ensure-indexes",
	Short: "Create the MongoDB indexes, including the weekly completion unique index",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		client, err := mongo.ConnectDB(cfg.Database.URI)
		if err != nil {
			return fmt.Errorf("connect mongodb: %w", err)
		}
		defer func() {
			err = multierr.Append(err, mongo.DisconnectDB(client))
		}()

		ctx, cancel := context.WithTimeout(cmd.Context(), indexTimeout)
		defer cancel()
		if err := mongo.EnsureIndexes(ctx, client.Database(cfg.Database.Name)); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s indexes ensured on %s\n",
			color.New(color.FgGreen, color.Bold).Sprint("✓"), cfg.Database.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ensureIndexesCmd)
}
