package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robalobadob/mastermind/internal/config"
	"github.com/robalobadob/mastermind/internal/store"
)

func newScoreCmd(cfg config.Config, opts *playOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "score",
		Short: "Show the saved score",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.dbPath(cfg)
			sb, err := store.OpenSQLite(path, opts.playerName(cfg))
			if err != nil {
				return fmt.Errorf("open scoreboard: %w", err)
			}
			defer sb.Close()

			n, err := sb.ReadScore(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "score: %d\n", n)
			return nil
		},
	}
}
