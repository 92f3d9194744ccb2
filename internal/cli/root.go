// Package cli implements the mastermind commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/robalobadob/mastermind/internal/config"
)

// NewRootCmd builds the command tree. Running the root command plays the game.
func NewRootCmd(cfg config.Config) *cobra.Command {
	opts := &playOptions{}
	root := &cobra.Command{
		Use:           "mastermind",
		Short:         "Crack the Mastermind's secret number",
		Long:          "A turn-based code-breaking game. Guess the secret digits; use /hint, /hint_history, /guess_history and /score mid-game.",
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return play(cmd.Context(), cfg, *opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	root.PersistentFlags().StringVarP(&opts.db, "db", "d", "", "Score database path (default: $SCORE_DB or ~/.mastermind/score.db)")
	root.PersistentFlags().StringVarP(&opts.player, "player", "p", "", "Player name (default: $MASTERMIND_PLAYER)")

	root.Flags().BoolVar(&opts.cheat, "cheat", false, "Reveal the secret number at the start of each round")
	root.Flags().BoolVar(&opts.daily, "daily", false, "Play the daily number shared by everyone; replaying the same day repeats that number")
	root.Flags().BoolVar(&opts.offline, "offline", false, "Generate numbers locally instead of calling the random service")
	root.Flags().BoolVar(&opts.ephemeral, "ephemeral", false, "Keep the score in memory only")
	root.Flags().BoolVar(&opts.noIntro, "no-intro", false, "Skip the welcome banner")

	root.AddCommand(newScoreCmd(cfg, opts))
	root.AddCommand(newRNGServeCmd(cfg))
	return root
}
