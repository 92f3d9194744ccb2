package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/mastermind/internal/codegen"
	"github.com/robalobadob/mastermind/internal/config"
	"github.com/robalobadob/mastermind/internal/rngserver"
)

func newRNGServeCmd(cfg config.Config) *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "rng-serve",
		Short: "Serve a local random.org-compatible integer service",
		Long:  "Serve GET /integers/ locally. Point RNG_URL at http://localhost:<port>/integers/ to play without network access.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := codegen.NewSeed()
			if err != nil {
				seed = time.Now().UnixNano()
			}
			srv := rngserver.New(rand.New(rand.NewSource(seed)))
			addr := fmt.Sprintf(":%d", port)
			log.Info().Str("addr", addr).Msg("starting rng server")
			return srv.Start(addr)
		},
	}
	cmd.Flags().IntVar(&port, "port", cfg.RNGPort, "Port to listen on (default: $RNG_PORT)")
	return cmd
}
