package cli

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/mastermind/internal/codegen"
	"github.com/robalobadob/mastermind/internal/config"
	"github.com/robalobadob/mastermind/internal/game"
	"github.com/robalobadob/mastermind/internal/store"
)

// playOptions are the flags of the root (play) command.
type playOptions struct {
	db        string
	player    string
	cheat     bool
	daily     bool
	offline   bool
	ephemeral bool
	noIntro   bool
}

func (o playOptions) playerName(cfg config.Config) string {
	if o.player != "" {
		return o.player
	}
	return cfg.Player
}

func (o playOptions) dbPath(cfg config.Config) string {
	if o.db != "" {
		return o.db
	}
	return cfg.ScoreDBPath()
}

// play wires the collaborators and runs one session to completion.
func play(ctx context.Context, cfg config.Config, opts playOptions, in io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	rules := game.DefaultRules()
	if len(cfg.Keywords) > 0 {
		rules.Keywords = cfg.Keywords
	}
	shape := codegen.Shape{BaseLength: rules.BaseLength, Radix: rules.Radix}
	local := codegen.NewLocal(shape)

	var source game.CodeSource
	switch {
	case opts.daily:
		source = codegen.NewDaily(shape, cfg.DailySalt, nil)
	case opts.offline:
		source = local
	default:
		source = codegen.NewRandomOrg(shape, codegen.RandomOrgConfig{
			URL:      cfg.RNGURL,
			Timeout:  cfg.RNGTimeout,
			MaxTries: cfg.RNGMaxTries,
		})
	}

	board := openScoreboard(cfg, opts)
	defer board.Close()

	seed, err := codegen.NewSeed()
	if err != nil {
		seed = time.Now().UnixNano()
	}

	sess := game.NewSession(source, board,
		game.WithRules(rules),
		game.WithRand(rand.New(rand.NewSource(seed))),
		game.WithFallback(local),
		game.WithDebug(opts.cheat),
		game.WithLogger(log.Logger),
	)

	r := newRenderer(out)
	if !opts.noIntro {
		r.intro(cfg.IntroDelay)
	}
	if err := sess.Run(ctx, newLineReader(in), r); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	return nil
}

// openScoreboard picks the scoreboard for opts. A database that cannot be opened
// yields a scoreboard that fails every call, so the session reports it and plays on.
func openScoreboard(cfg config.Config, opts playOptions) store.Scoreboard {
	player := opts.playerName(cfg)
	if opts.ephemeral {
		return store.NewMemory(player)
	}
	path := opts.dbPath(cfg)
	sb, err := store.OpenSQLite(path, player)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("scoreboard unavailable")
		return store.Unavailable(err)
	}
	return sb
}
