package commands

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"tableflip.dev/eod/pkg/clip"
	"tableflip.dev/eod/pkg/journal"
	"tableflip.dev/eod/pkg/logging"
	"tableflip.dev/eod/pkg/session"
	"tableflip.dev/eod/pkg/store"
)

// env is everything a command needs to reach the journal.
type env struct {
	cfg     store.Config
	backend store.Backend
	journal *journal.Store
	themes  *session.Themes
	log     zerolog.Logger
}

func openEnv(ctx context.Context) (*env, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	backend, err := store.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	l := logging.Component(log.Logger, "journal")
	j, err := journal.Open(ctx, backend, journal.WithLogger(l))
	if err != nil {
		_ = backend.Close()
		return nil, err
	}
	return &env{
		cfg:     cfg,
		backend: backend,
		journal: j,
		themes:  session.NewThemes(backend),
		log:     l,
	}, nil
}

func (e *env) Close() {
	if err := e.backend.Close(); err != nil {
		e.log.Warn().Err(err).Msg("close storage")
	}
}

func (e *env) session() *session.Session {
	return session.New(e.journal.Now(), e.cfg.AuthorName())
}

func (e *env) theme(ctx context.Context) session.Theme {
	return e.themes.Current(ctx)
}

func (e *env) copier() *clip.Copier {
	return clip.New(logging.Component(log.Logger, "clipboard"))
}
