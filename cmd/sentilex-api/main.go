// @title         Sentilex API
// @version       0.1.0
// @description   Portuguese sentiment scoring with a short analysis history

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"sentilex/internal/core/lexicon"
	"sentilex/internal/core/sentiment"
	"sentilex/internal/platform/config"
	"sentilex/internal/platform/logger"
	phttp "sentilex/internal/platform/net/http"
	"sentilex/internal/platform/store"

	"sentilex/internal/services/api"
)

func main() {
	// .env is optional, real env wins; load it before the logger reads LOG_*
	_, envErr := config.LoadDefaultEnv()
	logger.Init(logger.FromEnv())
	l := logger.Get()
	if envErr != nil {
		l.Warn().Err(envErr).Msg("failed to load .env")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	pgCfg := root.Prefix("SERVICE_PGSQL_")      // pgCfg lives under SERVICE_PGSQL_*
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_") // chCfg lives under SERVICE_CLICKHOUSE_*
	kvCfg := root.Prefix("SERVICE_VALKEY_")     // kvCfg lives under SERVICE_VALKEY_*

	// every backend is optional; an unset URL keeps the service in memory
	pgURL := pgCfg.MayString("DBURL", "")
	chURL := chCfg.MayString("DBURL", "")
	kvAddr := kvCfg.MayString("ADDR", "")

	st, err := store.Open(
		ctx,
		store.Config{
			AppName: "sentilex-api",
			PG: store.PGConfig{
				Enabled:     pgCfg.MayBool("ENABLED", pgURL != ""),
				URL:         pgURL,
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", false),
			},
			CH: store.CHConfig{
				Enabled: chCfg.MayBool("ENABLED", chURL != ""),
				URL:     chURL,
			},
			KV: store.KVConfig{
				Enabled:  kvCfg.MayBool("ENABLED", kvAddr != ""),
				Addr:     kvAddr,
				Password: kvCfg.MayString("PASSWORD", ""),
				DB:       kvCfg.MayInt("DB", 0),
			},
		},
		store.WithLogger(*l),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	if err := st.Guard(ctx); err != nil {
		// readiness reports the same failures; keep serving from memory
		l.Warn().Err(err).Msg("store guard")
	}

	pack, err := loadPack(apiCfg.MayString("LEXICON_PATH", ""))
	if err != nil {
		l.Panic().Err(err).Msg("lexicon load failed")
	}
	mode, err := sentiment.ParseMode(apiCfg.MayString("SCORING_MODE", string(sentiment.ModeBlended)))
	if err != nil {
		l.Panic().Err(err).Msg("bad CORE_API_SCORING_MODE")
	}
	scorer, err := pack.NewScorer(lexicon.ScorerOptions{
		Mode:          mode,
		Negation:      apiCfg.MayBool("NEGATION", true),
		PreviewTokens: apiCfg.MayInt("PREVIEW_TOKENS", 0),
		Logger:        logger.Named("scorer"),
	})
	if err != nil {
		l.Panic().Err(err).Msg("scorer setup failed")
	}

	// http server (reads CORE_API_API_PORT)
	srv := phttp.NewServer(apiCfg)

	opts := api.FromConfig(apiCfg)
	opts.KVConfig = kvCfg
	opts.Store = st
	opts.Logger = l
	opts.Scorer = scorer
	api.Mount(ctx, srv.Router(), opts)

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}

func loadPack(path string) (*lexicon.Pack, error) {
	if path == "" {
		return lexicon.Load()
	}
	return lexicon.LoadFile(path)
}
