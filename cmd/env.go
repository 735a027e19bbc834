package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/viper"

	"github.com/kamusis/launchkit/internal/catalog"
	"github.com/kamusis/launchkit/internal/config"
	"github.com/kamusis/launchkit/internal/desktop"
	"github.com/kamusis/launchkit/internal/logging"
)

// appEnv is what every command needs: the loaded config and the file logger.
type appEnv struct {
	cfg      *config.Config
	log      *slog.Logger
	closeLog func() error
}

func loadEnv() (*appEnv, error) {
	cfg, err := config.Load(viper.GetString("config"))
	if err != nil {
		return nil, fmt.Errorf("cannot load config: %w", err)
	}
	level := logging.ParseLevel(cfg.LogLevel)
	if viper.GetBool("debug") {
		level = slog.LevelDebug
	}
	appDir, _ := config.AppDir()
	log, closeFn := logging.OpenOrDiscard(appDir, level)
	return &appEnv{cfg: cfg, log: log, closeLog: closeFn}, nil
}

func (e *appEnv) Close() {
	if e.closeLog != nil {
		_ = e.closeLog()
	}
}

func (e *appEnv) descriptorDirs() []string {
	return desktop.SearchDirs(os.Getenv, e.cfg.ExtraDirs)
}

// buildIndex reads every descriptor directory and builds the entry index.
func (e *appEnv) buildIndex() *catalog.Index {
	r := &desktop.Reader{
		Dirs:    e.descriptorDirs(),
		Locales: desktop.LocaleKeys(os.Getenv),
		Logger:  e.log,
	}
	idx := catalog.Build(r.Read())
	e.log.Debug("index built", "entries", idx.Len())
	return idx
}
