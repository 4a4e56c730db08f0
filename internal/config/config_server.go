package config

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// ServerConfig holds the configuration settings for the server.
type ServerConfig struct {
	Addr     string // Server address
	LogLevel string // zap level name
	Logger   *zap.SugaredLogger
}

// NewServerConfig creates a ServerConfig by parsing args and environment variables.
func NewServerConfig(args []string) (*ServerConfig, error) {
	// 0) defaults
	cfg := &ServerConfig{
		Addr:     "localhost:8080",
		LogLevel: defaultLogLevel,
	}

	// 1) flags
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	var fAddr, fLevel, fConf strFlag
	fAddr.v = cfg.Addr
	fLevel.v = cfg.LogLevel
	fs.Var(&fAddr, "a", "HTTP server address")
	fs.Var(&fLevel, "l", "log level")
	fs.Var(&fConf, "c", "Path to JSON config file")
	fs.Var(&fConf, "config", "Path to JSON config file (alias)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Addr = fAddr.v
	cfg.LogLevel = fLevel.v

	// 2) JSON (lowest priority)
	if fConf.v == "" {
		fConf.v = os.Getenv("CONFIG")
	}
	if fConf.v != "" {
		js, err := loadServerJSON(fConf.v)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", fConf.v, err)
		}
		if js.Address != nil && !fAddr.set {
			cfg.Addr = *js.Address
		}
		if js.LogLevel != nil && !fLevel.set {
			cfg.LogLevel = *js.LogLevel
		}
	}

	// 3) env
	readServerEnvironment(cfg)

	cfg.Logger = newLogger(cfg.LogLevel, []string{"stdout"})
	return cfg, nil
}

func readServerEnvironment(cfg *ServerConfig) {
	if addr := os.Getenv("ADDRESS"); addr != "" {
		cfg.Addr = addr
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
}
