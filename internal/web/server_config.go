package web

import (
	"fmt"
	"os"
	"strconv"
)

const (
	EnvListenAddr = "GUIBRIDGE_LISTEN"
	EnvDevMode    = "GUIBRIDGE_DEV"
)

// ServerConfig contains settings for running the diagnostics server.
// An empty ListenAddr disables it.
type ServerConfig struct {
	ListenAddr string
	DevMode    bool
}

func DefaultServerConfigFromEnv(defaultListenAddr string) (ServerConfig, error) {
	return serverConfigFromLookup(os.LookupEnv, defaultListenAddr)
}

func serverConfigFromLookup(lookup func(string) (string, bool), defaultListenAddr string) (ServerConfig, error) {
	listenAddr, ok := lookup(EnvListenAddr)
	if !ok {
		listenAddr = defaultListenAddr
	}

	devMode := false
	if raw, _ := lookup(EnvDevMode); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return ServerConfig{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvDevMode, raw, err)
		}
		devMode = parsed
	}

	return ServerConfig{ListenAddr: listenAddr, DevMode: devMode}, nil
}
