// Command chesscore runs the UCI front end over the bitboard engine.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/hailam/chesscore/internal/config"
	"github.com/hailam/chesscore/internal/uci"
)

func main() {
	// The options file sits next to the binary.
	configPath := "chesscore.toml"
	if exe, err := os.Executable(); err == nil {
		configPath = filepath.Join(filepath.Dir(exe), "chesscore.toml")
	}

	opts, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chesscore: reading chesscore.toml: %v\n", err)
		os.Exit(1)
	}

	log, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "chesscore: building logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("starting", zap.Int("depth", opts.Depth), zap.Int("hash_size_mb", opts.HashSizeMB))

	handler := uci.New(opts.Depth, opts.HashSizeMB, log)
	handler.Run()
}
