// Copyright © 2024 Mutker Telag <witty.text5011@fastmail.com>
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"codeberg.org/mutker/goresult/internal/logger"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	root, a := newRootCommand()
	err := root.ExecuteContext(ctx)

	if cerr := a.close(); cerr != nil {
		logger.Error().Err(cerr).Msg("Failed to close users database")
	}
	cancel()

	if err != nil {
		os.Exit(1)
	}
}
