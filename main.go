// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package main

import (
	"fmt"
	"os"

	"promptbar/app"
	"promptbar/args"
	"promptbar/config"
	promptlog "promptbar/utils/log"
)

func main() {
	cfg, err := config.Load(args.Parse(os.Args[1:]))
	if err != nil {
		fmt.Fprintln(os.Stderr, "promptbar:", err)
		os.Exit(2)
	}

	promptlog.Init(config.AppName, promptlog.Options{Mode: cfg.Env, Level: cfg.LogLevel})

	if err := app.Run(cfg); err != nil {
		promptlog.L().Errorf("exited with error: %v", err)
		promptlog.Sync()
		fmt.Fprintln(os.Stderr, "promptbar:", err)
		os.Exit(1)
	}
	promptlog.Sync()
}
