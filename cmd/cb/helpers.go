// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/viper"

	"github.com/meshintel/commandbrain/internal/display"
)

// databasePath resolves the catalog database location: the "database"
// config key if set, otherwise ~/.commandbrain.db.
func databasePath() string {
	if p := viper.GetString("database"); p != "" {
		return expandHome(p)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".commandbrain.db"
	}
	return filepath.Join(home, ".commandbrain.db")
}

func expandHome(p string) string {
	if !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[2:])
}

// newPrinter builds the display printer from the "color" config key
// (auto, always, never). In auto mode the color package's terminal
// detection decides.
func newPrinter() *display.Printer {
	colored := !color.NoColor
	switch viper.GetString("color") {
	case "always":
		colored = true
	case "never":
		colored = false
	}
	return display.NewPrinter(display.Config{Out: os.Stdout, Colored: colored})
}
