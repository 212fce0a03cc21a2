// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the cb command reference CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command. Bare positional arguments search the
// catalog, so "cb ssh" works without naming the search subcommand.
var rootCmd = &cobra.Command{
	Use:   "cb [search terms...]",
	Short: "Smart command reference for shell and security tools",
	Long: `cb is a local command reference: a searchable catalog of shell commands
and security tools with usage, examples, and tips.

Search by name, category, tag, or purpose ("cb password cracking" finds the
right tools even if you don't know their names). Results are ranked by
relevance and paginated; misses get fuzzy "did you mean" suggestions.

Other subcommands manage the catalog (setup, add, update, enrich,
import, export), show workflow guides (chain), or open a SQL shell (db).`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runSearch(cmd, args)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./commandbrain.yaml or ~/.config/commandbrain/config.yaml)")
	addSearchFlags(rootCmd)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("commandbrain")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "commandbrain"))
		}
	}

	viper.SetEnvPrefix("COMMANDBRAIN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
