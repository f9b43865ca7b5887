// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paper-scraper CLI.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-scraper/internal/classify"
	"github.com/pdiddy/paper-scraper/internal/secrets"
	"github.com/pdiddy/paper-scraper/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback if set, otherwise the secret value for key.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the paper-scraper CLI. Without a
// subcommand it runs an interactive scrape.
var rootCmd = &cobra.Command{
	Use:   "paper-scraper",
	Short: "Scrape arXiv papers into a topic-labelled JSON collection",
	Long: `paper-scraper searches arXiv for a keyword, labels each paper with a
topic using a zero-shot classifier, estimates its reading time, and saves the
results to a JSON collection. In append mode new papers are merged into the
existing collection and papers whose title is already present are skipped.

Run without a subcommand to be prompted for keyword, count, and mode.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/", os.Stderr)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", secrets.Names(s))
		}
		return nil
	},
	RunE: runScrape,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paper-scraper.yaml or ~/.config/paper-scraper/config.yaml)")
	rootCmd.PersistentFlags().String("output-dir", "output", "directory holding the JSON collection")
	rootCmd.PersistentFlags().String("output-file", "arxiv_articles.json", "collection file name inside the output directory")

	viper.BindPFlag("output.dir", rootCmd.PersistentFlags().Lookup("output-dir"))
	viper.BindPFlag("output.file", rootCmd.PersistentFlags().Lookup("output-file"))

	setDefaults()
	addScrapeFlags(rootCmd)
}

func setDefaults() {
	viper.SetDefault("output.dir", "output")
	viper.SetDefault("output.file", "arxiv_articles.json")
	viper.SetDefault("arxiv.base_url", "http://export.arxiv.org/api/query")
	viper.SetDefault("user_agent", "paper-scraper/"+version)
	viper.SetDefault("arxiv.timeout", time.Duration(0))
	viper.SetDefault("classifier.backend", string(types.ClassifierHuggingFace))
	viper.SetDefault("classifier.model", classify.DefaultModel)
	viper.SetDefault("classifier.base_url", "https://api-inference.huggingface.co/models")
	viper.SetDefault("classifier.timeout", time.Duration(0))
	viper.SetDefault("classifier.max_retries", 3)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paper-scraper")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paper-scraper"))
		}
	}

	// A .env file seeds PAPER_SCRAPER_* variables; the process environment wins.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: .env file not loaded: %v\n", err)
	}

	viper.SetEnvPrefix("PAPER_SCRAPER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig assembles the run configuration from viper and loaded secrets.
func loadConfig() types.Config {
	return types.Config{
		Fetch: types.FetchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("arxiv.timeout"),
				UserAgent: viper.GetString("user_agent"),
			},
			BaseURL: viper.GetString("arxiv.base_url"),
		},
		Classifier: types.ClassifierConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("classifier.timeout"),
				UserAgent: viper.GetString("user_agent"),
			},
			Backend:    types.ClassifierBackend(viper.GetString("classifier.backend")),
			Model:      viper.GetString("classifier.model"),
			BaseURL:    viper.GetString("classifier.base_url"),
			APIKey:     secretDefault(secrets.HuggingFaceAPIKey, viper.GetString("classifier.api_key")),
			MaxRetries: viper.GetInt("classifier.max_retries"),
		},
		Output: types.OutputConfig{
			Dir:  viper.GetString("output.dir"),
			File: viper.GetString("output.file"),
		},
	}
}

// collectionPath returns the configured collection file path.
func collectionPath(cfg types.OutputConfig) string {
	return filepath.Join(cfg.Dir, cfg.File)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
