// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-scraper/internal/store"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved collection",
	Long: `Show reads the JSON collection and prints it as a table, JSON, or YAML.
Use --topic to list only papers with one topic label.`,
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	format, _ := cmd.Flags().GetString("format")
	topic, _ := cmd.Flags().GetString("topic")

	articles, err := store.Load(collectionPath(cfg.Output))
	if err != nil {
		return err
	}

	return store.Write(cmd.OutOrStdout(), store.FilterTopic(articles, topic), store.Format(format))
}

func init() {
	showCmd.Flags().String("format", "table", "output format: table, json, or yaml")
	showCmd.Flags().String("topic", "", "only show papers with this topic label")

	rootCmd.AddCommand(showCmd)
}
