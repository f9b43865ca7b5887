// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-scraper/internal/arxiv"
	"github.com/pdiddy/paper-scraper/internal/classify"
	"github.com/pdiddy/paper-scraper/internal/enrich"
	"github.com/pdiddy/paper-scraper/internal/runner"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Fetch, classify, and save arXiv papers for a keyword",
	Long: `Scrape asks for a search keyword, the number of papers to fetch, and
whether to overwrite or append to the existing collection. It fetches one
page of results from the arXiv API, labels each paper with a topic, and
writes the collection to <output-dir>/<output-file>.

An invalid count falls back to 5 and an invalid mode falls back to overwrite.
Any flag given answers the matching prompt.`,
	RunE: runScrape,
}

func runScrape(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	out := cmd.OutOrStdout()

	classifier, err := classify.New(cfg.Classifier, &http.Client{Timeout: cfg.Classifier.Timeout})
	if err != nil {
		return err
	}

	fmt.Fprint(out, "Research Paper Scraper with AI Topic Classification\n\n")

	params, err := runner.NewPrompter(cmd.InOrStdin(), out).Collect(answersFromFlags(cmd))
	if err != nil {
		return err
	}

	r := &runner.Runner{
		Fetcher: arxiv.NewClient(cfg.Fetch),
		Enricher: &enrich.Enricher{
			Classifier: classifier,
			Labels:     classify.Labels,
		},
		Path: collectionPath(cfg.Output),
		Out:  out,
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		r.Log = cmd.ErrOrStderr()
	}

	_, err = r.Run(context.Background(), params)
	return err
}

// answersFromFlags pre-fills the prompts whose flags were set explicitly.
func answersFromFlags(cmd *cobra.Command) runner.Answers {
	var a runner.Answers
	if cmd.Flags().Changed("keyword") {
		v, _ := cmd.Flags().GetString("keyword")
		a.Keyword = &v
	}
	if cmd.Flags().Changed("count") {
		v, _ := cmd.Flags().GetString("count")
		a.Count = &v
	}
	if cmd.Flags().Changed("mode") {
		v, _ := cmd.Flags().GetString("mode")
		a.Mode = &v
	}
	return a
}

func addScrapeFlags(cmd *cobra.Command) {
	cmd.Flags().String("keyword", "", "search keyword (skips the keyword prompt)")
	cmd.Flags().String("count", "", "number of papers to fetch (skips the count prompt)")
	cmd.Flags().String("mode", "", "overwrite or append (skips the mode prompt)")
	cmd.Flags().BoolP("verbose", "v", false, "print per-paper progress to stderr")
}

func init() {
	addScrapeFlags(scrapeCmd)
	rootCmd.AddCommand(scrapeCmd)
}
