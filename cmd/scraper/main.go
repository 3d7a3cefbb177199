// Package main provides the scraper command-line tool for turning a CSV of
// product page URLs into a CSV of product details.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"

	"prodsheet/internal/config"
	"prodsheet/internal/csvio"
	"prodsheet/internal/formatter"
	"prodsheet/internal/logger"
	"prodsheet/internal/observability"
	"prodsheet/internal/scraper"
)

func main() {
	// Define command-line flags
	inputFile := flag.String("input", "", "Path to the CSV file containing product URLs (required)")
	configFile := flag.String("config", "", "Path to YAML configuration file")
	output := flag.String("output", "", "Output CSV file path (overrides config)")
	workers := flag.Int("workers", 0, "Number of concurrent workers (overrides config)")
	delayMs := flag.Int("delay-ms", -1, "Politeness delay in milliseconds before each request (overrides config)")
	assumeYes := flag.Bool("yes", false, "Overwrite an existing output file without asking")
	showUsage := flag.Bool("help", false, "Show usage information")

	flag.Parse()

	if *showUsage {
		printUsage()
		os.Exit(0)
	}

	if *inputFile == "" {
		printUsage()
		log.Fatal("❌ Please provide an input CSV with -input")
	}

	cfg := loadConfig(*configFile)

	if *output != "" {
		cfg.Output.Path = *output
	}

	if *workers > 0 {
		cfg.Scraper.Workers = *workers
	}

	if *delayMs >= 0 {
		cfg.Scraper.PolitenessDelayMs = *delayMs
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v\n", err)
	}

	runLog := logger.New(cfg.Logging.Level).With("run_id", uuid.NewString())

	// Input problems are fatal before any output file is touched.
	if _, err := os.Stat(*inputFile); err != nil {
		log.Fatalf("❌ Input file %q does not exist\n", *inputFile)
	}

	urls, err := csvio.ReadURLs(*inputFile)
	if err != nil {
		log.Fatalf("❌ Failed to read input file: %v\n", err)
	}

	if len(urls) == 0 {
		log.Fatalf("❌ No URLs found in %q\n", *inputFile)
	}

	outputPath := cfg.Output.Path
	if !cfg.Output.Overwrite && !*assumeYes {
		outputPath = csvio.ResolveOutputPath(outputPath, confirmOverwrite)
	}

	if cfg.Metrics.Enabled {
		observability.Start(cfg.Metrics.Port)
		fmt.Printf("📈 Metrics available on :%s/metrics\n", cfg.Metrics.Port)
	}

	fmt.Println("🕷️  prodsheet product scraper")
	fmt.Printf("Input: %s (%d URLs)\n", *inputFile, len(urls))
	fmt.Printf("Output: %s\n", outputPath)
	fmt.Printf("%s\n\n", cfg)

	fetcher := scraper.NewFetcher(cfg.Scraper.UserAgent, cfg.PolitenessDelay(), cfg.Timeout(), cfg.Scraper.BufferSizeKb)
	extractor := scraper.NewExtractor()
	runner := scraper.NewRunner(fetcher, extractor, cfg.Scraper.Workers, runLog)

	fmt.Printf("🚀 Processing %d URLs...\n", len(urls))

	records, attempts := runner.RunWithStats(urls)

	failed := 0
	for _, a := range attempts {
		if a.Err != nil {
			failed++
		}

		if cfg.Logging.ShowProgress {
			mark := "✅"
			if a.Err != nil {
				mark = "❌"
			}

			fmt.Printf("%s %s (%.2fs)\n", mark, a.URL, a.Duration.Seconds())
		}
	}

	if err := csvio.WriteRecords(outputPath, records); err != nil {
		log.Fatalf("❌ Failed to write output: %v\n", err)
	}

	if cfg.Logging.ShowSummary {
		fmt.Println()
		fmt.Print(formatter.SummaryTable(records))
	}

	fmt.Printf("\n📈 Summary: %d URLs, %d extracted, %d failed\n", len(urls), len(urls)-failed, failed)
	fmt.Printf("✨ Scraping completed. Results saved in %q\n", outputPath)
}

// loadConfig picks the config source: explicit flag, default file in
// the working directory, or built-in defaults.
func loadConfig(path string) *config.Config {
	if path != "" {
		fmt.Printf("⚙️  Loading configuration from: %s\n", path)

		cfg, err := config.LoadConfig(path)
		if err != nil {
			log.Fatalf("❌ Failed to load config: %v\n", err)
		}

		return cfg
	}

	defaultConfig := "configs/scraper.yaml"
	if _, err := os.Stat(defaultConfig); err == nil {
		fmt.Printf("⚙️  Loading default configuration: %s\n", defaultConfig)

		cfg, err := config.LoadConfig(defaultConfig)
		if err != nil {
			log.Fatalf("❌ Failed to load default config: %v\n", err)
		}

		return cfg
	}

	fmt.Println("⚙️  Using built-in defaults")

	return config.Default()
}

// confirmOverwrite asks on stdin whether an existing output file may be
// replaced.
func confirmOverwrite(path string) bool {
	fmt.Printf("%q already exists. Do you want to overwrite it? (y/n): ", path)

	reader := bufio.NewReader(os.Stdin)

	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.ToLower(strings.TrimSpace(answer)) == "y"
}

func printUsage() {
	fmt.Println("Usage: ./bin/scraper -input <URLS.csv> [OPTIONS]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  ./bin/scraper -input urls.csv")
	fmt.Println("  ./bin/scraper -input urls.csv -output details.csv -yes")
	fmt.Println("  ./bin/scraper -input urls.csv -config configs/scraper.yaml -workers 4")
}
