// Package cmd provides the Cobra CLI command structure for permaudit.
//
// This package defines the root command and all CLI flags for the permaudit
// permission analysis tool. It handles flag parsing and validation, logger
// construction, exclusion loading, and output rendering.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/otuschhoff/permaudit/pkg/analyze"
	"github.com/otuschhoff/permaudit/pkg/config"
	"github.com/otuschhoff/permaudit/pkg/exclude"
	"github.com/otuschhoff/permaudit/pkg/output"
)

var (
	// Analysis options
	days        int
	excludeFile string

	// Output options
	outputFile   string
	outputFormat string
	noHeader     bool
	noTable      bool

	// Config and logging options
	configFile string
	verbose    bool
)

// rootCmd represents the base command. It analyzes a file or directory tree,
// classifies each file's permissions and dormancy, persists a report, and
// prints a console table.
var rootCmd = &cobra.Command{
	Use:   "permaudit [path]",
	Short: "Classify file permissions and dormancy",
	Long: `permaudit walks a file or directory, renders each file's POSIX permission
bits, and flags files whose last access and last modification both fall
outside a retention window.

Examples:
  permaudit /var/www
  permaudit --days 180 --output audit.txt /home/user
  permaudit --exclude .auditignore --format json /srv
  permaudit --config audit.yaml /opt`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalysis,
}

// init sets up all CLI flags for the root command.
func init() {
	// Analysis flags
	rootCmd.Flags().IntVar(&days, "days", 365,
		"Dormancy window in days; files untouched for longer are dormant")
	rootCmd.Flags().StringVar(&excludeFile, "exclude", "",
		"Path to a gitignore-style file with patterns to exclude from analysis")

	// Output flags
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "report.txt",
		"File to write the report to")
	rootCmd.Flags().StringVarP(&outputFormat, "format", "f", "text",
		"Report format: text, json, csv")
	rootCmd.Flags().BoolVar(&noHeader, "no-header", false,
		"Hide console table header")
	rootCmd.Flags().BoolVar(&noTable, "no-table", false,
		"Skip the console table, write the report only")

	// Config and logging flags
	rootCmd.Flags().StringVar(&configFile, "config", "",
		"YAML file providing defaults for days, output, format, and exclude")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose logging")
}

// runAnalysis validates inputs, walks the target path, and renders results.
func runAnalysis(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer logger.Sync()

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}
		applyConfig(cmd, cfg)
	}

	// Input validation happens before any filesystem read
	if days <= 0 {
		return fmt.Errorf("--days must be a positive integer, got %d", days)
	}
	if !output.ValidFormat(outputFormat) {
		return fmt.Errorf("unknown report format %q (want text, json, or csv)", outputFormat)
	}
	root := args[0]
	if _, err := os.Stat(root); err != nil {
		return fmt.Errorf("the specified path %q does not exist", root)
	}

	cutoff := time.Now().Add(-time.Duration(days) * 24 * time.Hour)

	var matcher *exclude.Matcher
	if excludeFile != "" {
		matcher, err = exclude.Load(excludeFile)
		if err != nil {
			logger.Warn("exclude patterns unavailable, continuing without exclusions",
				zap.String("file", excludeFile), zap.Error(err))
			matcher = nil
		}
	}

	walker := analyze.NewWalker(matcher, logger)
	results, err := walker.Walk(root, cutoff)
	if err != nil {
		return err
	}

	formatter := output.NewFormatter(outputFormat, noHeader)
	report, err := formatter.Format(results)
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	// A failed report write is logged but does not abort the console view.
	if err := formatter.WriteToFile(report, outputFile); err != nil {
		logger.Error("failed to write report",
			zap.String("file", outputFile), zap.Error(err))
	} else {
		logger.Info("report saved",
			zap.String("file", outputFile), zap.Int("files", len(results)))
		fmt.Fprintf(os.Stderr, "Report written to: %s\n", outputFile)
	}

	if !noTable {
		fmt.Print(formatter.Table(results))
		fmt.Println(summaryLine(results))
	}

	return nil
}

// Execute adds all child commands to the root command and executes it.
func Execute() error {
	return rootCmd.Execute()
}

// newLogger builds the process logger: human-readable development output when
// verbose, otherwise warn-level JSON on stderr.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapcore.WarnLevel),
		Encoding:         "json",
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    zap.NewProductionEncoderConfig(),
	}
	return cfg.Build()
}

// applyConfig fills in config-file defaults for flags the user did not set
// explicitly.
func applyConfig(cmd *cobra.Command, cfg *config.Config) {
	if cfg.Days > 0 && !cmd.Flags().Changed("days") {
		days = cfg.Days
	}
	if cfg.Output != "" && !cmd.Flags().Changed("output") {
		outputFile = cfg.Output
	}
	if cfg.Format != "" && !cmd.Flags().Changed("format") {
		outputFormat = cfg.Format
	}
	if cfg.Exclude != "" && !cmd.Flags().Changed("exclude") {
		excludeFile = cfg.Exclude
	}
}

// summaryLine reports how many of the analyzed files are dormant.
func summaryLine(results []analyze.Result) string {
	dormant := 0
	for _, r := range results {
		if r.Dormant {
			dormant++
		}
	}

	if dormant == 0 {
		return fmt.Sprintf("%d files analyzed, none dormant", len(results))
	}
	return fmt.Sprintf("%d files analyzed, %s", len(results),
		color.New(color.FgYellow, color.Bold).Sprintf("%d dormant", dormant))
}
