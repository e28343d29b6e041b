package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/termfx/covreport/core"
	"github.com/termfx/covreport/db"
	"github.com/termfx/covreport/internal/config"
	"github.com/termfx/covreport/internal/logging"
	"github.com/termfx/covreport/models"
	"github.com/termfx/covreport/settings"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
)

var (
	coverageFiles string
	reportType    string
	outputDir     string
	settingsPath  string
	noHistory     bool
	debug         bool
)

var rootCmd = &cobra.Command{
	Use:   "covreport",
	Short: "Merge build coverage files into a formatted report",
	Long: `covreport discovers the coverage files produced by a build, merges them
through the external report generator and writes a formatted report,
scoped by the platform's include/exclude patterns.`,
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runCoverage(cmd))
	},
}

func init() {
	rootCmd.Flags().StringVar(&coverageFiles, "coverage-files", core.DefaultCoverageFiles,
		"Glob of coverage data files to merge")
	rootCmd.Flags().StringVar(&reportType, "report-type", core.DefaultReportType,
		"Type of report desired such as Cobertura or Html")
	rootCmd.Flags().StringVar(&outputDir, "output-dir", core.DefaultOutputDir,
		"Directory where resulting files are placed")
	rootCmd.Flags().StringVar(&settingsPath, "settings", "",
		"Platform settings file (yaml/json) with include/exclude lists")
	rootCmd.Flags().BoolVar(&noHistory, "no-history", false,
		"Skip recording this run in the local history store")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(historyCmd)
}

func runCoverage(cmd *cobra.Command) int {
	cfg := config.Load()

	level := cfg.LogLevel
	if debug {
		level = "debug"
	}
	log := logging.New(level, outputDir, core.LogFileName)
	defer func() { _ = log.Sync() }()

	var manager settings.Manager = settings.Default{}
	if settingsPath != "" {
		file, err := settings.LoadFile(settingsPath)
		if err != nil {
			log.Errorw("failed to load platform settings", "path", settingsPath, "error", err)
			return -1
		}
		manager = file
	}

	cov := &core.Coverage{
		CoverageFiles: coverageFiles,
		ReportType:    reportType,
		OutputDir:     outputDir,
		Generator:     cfg.Generator,
		Settings:      manager,
		Log:           log,
	}

	info := cov.Go(cmd.Context())

	if !noHistory && !cfg.NoHistory {
		recordHistory(cfg, log, manager, info)
	}

	if info.ExitCode == 0 {
		fmt.Printf("%s Coverage report written to %s\n", green("✅"), outputDir)
	} else {
		fmt.Printf("%s Coverage run failed (exit code %d)\n", red("❌"), info.ExitCode)
	}
	return info.ExitCode
}

// recordHistory persists the run outcome. History problems never change
// the run's exit code.
func recordHistory(cfg *config.Config, log *zap.SugaredLogger, manager settings.Manager, info core.RunInfo) {
	gdb, err := db.Connect(cfg.DatabaseDSN, debug)
	if err != nil {
		log.Warnw("run history unavailable", "dsn", cfg.DatabaseDSN, "error", err)
		return
	}

	excludes := append(append([]string{}, core.DefaultExclusions...), manager.ExclusionPatterns()...)
	run := &models.Run{
		ReportGlob:   coverageFiles,
		ReportType:   reportType,
		OutputDir:    outputDir,
		Filters:      info.Filters,
		Inclusions:   db.PatternsJSON(manager.InclusionPatterns()),
		Exclusions:   db.PatternsJSON(excludes),
		MatchedFiles: info.MatchedFiles,
		ExitCode:     info.ExitCode,
		DurationMS:   info.Duration.Milliseconds(),
	}
	if err := db.RecordRun(gdb, run, cfg.RetentionRuns); err != nil {
		log.Warnw("failed to record run", "error", err)
	}
}

func main() {
	// Best effort: local .env may carry COVREPORT_* overrides.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
