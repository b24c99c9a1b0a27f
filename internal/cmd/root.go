package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"stylometer/internal/features"
	"stylometer/internal/lexicon"
	"stylometer/internal/metrics"
	"stylometer/internal/nlp"
	"stylometer/internal/reporter"
	"stylometer/internal/ui"
	"stylometer/internal/workspace"
)

var (
	verbose       bool
	format        string
	workspaceDir  string
	workers       int
	noParallel    bool
	lexiconPath   string
	writeMetrics  bool
	sessionCloser io.Closer
)

// app is the per-invocation state built by the root pre-run hook.
type app struct {
	root     string
	settings workspace.Settings
	log      *slog.Logger
	ui       *ui.UI
}

var current *app

var RootCmd = &cobra.Command{
	Use:   "stylometer",
	Short: "Stylometric feature vectors for text",
	Long: `stylometer turns text into a fixed 31-slot feature vector of lexical,
syntactic, affective, readability, reference and n-gram statistics, the
input layout of downstream authorship and AI-text classifiers.

Examples:
  stylometer extract essay.md
  echo "I love programming. Programming is fun!" | stylometer extract -
  stylometer windows --size 300 --stride 150 novel.pdf
  stylometer batch corpus/ && stylometer export -o vectors.csv`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	RootCmd.PersistentFlags().StringVarP(&format, "format", "f", "terminal", "Output format (terminal, json)")
	RootCmd.PersistentFlags().StringVarP(&workspaceDir, "workspace", "w", "", "Workspace directory (default ~/"+workspace.BaseDirName+")")
	RootCmd.PersistentFlags().IntVar(&workers, "workers", -1, "Worker count for windows and batch (0 = number of CPUs)")
	RootCmd.PersistentFlags().BoolVar(&noParallel, "no-parallel", false, "Call NLP capabilities sequentially")
	RootCmd.PersistentFlags().StringVar(&lexiconPath, "lexicon", "", "YAML lexicon overriding the embedded word lists")
	RootCmd.PersistentFlags().BoolVar(&writeMetrics, "metrics", false, "Write a Prometheus textfile after the command")
}

func setup(cmd *cobra.Command, _ []string) error {
	if format != "terminal" && format != "json" {
		return fmt.Errorf("unknown format %q (terminal, json)", format)
	}

	var (
		root string
		err  error
	)
	if workspaceDir != "" {
		root, err = workspace.EnsureAt(workspaceDir)
	} else {
		root, err = workspace.EnsureDefault()
	}
	if err != nil {
		return fmt.Errorf("workspace initialization failed: %w", err)
	}

	settings, err := workspace.LoadSettings(root)
	if err != nil {
		return err
	}
	if workers >= 0 {
		settings.Workers = workers
	}
	if noParallel {
		settings.Parallel = false
	}
	if lexiconPath != "" {
		settings.LexiconPath = lexiconPath
	}

	logOut := io.Writer(cmd.ErrOrStderr())
	if session, err := workspace.OpenSessionLog(root, time.Now()); err == nil {
		sessionCloser = session
		logOut = io.MultiWriter(logOut, session)
	}

	current = &app{
		root:     root,
		settings: settings,
		log:      newSlogger(logOut, settings.LogFormat, verbose),
		ui:       ui.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), format),
	}
	current.log.Debug("workspace ready", "root", root, "workers", settings.Workers, "parallel", settings.Parallel)
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	defer func() {
		if sessionCloser != nil {
			_ = sessionCloser.Close()
			sessionCloser = nil
		}
	}()
	if current == nil || !writeMetrics {
		return nil
	}
	if err := metrics.WriteTextfile(current.settings.MetricsPath); err != nil {
		return err
	}
	current.log.Debug("metrics written", "path", current.settings.MetricsPath)
	return nil
}

func (a *app) lexicon() (*lexicon.Lexicon, error) {
	if a.settings.LexiconPath == "" {
		return lexicon.Default(), nil
	}
	return lexicon.Load(a.settings.LexiconPath)
}

func (a *app) extractor() (*features.Extractor, error) {
	lex, err := a.lexicon()
	if err != nil {
		return nil, err
	}
	cfg := features.DefaultConfig()
	cfg.Parallel = a.settings.Parallel
	return features.NewExtractor(nlp.NewToolkit(lex), lex, cfg, slogAdapter{a.log})
}

func (a *app) reporter() reporter.Reporter {
	if a.ui.IsJSON() {
		return reporter.NewJSONReporter(a.ui.Writer)
	}
	return reporter.NewTerminalReporter(a.ui.Writer, a.ui)
}
