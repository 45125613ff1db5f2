package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/shayne-snap/llmscape/internal/config"
	"github.com/shayne-snap/llmscape/internal/display"
	"github.com/shayne-snap/llmscape/internal/tui"

	"github.com/spf13/cobra"
)

// Version is set by main from ldflags or "dev". Used for --version / -v.
var Version string

var (
	globalJSON     bool
	globalCLI      bool
	globalNoColor  bool
	globalView     string
	globalConfig   string
	globalLogLevel string
	showVersion    bool
)

// cfg is loaded before every command runs.
var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:           "llmscape",
	Short:         "Browse the large and small model landscapes in your terminal",
	Long:          "llmscape: a gallery of the large language model landscape and the small-model landscape (language, vision, RAG, audio, generative). TUI by default; use --cli for table output. Small models are marked by whether they fit this machine's RAM.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDefault,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			if Version == "" {
				Version = "dev"
			}
			fmt.Fprintln(cmd.OutOrStdout(), Version)
			os.Exit(0)
		}
		loaded, err := loadConfig(globalConfig)
		if err != nil {
			return err
		}
		cfg = loaded
		if globalNoColor || !cfg.UI.Color {
			color.NoColor = true
		}
		return setupLogger(cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&globalJSON, "json", false, "Output results as JSON")
	rootCmd.PersistentFlags().BoolVar(&globalCLI, "cli", false, "Use classic CLI table output instead of TUI (when no subcommand)")
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&globalView, "view", "", "Landscape to show: llm or slm (default from config)")
	rootCmd.PersistentFlags().StringVar(&globalConfig, "config", "", "Config file (default $LLMSCAPE_CONFIG or <user config dir>/llmscape/config.toml)")
	rootCmd.PersistentFlags().StringVar(&globalLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "Print version and exit")

	rootCmd.AddCommand(systemCmd, listCmd, searchCmd, infoCmd, tipsCmd, validateCmd, configCmd)
}

// Execute runs the root command. Returns error for exit code handling.
func Execute() error {
	return rootCmd.Execute()
}

func runDefault(cmd *cobra.Command, args []string) error {
	view, err := resolveView()
	if err != nil {
		return err
	}
	specs := detectSpecs()

	if globalCLI {
		category := ""
		if view == config.ViewSmall {
			category = cfg.UI.DefaultCategory
		}
		l, err := landscape(view, category, specs)
		if err != nil {
			return err
		}
		display.List(cmd.OutOrStdout(), l, globalJSON)
		return nil
	}

	logFile, err := openLogFile()
	if err != nil {
		return err
	}
	defer logFile.Close()
	if err := setupLogger(logFile); err != nil {
		return err
	}
	slog.Info("starting tui", "view", view, "category", cfg.Category().String())

	app := tui.NewApp(tui.Options{
		View:     view,
		Category: cfg.Category(),
		Specs:    specs,
		Emoji:    cfg.UI.Emoji,
		Color:    !color.NoColor,
		Mouse:    cfg.UI.Mouse,
	})
	return tui.Run(app)
}
