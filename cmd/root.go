// Package cmd implements the folio command line interface.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/folio/internal/buffer"
	"github.com/zjrosen/folio/internal/config"
	"github.com/zjrosen/folio/internal/language"
	"github.com/zjrosen/folio/internal/lexer"
	"github.com/zjrosen/folio/internal/log"
	"github.com/zjrosen/folio/internal/render"
	"github.com/zjrosen/folio/internal/styles"
	"github.com/zjrosen/folio/internal/ui/viewer"
	"github.com/zjrosen/folio/internal/watcher"
)

func init() {
	// Force lipgloss/termenv to query the terminal background color BEFORE
	// any Bubble Tea program starts, so the OSC response doesn't race the
	// input loop.
	_ = lipgloss.HasDarkBackground()
}

var (
	version  = "dev"
	cfgFile  string
	debug    bool
	langName string
	cfg      config.Config
)

var rootCmd = &cobra.Command{
	Use:     "folio <file>",
	Short:   "A terminal source viewer with syntax highlighting and code folding",
	Long:    `Folio displays source files in the terminal with incremental syntax highlighting and brace/keyword based code folding. Language definitions are built in or loaded from YAML.`,
	Version: version,
	Args:    cobra.ExactArgs(1),
	RunE:    runView,
}

// SetVersion sets the version string reported by --version.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/folio/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"enable debug logging to folio.log")
	rootCmd.PersistentFlags().StringVarP(&langName, "language", "l", "",
		"force a language (default: detect by file extension)")

	_ = viper.BindPFlag("language", rootCmd.PersistentFlags().Lookup("language"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("auto_reload", defaults.AutoReload)
	viper.SetDefault("reload_debounce_ms", defaults.ReloadDebounceMS)
	viper.SetDefault("fold.enabled", defaults.Fold.Enabled)
	viper.SetDefault("fold.comments", defaults.Fold.Comments)
	viper.SetDefault("fold.preprocessor", defaults.Fold.Preprocessor)
	viper.SetDefault("ui.show_line_numbers", defaults.UI.ShowLineNumbers)
	viper.SetDefault("ui.show_fold_gutter", defaults.UI.ShowFoldGutter)
	viper.SetDefault("ui.tab_width", defaults.UI.TabWidth)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .folio/config.yaml (current directory)
		// 2. ~/.config/folio/config.yaml (user config)
		if _, err := os.Stat(".folio/config.yaml"); err == nil {
			viper.SetConfigFile(".folio/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "folio"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config anywhere is fine, run with defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "warning: reading config: %v\n", err)
		}
	}

	_ = viper.Unmarshal(&cfg)

	if debug || os.Getenv("FOLIO_DEBUG") != "" {
		if _, err := log.Init("folio.log"); err == nil {
			log.SetEnabled(true)
		}
	}
}

// loadRegistry builds the language registry, including user definitions.
func loadRegistry() *language.Registry {
	registry := language.NewRegistry()
	if cfg.LanguageDir != "" {
		if err := language.LoadDir(registry, cfg.LanguageDir); err != nil {
			log.ErrorErr(log.CatLang, "loading language dir", err, "dir", cfg.LanguageDir)
		}
	}
	return registry
}

// buildHighlighter reads the file and prepares a fully styled highlighter.
func buildHighlighter(path string) (*render.Highlighter, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is the user-requested file
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	registry := loadRegistry()
	var def *language.Definition
	if name := cfg.Language; name != "" {
		def = registry.Get(name)
		if def == nil {
			return nil, fmt.Errorf("unknown language %q", name)
		}
	} else {
		def = registry.ForFile(path)
	}

	lx := lexer.NewForLanguage(def)
	if cfg.Fold.Enabled {
		lx.FoldComments(cfg.Fold.Comments)
		lx.FoldPreprocessor(cfg.Fold.Preprocessor)
	}
	lx.Verbose(debug)

	theme := styles.DefaultTheme()
	theme.Apply(cfg.Theme.Colors)

	hl := render.NewHighlighter(lx, buffer.New(string(data)), theme)
	hl.SetTabWidth(cfg.UI.TabWidth)
	hl.RestyleAll()
	return hl, nil
}

func runView(cmd *cobra.Command, args []string) error {
	path := args[0]

	hl, err := buildHighlighter(path)
	if err != nil {
		return err
	}

	var watch <-chan struct{}
	var w *watcher.Watcher
	if cfg.AutoReload {
		w, err = watcher.New(watcher.Config{
			Path:        path,
			DebounceDur: time.Duration(cfg.ReloadDebounceMS) * time.Millisecond,
		})
		if err != nil {
			return fmt.Errorf("starting watcher: %w", err)
		}
		watch, err = w.Start()
		if err != nil {
			return fmt.Errorf("starting watcher: %w", err)
		}
		defer func() { _ = w.Stop() }()
	}

	model := viewer.New(hl, path, viewer.Options{
		ShowLineNumbers: cfg.UI.ShowLineNumbers,
		ShowFoldGutter:  cfg.UI.ShowFoldGutter,
		Watch:           watch,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running viewer: %w", err)
	}
	return nil
}
