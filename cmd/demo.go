package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/marcus/popup/internal/config"
	"github.com/marcus/popup/internal/logging"
	"github.com/marcus/popup/internal/store"
	"github.com/marcus/popup/pkg/demo"
	"github.com/marcus/popup/pkg/popup"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the interactive dialog demo",
	Long: `Opens an item list kept in SQLite. Adding, renaming, deleting, filtering
and quitting all go through modal dialogs.

Settings come from .popup/config.json under the config directory; flags
override them for this run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("demo needs an interactive terminal")
		}

		dir, _ := cmd.Flags().GetString("config")
		if dir == "" {
			dir = getBaseDir()
		}
		cfg, err := config.Load(dir)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := applyDemoFlags(cfg, cmd.Flags()); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return runDemo(ctx, dir, cfg)
	},
}

// applyDemoFlags copies explicitly set flags over the loaded config. The
// config keeps whole milliseconds and seconds; a non-zero duration shorter
// than that is an error.
func applyDemoFlags(cfg *config.Config, flags *pflag.FlagSet) error {
	if flags.Changed("delay") {
		d, _ := flags.GetDuration("delay")
		ms, err := wholeUnits("delay", d, time.Millisecond)
		if err != nil {
			return err
		}
		cfg.CloseDelayMs = ms
	}
	if flags.Changed("width") {
		cfg.Width, _ = flags.GetInt("width")
	}
	if flags.Changed("markdown") {
		cfg.Markdown, _ = flags.GetBool("markdown")
	}
	if flags.Changed("hints") {
		hints, _ := flags.GetBool("hints")
		cfg.HideHints = !hints
	}
	if flags.Changed("db") {
		cfg.DBPath, _ = flags.GetString("db")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("remind") {
		d, _ := flags.GetDuration("remind")
		secs, err := wholeUnits("remind", d, time.Second)
		if err != nil {
			return err
		}
		cfg.RemindSeconds = secs
	}
	return nil
}

// wholeUnits converts d to a count of unit, refusing negative durations and
// non-zero ones shorter than a single unit.
func wholeUnits(name string, d, unit time.Duration) (int, error) {
	if d < 0 {
		return 0, fmt.Errorf("--%s %v is negative", name, d)
	}
	if d > 0 && d < unit {
		return 0, fmt.Errorf("--%s %v is below the %v resolution", name, d, unit)
	}
	return int(d / unit), nil
}

func popupOptions(cfg *config.Config) []popup.Option {
	return []popup.Option{
		popup.WithDelay(cfg.CloseDelay()),
		popup.WithWidth(cfg.Width),
		popup.WithMarkdown(cfg.Markdown),
		popup.WithHints(!cfg.HideHints),
	}
}

func runDemo(ctx context.Context, dir string, cfg *config.Config) error {
	logger, closer, err := logging.Init(logging.Config{File: cfg.LogFile, Level: cfg.LogLevel})
	if err != nil {
		return err
	}
	defer closer.Close()

	st, err := store.Open(cfg.ResolveDBPath(dir))
	if err != nil {
		return err
	}
	defer st.Close()

	app, err := demo.New(st, logger, popupOptions(cfg)...)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(app,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	})
	g.Go(func() error {
		return demo.Remind(gctx, popup.NewMessenger(p), cfg.RemindEvery(), logger)
	})

	logger.Info("demo started", "db", cfg.ResolveDBPath(dir), "remind", cfg.RemindEvery())
	return g.Wait()
}

// addDemoFlags registers the demo's flags on fs.
func addDemoFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "directory holding .popup/config.json (default: working directory)")
	fs.Duration("delay", popup.DefaultDelay, "pause between closing a dialog and running its callback")
	fs.Int("width", popup.DefaultWidth, "dialog width in cells")
	fs.Bool("markdown", false, "render dialog text as markdown")
	fs.Bool("hints", true, "show the key hint line in dialogs")
	fs.String("db", config.DefaultDBFile, "item database path")
	fs.String("log-file", "", "write logs to this file")
	fs.String("log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")
	fs.Duration("remind", 0, "raise a reminder dialog at this interval (0 disables)")
}

func init() {
	addDemoFlags(demoCmd.Flags())
	rootCmd.AddCommand(demoCmd)
}
