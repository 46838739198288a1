package cmd

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/postdeck/postdeck/internal/config"
	"github.com/postdeck/postdeck/internal/logx"
	"github.com/postdeck/postdeck/internal/schedule"
	"github.com/postdeck/postdeck/internal/ui"
)

var (
	cfgFile     string
	startupView string
	cfg         *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "postdeck",
	Short: "Compose social media posts and plan them on a calendar",
	Long: `postdeck is a terminal composer for social media posts. Pick media, write the
post, toggle per-platform settings and sketch a posting schedule on a month calendar.
Nothing is published and the schedule is kept in memory only.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE:              runTUI,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Path to config file (rc or YAML)")
	rootCmd.Flags().StringVar(&startupView, "view", "", "View to open on start (post or schedules)")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFile(cfgFile)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

func logConfig(c *config.Config, console bool) logx.Config {
	lc := logx.Config{Level: c.LogLevel, Console: console}
	if !console {
		lc.File = c.LogFile
	}
	return lc
}

func runTUI(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("postdeck needs an interactive terminal; see 'postdeck calendar' for plain output")
	}

	switch startupView {
	case "":
	case "post", "schedules":
		cfg.StartupView = startupView
	default:
		return fmt.Errorf("unknown view %q", startupView)
	}

	logs, log := logx.New(logConfig(cfg, false))
	defer logs.Close()
	log.Info("starting",
		logx.String("config", cfg.Path),
		logx.Strings("media", cfg.MediaExtensions()))

	model := ui.NewModel(cfg, schedule.NewStore(), log, nil)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if cfg.WatchConfig && cfg.Path != "" {
		watcher, err := config.NewWatcher(cfg.Path, func(c *config.Config, err error) {
			if err == nil {
				logs.Apply(logConfig(c, false))
			}
			p.Send(ui.ConfigReloadedMsg{Config: c, Err: err})
		})
		if err != nil {
			log.Warn("config watch disabled", logx.Err(err))
		} else {
			log.Debug("watching config", logx.String("path", watcher.Path()))
			defer watcher.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	log.Info("exiting",
		logx.Int("scheduled", model.Store().Len()),
		logx.Strings("dates", model.Store().Dates()))
	return nil
}
