package cmd

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/postdeck/postdeck/internal/logx"
	"github.com/postdeck/postdeck/internal/setup"
)

var setupCmd = &cobra.Command{
	Use:   "setup [package...]",
	Short: "Install the helper packages used for media previews",
	Long: `Install helper packages with the configured package manager, one at a time.
The first failure stops the run. Without arguments the packages listed in the config
are installed.`,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	logs, log := logx.New(logConfig(cfg, true))
	defer logs.Close()

	packages := cfg.Packages
	if len(args) > 0 {
		packages = args
	}

	return setup.NewInstaller(cfg.PackageManager, cmd.OutOrStdout(), log).Install(ctx, packages)
}
