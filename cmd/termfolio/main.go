package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Build variables - set by ldflags during build.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

func main() {
	if err := run(newRootCmd()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run executes root and releases the runtime logger afterwards, also when a
// subcommand fails.
func run(root *cobra.Command, closeLog func()) error {
	defer closeLog()
	return root.Execute()
}

// cli carries state shared by the subcommands once PersistentPreRunE has run.
type cli struct {
	configPath string
	cfg        appConfig
	logger     *zap.Logger
	closeLog   func()
}

// newRootCmd builds the command tree. The returned func flushes and detaches
// the runtime logger and must run once Execute returns.
func newRootCmd() (*cobra.Command, func()) {
	c := &cli{logger: zap.NewNop(), closeLog: func() {}}

	root := &cobra.Command{
		Use:   "termfolio",
		Short: "Terminal portfolio with a typewriter hero and a command shell",
		Long: `termfolio renders a portfolio in the terminal: a typewriter that cycles
through role titles, content sections, a short interview and a small shell
that answers whoami, skills, projects and friends.

Run without a subcommand to start the interactive UI.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			c.cfg = cfg
			c.logger, c.closeLog = configureRuntimeLogger(cfg.LogLevel, ownsTerminal(cmd))
			c.logger.Info("termfolio starting",
				zap.String("command", cmd.Name()),
				zap.String("version", version),
				zap.String("config", cfg.ConfigPath))
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(c.cfg, c.logger)
		},
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default is $HOME/.config/termfolio/config.yml)")

	root.AddCommand(
		newTUICmd(c),
		newServeCmd(c),
		newFramesCmd(c),
		newVersionCmd(),
	)
	return root, func() { c.closeLog() }
}

// ownsTerminal reports whether cmd runs the full-screen UI.
func ownsTerminal(cmd *cobra.Command) bool {
	return cmd == cmd.Root() || cmd.Name() == "tui"
}

func newTUICmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive portfolio (default)",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return runTUI(c.cfg, c.logger)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "termfolio - Terminal Portfolio\n")
			fmt.Fprintf(out, "  Version:    %s\n", version)
			fmt.Fprintf(out, "  Commit:     %s\n", commit)
			fmt.Fprintf(out, "  Built:      %s\n", buildTime)
			fmt.Fprintf(out, "  Go version: %s\n", goVersion)
		},
	}
}
