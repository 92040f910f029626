package termnav

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	flagConfigPath string
	flagLogFile    string
	flagNoIndex    bool
	flagAll        bool
	flagResults    int
	flagForce      bool
	flagSimple     bool

	buildVersion = "dev"
	buildCommit  = "none"
	buildDate    = "unknown"
)

// SetVersionInfo sets build metadata from ldflags.
func SetVersionInfo(version, commit, date string) {
	buildVersion = version
	buildCommit = commit
	buildDate = date
}

var rootCmd = &cobra.Command{
	Use:   "termnav",
	Short: "Terminal directory navigator",
	Long: `termnav browses the filesystem one directory at a time through a fuzzy
filtered list and prints the chosen directory on stdout, so a shell
function can cd into it. Run "termnav init <shell>" for that function.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runNavigator,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "termnav %s\n  commit: %s\n  built:  %s\n", buildVersion, buildCommit, buildDate)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to config file (default: ~/.termnav/config.yaml)")
	rootCmd.Flags().StringVar(&flagLogFile, "log", "", "Write a debug log to this file")
	rootCmd.Flags().BoolVarP(&flagNoIndex, "no-index", "n", false, "List results without indexing")
	rootCmd.Flags().BoolVarP(&flagAll, "all", "a", false, "Show all folders, including hidden ones")
	rootCmd.Flags().IntVarP(&flagResults, "results", "r", 10, "Number of results to display per page")
	rootCmd.Flags().BoolVarP(&flagForce, "force", "f", false, "Force navigate to folder (skip confirmation)")
	rootCmd.Flags().BoolVarP(&flagSimple, "simple", "s", false, "Simple appearance, hide header and indexing")

	rootCmd.AddCommand(versionCmd)

	initSubcommands(rootCmd)
}

// Execute runs the root command.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

// resolveConfig loads the config file and applies the flags the user set
// explicitly on top of it.
func resolveConfig(cmd *cobra.Command) (*Config, error) {
	cfgPath := flagConfigPath
	if cfgPath == "" {
		cfgPath = ConfigPath()
	}

	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("results") {
		cfg.Results = flagResults
	}
	if flags.Changed("no-index") {
		cfg.NoIndex = flagNoIndex
	}
	if flags.Changed("all") {
		cfg.ShowHidden = flagAll
	}
	if flags.Changed("force") {
		cfg.Force = flagForce
	}
	if flags.Changed("simple") {
		cfg.Simple = flagSimple
	}
	if flags.Changed("log") {
		cfg.LogFile = flagLogFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func runNavigator(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.LogFile)
	defer logger.Close()

	if err := CheckTerminal(os.Stderr); err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("working directory: %w", err)
	}

	builder, err := NewOptionBuilder(cfg.Exclude)
	if err != nil {
		return err
	}

	ui := NewTerminalUI(os.Stdin, os.Stderr, cfg.Simple)
	driver := NewDriver(
		NewSession(cwd),
		builder,
		NewResolver(ui, cfg.Force),
		ui,
		ui,
		cmd.OutOrStdout(),
		logger,
		DriverOptions{
			ShowHidden: cfg.ShowHidden,
			Indexed:    cfg.Indexed(),
			Results:    cfg.Results,
		},
	)
	return driver.Run(cmd.Context())
}
