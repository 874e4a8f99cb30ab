package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dley18/System-Health-Dashboard/internal/errors"
)

// Command-specific flags
var (
	configFlag        string
	watchEndpointFlag string
	watchDelayFlag    string
	watchHistoryFlag  int
	nowEndpointFlag   string
	nowTimeoutFlag    string
	initEndpointFlag  string
	initForce         bool
)

// rootCmd is the base command for shd.
var rootCmd = &cobra.Command{
	Use:   "shd",
	Short: "Live system health metrics in your terminal",
	Long: `shd is a terminal client for the system health metrics stream.

It subscribes to the service's websocket endpoint, extracts the live CPU
reading from each message, and renders it as a real-time dashboard with
automatic reconnection when the stream drops.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// watchCmd starts the live TUI dashboard
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Real-time CPU dashboard",
	Long: `Start an interactive TUI dashboard showing the live CPU reading
streamed from the system health service.

The dashboard shows "Connecting..." until the first reading arrives, then
flips to "Live" with the utilization formatted to one decimal place. If the
connection drops it is redialed after a fixed delay, indefinitely, until you
quit.

Keyboard shortcuts:
  q / Ctrl+C  Quit

Examples:
  shd watch
  shd watch --endpoint ws://127.0.0.1:8000/metrics/stream
  shd watch --reconnect-delay 500ms`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return watchCommand(configFlag, watchEndpointFlag, watchDelayFlag, watchHistoryFlag)
	},
}

// nowCmd prints a single reading and exits
var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Print the current CPU reading and exit",
	Long: `Connect to the metrics stream, wait for the first valid reading,
print it, and disconnect.

Examples:
  shd now
  shd now --endpoint ws://127.0.0.1:8000/metrics/stream
  shd now --timeout 5s`,
	RunE: func(cmd *cobra.Command, args []string) error {
		timeout := 10 * time.Second
		if nowTimeoutFlag != "" {
			parsed, err := ParseDelay(nowTimeoutFlag)
			if err != nil {
				return err
			}
			timeout = parsed
		}
		return nowCommand(configFlag, nowEndpointFlag, timeout)
	},
}

// initCmd creates a new .shd.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .shd.yaml configuration",
	Long: `Initialize a new shd configuration file.

Creates a .shd.yaml file in the current directory with sensible defaults,
prompting for the stream endpoint unless one is provided.

Examples:
  shd init
  shd init --endpoint ws://metrics.lan:8000/metrics/stream
  shd init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Init(InitOptions{
			Endpoint:       initEndpointFlag,
			Overwrite:      initForce,
			NonInteractive: initEndpointFlag != "",
		})
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for shd.

Examples:
  # Bash
  shd completion bash > /etc/bash_completion.d/shd

  # Zsh
  shd completion zsh > "${fpath[1]}/_shd"

  # Fish
  shd completion fish > ~/.config/fish/completions/shd.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrExec,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file")

	// watch command flags
	watchCmd.Flags().StringVar(&watchEndpointFlag, "endpoint", "", "websocket address of the metrics stream")
	watchCmd.Flags().StringVar(&watchDelayFlag, "reconnect-delay", "", "pause between reconnect attempts (e.g., 1s, 500ms)")
	watchCmd.Flags().IntVar(&watchHistoryFlag, "history", 0, "readings retained for the sparkline")

	// now command flags
	nowCmd.Flags().StringVar(&nowEndpointFlag, "endpoint", "", "websocket address of the metrics stream")
	nowCmd.Flags().StringVar(&nowTimeoutFlag, "timeout", "", "how long to wait for a reading (e.g., 5s)")

	// init command flags
	initCmd.Flags().StringVar(&initEndpointFlag, "endpoint", "", "pre-specify the stream endpoint")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")

	// Register all commands
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(nowCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
}
