// ember is a campfire story game played in the terminal.
//
// Usage:
//
//	ember play              - Sit by the fire
//	ember serve             - Start SSH server for remote play
//	ember history           - Show past runs
//	ember assets check      - List missing resource files
//
// Global flags:
//
//	--fps <rate>         - Override the tick rate (default: from config)
//	--seed <value>       - Set RNG seed for reproducible sound choices
//	--db <path>          - Set database path (default: ~/.ember/runs.db)
//	--resources <dir>    - Resource directory (default: $EMBER_RESOURCES or ./resources)
//	--config <path>      - Custom game config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--log-file <path>    - Log file (default: ~/.ember/ember.log)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ember-story/internal/telemetry"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagResources  string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	os.Exit(run())
}

func run() int {
	// A missing .env is normal; variables may be set directly.
	_ = godotenv.Load()
	if err := applyEnvDefaults(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: telemetry setup failed: %v\n", err)
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Warn("telemetry shutdown failed", "err", err)
			}
		}()
	}

	defer closeLogFile()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		log.Error("command failed", "err", err)
		return 1
	}
	return 0
}

var rootCmd = &cobra.Command{
	Use:   "ember",
	Short: "Ember Story - keep the fire alive, hear the whole tale",
	Long: `Ember Story is a small campfire game for the terminal.

Feed the fire by clicking it (or pressing space) while the story plays.
If the fire goes out the evening ends; keep it burning until the last
fragment to hear the whole tale.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  history  - Show past runs
  assets   - Inspect resources and default configs

Examples:
  ember play
  ember play --difficulty hard
  ember serve --ssh :2222
  ember history --plain`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return setupLogging()
	},
}

// envFlags maps persistent flags to the environment variables that set
// their defaults.
var envFlags = []struct{ flag, env string }{
	{"resources", "EMBER_RESOURCES"},
	{"log-level", "EMBER_LOG_LEVEL"},
}

// applyEnvDefaults copies environment overrides into the flags. It runs
// after .env is loaded and before cobra parses the command line, so an
// explicit flag still wins.
func applyEnvDefaults() error {
	pf := rootCmd.PersistentFlags()
	for _, ef := range envFlags {
		v := os.Getenv(ef.env)
		if v == "" {
			continue
		}
		if err := pf.Lookup(ef.flag).Value.Set(v); err != nil {
			return fmt.Errorf("%s: %w", ef.env, err)
		}
	}
	return nil
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use the config's tick_rate)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.ember/runs.db", "Path to run history database")
	pf.StringVar(&flagResources, "resources", "resources", "Resource directory (env EMBER_RESOURCES)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogFile, "log-file", "", "Log file (default ~/.ember/ember.log)")
	pf.StringVar(&flagLogLevel, "log-level", "debug", "Log level: debug, info, warn, error (env EMBER_LOG_LEVEL)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(assetsCmd)
}
