// ck-help is a one-shot documentation helper: it classifies a free-text
// query against the generated skills catalog and prints a single typed
// response to stdout for the calling agent to parse.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/claudekit/ck-help/pkg/catalog"
	"github.com/claudekit/ck-help/pkg/logger"
	"github.com/claudekit/ck-help/pkg/presenter"
	"github.com/claudekit/ck-help/pkg/router"
)

func init() {
	// Environment variables
	viper.SetEnvPrefix("CK_HELP")
	viper.AutomaticEnv()

	// Config file support
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.claudekit")
	viper.AddConfigPath(".")

	// Load config file if it exists (ignore errors if it doesn't)
	_ = viper.ReadInConfig()

	// Register keys so env-only values survive viper.Unmarshal.
	viper.SetDefault("catalog", "")
	viper.SetDefault("log_level", "warn")
	viper.SetDefault("log_format", "text")

	// Queries are free text, so cobra's auto-generated help and completion
	// commands must not shadow them: "ck-help help" routes like any other
	// word while --help keeps working.
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetHelpCommand(&cobra.Command{
		Use:    "_help",
		Hidden: true,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Root().Help()
		},
	})
}

// HelpConfig holds the resolved runtime configuration.
type HelpConfig struct {
	Catalog   string `mapstructure:"catalog"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

func getHelpConfig() (*HelpConfig, error) {
	config := &HelpConfig{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, err
	}
	return config, nil
}

var rootCmd = &cobra.Command{
	Use:   "ck-help [word ...]",
	Short: "Resolve a free-text query against the skills catalog",
	Long: `ck-help routes a free-text query to the matching documentation response.

The words form the query; no words at all is the valid empty query and
renders the full category guide. The first output line is always the
@CK_OUTPUT_TYPE marker the calling agent keys on.`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runQuery(cmd.Context(), args)
	},
}

func runQuery(ctx context.Context, args []string) {
	config, err := getHelpConfig()
	if err != nil {
		presenter.Error(err, "Failed to resolve configuration")
		os.Exit(1)
	}

	if err := logger.SetLogLevel(config.LogLevel); err != nil {
		presenter.Warning(fmt.Sprintf("Unknown log level %q, keeping default", config.LogLevel))
	}
	logger.SetLogFormat(config.LogFormat)
	log := logger.G(ctx)

	path := resolveCatalogPath(config)
	log.WithField("catalog", path).Debug("loading skills catalog")

	cat, err := catalog.Load(path)
	if err != nil {
		log.WithError(err).Error("catalog unavailable")
		presenter.Error(err, "Failed to load skills catalog")
		os.Exit(1)
	}

	// Classification never fails: even a no-match query resolves into one
	// of the four response types and exits zero.
	resp := router.Route(cat, args)
	log.WithField("type", resp.Type).Debug("classified query")
	fmt.Print(router.Render(resp))
}

// resolveCatalogPath picks the snapshot location: an explicit flag, env, or
// config value wins, then the repo-local snapshot, then the user-global one.
// When nothing exists the repo-local default is returned so the load failure
// names the expected path.
func resolveCatalogPath(config *HelpConfig) string {
	if config.Catalog != "" {
		return config.Catalog
	}

	local := filepath.Join(".claudekit", "skills-catalog.jsonl")
	candidates := []string{local}
	if homeDir, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(homeDir, ".claudekit", "skills-catalog.jsonl"))
	}
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return local
}

func main() {
	rootCmd.PersistentFlags().String("catalog", "", "Path to the skills catalog snapshot (overrides config)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text or json)")

	viper.BindPFlag("catalog", rootCmd.PersistentFlags().Lookup("catalog"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
