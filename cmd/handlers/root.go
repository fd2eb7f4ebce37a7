package handlers

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"kingdom/internal/config"
	"kingdom/internal/logger"
)

var (
	cfgFile    string
	modeFlag   string
	jsonOutput bool
)

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kingdom",
		Short: "Hashtag and content recommendations for faith-driven creators",
		Long: `Kingdom ranks hashtags, plans content and scores posts for small
creators in two modes: faith and encouragement.

Examples:
  # Personalized hashtags for a post
  kingdom hashtags --platform instagram "I launched my new business today"

  # A weekly plan for TikTok in encouragement mode
  kingdom strategy --platform tiktok --mode encouragement

  # Record a published post and see your hashtag history
  kingdom history record --platform instagram --tags "#launch,#smallbusiness" --engagement 240
  kingdom history list

  # Serve the JSON API
  kingdom serve --port 8080`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.kingdom.yaml or $HOME/.kingdom.yaml)")
	rootCmd.PersistentFlags().StringVar(&modeFlag, "mode", "", "recommendation mode: faith or encouragement (default from config)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print results as JSON")

	rootCmd.AddCommand(NewHashtagsCmd())
	rootCmd.AddCommand(NewTrendingCmd())
	rootCmd.AddCommand(NewIdeasCmd())
	rootCmd.AddCommand(NewStrategyCmd())
	rootCmd.AddCommand(NewAnalyzeCmd())
	rootCmd.AddCommand(NewOptimizeCmd())
	rootCmd.AddCommand(NewViralCmd())
	rootCmd.AddCommand(NewHistoryCmd())
	rootCmd.AddCommand(NewServeCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initConfig reads the config file and environment, then configures logging.
// Logs go to stderr so --json output stays clean.
func initConfig() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	level := cfg.Logging.Level
	if cfg.App.Debug {
		level = "debug"
	}
	logger.Configure(level, cfg.Logging.Format, os.Stderr)

	if used := viper.ConfigFileUsed(); used != "" {
		logger.Debug("Using config file", "path", used)
	}
	return nil
}
