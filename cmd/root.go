/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/longkey1/gptc/internal/gptc/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const usageLine = "Usage: gptc [--interactive] <message>..."

var (
	cfgFile     string
	verbose     bool
	interactive bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gptc [message...]",
	Short: "A minimal command-line client for chat-completion APIs",
	Long: `gptc sends a conversation to a chat-completion endpoint and prints the reply.

In single-shot mode every argument becomes one user message and the reply is printed once.
With --interactive, lines are read from standard input and the conversation history is
kept across turns until 'exit' is entered.

The API key is read from the file configured with key_file (--key-file, GPTC_KEY_FILE).

Examples:
  gptc "What is the capital of France?"
  gptc "Here is some context" "Now answer this question"
  gptc -i
  gptc -- version        # send "version" as a message instead of running the subcommand`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !interactive && len(args) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), usageLine)
			return nil
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		apiKey, err := config.LoadAPIKey(cfg.KeyFile)
		if err != nil {
			return fmt.Errorf("loading API key: %w", err)
		}

		client := newClient(cfg, apiKey)

		if interactive {
			return runInteractive(cmd, cfg, client, args)
		}
		return runSingleShot(cmd.Context(), cmd.OutOrStdout(), client, cfg.Model, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Ctrl+C cancels the request in flight.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	defaultConfig := config.NewDefaultConfig()

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/gptc/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringP("model", "m", defaultConfig.Model, "Model to use (e.g., gpt-4)")
	rootCmd.PersistentFlags().String("endpoint", defaultConfig.Endpoint, "Chat-completion endpoint URL")
	rootCmd.PersistentFlags().String("key-file", defaultConfig.KeyFile, "File containing the API key")

	viper.BindPFlag("model", rootCmd.PersistentFlags().Lookup("model"))
	viper.BindPFlag("endpoint", rootCmd.PersistentFlags().Lookup("endpoint"))
	viper.BindPFlag("key_file", rootCmd.PersistentFlags().Lookup("key-file"))

	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Read messages from standard input and keep conversation history")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetEnvPrefix("GPTC")
	viper.AutomaticEnv()

	home, err := os.UserHomeDir()
	cobra.CheckErr(err)
	userConfigDir := filepath.Join(home, ".config", "gptc")

	defaultConfig := config.NewDefaultConfig()
	viper.SetDefault("model", defaultConfig.Model)
	viper.SetDefault("endpoint", defaultConfig.Endpoint)
	viper.SetDefault("key_file", defaultConfig.KeyFile)

	viper.BindEnv("model", "GPTC_MODEL")
	viper.BindEnv("endpoint", "GPTC_ENDPOINT")
	viper.BindEnv("key_file", "GPTC_KEY_FILE")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
			}
		}
	} else {
		// Load system-wide config first (lower priority)
		systemConfigPaths := []string{
			"/etc/gptc",
			"/usr/local/etc/gptc",
		}
		for _, path := range systemConfigPaths {
			viper.AddConfigPath(path)
		}
		viper.SetConfigType("toml")
		viper.SetConfigName("config")

		systemConfigLoaded := false
		if err := viper.ReadInConfig(); err == nil {
			systemConfigLoaded = true
			if verbose {
				fmt.Fprintln(os.Stderr, "Loaded system-wide config:", viper.ConfigFileUsed())
			}
		}

		// Load user config (higher priority) - merge with system config
		viper.AddConfigPath(userConfigDir)
		if systemConfigLoaded {
			if err := viper.MergeInConfig(); err != nil {
				if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
					fmt.Fprintf(os.Stderr, "Error merging user config file: %v\n", err)
				}
			} else if verbose {
				fmt.Fprintln(os.Stderr, "Merged user config:", viper.ConfigFileUsed())
			}
		} else {
			if err := viper.ReadInConfig(); err != nil {
				if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
					fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
				}
			}
		}
	}

	if verbose {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		fmt.Fprintln(os.Stderr, "Environment variables:")
		fmt.Fprintln(os.Stderr, "  GPTC_MODEL:", viper.GetString("model"))
		fmt.Fprintln(os.Stderr, "  GPTC_ENDPOINT:", viper.GetString("endpoint"))
		fmt.Fprintln(os.Stderr, "  GPTC_KEY_FILE:", viper.GetString("key_file"))
	}
}
