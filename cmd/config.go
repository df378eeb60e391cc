package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/longkey1/gptc/internal/gptc/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configFields = []string{"configfile", "model", "endpoint", "key_file", "api_key"}

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config [field]",
	Short: "Display current configuration",
	Long: `Display the current configuration values.
This command shows all configuration values loaded from the config file, environment variables and flags.

If a field name is specified, only that field's value is displayed.
Available fields: configfile, model, endpoint, key_file, api_key

The API key is always masked.

Examples:
  gptc config             # Show all configuration
  gptc config model       # Show only model
  gptc config key_file    # Show only the API key file path`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(args) > 0 {
			return printConfigField(out, cfg, strings.ToLower(args[0]))
		}

		fmt.Fprintf(out, "ConfigFile: %s\n", viper.ConfigFileUsed())
		fmt.Fprintf(out, "Model: %s\n", cfg.Model)
		fmt.Fprintf(out, "Endpoint: %s\n", cfg.Endpoint)
		fmt.Fprintf(out, "KeyFile: %s\n", cfg.KeyFile)
		fmt.Fprintf(out, "APIKey: %s\n", describeAPIKey(cfg.KeyFile))
		return nil
	},
}

func printConfigField(out io.Writer, cfg *config.Config, field string) error {
	switch field {
	case "configfile":
		fmt.Fprintln(out, viper.ConfigFileUsed())
	case "model":
		fmt.Fprintln(out, cfg.Model)
	case "endpoint":
		fmt.Fprintln(out, cfg.Endpoint)
	case "key_file", "keyfile":
		fmt.Fprintln(out, cfg.KeyFile)
	case "api_key", "apikey":
		fmt.Fprintln(out, describeAPIKey(cfg.KeyFile))
	default:
		return fmt.Errorf("unknown field: %s\nAvailable fields: %s", field, strings.Join(configFields, ", "))
	}
	return nil
}

// describeAPIKey returns the masked key, or why it could not be read
func describeAPIKey(keyFile string) string {
	key, err := config.LoadAPIKey(keyFile)
	if err != nil {
		return fmt.Sprintf("(%v)", err)
	}
	return maskToken(key)
}

// maskToken returns a masked version of the token for security
func maskToken(token string) string {
	if len(token) <= 8 {
		return "********"
	}
	return token[:4] + "..." + token[len(token)-4:]
}

func init() {
	rootCmd.AddCommand(configCmd)
}
