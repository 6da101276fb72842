// Package main is the artsearch CLI: the catalog client from the command
// line, for scripting and for checking what the API returns.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "development"

var rootCmd = &cobra.Command{
	Use:     "artsearch",
	Short:   "Query the museum catalog API",
	Version: version,
	Long: `artsearch runs the same catalog queries as the browser: filtered
searches, the century and classification lists, and single-fact searches.
Results print as text, JSON or YAML.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./artsearch.yaml or ~/.config/artsearch/config.yaml)")
	rootCmd.PersistentFlags().String("api-key", "", "catalog API key")
	rootCmd.PersistentFlags().String("api-url", "", "catalog API base URL")
	rootCmd.PersistentFlags().Int("page-size", 10, "records per page")
	rootCmd.PersistentFlags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	rootCmd.PersistentFlags().StringP("output", "o", string(formatText), "output format: text, json or yaml")

	for _, name := range []string{"api-key", "api-url", "page-size", "timeout", "output"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("artsearch")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "artsearch"))
		}
	}

	viper.SetEnvPrefix("ARTSEARCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
