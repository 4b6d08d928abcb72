package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vuesplit/vuesplit/sfcparser"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "vuesplit",
	Short: "Vue single-file component splitter",
	Long:  "Vuesplit parses Vue single-file components into their template, script and style blocks, and renders them back in canonical form.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		if viper.GetBool("verbose") {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ./.vuesplit.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().Bool("allow-unquoted", false, "Accept unquoted attribute values")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("allow_unquoted", rootCmd.PersistentFlags().Lookup("allow-unquoted"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".vuesplit")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}
	_ = viper.ReadInConfig() // the config file is optional

	viper.SetEnvPrefix("VUESPLIT")
	viper.AutomaticEnv()
}

// parseComponent reads and parses one component file with the configured
// grammar options.
func parseComponent(path string) ([]sfcparser.Section, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading component: %w", err)
	}
	parser := sfcparser.Parser{AllowUnquoted: viper.GetBool("allow_unquoted")}
	sections, err := parser.Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return sections, nil
}
