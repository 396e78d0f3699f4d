package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "dotgraph",
	Short: "DOT graph inspector",
	Long:  "Dotgraph parses Graphviz DOT files into a structured graph model and can inspect or reformat them.",
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().Bool("debug", false, "Debug output")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

func initConfig() {
	viper.SetEnvPrefix("DOTGRAPH")
	viper.AutomaticEnv()
}

// newLogger builds the stderr logger honoring the verbose and debug flags.
func newLogger() *log.Logger {
	level := log.WarnLevel
	if viper.GetBool("verbose") {
		level = log.InfoLevel
	}
	if viper.GetBool("debug") {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}
