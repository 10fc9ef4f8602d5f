package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/Manu343726/rvasm/cmd/asm"
	"github.com/Manu343726/rvasm/cmd/tools"
	"github.com/fatih/color"
	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "rvasm",
	Short: "A RISC-V instruction encoder and disassembler",
	Long: `rvasm turns RISC-V assembly statements into 32 bit machine words and
machine words back into assembly.

This CLI is the entry point to the encoder, the disassembler and the
instruction catalogue documentation`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.AddCommand(tools.ToolsCmd, asm.AsmCmd)
	cobra.OnInitialize(initConfig)

	flags := RootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.rvasm.yaml)")
	flags.Bool("hex-addresses", true, "Display addresses in hexadecimal")
	flags.Bool("hex-values", false, "Display immediate values in hexadecimal")
	flags.String("color", "auto", "Colored output: auto, always or never")
	flags.String("log-level", "warn", "Log level: debug, info, warn or error")
	flags.String("log-file", "", "Also write JSON logs to this file")
	flags.String("catalogue", "", "YAML file with extra instruction definitions")

	cobra.CheckErr(viper.BindPFlag("display.hex_addresses", flags.Lookup("hex-addresses")))
	cobra.CheckErr(viper.BindPFlag("display.hex_values", flags.Lookup("hex-values")))
	cobra.CheckErr(viper.BindPFlag("display.color", flags.Lookup("color")))
	cobra.CheckErr(viper.BindPFlag("log.level", flags.Lookup("log-level")))
	cobra.CheckErr(viper.BindPFlag("log.file", flags.Lookup("log-file")))
	cobra.CheckErr(viper.BindPFlag("catalogue.file", flags.Lookup("catalogue")))

	viper.SetDefault("text.base_address", "0x00400000")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".rvasm" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".rvasm")
	}

	viper.SetEnvPrefix("RVASM")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	switch viper.GetString("display.color") {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		color.NoColor = !term.IsTerminal(int(os.Stdout.Fd()))
	}
}

func parseLevel(name string) (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(name))
	return level, err
}

func setupLogging() error {
	level, err := parseLevel(viper.GetString("log.level"))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", viper.GetString("log.level"), err)
	}

	options := &slog.HandlerOptions{Level: level}
	handlers := []slog.Handler{slog.NewTextHandler(os.Stderr, options)}

	if path := viper.GetString("log.file"); path != "" {
		file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}

		handlers = append(handlers, slog.NewJSONHandler(file, options))
	}

	slog.SetDefault(slog.New(slogmulti.Fanout(handlers...)))
	return nil
}
