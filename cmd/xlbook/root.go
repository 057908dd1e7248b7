package main

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ukaji3/xlbook-go/pkg/xlbook"
	"github.com/ukaji3/xlbook-go/pkg/xlbook/output"
)

var (
	cfgFile string
	logger  = zerolog.Nop()
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xlbook",
		Short: "Inspect and build xlsx workbook packages",
		Long: `xlbook-go reads the package structure of xlsx workbooks (sheets,
relationships, content types, formats, shared strings, named ranges)
and prints it as JSON.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.xlbook.yaml)")
	flags.BoolP("verbose", "v", false, "Log debug events to stderr")
	flags.Bool("pretty", false, "Pretty-print JSON output")
	flags.StringP("output", "o", "", "Output file path (default: stdout)")
	flags.String("encoding", xlbook.DefaultEncoding, "Encoding of legacy byte strings")

	for _, name := range []string{"verbose", "pretty", "output", "encoding"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}

	rootCmd.AddCommand(newInspectCmd(), newNewCmd())
	return rootCmd
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return err
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".xlbook")
	}

	viper.SetEnvPrefix("XLBOOK")
	viper.AutomaticEnv()

	level := zerolog.InfoLevel
	if viper.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	if err := viper.ReadInConfig(); err == nil {
		logger.Debug().Str("file", viper.ConfigFileUsed()).Msg("using config file")
	} else if cfgFile != "" {
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func workbookOptions() xlbook.Options {
	opts := xlbook.DefaultOptions()
	opts.Encoding = viper.GetString("encoding")
	opts.Logger = &logger
	return opts
}

func writeSummary(cmd *cobra.Command, wb *xlbook.Workbook) error {
	jsonData, err := output.ToJSON(output.Summarize(wb), viper.GetBool("pretty"))
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if path := viper.GetString("output"); path != "" {
		if err := os.WriteFile(path, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return err
}
