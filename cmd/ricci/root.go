package main

import (
	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/automaxprocs/maxprocs"
)

var (
	Root = &cobra.Command{
		Use:              "ricci",
		Short:            "Entropic Wasserstein distances and structural null models for graphs",
		SilenceErrors:    true,
		SilenceUsage:     true,
		TraverseChildren: true,
	}

	loglevel   = Root.PersistentFlags().String("loglevel", "info", "Console log level")
	configfile = Root.PersistentFlags().String("config", "", "Optional YAML file with flag values")
)

func bindFlags(cmd *cobra.Command) {
	apply := func(f *pflag.Flag) {
		// Config and environment only fill flags the user did not set
		if !f.Changed && viper.IsSet(f.Name) {
			if sv, ok := f.Value.(pflag.SliceValue); ok {
				sv.Replace(viper.GetStringSlice(f.Name))
			} else {
				f.Value.Set(viper.GetString(f.Name))
			}
		}
	}
	cmd.PersistentFlags().VisitAll(apply)
	cmd.Flags().VisitAll(apply)
	for _, subCommand := range cmd.Commands() {
		bindFlags(subCommand)
	}
}

func loadConfiguration(cmd *cobra.Command) {
	viper.SetEnvPrefix("RICCI")
	viper.AutomaticEnv()

	if *configfile != "" {
		viper.SetConfigFile(*configfile)
		if err := viper.ReadInConfig(); err == nil {
			log.Debug().Msgf("Using configuration file: %v", viper.ConfigFileUsed())
		} else {
			log.Warn().Msgf("No settings loaded from %v: %v", *configfile, err)
		}
	}

	bindFlags(cmd)
}

func setupLogging() error {
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        colorable.NewColorableStderr(),
		TimeFormat: "15:04:05.000",
	})
	level, err := zerolog.ParseLevel(*loglevel)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)

	return nil
}

func init() {
	cobra.OnInitialize(func() {
		loadConfiguration(Root)
	})

	Root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(); err != nil {
			return err
		}
		maxprocs.Set(maxprocs.Logger(log.Debug().Msgf))

		return nil
	}
}
