package cmd

import (
	"log"

	"github.com/gomecano/cv-matcher/internal/candidate"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "cv-matcher"
)

type Config struct {
	Request *candidate.Request `mapstructure:"request"`
	Ingest  *IngestConfig      `mapstructure:"ingest"`
	Rank    *RankConfig        `mapstructure:"rank"`
}

type IngestConfig struct {
	InputDir  string `mapstructure:"input-dir"`
	OutputDir string `mapstructure:"output-dir"`
}

type RankConfig struct {
	ProfilesDir string `mapstructure:"profiles-dir"`
	ExcludeFile string `mapstructure:"exclude-file"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "cv-matcher is a simple cli for extracting mechanic profiles from CVs and ranking them against a staffing request",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is cv-matcher.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Config is needed only for the ingest and rank commands. If there is no
	// config, we can skip initialization.
	if ingestCmd.CalledAs() == "" && rankCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// We can't proceed if the config file parsed with error.
	if err := viper.ReadInConfig(); err != nil {
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
