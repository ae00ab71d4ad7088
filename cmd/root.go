package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/gpereira/lens/internal/history"
	"github.com/gpereira/lens/internal/logger"
	"github.com/gpereira/lens/internal/secrets"
)

const (
	app = "lens"

	historyFileName = "history.json"
)

type Config struct {
	HistoryFile string    `mapstructure:"history-file"`
	Company     string    `mapstructure:"company"`
	AI          *AIConfig `mapstructure:"ai"`
}

type AIConfig struct {
	Gemini *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKey       string `mapstructure:"api-key"`
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "lens analyzes candidate resumes against a job description with AI and keeps a local screening history",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("ai.gemini.api-key", "GEMINI_API_KEY"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is lens.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)

		// An explicitly requested config file must parse.
		if err := viper.ReadInConfig(); err != nil {
			log.Fatal(err)
		}

		return
	}

	viper.AddConfigPath(".")
	viper.SetConfigName(app)

	// The implicit config file is optional.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	if config == nil {
		config = &Config{}
	}

	return config, nil
}

// newLogger builds the application logger from the persistent flags.
func newLogger() *zap.Logger {
	l, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	return l
}

// historyPath resolves the history file location: the configured path when
// set, otherwise the per-user config directory.
func historyPath(config *Config) (string, error) {
	if config != nil && config.HistoryFile != "" {
		return config.HistoryFile, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config directory: %w", err)
	}

	return filepath.Join(dir, app, historyFileName), nil
}

func openHistory(config *Config, l *zap.Logger) (*history.Store, error) {
	path, err := historyPath(config)
	if err != nil {
		return nil, err
	}

	return history.Open(path, l)
}

// geminiAPIKey resolves the Gemini API key from the config file or the
// GEMINI_API_KEY environment variable.
func geminiAPIKey(config *Config) (string, error) {
	var value, file string
	if config != nil && config.AI != nil && config.AI.Gemini != nil {
		value = config.AI.Gemini.APIKey
		file = config.AI.Gemini.APIKeyFile
	}

	return secrets.Load("gemini api key", value, file)
}
