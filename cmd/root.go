package cmd

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app       = "resume-matcher"
	envPrefix = "RESUME_MATCHER"
)

type Config struct {
	AI      *AIConfig      `mapstructure:"ai"`
	Scoring *ScoringConfig `mapstructure:"scoring"`
	Summary *SummaryConfig `mapstructure:"summary"`
	Cache   *CacheConfig   `mapstructure:"cache"`
}

type AIConfig struct {
	Provider       string        `mapstructure:"provider"`
	RequestTimeout time.Duration `mapstructure:"request-timeout"`
	MaxLogLength   int           `mapstructure:"max-log-length"`
	Gemini         *GeminiConfig `mapstructure:"gemini"`
	Ollama         *OllamaConfig `mapstructure:"ollama"`
}

type GeminiConfig struct {
	APIKey         string `mapstructure:"api-key"`
	APIKeyFile     string `mapstructure:"api-key-file"`
	Model          string `mapstructure:"model"`
	EmbeddingModel string `mapstructure:"embedding-model"`
	MaxRetries     int    `mapstructure:"max-retries"`
}

type OllamaConfig struct {
	BaseURL        string `mapstructure:"base-url"`
	Model          string `mapstructure:"model"`
	EmbeddingModel string `mapstructure:"embedding-model"`
	Token          string `mapstructure:"token"`
	TokenFile      string `mapstructure:"token-file"`
}

type ScoringConfig struct {
	MinScore float64 `mapstructure:"min-score"`
}

type SummaryConfig struct {
	BatchSize      int `mapstructure:"batch-size"`
	MaxResumeChars int `mapstructure:"max-resume-chars"`
}

type CacheConfig struct {
	Backend string       `mapstructure:"backend"`
	Dir     string       `mapstructure:"dir"`
	Redis   *RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "resume-matcher ranks resumes against a job description and summarizes the fit",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is resume-matcher.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))

	setDefaults(viper.GetViper())
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ai.provider", "gemini")
	v.SetDefault("ai.request-timeout", time.Duration(0))
	v.SetDefault("ai.max-log-length", 200)
	v.SetDefault("ai.gemini.api-key", "")
	v.SetDefault("ai.gemini.api-key-file", "")
	v.SetDefault("ai.gemini.model", "gemini-2.5-flash")
	v.SetDefault("ai.gemini.embedding-model", "text-embedding-004")
	v.SetDefault("ai.gemini.max-retries", 3)
	v.SetDefault("ai.ollama.base-url", "http://localhost:11434")
	v.SetDefault("ai.ollama.model", "llama3.2")
	v.SetDefault("ai.ollama.embedding-model", "all-minilm")
	v.SetDefault("ai.ollama.token", "")
	v.SetDefault("ai.ollama.token-file", "")
	v.SetDefault("scoring.min-score", 0.0)
	v.SetDefault("summary.batch-size", 3)
	v.SetDefault("summary.max-resume-chars", 2000)
	v.SetDefault("cache.backend", "file")
	v.SetDefault("cache.dir", "uploaded_data/summaries")
	v.SetDefault("cache.redis.addr", "localhost:6379")
	v.SetDefault("cache.redis.password", "")
	v.SetDefault("cache.redis.db", 0)
	v.SetDefault("cache.redis.prefix", "resume-matcher:summary")
}

func initConfig() {
	// A missing .env is fine; values may come from the real environment.
	_ = godotenv.Load()

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// An explicit config must be readable; the default one is optional.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	return decodeConfig(viper.GetViper())
}

func decodeConfig(v *viper.Viper) (*Config, error) {
	var config *Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return config, nil
}
