package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"codeberg.org/snonux/gurume/internal"
	"codeberg.org/snonux/gurume/internal/translation"
)

// DefaultStateDir is where the session store lives unless configured.
func DefaultStateDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "gurume")
}

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gurume",
		Short: "Japanese restaurant listing localizer",
		Long: `gurume romanizes and translates Japanese restaurant directory data.

Kana names are converted to Hepburn romaji locally. Other Japanese text is
machine translated to English and cached for the rest of the session.

Examples:
  gurume romaji すきやばしじろう        # Kana to romaji
  gurume translate 寿司 天ぷら          # Translate texts
  gurume translate --batch fields.txt  # Translate texts from a file
  gurume shop results.json             # Localize HotPepper shop records
  gurume session reset                 # Start a new translation session`,
		Version:       internal.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	defaultCachePath := filepath.Join(DefaultStateDir(), "session.db")

	// Global flags
	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.gurume.yaml)")
	pf.StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")
	pf.StringVar(&flags.BatchFile, "batch", "", "Read texts from file (one per line)")

	// Translation flags
	pf.StringVar(&flags.Provider, "provider", flags.Provider, "Translation provider: mymemory, openai, gemini")
	pf.StringVar(&flags.Endpoint, "endpoint", "", "MyMemory endpoint or OpenAI-compatible base URL")
	pf.StringVar(&flags.SourceLang, "source-lang", flags.SourceLang, "Source language code")
	pf.StringVar(&flags.TargetLang, "target-lang", flags.TargetLang, "Target language code")
	pf.StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model used for translation")
	pf.StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model used for translation")
	pf.DurationVar(&flags.Timeout, "timeout", 0, "Timeout per translation request (0 uses the transport default)")
	pf.Float64Var(&flags.Rate, "rate", flags.Rate, "Maximum MyMemory requests per second (0 for no limit)")
	pf.IntVar(&flags.Concurrency, "concurrency", flags.Concurrency, "Maximum concurrent translation requests (0 for no limit)")

	// Cache flags
	pf.StringVar(&flags.CacheStore, "cache-store", flags.CacheStore, "Session store: sqlite, file, memory")
	pf.StringVar(&flags.CachePath, "cache-path", defaultCachePath, "Session store path")

	// Bind flags to viper
	bindFlagsToViper(pf)
}

// viperKeys maps flag names to their configuration keys.
var viperKeys = map[string]string{
	"log-level":    "log.level",
	"provider":     "translate.provider",
	"endpoint":     "translate.endpoint",
	"source-lang":  "translate.source_lang",
	"target-lang":  "translate.target_lang",
	"openai-model": "translate.openai_model",
	"gemini-model": "translate.gemini_model",
	"timeout":      "translate.timeout",
	"rate":         "translate.rate",
	"concurrency":  "translate.concurrency",
	"cache-store":  "cache.store",
	"cache-path":   "cache.path",
}

func bindFlagsToViper(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		if key, ok := viperKeys[f.Name]; ok {
			viper.BindPFlag(key, f)
		}
	})
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".gurume" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".gurume")
	}

	// Environment variables
	viper.SetEnvPrefix("GURUME")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("translate.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("translate.gemini_key")
}

// TranslationConfig builds the backend configuration from viper, so config
// file and environment values apply where no flag was given.
func TranslationConfig() *translation.Config {
	cfg := translation.DefaultConfig()

	if v := viper.GetString("translate.provider"); v != "" {
		cfg.Provider = v
	}
	cfg.Endpoint = viper.GetString("translate.endpoint")
	if v := viper.GetString("translate.source_lang"); v != "" {
		cfg.SourceLang = v
	}
	if v := viper.GetString("translate.target_lang"); v != "" {
		cfg.TargetLang = v
	}
	if v := viper.GetString("translate.openai_model"); v != "" {
		cfg.OpenAIModel = v
	}
	if v := viper.GetString("translate.gemini_model"); v != "" {
		cfg.GeminiModel = v
	}
	if viper.IsSet("translate.timeout") {
		cfg.Timeout = viper.GetDuration("translate.timeout")
	}
	if viper.IsSet("translate.rate") {
		cfg.Rate = viper.GetFloat64("translate.rate")
	}

	cfg.OpenAIKey = GetOpenAIKey()
	cfg.GeminiKey = GetGeminiKey()
	return cfg
}
