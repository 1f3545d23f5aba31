package cli

import "time"

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile   string
	LogLevel  string
	BatchFile string

	// Translation flags
	Provider    string
	Endpoint    string
	SourceLang  string
	TargetLang  string
	OpenAIModel string
	GeminiModel string
	Timeout     time.Duration
	Rate        float64
	Concurrency int

	// Cache flags
	CacheStore string
	CachePath  string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		LogLevel:    "warn",
		Provider:    "mymemory",
		SourceLang:  "ja",
		TargetLang:  "en",
		OpenAIModel: "gpt-4o-mini",
		GeminiModel: "gemini-2.0-flash",
		Rate:        5,
		Concurrency: 8,
		CacheStore:  "sqlite",
	}
}
