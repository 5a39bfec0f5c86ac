package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Default classifier data. Both lists are configuration, not embedded logic:
// deployments extend supported banks and languages through the environment.
const (
	defaultBankCodes         = "HDFCBK,HDFC,AXISBK,AXIS,ICICI,SBI,SBIN,PNB,KOTAK"
	defaultFinancialKeywords = "debited,credited,withdrawn,purchase,transaction of,available balance,avl bal"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Classifier data
	BankCodes         []string
	FinancialKeywords []string

	// Ingestion
	SMSQueueSize int
	SMSRateLimit string // ulule/limiter format, e.g. "120-M"

	CORSAllowOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("BANK_CODES", defaultBankCodes)
	viper.SetDefault("FINANCIAL_KEYWORDS", defaultFinancialKeywords)
	viper.SetDefault("SMS_QUEUE_SIZE", 256)
	viper.SetDefault("SMS_RATE_LIMIT", "120-M")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	// Keyword phrases may contain spaces ("avl bal"), so the lists are
	// comma-separated rather than viper's whitespace-split slices.
	cfg.BankCodes = splitList(viper.GetString("BANK_CODES"))
	cfg.FinancialKeywords = splitList(viper.GetString("FINANCIAL_KEYWORDS"))
	if len(cfg.BankCodes) == 0 {
		log.Println("Warning: BANK_CODES is empty. Sender-based classification is disabled.")
	}
	if len(cfg.FinancialKeywords) == 0 {
		log.Println("Warning: FINANCIAL_KEYWORDS is empty. Body-based classification is disabled.")
	}

	cfg.SMSQueueSize = viper.GetInt("SMS_QUEUE_SIZE")
	if cfg.SMSQueueSize <= 0 {
		cfg.SMSQueueSize = 256
		log.Printf("Warning: Invalid SMS_QUEUE_SIZE. Defaulting to %d.\n", cfg.SMSQueueSize)
	}

	cfg.SMSRateLimit = viper.GetString("SMS_RATE_LIMIT")
	cfg.CORSAllowOrigins = splitList(viper.GetString("CORS_ALLOW_ORIGINS"))

	return cfg, nil
}

// splitList parses a comma-separated list, trimming whitespace and dropping
// empty entries.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
