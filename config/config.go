package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port               string
	JWTSecret          string
	GoogleClientID     string
	GoogleClientSecret string
	FrontendURL        string
	MongoDBURI         string
	MongoDBDatabase    string
	LogLevel           string
	LogFile            string

	// Circuit breaker around the Mongo-backed collaborators
	StoreBreakerFailures int
	StoreBreakerTimeout  time.Duration

	Analytics AnalyticsConfig
}

// AnalyticsConfig carries the dashboard pipeline policy knobs.
type AnalyticsConfig struct {
	ListCap          int
	DetailCap        int
	BatchSize        int
	MailRPS          int
	CollectorTimeout time.Duration
	WorkHoursPerDay  float64
	MinutesPerReply  float64
	GoalMultiplier   float64
}

func Load() *Config {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	return &Config{
		Port:                 v.GetString("PORT"),
		JWTSecret:            v.GetString("JWT_SECRET"),
		GoogleClientID:       v.GetString("GOOGLE_CLIENT_ID"),
		GoogleClientSecret:   v.GetString("GOOGLE_CLIENT_SECRET"),
		FrontendURL:          v.GetString("FRONTEND_URL"),
		MongoDBURI:           v.GetString("MONGODB_URI"),
		MongoDBDatabase:      v.GetString("MONGODB_DATABASE"),
		LogLevel:             v.GetString("LOG_LEVEL"),
		LogFile:              v.GetString("LOG_FILE"),
		StoreBreakerFailures: v.GetInt("STORE_BREAKER_FAILURES"),
		StoreBreakerTimeout:  v.GetDuration("STORE_BREAKER_TIMEOUT"),
		Analytics: AnalyticsConfig{
			ListCap:          v.GetInt("ANALYTICS_LIST_CAP"),
			DetailCap:        v.GetInt("ANALYTICS_DETAIL_CAP"),
			BatchSize:        v.GetInt("ANALYTICS_BATCH_SIZE"),
			MailRPS:          v.GetInt("ANALYTICS_MAIL_RPS"),
			CollectorTimeout: v.GetDuration("ANALYTICS_COLLECTOR_TIMEOUT"),
			WorkHoursPerDay:  v.GetFloat64("ANALYTICS_WORK_HOURS_PER_DAY"),
			MinutesPerReply:  v.GetFloat64("ANALYTICS_MINUTES_PER_REPLY"),
			GoalMultiplier:   v.GetFloat64("ANALYTICS_GOAL_MULTIPLIER"),
		},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")
	v.SetDefault("GOOGLE_CLIENT_ID", "")
	v.SetDefault("GOOGLE_CLIENT_SECRET", "")
	v.SetDefault("FRONTEND_URL", "http://localhost:3000")
	v.SetDefault("MONGODB_URI", "")
	v.SetDefault("MONGODB_DATABASE", "unidash")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "")

	v.SetDefault("STORE_BREAKER_FAILURES", 3)
	v.SetDefault("STORE_BREAKER_TIMEOUT", "5s")

	v.SetDefault("ANALYTICS_LIST_CAP", 500)
	v.SetDefault("ANALYTICS_DETAIL_CAP", 200)
	v.SetDefault("ANALYTICS_BATCH_SIZE", 10)
	v.SetDefault("ANALYTICS_MAIL_RPS", 40)
	v.SetDefault("ANALYTICS_COLLECTOR_TIMEOUT", "20s")
	v.SetDefault("ANALYTICS_WORK_HOURS_PER_DAY", 6)
	v.SetDefault("ANALYTICS_MINUTES_PER_REPLY", 5)
	v.SetDefault("ANALYTICS_GOAL_MULTIPLIER", 1.2)
}
