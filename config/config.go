package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort      string `mapstructure:"APP_PORT"`
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`
	Env          string `mapstructure:"ENV"`
	JWTSecret    string `mapstructure:"JWT_SECRET"`
	LogLevel     string `mapstructure:"LOG_LEVEL"`

	// Redis configuration (refund event queue).
	RedisAddr          string `mapstructure:"REDIS_ADDR"`
	RedisPassword      string `mapstructure:"REDIS_PASSWORD"`
	RedisRefundQueueDB int    `mapstructure:"REDIS_REFUND_QUEUE_DB"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "docta")
	viper.SetDefault("JWT_SECRET", "docta-dev-secret")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_REFUND_QUEUE_DB", 3)

	viper.SetDefault("PLATFORM_PERCENTAGE", 10.0)
	viper.SetDefault("COLLECTION_PERCENTAGE", 5.0)
	viper.SetDefault("DISBURSEMENT_PERCENTAGE", 5.0)
	viper.SetDefault("SESSION_PAYMENT_TIME_EXPIRE_IN_MINS", 30)
	viper.SetDefault("SESSION_CLEANUP_CRON_JOB_INTERVAL_IN_MINS", 15)
	viper.SetDefault("DOCTOR_CAN_CANCEL_BEFORE_TIME_IN_MINS", 60)
	viper.SetDefault("PATIENT_CAN_CANCEL_BEFORE_TIME_IN_MINS", 120)
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 120)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// FeePercentages is the fee configuration applied when pricing a booking.
type FeePercentages struct {
	Platform     float64
	Collection   float64
	Disbursement float64
}

// Fees, expiry and cancellation windows are read through viper at call time
// rather than from the unmarshalled snapshot, so a runtime config change
// affects new bookings without a restart. Already-persisted sessions keep the
// values snapshotted in their meta.

func Fees() FeePercentages {
	return FeePercentages{
		Platform:     viper.GetFloat64("PLATFORM_PERCENTAGE"),
		Collection:   viper.GetFloat64("COLLECTION_PERCENTAGE"),
		Disbursement: viper.GetFloat64("DISBURSEMENT_PERCENTAGE"),
	}
}

func SessionPaymentExpireMinutes() int {
	return viper.GetInt("SESSION_PAYMENT_TIME_EXPIRE_IN_MINS")
}

func SessionCleanupIntervalMinutes() int {
	return viper.GetInt("SESSION_CLEANUP_CRON_JOB_INTERVAL_IN_MINS")
}

func DoctorCancelWindowMinutes() int {
	return viper.GetInt("DOCTOR_CAN_CANCEL_BEFORE_TIME_IN_MINS")
}

func PatientCancelWindowMinutes() int {
	return viper.GetInt("PATIENT_CAN_CANCEL_BEFORE_TIME_IN_MINS")
}

func RateLimitPerMinute() int {
	return viper.GetInt("RATE_LIMIT_PER_MINUTE")
}
