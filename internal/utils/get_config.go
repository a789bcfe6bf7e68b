package utils

import (
	"os"
	"reflect"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Application
	AppPort  string `yaml:"APP_PORT"`
	AppURL   string `yaml:"APP_URL"`
	LogLevel string `yaml:"LOG_LEVEL"`

	// Database configuration
	DBDriver   string `yaml:"DB_DRIVER"`
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBPath     string `yaml:"DB_PATH"`

	// Redis session store
	RedisAddr     string `yaml:"REDIS_ADDR"`
	RedisPassword string `yaml:"REDIS_PASSWORD"`
	RedisDB       string `yaml:"REDIS_DB"`

	// JWT and OTP
	JWTSecret     string `yaml:"JWT_SECRET"`
	JWTTTLMinutes string `yaml:"JWT_TTL_MINUTES"`
	OTPTTLMinutes string `yaml:"OTP_TTL_MINUTES"`
	OTPFixedCode  string `yaml:"OTP_FIXED_CODE"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// Midtrans configuration
	ClientKey string `yaml:"CLIENT_KEY"`
	ServerKey string `yaml:"SERVER_KEY"`
	IsProd    bool   `yaml:"IsProd"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// Firebase / Google
	FirebaseCredentialsFile string `yaml:"FIREBASE_CREDENTIALS_FILE"`
	GoogleClientID          string `yaml:"GOOGLE_CLIENT_ID"`

	// Discovery
	SearchRadiusKm string `yaml:"SEARCH_RADIUS_KM"`
}

var (
	config     Config
	values     = map[string]string{}
	valuesLock sync.RWMutex
)

var defaults = map[string]string{
	"APP_PORT":         "8080",
	"LOG_LEVEL":        "info",
	"DB_DRIVER":        "postgres",
	"DB_PATH":          "homechef.db",
	"REDIS_DB":         "0",
	"JWT_TTL_MINUTES":  "120",
	"OTP_TTL_MINUTES":  "10",
	"SEARCH_RADIUS_KM": "10",
}

// LoadConfig reads .env (if present) and config.yaml. Environment variables
// win over values from the YAML file.
func LoadConfig() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		Log.Warnf("error loading .env file: %s", err)
	}

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}

	file, err := os.ReadFile(path)
	if err != nil {
		Log.Warnf("error reading YAML file: %s", err)
	} else if err := yaml.Unmarshal(file, &config); err != nil {
		Log.Errorf("error parsing YAML file: %s", err)
	}

	valuesLock.Lock()
	defer valuesLock.Unlock()

	for k, v := range defaults {
		values[k] = v
	}

	rv := reflect.ValueOf(config)
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		key := rt.Field(i).Tag.Get("yaml")
		var value string
		switch f := rv.Field(i); f.Kind() {
		case reflect.Bool:
			value = strconv.FormatBool(f.Bool())
		default:
			value = f.String()
		}
		if env, ok := os.LookupEnv(key); ok {
			value = env
		}
		if value != "" {
			values[key] = value
		}
	}
}

func GetConfig(key string) string {
	valuesLock.RLock()
	defer valuesLock.RUnlock()
	return values[key]
}

// SetConfig overrides a single key at runtime.
func SetConfig(key, value string) {
	valuesLock.Lock()
	defer valuesLock.Unlock()
	values[key] = value
}

func GetConfigInt(key string, fallback int) int {
	v, err := strconv.Atoi(GetConfig(key))
	if err != nil {
		return fallback
	}
	return v
}

func GetConfigFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(GetConfig(key), 64)
	if err != nil {
		return fallback
	}
	return v
}

func GetConfigBool(key string) bool {
	v, _ := strconv.ParseBool(GetConfig(key))
	return v
}
