package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server Server `yaml:"server"`
	Data   Data   `yaml:"data"`
	Export Export `yaml:"export"`
	S3     S3     `yaml:"s3"`
}

// Server holds HTTP server configuration
type Server struct {
	Host         string        `yaml:"host" env:"SERVER_HOST" env-default:"0.0.0.0"`
	Port         string        `yaml:"port" env:"SERVER_PORT" env-default:"8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT" env-default:"15s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"15s"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" env-default:"60s"`
}

// Address returns the full server address
func (s Server) Address() string {
	return s.Host + ":" + s.Port
}

// Data holds the source spreadsheet settings. The four exports are located
// by case-sensitive filename-prefix match inside Dir.
type Data struct {
	Dir              string `yaml:"dir" env:"DATA_DIR" env-default:"data/raw"`
	ContactsPrefix   string `yaml:"contacts_prefix" env:"DATA_CONTACTS_PREFIX" env-default:"Contacts-Enrich-Nicole"`
	EngagementPrefix string `yaml:"engagement_prefix" env:"DATA_ENGAGEMENT_PREFIX" env-default:"Engagement-Nicole"`
	DailyPostsPrefix string `yaml:"daily_posts_prefix" env:"DATA_DAILY_POSTS_PREFIX" env-default:"Nicole's-Daily-Update"`
	WorksheetPrefix  string `yaml:"worksheet_prefix" env:"DATA_WORKSHEET_PREFIX" env-default:"WorkSheet_Nicole"`
	ServiceStart     string `yaml:"service_start" env:"DATA_SERVICE_START" env-default:"2026-01-17"`
}

// Export holds static-export settings
type Export struct {
	OutputDir string `yaml:"output_dir" env:"EXPORT_OUTPUT_DIR" env-default:"site/data"`
	S3Enabled bool   `yaml:"s3_enabled" env:"EXPORT_S3_ENABLED" env-default:"false"`
}

// S3 holds S3/MinIO publish configuration
type S3 struct {
	Endpoint        string `yaml:"endpoint" env:"S3_ENDPOINT" env-default:"http://localhost:9000"`
	AccessKeyID     string `yaml:"access_key_id" env:"S3_ACCESS_KEY_ID" env-default:"minioadmin"`
	SecretAccessKey string `yaml:"secret_access_key" env:"S3_SECRET_ACCESS_KEY" env-default:"minioadmin"`
	Bucket          string `yaml:"bucket" env:"S3_BUCKET" env-default:"dashboard"`
	Region          string `yaml:"region" env:"S3_REGION" env-default:"us-east-1"`
	KeyPrefix       string `yaml:"key_prefix" env:"S3_KEY_PREFIX" env-default:"data"`
}

// MustLoad loads configuration from environment and panics on error
func MustLoad() Config {
	// Load .env file if exists (for development)
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	return cfg
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
