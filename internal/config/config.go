package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL,required"`
	ServerPort  string `env:"SERVER_PORT"`
	BaseURL     string `env:"BASE_URL"`

	// Настройки аутентификации. Секрет загружается один раз при старте
	// и не меняется во время работы процесса.
	JWTSecret       string `env:"JWT_SECRET,required"`
	TokenTTLMinutes int    `env:"TOKEN_TTL_MINUTES" envDefault:"30"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`

	// Хранилище загруженных изображений: "local" (каталог на диске) или "s3".
	FileStorageBackend string `env:"FILE_STORAGE" envDefault:"local"`
	UploadDir          string `env:"UPLOAD_DIR" envDefault:"./uploads"`

	// Настройки для MinIO / S3 (нужны только при FILE_STORAGE=s3)
	MinioEndpoint        string `env:"MINIO_ENDPOINT"`
	MinioAccessKeyID     string `env:"MINIO_ACCESS_KEY_ID"`
	MinioSecretAccessKey string `env:"MINIO_SECRET_ACCESS_KEY"`
	MinioUseSSL          bool   `env:"MINIO_USE_SSL"`
	MinioBucketName      string `env:"MINIO_BUCKET_NAME"`
	MinioRegion          string `env:"MINIO_REGION"`

	// RabbitMQ опционален: пустой URL отключает публикацию событий о продажах.
	RabbitMQ struct {
		RabbitMQURL       string `env:"RABBITMQ_URL"`
		RabbitMQQueueName string `env:"RABBITMQ_QUEUE_NAME" envDefault:"sale_events_queue"`
	}

	// Разрешенные origins для CORS, через запятую.
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// TokenTTL возвращает срок жизни токена как Duration.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}

// LoadConfig загружает конфигурацию из переменных окружения.
// В режиме разработки пытается загрузить .env файл.
func LoadConfig() (*Config, error) {
	if _, err := os.Stat(".env"); !os.IsNotExist(err) {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("ошибка загрузки .env файла: %w", err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("ошибка парсинга конфигурации из окружения: %w", err)
	}

	// Значения по умолчанию для полей без envDefault
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = fmt.Sprintf("http://localhost:%s", cfg.ServerPort)
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{
			fmt.Sprintf("http://127.0.0.1:%s", cfg.ServerPort),
			fmt.Sprintf("http://localhost:%s", cfg.ServerPort),
		}
	}

	if cfg.FileStorageBackend == "s3" {
		if cfg.MinioEndpoint == "" || cfg.MinioAccessKeyID == "" ||
			cfg.MinioSecretAccessKey == "" || cfg.MinioBucketName == "" || cfg.MinioRegion == "" {
			return nil, fmt.Errorf("FILE_STORAGE=s3 требует MINIO_ENDPOINT, MINIO_ACCESS_KEY_ID, MINIO_SECRET_ACCESS_KEY, MINIO_BUCKET_NAME и MINIO_REGION")
		}
	}

	return &cfg, nil
}
