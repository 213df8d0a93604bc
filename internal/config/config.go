package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// メール送信の設定
type MailConfig struct {
	Host     string // SMTPサーバー（smtp.gmail.com）
	Port     int    // 587（STARTTLS）
	Username string // EMAIL
	Password string // PASS
	From     string // 送信元。EMAILと同じ
	Timeout  time.Duration

	Letterhead string // 本文の上に付ける社名
}

// Configはアプリ全体の設定
type Config struct {
	Port  string // サーバーポート（8080）
	GoEnv string // dev/prod

	LogLevel string

	DatabaseURL      string // あれば最優先
	PostgresUser     string // DBユーザー
	PostgresPassword string // DBパスワード
	PostgresDB       string // DB名
	PostgresHost     string // DBホスト（localhost）
	PostgresPort     int    // DBポート（5432）
	PostgresSSLMode  string

	Mail MailConfig

	EmailRateLimit float64 // /emailの1秒あたり上限（IPごと）

	RedisAddr       string // 空ならキャッシュなし
	RedisPassword   string
	ProductCacheTTL time.Duration

	KafkaBrokers []string // 空ならイベント送信なし
	KafkaTopic   string

	JaegerEndpoint string // 空ならtracingなし
}

// .envがあれば読む。なくてもよい
func LoadDotEnv(paths ...string) {
	_ = godotenv.Load(paths...)
}

// Loadは環境変数からConfigを作る。サーバー起動用なのでメール設定も必須
func Load() (Config, error) {
	cfg, err := load()
	if err != nil {
		return Config{}, err
	}

	//必須チェック
	if cfg.Mail.Username == "" {
		return Config{}, fmt.Errorf("EMAIL is required")
	}
	if cfg.Mail.Password == "" {
		return Config{}, fmt.Errorf("PASS is required")
	}
	return cfg, nil
}

// migrate用。DBとログの設定だけあればよい
func LoadForMigrate() (Config, error) {
	return load()
}

func load() (Config, error) {
	pgPort, err := atoiOr("POSTGRES_PORT", 5432)
	if err != nil {
		return Config{}, err
	}
	mailPort, err := atoiOr("MAIL_PORT", 587)
	if err != nil {
		return Config{}, err
	}
	rate, err := floatOr("EMAIL_RATE_LIMIT", 5)
	if err != nil {
		return Config{}, err
	}
	cacheTTL, err := durationOr("PRODUCT_CACHE_TTL", 5*time.Minute)
	if err != nil {
		return Config{}, err
	}
	mailTimeout, err := durationOr("MAIL_TIMEOUT", 15*time.Second)
	if err != nil {
		return Config{}, err
	}

	email := os.Getenv("EMAIL")

	cfg := Config{
		Port:     getenv("PORT", "8080"),
		GoEnv:    getenv("GO_ENV", "prod"),
		LogLevel: getenv("LOG_LEVEL", "info"),

		DatabaseURL:      os.Getenv("DATABASE_URL"),
		PostgresUser:     getenv("POSTGRES_USER", "postgres"),
		PostgresPassword: getenv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:       getenv("POSTGRES_DB", "inventory"),
		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		PostgresPort:     pgPort,
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),

		Mail: MailConfig{
			Host:       getenv("MAIL_HOST", "smtp.gmail.com"),
			Port:       mailPort,
			Username:   email,
			Password:   os.Getenv("PASS"),
			From:       email,
			Timeout:    mailTimeout,
			Letterhead: getenv("MAIL_LETTERHEAD", "Ayush Bussines pvt ltd"),
		},

		EmailRateLimit: rate,

		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		ProductCacheTTL: cacheTTL,

		KafkaBrokers: splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:   getenv("KAFKA_TOPIC", "inventory_events"),

		JaegerEndpoint: os.Getenv("JAEGER_ENDPOINT"),
	}

	if cfg.EmailRateLimit <= 0 {
		return Config{}, fmt.Errorf("EMAIL_RATE_LIMIT must be > 0")
	}

	return cfg, nil
}

// :8080形式にする
func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func (c Config) IsDev() bool {
	return c.GoEnv == "dev"
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func atoiOr(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}

func floatOr(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return f, nil
}

func durationOr(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be duration: %w", key, err)
	}
	return d, nil
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
