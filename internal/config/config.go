package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atareao/bloc/pkg/database"
	"github.com/atareao/bloc/pkg/logger"
	"github.com/atareao/bloc/pkg/storage"
	"github.com/go-sql-driver/mysql"
	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Config 애플리케이션 설정
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
	CORS     CORSConfig     `yaml:"cors"`
	Upload   UploadConfig   `yaml:"upload"`
	Storage  StorageConfig  `yaml:"storage"`
	Sentry   SentryConfig   `yaml:"sentry"`
	Log      LogConfig      `yaml:"log"`
}

type ServerConfig struct {
	Port            int           `yaml:"port"`
	Mode            string        `yaml:"mode"` // debug | release | test
	Env             string        `yaml:"env"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	RateLimit       int           `yaml:"rate_limit"` // 분당 요청 수, 0 이면 비활성
}

type DatabaseConfig struct {
	Driver          string        `yaml:"driver"` // mysql | sqlite | postgres
	DSN             string        `yaml:"dsn"`
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	Name            string        `yaml:"name"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	LogLevel        string        `yaml:"log_level"` // gorm: silent | error | warn | info
}

type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
}

type JWTConfig struct {
	Secret    string        `yaml:"secret"`
	ExpiresIn time.Duration `yaml:"expires_in"`
}

type CORSConfig struct {
	AllowOrigins string `yaml:"allow_origins"` // 쉼표 구분
}

type UploadConfig struct {
	Dir          string `yaml:"dir"`
	PublicPrefix string `yaml:"public_prefix"`
	MaxSizeMB    int64  `yaml:"max_size_mb"`
}

type StorageConfig struct {
	Backend         string `yaml:"backend"` // local | s3
	Endpoint        string `yaml:"endpoint"`
	Region          string `yaml:"region"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	Bucket          string `yaml:"bucket"`
	CDNURL          string `yaml:"cdn_url"`
	BasePath        string `yaml:"base_path"`
	ForcePathStyle  bool   `yaml:"force_path_style"`
}

type SentryConfig struct {
	DSN              string  `yaml:"dsn"`
	Environment      string  `yaml:"environment"`
	TracesSampleRate float64 `yaml:"traces_sample_rate"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default 설정 파일이 없어도 로컬에서 기동 가능한 기본값
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Mode:            "debug",
			Env:             "local",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			RateLimit:       120,
		},
		Database: DatabaseConfig{
			Driver:          database.DriverMySQL,
			Host:            "localhost",
			Port:            3306,
			User:            "bloc",
			Name:            "bloc",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 5 * time.Minute,
			LogLevel:        "warn",
		},
		Redis: RedisConfig{
			Host:     "localhost",
			Port:     6379,
			PoolSize: 10,
		},
		JWT: JWTConfig{ExpiresIn: 24 * time.Hour},
		CORS: CORSConfig{
			AllowOrigins: "http://localhost:3000",
		},
		Upload: UploadConfig{
			Dir:          "uploads",
			PublicPrefix: "/images",
			MaxSizeMB:    10,
		},
		Storage: StorageConfig{Backend: storage.BackendLocal},
		Log:     LogConfig{Level: "info"},
	}
}

// Load YAML 파일을 읽고 환경변수로 덮어씀. 파일이 없으면 기본값 사용
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, eris.Wrapf(err, "parsing %s", path)
		}
	case os.IsNotExist(err):
		logger.Warn("config file %s not found, using defaults", path)
	default:
		return nil, eris.Wrapf(err, "reading %s", path)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Path configs/config.<APP_ENV>.yaml (기본 local)
func Path() string {
	return fmt.Sprintf("configs/config.%s.yaml", Env())
}

// Env APP_ENV, 기본 local
func Env() string {
	if env := os.Getenv("APP_ENV"); env != "" {
		return env
	}
	return "local"
}

func (c *Config) applyEnv() error {
	str := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}
	num := func(key string, dst *int) error {
		v, ok := os.LookupEnv(key)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return eris.Wrapf(err, "env %s", key)
		}
		*dst = n
		return nil
	}

	str("DB_DRIVER", &c.Database.Driver)
	str("DB_DSN", &c.Database.DSN)
	str("DB_HOST", &c.Database.Host)
	str("DB_USER", &c.Database.User)
	str("DB_PASSWORD", &c.Database.Password)
	str("DB_NAME", &c.Database.Name)
	str("JWT_SECRET", &c.JWT.Secret)
	str("REDIS_HOST", &c.Redis.Host)
	str("REDIS_PASSWORD", &c.Redis.Password)
	str("SENTRY_DSN", &c.Sentry.DSN)
	str("UPLOAD_DIR", &c.Upload.Dir)
	str("STORAGE_BACKEND", &c.Storage.Backend)
	str("S3_ENDPOINT", &c.Storage.Endpoint)
	str("S3_REGION", &c.Storage.Region)
	str("S3_ACCESS_KEY_ID", &c.Storage.AccessKeyID)
	str("S3_SECRET_ACCESS_KEY", &c.Storage.SecretAccessKey)
	str("S3_BUCKET", &c.Storage.Bucket)
	str("S3_CDN_URL", &c.Storage.CDNURL)
	str("LOG_LEVEL", &c.Log.Level)
	str("CORS_ALLOW_ORIGINS", &c.CORS.AllowOrigins)

	for key, dst := range map[string]*int{
		"DB_PORT":     &c.Database.Port,
		"SERVER_PORT": &c.Server.Port,
		"REDIS_PORT":  &c.Redis.Port,
	} {
		if err := num(key, dst); err != nil {
			return err
		}
	}

	// REDIS_HOST 가 지정되면 Redis 사용
	if _, ok := os.LookupEnv("REDIS_HOST"); ok {
		c.Redis.Enabled = true
	}
	if v, ok := os.LookupEnv("S3_FORCE_PATH_STYLE"); ok {
		c.Storage.ForcePathStyle = v == "true" || v == "1"
	}
	if c.Server.Env == "" {
		c.Server.Env = Env()
	}
	return nil
}

// Validate 알 수 없는 드라이버/백엔드, 잘못된 포트 거부
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case database.DriverMySQL, database.DriverSQLite, database.DriverPostgres:
	default:
		return eris.Errorf("unknown database driver %q", c.Database.Driver)
	}
	switch c.Storage.Backend {
	case storage.BackendLocal:
	case storage.BackendS3:
		if c.Storage.Bucket == "" {
			return eris.New("storage.bucket is required for the s3 backend")
		}
	default:
		return eris.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if c.Server.Port <= 0 {
		return eris.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Database.DSN == "" && c.Database.Driver != database.DriverSQLite && c.Database.Port <= 0 {
		return eris.Errorf("invalid database port %d", c.Database.Port)
	}
	if c.Redis.Enabled && c.Redis.Port <= 0 {
		return eris.Errorf("invalid redis port %d", c.Redis.Port)
	}
	return nil
}

// GetDSN explicit DSN 우선, 없으면 드라이버별로 조립
func (c *DatabaseConfig) GetDSN() string {
	if c.DSN != "" {
		if c.Driver == database.DriverSQLite {
			return database.SQLiteDSN(c.DSN)
		}
		return c.DSN
	}

	switch c.Driver {
	case database.DriverSQLite:
		return database.SQLiteDSN(c.Name + ".db")
	case database.DriverPostgres:
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			c.Host, c.Port, c.User, c.Password, c.Name)
	default:
		mc := mysql.NewConfig()
		mc.User = c.User
		mc.Passwd = c.Password
		mc.Net = "tcp"
		mc.Addr = fmt.Sprintf("%s:%d", c.Host, c.Port)
		mc.DBName = c.Name
		mc.ParseTime = true
		mc.Loc = time.UTC
		mc.Params = map[string]string{"charset": "utf8mb4"}
		return mc.FormatDSN()
	}
}

// IsDevelopment local/dev 환경 여부
func (c *Config) IsDevelopment() bool {
	switch strings.ToLower(c.Server.Env) {
	case "local", "dev", "development":
		return true
	}
	return false
}

// AllowOrigins CORS 허용 origin 목록
func (c *Config) AllowOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORS.AllowOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// MaxUploadBytes 업로드 최대 크기 (bytes)
func (c *Config) MaxUploadBytes() int64 {
	return c.Upload.MaxSizeMB << 20
}

// LogResolved 비밀값을 가린 최종 설정 로그
func LogResolved(c *Config) {
	logger.GetLogger().Info().
		Str("env", c.Server.Env).
		Int("port", c.Server.Port).
		Str("db_driver", c.Database.Driver).
		Str("db_host", c.Database.Host).
		Str("db_name", c.Database.Name).
		Bool("redis", c.Redis.Enabled).
		Bool("jwt_guard", c.JWT.Secret != "").
		Str("storage", c.Storage.Backend).
		Bool("sentry", c.Sentry.DSN != "").
		Msg("resolved config")
}
