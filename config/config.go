package config

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

type Server struct {
	Host string
	Port int
}

type DB struct {
	Driver string // "mysql" or "sqlite"
	Host   string
	Port   int
	User   string
	Pass   string
	Name   string
	Path   string // sqlite file
}

type JWT struct {
	Secret      string
	Issuer      string
	LoginExpMin int
}

type Storage struct {
	Dir string
}

type Upload struct {
	MaxBytes int64
}

type Redis struct {
	Addr           string
	Pass           string
	LoginLimit     int64
	LoginWindowSec int
}

type Admin struct {
	Username string
	Password string
}

type Config struct {
	Server   Server
	DB       DB
	JWT      JWT
	Storage  Storage
	Upload   Upload
	Redis    Redis
	Admin    Admin
	LogLevel string

	v *viper.Viper
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8000)
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "root")
	v.SetDefault("db.pass", "")
	v.SetDefault("db.name", "csvvault")
	v.SetDefault("db.path", "csvvault.db")
	v.SetDefault("storage.dir", "uploads")
	v.SetDefault("upload.max_bytes", 250000000)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.login_limit", 10)
	v.SetDefault("redis.login_window_sec", 60)
	v.SetDefault("log.level", "info")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{
		Server: Server{Host: v.GetString("server.host"), Port: v.GetInt("server.port")},
		DB: DB{
			Driver: v.GetString("db.driver"),
			Host:   v.GetString("db.host"),
			Port:   v.GetInt("db.port"),
			User:   v.GetString("db.user"),
			Pass:   v.GetString("db.pass"),
			Name:   v.GetString("db.name"),
			Path:   v.GetString("db.path"),
		},
		Storage: Storage{Dir: v.GetString("storage.dir")},
		Upload:  Upload{MaxBytes: v.GetInt64("upload.max_bytes")},
		Redis: Redis{
			Addr:           v.GetString("redis.addr"),
			Pass:           v.GetString("redis.pass"),
			LoginLimit:     v.GetInt64("redis.login_limit"),
			LoginWindowSec: v.GetInt("redis.login_window_sec"),
		},
		LogLevel: v.GetString("log.level"),
		v:        v,
	}

	cfg.JWT.Secret = v.GetString("jwt.secret")
	if cfg.JWT.Secret == "" {
		// local bootstrap only; deployments must set jwt.secret
		cfg.JWT.Secret = "dev-secret"
	}
	cfg.JWT.Issuer = v.GetString("jwt.issuer")
	if cfg.JWT.Issuer == "" {
		cfg.JWT.Issuer = "csvvault"
	}
	cfg.JWT.LoginExpMin = v.GetInt("jwt.login_exp_min")
	if cfg.JWT.LoginExpMin <= 0 {
		cfg.JWT.LoginExpMin = 30
	}

	cfg.Admin.Username = v.GetString("admin.username")
	if cfg.Admin.Username == "" {
		cfg.Admin.Username = "admin"
	}
	cfg.Admin.Password = v.GetString("admin.password")
	if cfg.Admin.Password == "" {
		cfg.Admin.Password = "admin123"
	}

	return cfg, nil
}

// Watch re-reads the file on change and reports the current log level.
// Only the log level is hot-reloadable; everything else needs a restart.
func (c *Config) Watch(onChange func(logLevel string)) {
	if c.v == nil {
		return
	}
	c.v.OnConfigChange(func(e fsnotify.Event) {
		if err := c.v.ReadInConfig(); err != nil {
			return
		}
		onChange(c.v.GetString("log.level"))
	})
	c.v.WatchConfig()
}
