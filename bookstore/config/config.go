package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/kimnamhyeong01/bookstore-service/pkg/auth"
	"github.com/kimnamhyeong01/bookstore-service/pkg/kafka"
	"github.com/kimnamhyeong01/bookstore-service/pkg/logger"
	"github.com/kimnamhyeong01/bookstore-service/pkg/postgres"
	"github.com/kimnamhyeong01/bookstore-service/pkg/sqlite"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// FileEnv names the optional YAML file. Keys present in the file win over the environment.
const FileEnv = "BOOKSTORE_CONFIG"

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE" default:"10s"`
}

type Database struct {
	// Driver is postgres.DriverName or sqlite.DriverName.
	Driver   string      `yaml:"driver" envconfig:"DB_DRIVER" default:"pgx"`
	Postgres postgres.DB `yaml:"postgres"`
	SQLite   sqlite.DB   `yaml:"sqlite"`
}

type Reservation struct {
	// PinBookDate moves new reservations of a book onto the day of its earliest reservation.
	PinBookDate bool `yaml:"pinBookDate" envconfig:"RESERVATION_PIN_BOOK_DATE" default:"true"`
}

type Config struct {
	Server      HTTPServer   `yaml:"server"`
	Database    Database     `yaml:"database"`
	Kafka       kafka.Config `yaml:"kafka"`
	Auth        auth.Config  `yaml:"auth"`
	Reservation Reservation  `yaml:"reservation"`
	Log         logger.Log   `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment and the optional file.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		config, err := Load(os.Getenv(FileEnv))
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		for _, op := range ops {
			op(config)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

// Load builds a Config from defaults and the environment, then overlays path when it is set.
func Load(path string) (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.Wrap(err, "envconfig")
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "read config file")
		}
		if err = yaml.Unmarshal(b, &config); err != nil {
			return nil, errors.Wrapf(err, "parse %s", path)
		}
	}
	switch config.Database.Driver {
	case postgres.DriverName, sqlite.DriverName:
	default:
		return nil, errors.Errorf("unknown database driver %q", config.Database.Driver)
	}
	return &config, nil
}

func printConfig(cfg *Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
