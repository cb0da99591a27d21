package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const EnvPrefix = "FOODCATALOG"

type DatabaseConfig struct {
	Driver   string `mapstructure:"driver"` // pgx, postgres or sqlite3
	DSN      string `mapstructure:"dsn"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxConns int    `mapstructure:"max_conns"`
}

type EventsConfig struct {
	Destination     string `mapstructure:"destination"` // none, console, file or kafka
	FilePath        string `mapstructure:"file_path"`
	KafkaBrokerList string `mapstructure:"kafka_broker_list"`
	TopicPrefix     string `mapstructure:"topic_prefix"`
}

type S3Config struct {
	Region string `mapstructure:"region"`
	Bucket string `mapstructure:"bucket"`
	Prefix string `mapstructure:"prefix"`
}

type ExportConfig struct {
	Dir         string   `mapstructure:"dir"`
	Format      string   `mapstructure:"format"`      // csv or parquet
	Destination string   `mapstructure:"destination"` // local or s3
	S3          S3Config `mapstructure:"s3"`
}

type CleanupConfig struct {
	DaysOld int `mapstructure:"days_old"`
}

type Config struct {
	Seed                   int64          `mapstructure:"seed"`
	Categories             []string       `mapstructure:"categories"`
	RestaurantsPerCategory int            `mapstructure:"restaurants_per_category"`
	ProductsPerRestaurant  int            `mapstructure:"products_per_restaurant"`
	IDResolution           string         `mapstructure:"id_resolution"`
	LogLevel               string         `mapstructure:"log_level"`
	Database               DatabaseConfig `mapstructure:"database"`
	Events                 EventsConfig   `mapstructure:"events"`
	Export                 ExportConfig   `mapstructure:"export"`
	Cleanup                CleanupConfig  `mapstructure:"cleanup"`
}

// SetDefaults registers the default value of every config key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("seed", 0)
	v.SetDefault("categories", []string{"pizza", "hamburguer", "japonesa"})
	v.SetDefault("restaurants_per_category", 50)
	v.SetDefault("products_per_restaurant", 10)
	v.SetDefault("id_resolution", IDResolutionDirect)
	v.SetDefault("log_level", "info")

	v.SetDefault("database.driver", "pgx")
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.dbname", "foodcatalog")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)

	v.SetDefault("events.destination", "none")
	v.SetDefault("events.file_path", "events")
	v.SetDefault("events.kafka_broker_list", "localhost:9092")
	v.SetDefault("events.topic_prefix", "")

	v.SetDefault("export.dir", "data")
	v.SetDefault("export.format", "csv")
	v.SetDefault("export.destination", "local")
	v.SetDefault("export.s3.region", "us-east-1")
	v.SetDefault("export.s3.bucket", "")
	v.SetDefault("export.s3.prefix", "")

	v.SetDefault("cleanup.days_old", 30)
}

// LoadConfig reads the configuration using the global Viper instance
func LoadConfig(cfgFile string) (*Config, error) {
	return LoadConfigWith(viper.GetViper(), cfgFile)
}

// LoadConfigWith reads cfgFile (or the default locations) into v and decodes it.
// A missing default config file is not an error; a missing explicit one is.
func LoadConfigWith(v *viper.Viper, cfgFile string) (*Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToSliceHookFunc(","),
			mapstructure.StringToTimeDurationHookFunc(),
		)
	})
	if err := v.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (cfg *Config) Validate() error {
	if cfg.RestaurantsPerCategory < 0 {
		return fmt.Errorf("restaurants_per_category must not be negative, got %d", cfg.RestaurantsPerCategory)
	}
	if cfg.ProductsPerRestaurant < 0 {
		return fmt.Errorf("products_per_restaurant must not be negative, got %d", cfg.ProductsPerRestaurant)
	}
	switch cfg.IDResolution {
	case IDResolutionDirect, IDResolutionReload:
	default:
		return fmt.Errorf("unknown id_resolution %q", cfg.IDResolution)
	}
	switch cfg.Export.Format {
	case "csv", "parquet":
	default:
		return fmt.Errorf("unsupported export format %q", cfg.Export.Format)
	}
	return nil
}

// PostgresDSN returns the configured DSN, or builds a key/value connection string
// from the individual fields when no DSN is set.
func (d DatabaseConfig) PostgresDSN() string {
	if d.DSN != "" {
		return d.DSN
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}
