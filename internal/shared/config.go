package shared

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog/log"
)

// Config keys are the lower-cased environment variable names, so
// MYSQL_DSN and {"mysql_dsn": ...} in CONFIG_FILE set the same value.
type Config struct {
	AppEnv      string `koanf:"app_env" validate:"required"`
	MySQLDSN    string `koanf:"mysql_dsn" validate:"required"`
	RedisAddr   string `koanf:"redis_addr"`
	RedisPass   string `koanf:"redis_password"`
	RedisDB     int    `koanf:"redis_db" validate:"min=0"`
	MetricsAddr string `koanf:"metrics_addr"`
	LogFile     string `koanf:"log_file"`

	CatalogBase           string `koanf:"catalog_base_url" validate:"required,url"`
	CatalogKey            string `koanf:"catalog_api_key"`
	CatalogProductsPath   string `koanf:"catalog_products_path" validate:"required"`
	CatalogCategoriesPath string `koanf:"catalog_categories_path" validate:"required"`
	CatalogTimeoutSeconds int    `koanf:"catalog_timeout_seconds" validate:"min=1"`
	CatalogRPS            int    `koanf:"catalog_rps" validate:"min=1"`

	LanguageID     int64 `koanf:"sync_language_id" validate:"min=1"`
	ProgressEvery  int   `koanf:"sync_progress_every" validate:"min=1"`
	LockTTLSeconds int   `koanf:"sync_lock_ttl_seconds" validate:"min=1"`
}

func (c Config) CatalogTimeout() time.Duration {
	return time.Duration(c.CatalogTimeoutSeconds) * time.Second
}

func (c Config) LockTTL() time.Duration {
	return time.Duration(c.LockTTLSeconds) * time.Second
}

func Defaults() Config {
	return Config{
		AppEnv:                "prod",
		MySQLDSN:              "root:root@tcp(localhost:3306)/nopcommerce?parseTime=true&charset=utf8mb4,utf8&loc=UTC",
		CatalogBase:           "https://dummyjson.com",
		CatalogProductsPath:   "products",
		CatalogCategoriesPath: "products/categories",
		CatalogTimeoutSeconds: 30,
		CatalogRPS:            5,
		LanguageID:            2,
		ProgressEvery:         25,
		LockTTLSeconds:        900,
	}
}

// Load layers defaults, the optional JSON file named by CONFIG_FILE and the
// process environment, in increasing priority, then validates the result.
func Load() (Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Defaults(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("load config defaults: %w", err)
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := k.Load(file.Provider(path), json.Parser()); err != nil {
			return Config{}, fmt.Errorf("load config file %q: %w", path, err)
		}
	}

	known := map[string]bool{}
	for _, key := range k.Keys() {
		known[key] = true
	}
	// only keys the struct knows about; the rest of the environment is ignored
	if err := k.Load(env.Provider("", ".", func(s string) string {
		key := strings.ToLower(s)
		if !known[key] {
			return ""
		}
		return key
	}), nil); err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}

	var c Config
	err := k.UnmarshalWithConf("", &c, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &c,
			WeaklyTypedInput: true,
			ErrorUnused:      true,
		},
	})
	if err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field()+" ("+fe.Tag()+")")
			}
			return Config{}, fmt.Errorf("invalid config: %s", strings.Join(fields, ", "))
		}
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	if c.CatalogKey == "" {
		log.Debug().Msg("CATALOG_API_KEY is empty")
	}
	return c, nil
}
