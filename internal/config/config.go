package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host string
	Port int
}

type DBConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime string
}

type OrdersConfig struct {
	DefaultVATPercent float64
	SeedDemo          bool
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	DB          DBConfig
	Orders      OrdersConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AddConfigPath("./internal/config")
	v.AutomaticEnv()

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		DB: DBConfig{
			DSN:             v.GetString("DB_DSN"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetString("DB_CONN_MAX_LIFETIME"),
		},
		Orders: OrdersConfig{
			DefaultVATPercent: v.GetFloat64("ORDERS_DEFAULT_VAT_PERCENT"),
			SeedDemo:          v.GetBool("ORDERS_SEED_DEMO"),
		},
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 7090
	}
	if cfg.Orders.DefaultVATPercent == 0 {
		cfg.Orders.DefaultVATPercent = 25
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// An empty DB_DSN selects the in-memory store, so the DSN itself is not
// required; pool settings without a DSN point at a misconfiguration.
func validate(cfg *Config) error {
	if cfg.DB.DSN == "" && (cfg.DB.MaxOpenConns > 0 || cfg.DB.MaxIdleConns > 0) {
		return fmt.Errorf("DB pool settings require DB_DSN")
	}
	if cfg.Orders.DefaultVATPercent < 0 || cfg.Orders.DefaultVATPercent > 100 {
		return fmt.Errorf("ORDERS_DEFAULT_VAT_PERCENT must be between 0 and 100")
	}
	return nil
}
