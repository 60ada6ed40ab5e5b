package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config ...
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	MySQL     MySQLConfig     `mapstructure:"mysql"`
	Log       LogConfig       `mapstructure:"log"`
	Jaeger    JaegerConfig    `mapstructure:"jaeger"`
	FlashSale FlashSaleConfig `mapstructure:"flash_sale"`
}

// ServerConfig ...
type ServerConfig struct {
	HTTP ListenConfig `mapstructure:"http"`
}

// ListenConfig ...
type ListenConfig struct {
	Host string `mapstructure:"host"`
	Port uint16 `mapstructure:"port"`
}

// ListenString ...
func (c ListenConfig) ListenString() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LogConfig ...
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// JaegerConfig ...
type JaegerConfig struct {
	Endpoint string `mapstructure:"endpoint"`
}

// FlashSaleConfig holds the timings of the lifecycle controller and the
// read-path caches.
type FlashSaleConfig struct {
	TickInterval    time.Duration `mapstructure:"tick_interval"`
	TickTimeout     time.Duration `mapstructure:"tick_timeout"`
	CacheTTL        time.Duration `mapstructure:"cache_ttl"`
	CatalogCacheTTL time.Duration `mapstructure:"catalog_cache_ttl"`
	MemtableSize    int           `mapstructure:"memtable_size"`
}

func setDefaults(vip *viper.Viper) {
	vip.SetDefault("server.http.host", "0.0.0.0")
	vip.SetDefault("server.http.port", 11080)

	vip.SetDefault("log.level", "info")

	vip.SetDefault("flash_sale.tick_interval", 60*time.Second)
	vip.SetDefault("flash_sale.tick_timeout", 10*time.Second)
	vip.SetDefault("flash_sale.cache_ttl", 30*time.Second)
	vip.SetDefault("flash_sale.catalog_cache_ttl", 30*time.Second)
	vip.SetDefault("flash_sale.memtable_size", 8*1024*1024)
}

// Load reads config.yml from the working directory, environment variables
// with prefix FLASHSALE override file values.
func Load() Config {
	vip := viper.New()
	vip.SetConfigName("config")
	vip.SetConfigType("yml")
	vip.AddConfigPath(".")

	vip.SetEnvPrefix("flashsale")
	vip.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vip.AutomaticEnv()

	setDefaults(vip)

	err := vip.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			panic(err)
		}
	}

	var conf Config
	err = vip.Unmarshal(&conf)
	if err != nil {
		panic(err)
	}
	return conf
}
