package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Api        Api         `toml:"api" mapstructure:"api" json:"api"`
	ProjectCfg *ProjectCfg `toml:"project_cfg" mapstructure:"project_cfg" json:"project_cfg"`
	Log        Log         `toml:"log" mapstructure:"log" json:"log"`
	DB         DB          `toml:"db" mapstructure:"db" json:"db"`
	Market     Market      `toml:"market" mapstructure:"market" json:"market"`
	Kv         *KvConfig   `toml:"kv" mapstructure:"kv" json:"kv"`
	Metadata   Metadata    `toml:"metadata" mapstructure:"metadata" json:"metadata"`
}

type Api struct {
	Port   string `toml:"port" mapstructure:"port" json:"port"`
	MaxNum int    `toml:"max_num" mapstructure:"max_num" json:"max_num"`
	Debug  bool   `toml:"debug" mapstructure:"debug" json:"debug"`
}

type ProjectCfg struct {
	Name string `toml:"name" mapstructure:"name" json:"name"`
}

type Log struct {
	Path  string `toml:"path" mapstructure:"path" json:"path"`
	Debug bool   `toml:"debug" mapstructure:"debug" json:"debug"`
}

type DB struct {
	Dsn          string `toml:"dsn" mapstructure:"dsn" json:"dsn"`
	MaxIdleConns int    `toml:"max_idle_conns" mapstructure:"max_idle_conns" json:"max_idle_conns"`
	MaxOpenConns int    `toml:"max_open_conns" mapstructure:"max_open_conns" json:"max_open_conns"`
}

// Market names the account credited with the platform fee. The fee rate
// itself is a protocol constant, not configuration.
type Market struct {
	FeeRecipient string `toml:"fee_recipient" mapstructure:"fee_recipient" json:"fee_recipient"`
}

type KvConfig struct {
	Redis []*Redis `toml:"redis" mapstructure:"redis" json:"redis"`
}

type Redis struct {
	Host string `toml:"host" json:"host"`
	Type string `toml:"type" json:"type"`
	Pass string `toml:"pass" json:"pass"`
}

type Metadata struct {
	TimeoutSeconds  int `toml:"timeout_seconds" mapstructure:"timeout_seconds" json:"timeout_seconds"`
	RetryMax        int `toml:"retry_max" mapstructure:"retry_max" json:"retry_max"`
	CacheTtlSeconds int `toml:"cache_ttl_seconds" mapstructure:"cache_ttl_seconds" json:"cache_ttl_seconds"`
}

func UnmarshalConfig(configFilePath string) (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigFile(configFilePath)
	viper.SetConfigType("toml")
	viper.AutomaticEnv()
	viper.SetEnvPrefix("NFTM")
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}
	conf := DefaultConfig()
	if err := viper.Unmarshal(conf); err != nil {
		return nil, err
	}
	return conf, nil
}

func DefaultConfig() *Config {
	return &Config{
		Api: Api{Port: ":9000", MaxNum: 50},
		Metadata: Metadata{
			TimeoutSeconds:  10,
			RetryMax:        3,
			CacheTtlSeconds: 300,
		},
	}
}
