package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env           string              `yaml:"env" env-default:"local"`
	DSN           string              `yaml:"dsn" env:"DSN" env-required:"true"`
	TokenTTL      time.Duration       `yaml:"token_ttl" env-default:"15m"`
	RefreshTTL    time.Duration       `yaml:"refresh_ttl" env-default:"168h"`
	HTTP          HTTPConfig          `yaml:"http"`
	ObjectStorage ObjectStorageConfig `yaml:"object_storage"`
	Redis         RedisConfig         `yaml:"redis"`
	Session       SessionConfig       `yaml:"session"`
}

type HTTPConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port" env-default:"8080"`
}

type ObjectStorageConfig struct {
	BaseDir string        `yaml:"base_dir" env-default:"./data/buckets"`
	BaseURL string        `yaml:"base_url" env-required:"true"`
	MaxSize int64         `yaml:"max_size" env-default:"10485760"`
	Buckets []string      `yaml:"buckets"`
	ListTTL time.Duration `yaml:"list_ttl" env-default:"30s"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr" env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env-default:"0"`
}

type SessionConfig struct {
	Secret string `yaml:"secret" env:"SESSION_SECRET" env-required:"true"`
}

func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}

	return MustLoadPath(path)
}

func MustLoadPath(configPath string) *Config {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("cannot read config: " + err.Error())
	}

	return &cfg
}

func fetchConfigPath() string {
	var res string

	// --config="path/to/config.yaml"
	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
