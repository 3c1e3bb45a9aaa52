package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	CounterBackendMemory = "memory"
	CounterBackendRedis  = "redis"
)

type Config struct {
	LogLevel   string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string   `yaml:"http-port" env:"HTTP_PORT" env-default:"8080"`
	SocketPort string   `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9090"`
	Counter    Counter  `yaml:"counter"`
	Redis      Redis    `yaml:"redis"`
	Reporter   Reporter `yaml:"reporter"`
	Game       Game     `yaml:"game"`
}

type Counter struct {
	Backend string `yaml:"backend" env:"COUNTER_BACKEND" env-default:"memory"`
	Key     string `yaml:"key" env:"COUNTER_KEY" env-default:"counter:wins"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Reporter struct {
	Endpoint string        `yaml:"endpoint" env:"REPORTER_ENDPOINT" env-default:"http://localhost:8080"`
	Timeout  time.Duration `yaml:"timeout" env:"REPORTER_TIMEOUT" env-default:"3s"`
}

type Game struct {
	// KeepScoreOnJump leaves a win counted when the player navigates away from it.
	KeepScoreOnJump bool `yaml:"keep-score-on-jump" env:"GAME_KEEP_SCORE_ON_JUMP"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	if err := config.Validate(); err != nil {
		panic(fmt.Errorf("invalid config: %w", err))
	}

	return config
}

func (that *Config) Validate() error {
	switch that.Counter.Backend {
	case CounterBackendMemory, CounterBackendRedis:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCounterBackend, that.Counter.Backend)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
