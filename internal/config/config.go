package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ModeServer   = "server"
	ModeTerminal = "terminal"
)

type Config struct {
	LogLevel  string `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"info"`
	Mode      string `yaml:"mode" env:"TTT_MODE" env-default:"server"`
	HTTPPort  string `yaml:"http-port" env:"TTT_HTTP_PORT" env-default:"9090"`
	Redis     Redis  `yaml:"redis"`
	Game      Game   `yaml:"game"`
	StatsFile string `yaml:"stats-file" env:"TTT_STATS_FILE" env-default:"tictactoe-arcade/stats.json"`
}

type Redis struct {
	Host string `yaml:"host" env:"TTT_REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"TTT_REDIS_PORT" env-default:"6379"`
}

type Game struct {
	// ComputerDelay is the pause before the computer answers a move.
	ComputerDelay time.Duration `yaml:"computer-delay" env-default:"800ms"`
	PollInterval  time.Duration `yaml:"poll-interval" env-default:"1s"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
