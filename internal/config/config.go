package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Redis    Redis  `yaml:"redis"`
	Game     Game   `yaml:"game"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Game struct {
	BoardSize            int           `yaml:"board-size" env:"GAME_BOARD_SIZE" env-default:"3"`
	MaxComputerBoardSize int           `yaml:"max-computer-board-size" env:"GAME_MAX_COMPUTER_BOARD_SIZE" env-default:"3"`
	ResultTTL            time.Duration `yaml:"result-ttl" env:"GAME_RESULT_TTL" env-default:"24h"`
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

// LoadGame - reads the game section from the environment only, falling back to defaults.
func LoadGame() (*Game, error) {
	game := &Game{}

	if err := cleanenv.ReadEnv(game); err != nil {
		return nil, fmt.Errorf("unable to read game settings: %w", err)
	}

	return game, nil
}
