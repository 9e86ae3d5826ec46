package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

const (
	FirstPlayerHuman    = "human"
	FirstPlayerComputer = "computer"
)

var ErrUnknownFirstPlayer = errors.New("unknown first player")

type Config struct {
	LogLevel string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	LogFile  string `yaml:"log-file" env:"TICTACTOE_LOG_FILE" env-default:"tictactoe.log"`
	Game     Game   `yaml:"game"`
}

type Game struct {
	HumanMark   string `yaml:"human-mark" env:"TICTACTOE_HUMAN_MARK" env-default:"X"`
	FirstPlayer string `yaml:"first-player" env:"TICTACTOE_FIRST_PLAYER" env-default:"human"`

	// zero values are replaced by env-default, so both switches default to false
	KeepFirstPlayer bool `yaml:"keep-first-player" env:"TICTACTOE_KEEP_FIRST_PLAYER"`
	SearchOpening   bool `yaml:"search-opening" env:"TICTACTOE_SEARCH_OPENING"`
}

// MustLoad - load all configurations in config.yml file; without the file only the environment is read.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	default:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	}

	if err = config.Game.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Game) Validate() error {
	if _, err := that.GetHumanMark(); err != nil {
		return err
	}

	if _, err := that.IsHumanFirst(); err != nil {
		return err
	}

	return nil
}

func (that *Game) GetHumanMark() (tictactoe.Mark, error) {
	mark, err := tictactoe.ParseMark(that.HumanMark)
	if err != nil {
		return tictactoe.Empty, fmt.Errorf("invalid human-mark: %w", err)
	}

	return mark, nil
}

func (that *Game) IsHumanFirst() (bool, error) {
	switch that.FirstPlayer {
	case FirstPlayerHuman:
		return true, nil
	case FirstPlayerComputer:
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownFirstPlayer, that.FirstPlayer)
	}
}
