package config

import (
	"go-dexprobe/internal/common"
	"os"

	"gopkg.in/yaml.v3"
)

type APIConfig struct {
	BaseURL string `yaml:"base_url"`
}

type TokenConfig struct {
	Symbol  string `yaml:"symbol"`
	Address string `yaml:"address"`
}

type Config struct {
	API           APIConfig   `yaml:"api"`
	Token         TokenConfig `yaml:"token"`
	SearchQueries []string    `yaml:"search_queries"`
	LogLevel      string      `yaml:"log_level"`
}

// LoadConfig reads the yaml config at path. A missing file is not an error:
// the probe is a zero-setup tool and runs with the built-in defaults.
func LoadConfig(path string) (*Config, error) {
	config := &Config{
		LogLevel: common.DefaultLogLevel,
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	if err := d.Decode(&config); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) GetBaseURL() string {
	if c.API.BaseURL == "" {
		return common.DefaultBaseURL
	}
	return c.API.BaseURL
}

func (c *Config) GetToken() (symbol, address string) {
	if c.Token.Symbol == "" || c.Token.Address == "" {
		return common.DefaultTokenSymbol, common.DefaultTokenAddress
	}
	return c.Token.Symbol, c.Token.Address
}

func (c *Config) GetSearchQueries() []string {
	if len(c.SearchQueries) == 0 {
		return common.DefaultSearchQueries
	}
	return c.SearchQueries
}
