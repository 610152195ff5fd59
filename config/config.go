package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

//go:embed config.yml
var embeddedConfig []byte

type Config struct {
	Mode     string `mapstructure:"mode"`
	Dotenv   string `mapstructure:"dotenv"`
	Handlers struct {
		ExternalAPI struct {
			Port      string `mapstructure:"port"`
			CertFile  string `mapstructure:"certFile"`
			KeyFile   string `mapstructure:"keyFile"`
			EnableTLS bool   `mapstructure:"enableTLS"`
		} `mapstructure:"externalAPI"`
		Prometheus struct {
			Port      string `mapstructure:"port"`
			CertFile  string `mapstructure:"certFile"`
			KeyFile   string `mapstructure:"keyFile"`
			EnableTLS bool   `mapstructure:"enableTLS"`
		} `mapstructure:"prometheus"`
	} `mapstructure:"handlers"`
	Upstream struct {
		NodeServerURL string        `mapstructure:"nodeServerURL"`
		FrontendURL   string        `mapstructure:"frontendURL"`
		GeminiModel   string        `mapstructure:"geminiModel"`
		SaveTimeout   time.Duration `mapstructure:"saveTimeout"`
		// SaveWarnings surfaces a failed adventure save to the caller
		// via the X-Save-Warning response header instead of only logging it.
		SaveWarnings bool `mapstructure:"saveWarnings"`
	} `mapstructure:"upstream"`
	Renderer struct {
		LatexBin     string        `mapstructure:"latexBin"`
		LatexTimeout time.Duration `mapstructure:"latexTimeout"`
		MapTimeout   time.Duration `mapstructure:"mapTimeout"`
		MapboxToken  string        `mapstructure:"mapboxToken"`
	} `mapstructure:"renderer"`
	Geocoder struct {
		BaseURL   string        `mapstructure:"baseURL"`
		UserAgent string        `mapstructure:"userAgent"`
		Timeout   time.Duration `mapstructure:"timeout"`
	} `mapstructure:"geocoder"`
	Server struct {
		HTTPPort string        `mapstructure:"HTTPPort"`
		Timeout  time.Duration `mapstructure:"HTTPTimeout"`
	} `mapstructure:"server"`
}

func InitConfig() (Config, error) {
	var config Config
	v := viper.New()

	// Add file-based config paths
	v.AddConfigPath(".")
	v.AddConfigPath("config")
	v.AddConfigPath("/app/config")

	v.SetConfigName("config")
	v.SetConfigType("yml")

	// Try to load file-based config
	err := v.ReadInConfig()
	if err != nil {
		fmt.Printf("Warning: Failed to find file-based config: %s. Falling back to embedded config.\n", err)
		if err = v.ReadConfig(bytes.NewReader(embeddedConfig)); err != nil {
			return Config{}, fmt.Errorf("failed to read embedded config: %s", err)
		}
	}

	// Unmarshal the config into the Config struct
	if err = v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %s", err)
	}
	fmt.Println("Successfully loaded app configs...")
	return config, nil
}
