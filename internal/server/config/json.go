package config

import (
	"encoding/json"
	"os"

	"github.com/dmaslov/passport/internal/flagx"
	"github.com/dmaslov/passport/internal/timex"
)

// jsonConfig is the DTO used only for reading JSON configuration files.
// Interval fields use timex.Duration so JSON can specify them either as
// strings like "1h" or as integer nanoseconds. After unmarshalling, values
// are copied into the runtime Config.
type jsonConfig struct {
	EndpointAddr          string         `json:"endpoint_addr"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	BcryptCost            int            `json:"bcrypt_cost"`
}

// parseJSON overlays configuration values from a JSON file onto the provided
// Config. The file path comes from the -c or -config command-line flags; when
// neither is set, no file is loaded. An unreadable or malformed file panics:
// a half-applied config is worse than a refused start.
func parseJSON(config *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &jsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.EndpointAddr = c.EndpointAddr
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.TokenValidityDuration = c.TokenValidityDuration.Duration
	config.BcryptCost = c.BcryptCost
}
