package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the shape of the JSON
// configuration file. The "storage.prefix" key is the one the vault reads.
type StructuredJSONConfig struct {
	App struct {
		LogDir string `json:"log_dir"`
	} `json:"app,omitempty"`

	Storage struct {
		Prefix        string `json:"prefix"`
		Backend       string `json:"backend"`
		MaxValueBytes int    `json:"max_value_bytes"`
		DB            struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Crypto struct {
		ArgonTime      uint32 `json:"argon_time"`
		ArgonMemoryKiB uint32 `json:"argon_memory_kib"`
		ArgonThreads   uint8  `json:"argon_threads"`
		ScryptN        int    `json:"scrypt_n"`
		ScryptP        int    `json:"scrypt_p"`
	} `json:"crypto,omitempty"`

	Session struct {
		IdleTimeout Duration `json:"idle_timeout"`
	} `json:"session,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogDir: jsonCfg.App.LogDir,
		},
		Storage: Storage{
			Prefix:        jsonCfg.Storage.Prefix,
			Backend:       jsonCfg.Storage.Backend,
			MaxValueBytes: jsonCfg.Storage.MaxValueBytes,
			DB:            DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Crypto: Crypto{
			ArgonTime:      jsonCfg.Crypto.ArgonTime,
			ArgonMemoryKiB: jsonCfg.Crypto.ArgonMemoryKiB,
			ArgonThreads:   jsonCfg.Crypto.ArgonThreads,
			ScryptN:        jsonCfg.Crypto.ScryptN,
			ScryptP:        jsonCfg.Crypto.ScryptP,
		},
		Session: Session{
			IdleTimeout: time.Duration(jsonCfg.Session.IdleTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
