package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// human-readable durations.
type StructuredJSONConfig struct {
	App struct {
		Platform string `json:"platform"`
		Version  string `json:"version"`
	} `json:"app,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		HealthPath     string   `json:"health_path"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Bolt struct {
			Path string `json:"path"`
		} `json:"bolt,omitempty"`
	} `json:"storage,omitempty"`

	Crypto struct {
		CipherSuite  string `json:"cipher_suite"`
		ArgonTime    uint32 `json:"argon_time"`
		ArgonMemory  uint32 `json:"argon_memory"`
		ArgonThreads uint8  `json:"argon_threads"`
	} `json:"crypto,omitempty"`

	Session struct {
		Timeout           Duration `json:"timeout"`
		RememberMeTimeout Duration `json:"remember_me_timeout"`
	} `json:"session,omitempty"`

	Workers struct {
		ExpiryCheckSpec string `json:"expiry_check_spec"`
		RefreshSpec     string `json:"refresh_spec"`
	} `json:"workers,omitempty"`
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
			Platform: jsonCfg.App.Platform,
			Version:  jsonCfg.App.Version,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			HealthPath:     jsonCfg.Adapter.HealthPath,
		},
		Storage: Storage{
			DB:   DB{DSN: jsonCfg.Storage.DB.DSN},
			Bolt: Bolt{Path: jsonCfg.Storage.Bolt.Path},
		},
		Crypto: Crypto{
			CipherSuite:  jsonCfg.Crypto.CipherSuite,
			ArgonTime:    jsonCfg.Crypto.ArgonTime,
			ArgonMemory:  jsonCfg.Crypto.ArgonMemory,
			ArgonThreads: jsonCfg.Crypto.ArgonThreads,
		},
		Session: Session{
			Timeout:           time.Duration(jsonCfg.Session.Timeout),
			RememberMeTimeout: time.Duration(jsonCfg.Session.RememberMeTimeout),
		},
		Workers: Workers{
			ExpiryCheckSpec: jsonCfg.Workers.ExpiryCheckSpec,
			RefreshSpec:     jsonCfg.Workers.RefreshSpec,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
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
