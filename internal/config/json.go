package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the on-disk JSON layout.
type StructuredJSONConfig struct {
	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Mailspring struct {
		HomeDir     string `json:"home_dir"`
		AppName     string `json:"app_name"`
		Version     string `json:"version"`
		ServiceName string `json:"service_name"`
	} `json:"mailspring,omitempty"`

	Keyboard struct {
		Display  string   `json:"display"`
		Tool     string   `json:"tool"`
		Shell    string   `json:"shell"`
		Timeout  Duration `json:"timeout"`
		Disabled bool     `json:"disabled"`
	} `json:"keyboard,omitempty"`

	Dashboard struct {
		DesktopURL   string   `json:"desktop_url"`
		PollInterval Duration `json:"poll_interval"`
	} `json:"dashboard,omitempty"`
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
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Mailspring: Mailspring{
			HomeDir:     jsonCfg.Mailspring.HomeDir,
			AppName:     jsonCfg.Mailspring.AppName,
			Version:     jsonCfg.Mailspring.Version,
			ServiceName: jsonCfg.Mailspring.ServiceName,
		},
		Keyboard: Keyboard{
			Display:  jsonCfg.Keyboard.Display,
			Tool:     jsonCfg.Keyboard.Tool,
			Shell:    jsonCfg.Keyboard.Shell,
			Timeout:  time.Duration(jsonCfg.Keyboard.Timeout),
			Disabled: jsonCfg.Keyboard.Disabled,
		},
		Dashboard: Dashboard{
			DesktopURL:   jsonCfg.Dashboard.DesktopURL,
			PollInterval: time.Duration(jsonCfg.Dashboard.PollInterval),
		},
		JSONFilePath: "",
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
