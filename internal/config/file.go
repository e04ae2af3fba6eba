package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// fileConfig is the on-disk layout shared by the JSON and TOML formats.
type fileConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key" toml:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer" toml:"token_issuer"`
		TokenDuration Duration `json:"token_duration" toml:"token_duration"`
		Version       string   `json:"version" toml:"version"`
		LogLevel      string   `json:"log_level" toml:"log_level"`
	} `json:"app" toml:"app"`

	Network struct {
		ID            string   `json:"id" toml:"id"`
		ForcedNodeURL string   `json:"forced_node_url" toml:"forced_node_url"`
		Nodes         []string `json:"nodes" toml:"nodes"`
		RPCUser       string   `json:"rpc_user" toml:"rpc_user"`
		RPCPassword   string   `json:"rpc_password" toml:"rpc_password"`
		Timeout       Duration `json:"timeout" toml:"timeout"`
		FeeRate       int64    `json:"fee_rate" toml:"fee_rate"`
	} `json:"network" toml:"network"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" toml:"dsn"`
		} `json:"db" toml:"db"`
	} `json:"storage" toml:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address" toml:"http_address"`
		GRPCAddress    string   `json:"grpc_address" toml:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout"`
	} `json:"server" toml:"server"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" toml:"http_address"`
		GRPCAddress    string   `json:"grpc_address" toml:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout"`
		Token          string   `json:"token" toml:"token"`
	} `json:"adapter" toml:"adapter"`

	Workers struct {
		IdleTimeout  Duration `json:"idle_timeout" toml:"idle_timeout"`
		ReapInterval Duration `json:"reap_interval" toml:"reap_interval"`
		SyncInterval Duration `json:"sync_interval" toml:"sync_interval"`
	} `json:"workers" toml:"workers"`
}

// parseFile reads a .json or .toml configuration file.
func parseFile(path string) (*StructuredConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(raw, &fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	case ".toml":
		if _, err := toml.Decode(string(raw), &fc); err != nil {
			return nil, fmt.Errorf("error decoding toml configs: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfigFile, path)
	}

	return fc.toStructured(), nil
}

func (fc *fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  fc.App.TokenSignKey,
			TokenIssuer:   fc.App.TokenIssuer,
			TokenDuration: time.Duration(fc.App.TokenDuration),
			Version:       fc.App.Version,
			LogLevel:      fc.App.LogLevel,
		},
		Network: Network{
			ID:            fc.Network.ID,
			ForcedNodeURL: fc.Network.ForcedNodeURL,
			Nodes:         fc.Network.Nodes,
			RPCUser:       fc.Network.RPCUser,
			RPCPassword:   fc.Network.RPCPassword,
			Timeout:       time.Duration(fc.Network.Timeout),
			FeeRate:       fc.Network.FeeRate,
		},
		Storage: Storage{DB: DB{DSN: fc.Storage.DB.DSN}},
		Server: Server{
			HTTPAddress:    fc.Server.HTTPAddress,
			GRPCAddress:    fc.Server.GRPCAddress,
			RequestTimeout: time.Duration(fc.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    fc.Adapter.HTTPAddress,
			GRPCAddress:    fc.Adapter.GRPCAddress,
			RequestTimeout: time.Duration(fc.Adapter.RequestTimeout),
			Token:          fc.Adapter.Token,
		},
		Workers: Workers{
			IdleTimeout:  time.Duration(fc.Workers.IdleTimeout),
			ReapInterval: time.Duration(fc.Workers.ReapInterval),
			SyncInterval: time.Duration(fc.Workers.SyncInterval),
		},
	}
}

// Duration decodes "1h"-style strings from JSON and TOML. JSON numbers are
// taken as nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d *Duration) UnmarshalText(b []byte) error {
	tmp, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
