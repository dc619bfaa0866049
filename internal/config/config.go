// Package config loads daemon configuration from defaults, an optional
// YAML file and REMINDL_-prefixed environment variables, in that order
// of precedence (later layers win).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/remindl/remindl/common"
)

type Config struct {
	// SocketPath overrides the default unix socket location.
	SocketPath string `koanf:"socket_path"`
	// TCPPort is the fallback TCP port for client connections.
	TCPPort int `koanf:"tcp_port"`
	Debug   bool `koanf:"debug"`

	RPC    RPCConfig    `koanf:"rpc"`
	Notify NotifyConfig `koanf:"notify"`
	Picker PickerConfig `koanf:"picker"`
}

// RPCConfig configures the JSON-RPC HTTP/WebSocket bridge. The bridge
// stays disabled unless a secret is set.
type RPCConfig struct {
	Secret    string `koanf:"secret"`
	Port      int    `koanf:"port"`
	ListenAll bool   `koanf:"listen_all"`
}

type NotifyConfig struct {
	AppName string `koanf:"app_name"`
}

// PickerConfig carries deployment-target picker policy: whether a
// picker closes automatically when a value is confirmed.
type PickerConfig struct {
	AutoCloseOnConfirm bool `koanf:"auto_close_on_confirm"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"socket_path": "",
		"tcp_port":    common.DefaultTCPPort,
		"debug":       false,
		"rpc": map[string]interface{}{
			"secret":     "",
			"port":       common.DefaultTCPPort + 1,
			"listen_all": false,
		},
		"notify": map[string]interface{}{
			"app_name": "remindl",
		},
		"picker": map[string]interface{}{
			"auto_close_on_confirm": true,
		},
	}
}

// DefaultPath returns the conventional config file location,
// ~/.config/remindl/config.yaml, or empty when no home is known.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "remindl", "config.yaml")
}

// Load builds the configuration. configPath may be empty to use the
// default location; a missing file is not an error.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath == "" {
		configPath = DefaultPath()
	}
	if configPath != "" {
		configPath = expandPath(configPath)
		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config file: %w", err)
			}
		}
	}

	// REMINDL_RPC_SECRET -> rpc.secret, REMINDL_TCP_PORT -> tcp_port
	if err := k.Load(env.Provider("REMINDL_", ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, "REMINDL_"))
		switch key {
		case "socket_path", "tcp_port", "debug":
			return key
		}
		return strings.Replace(key, "_", ".", 1)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.TCPPort < 1 || c.TCPPort > 65535 {
		return fmt.Errorf("tcp_port %d out of range (1-65535)", c.TCPPort)
	}
	if c.RPC.Port < 1 || c.RPC.Port > 65535 {
		return fmt.Errorf("rpc.port %d out of range (1-65535)", c.RPC.Port)
	}
	if c.RPC.Port == c.TCPPort {
		return fmt.Errorf("rpc.port and tcp_port must differ (both %d)", c.TCPPort)
	}
	return nil
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
