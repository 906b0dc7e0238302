package store

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/dotcal/pkg/params"
)

// Config is the resolved dotcal configuration.
type Config interface {
	// CachePath is the directory of the render cache.
	CachePath() string
	// Defaults are the request values used when a query leaves them out.
	Defaults() params.Request
	// Addr is the host:port the server listens on.
	Addr() string
	// BaseURL prefixes generated wallpaper links.
	BaseURL() string
	// MCP reports whether serve also mounts the MCP endpoint.
	MCP() bool
	// File is the config file that was read, if any.
	File() string
}

// requestKeys are the config keys that mirror query parameters.
var requestKeys = []string{
	"view", "width", "height", "theme", "weekStart", "birthday", "lifespan",
	"goalStart", "goalEnd", "goalTitle", "scale", "accent", "bg", "dot", "tz",
}

// LoadConfig reads .dotcal.yaml from $DOTCAL_CONFIG_PATH, the working
// directory or ~/.config/dotcal. Every key can be set from the environment
// with a DOTCAL_ prefix, e.g. DOTCAL_SERVE_PORT.
func LoadConfig() (Config, error) {
	v := viper.New()
	def := params.Default()
	v.SetDefault("view", string(def.View))
	v.SetDefault("theme", string(def.Theme))
	v.SetDefault("weekStart", def.WeekStart.String())
	v.SetDefault("birthday", def.Birthday.String())
	v.SetDefault("lifespan", def.Lifespan)
	v.SetDefault("goalStart", def.GoalStart.String())
	v.SetDefault("goalEnd", def.GoalEnd.String())
	v.SetDefault("goalTitle", def.GoalTitle)
	v.SetDefault("scale", def.Scale)
	v.SetDefault("cache.path", "~/.dotcal/cache")
	v.SetDefault("cache.enabled", true)
	v.SetDefault("serve.host", "127.0.0.1")
	v.SetDefault("serve.port", 8080)
	v.SetDefault("serve.baseURL", "")
	v.SetDefault("serve.mcp", true)

	v.SetConfigName(".dotcal") // .yaml is implicit
	v.SetEnvPrefix("DOTCAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("DOTCAL_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home + "/.config/dotcal")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: reading config file: %w", err)
		}
	}

	q := url.Values{}
	for _, key := range requestKeys {
		if s := v.GetString(key); s != "" {
			q.Set(key, s)
		}
	}
	defaults, err := params.Overlay(q, def)
	if err != nil {
		return nil, fmt.Errorf("store: config defaults: %w", err)
	}

	cachePath, err := homedir.Expand(v.GetString("cache.path"))
	if err != nil {
		return nil, fmt.Errorf("store: cache path: %w", err)
	}
	if !v.GetBool("cache.enabled") {
		cachePath = ""
	}

	return &fileConfig{
		Cache:    cachePath,
		Request:  defaults,
		Host:     v.GetString("serve.host"),
		Port:     v.GetInt("serve.port"),
		Base:     v.GetString("serve.baseURL"),
		MountMCP: v.GetBool("serve.mcp"),
		Path:     v.ConfigFileUsed(),
	}, nil
}

type fileConfig struct {
	Cache    string         `json:"cachePath"`
	Request  params.Request `json:"defaults"`
	Host     string         `json:"host"`
	Port     int            `json:"port"`
	Base     string         `json:"baseURL"`
	MountMCP bool           `json:"mcp"`
	Path     string         `json:"file,omitempty"`
}

func (f *fileConfig) CachePath() string { return f.Cache }
func (f *fileConfig) Defaults() params.Request { return f.Request }
func (f *fileConfig) MCP() bool { return f.MountMCP }
func (f *fileConfig) File() string { return f.Path }

func (f *fileConfig) Addr() string {
	return net.JoinHostPort(f.Host, strconv.Itoa(f.Port))
}

func (f *fileConfig) BaseURL() string {
	if f.Base != "" {
		return strings.TrimRight(f.Base, "/")
	}
	return "http://" + f.Addr()
}

// StaticConfig is a Config held in memory, for tests and embedding.
type StaticConfig struct {
	Cache    string
	Request  params.Request
	Listen   string
	Base     string
	MountMCP bool
	Path     string
}

func (s StaticConfig) CachePath() string { return s.Cache }
func (s StaticConfig) Defaults() params.Request { return s.Request }
func (s StaticConfig) Addr() string { return s.Listen }
func (s StaticConfig) BaseURL() string { return s.Base }
func (s StaticConfig) MCP() bool { return s.MountMCP }
func (s StaticConfig) File() string { return s.Path }
