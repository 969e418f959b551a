// Package config loads paintsviewer settings from defaults, a YAML file and
// the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Fiszh/7TVPaintsViewer/internal/cosmetics"
	"github.com/Fiszh/7TVPaintsViewer/internal/viewer"
)

// Environment variables read by ApplyEnv.
const (
	EnvEndpoint = "PAINTSVIEWER_ENDPOINT"
	EnvUsers    = "PAINTSVIEWER_USERS"
	EnvListen   = "PAINTSVIEWER_LISTEN"
)

// User is a 7TV user to display.
type User struct {
	ID   string `yaml:"id"`
	Note string `yaml:"note,omitempty"`
}

// Config holds all runtime settings.
type Config struct {
	Endpoint          string        `yaml:"endpoint"`
	Users             []User        `yaml:"users"`
	Timeout           time.Duration `yaml:"timeout"`
	Concurrency       int           `yaml:"concurrency"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	Burst             int           `yaml:"burst"`
	Listen            string        `yaml:"listen"`
	Title             string        `yaml:"title"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Endpoint: cosmetics.DefaultEndpoint,
		Users: []User{
			{ID: "64c957b885d4aac49663c2eb", Note: "acid1g"},
			{ID: "62fb76642f946dc1acae5f6e", Note: "uni1g"},
			{ID: "60cb6c6794befb7c9370a42c", Note: "psp1g"},
			{ID: "61685e2aeca325871f35bee5", Note: "deme"},
			{ID: "60867b015e01df61570ab900", Note: "CupOfKathi"},
			{ID: "628e93a4539b08d3d9084d88", Note: "SHIZU"},
		},
		Timeout:           10 * time.Second,
		Concurrency:       viewer.DefaultConcurrency,
		RequestsPerSecond: 5,
		Burst:             2,
		Listen:            "127.0.0.1:8080",
		Title:             "7TV Paints",
	}
}

// Load reads a YAML file over the defaults. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides settings from the environment.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvEndpoint); v != "" {
		c.Endpoint = v
	}
	if v := os.Getenv(EnvUsers); v != "" {
		c.Users = ParseUsers(v)
	}
	if v := os.Getenv(EnvListen); v != "" {
		c.Listen = v
	}
}

// ParseUsers parses a comma separated list of user ids. An entry may carry
// a note after "=", as in "60867b015e01df61570ab900=CupOfKathi".
func ParseUsers(s string) []User {
	var users []User
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, note, _ := strings.Cut(part, "=")
		users = append(users, User{ID: strings.TrimSpace(id), Note: strings.TrimSpace(note)})
	}
	return users
}

// Validate checks the configuration is usable.
func (c Config) Validate() error {
	var errs []error
	if !strings.HasPrefix(c.Endpoint, "http://") && !strings.HasPrefix(c.Endpoint, "https://") {
		errs = append(errs, fmt.Errorf("endpoint must start with http:// or https://"))
	}
	if len(c.Users) == 0 {
		errs = append(errs, errors.New("at least one user is required"))
	}
	for i, u := range c.Users {
		if u.ID == "" {
			errs = append(errs, fmt.Errorf("user %d has an empty id", i))
		}
	}
	if c.Concurrency < 1 {
		errs = append(errs, errors.New("concurrency must be at least 1"))
	}
	if c.RequestsPerSecond < 0 {
		errs = append(errs, errors.New("requests_per_second must not be negative"))
	}
	return errors.Join(errs...)
}

// ViewerUsers converts the configured users for the viewer.
func (c Config) ViewerUsers() []viewer.User {
	users := make([]viewer.User, len(c.Users))
	for i, u := range c.Users {
		users[i] = viewer.User{ID: u.ID, Note: u.Note}
	}
	return users
}

// ClientOptions returns the cosmetics client settings.
func (c Config) ClientOptions() cosmetics.Options {
	return cosmetics.Options{
		Endpoint:          c.Endpoint,
		Timeout:           c.Timeout,
		RequestsPerSecond: c.RequestsPerSecond,
		Burst:             c.Burst,
	}
}
