// Package config persists surface profiles: which ports to open, which
// hardware SKU is connected, and the colors the host wants per fader lane
// and control mode.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Profile describes one connected unit.
type Profile struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	InPort  string `json:"in_port"`  // substring matched against port names
	OutPort string `json:"out_port"` // substring matched against port names
	SKU     string `json:"sku"`      // "pro" or "mkii"

	// FaderColors holds the palette index per fader lane.
	FaderColors [8]int `json:"fader_colors"`

	// ModeColors maps a control mode name (rec_arm, mute, ...) to the
	// palette index its pad column uses.
	ModeColors map[string]int `json:"mode_colors"`
}

// Config is the persisted root document.
type Config struct {
	Profiles         []Profile `json:"profiles"`
	CurrentProfileID string    `json:"current_profile_id"`
}

// NewProfile creates a profile with a generated ID and MkII defaults.
func NewProfile(name string) Profile {
	return Profile{
		ID:      uuid.New().String(),
		Name:    name,
		InPort:  "Launchpad",
		OutPort: "Launchpad",
		SKU:     "mkii",
		FaderColors: [8]int{
			21, 21, 21, 21, 21, 21, 21, 21,
		},
		ModeColors: map[string]int{
			"rec_arm":      5,
			"track_select": 3,
			"mute":         13,
			"solo":         45,
			"stop_clip":    9,
		},
	}
}

func configDir() (string, error) {
	configHome, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configHome, "padsurface"), nil
}

// Path returns the full path to the config file.
func Path() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from the default location, returning defaults
// with one profile if no file exists yet.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from an explicit path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		p := NewProfile("Default")
		return &Config{
			Profiles:         []Profile{p},
			CurrentProfileID: p.ID,
		}, nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if len(cfg.Profiles) == 0 {
		p := NewProfile("Default")
		cfg.Profiles = []Profile{p}
		cfg.CurrentProfileID = p.ID
	}
	return &cfg, nil
}

// Save writes the config to the default location.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to an explicit path, creating directories as
// needed.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// CurrentProfile returns the selected profile, falling back to the first.
func (c *Config) CurrentProfile() *Profile {
	for i := range c.Profiles {
		if c.Profiles[i].ID == c.CurrentProfileID {
			return &c.Profiles[i]
		}
	}
	if len(c.Profiles) > 0 {
		return &c.Profiles[0]
	}
	return nil
}

// FindProfile returns the profile with the given name or ID, or nil.
func (c *Config) FindProfile(nameOrID string) *Profile {
	for i := range c.Profiles {
		if c.Profiles[i].ID == nameOrID || c.Profiles[i].Name == nameOrID {
			return &c.Profiles[i]
		}
	}
	return nil
}

// AddProfile appends a profile.
func (c *Config) AddProfile(p Profile) {
	c.Profiles = append(c.Profiles, p)
}

// RemoveProfile deletes the profile with the given ID.
func (c *Config) RemoveProfile(id string) {
	for i := range c.Profiles {
		if c.Profiles[i].ID == id {
			c.Profiles = append(c.Profiles[:i], c.Profiles[i+1:]...)
			return
		}
	}
}
