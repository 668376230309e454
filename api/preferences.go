package api

import (
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/getseabird/gallery/internal/virtuallist"
	"gopkg.in/yaml.v2"
	"k8s.io/klog/v2"
)

// Color schemes, numbered like adw.ColorScheme.
const (
	ColorSchemeDefault    = 0
	ColorSchemeForceLight = 1
	ColorSchemeForceDark  = 4
)

type Preferences struct {
	ColorScheme int             `yaml:"colorScheme"`
	List        ListPreferences `yaml:"list"`
	Log         LogPreferences  `yaml:"log"`
}

// ListPreferences are the engine settings the gallery pages start with.
type ListPreferences struct {
	ItemCount             int  `yaml:"itemCount"`
	FixedSize             bool `yaml:"fixedSize"`
	EstimatedItemSize     int  `yaml:"estimatedItemSize"`
	CacheCapacity         int  `yaml:"cacheCapacity"`
	InvalidationThreshold int  `yaml:"invalidationThreshold"`
	Overscan              int  `yaml:"overscan"`
	EndPadding            int  `yaml:"endPadding"`
}

type LogPreferences struct {
	Lines int `yaml:"lines"`
	// MinLevel hides lines below this level.
	MinLevel LogLevel `yaml:"minLevel"`
}

func prefsPath() (string, error) {
	cd, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config dir: %w", err)
	}
	return path.Join(cd, "gallery", "prefs.yaml"), nil
}

func LoadPreferences() (*Preferences, error) {
	p, err := prefsPath()
	if err != nil {
		return nil, err
	}
	return LoadPreferencesFrom(p)
}

// LoadPreferencesFrom reads preferences from file. A missing file yields the defaults.
func LoadPreferencesFrom(file string) (*Preferences, error) {
	var prefs Preferences
	data, err := os.ReadFile(file)
	switch {
	case errors.Is(err, os.ErrNotExist):
		klog.Infof("no preferences at %s, using defaults", file)
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, &prefs); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", file, err)
		}
	}
	prefs.Defaults()
	return &prefs, nil
}

func (p *Preferences) Defaults() {
	switch p.ColorScheme {
	case ColorSchemeDefault, ColorSchemeForceLight, ColorSchemeForceDark:
	default:
		p.ColorScheme = ColorSchemeDefault
	}
	p.List.Defaults()
	if p.Log.Lines <= 0 {
		p.Log.Lines = 5000
	}
}

func (p *ListPreferences) Defaults() {
	d := virtuallist.DefaultConfig()
	if p.ItemCount <= 0 {
		p.ItemCount = 10000
	}
	if p.EstimatedItemSize <= 0 {
		p.EstimatedItemSize = 64
	}
	if p.CacheCapacity <= 0 {
		p.CacheCapacity = d.CacheCapacity
	}
	if p.InvalidationThreshold <= 0 {
		p.InvalidationThreshold = d.InvalidationThreshold
	}
	if p.Overscan <= 0 {
		p.Overscan = d.Overscan
	}
	if p.EndPadding <= 0 {
		p.EndPadding = d.EndPadding
	}
}

// ListConfig turns the list preferences into an engine configuration.
func (p *Preferences) ListConfig() virtuallist.Config {
	cfg := virtuallist.DefaultConfig()
	cfg.EstimatedItemSize = p.List.EstimatedItemSize
	cfg.CacheCapacity = p.List.CacheCapacity
	cfg.InvalidationThreshold = p.List.InvalidationThreshold
	cfg.Overscan = p.List.Overscan
	cfg.EndPadding = p.List.EndPadding
	if p.List.FixedSize {
		cfg.Mode = virtuallist.FixedSize
	}
	return cfg
}

func (p *Preferences) Save() error {
	file, err := prefsPath()
	if err != nil {
		return err
	}
	return p.SaveTo(file)
}

func (p *Preferences) SaveTo(file string) error {
	if err := os.MkdirAll(path.Dir(file), os.ModePerm); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	if err := os.WriteFile(file, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", file, err)
	}
	return nil
}
