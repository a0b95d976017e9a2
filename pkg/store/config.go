package store

import (
	"errors"
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config carries the settings read from .sectionlist.yaml and the
// SECTIONLIST_* environment.
type Config interface {
	BasePath() string
	DefaultList() string
	Order() string
	KeyField() string
	PinnedHeader() string
}

const (
	defaultPath         = "~/.sectionlist.db"
	defaultList         = "contacts"
	defaultPinnedHeader = "★"
)

// LoadConfig looks for .sectionlist in $SECTIONLIST_CONFIG_PATH and the
// working directory. A missing file is fine; defaults apply.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", defaultPath)
	v.SetDefault("list", defaultList)
	v.SetDefault("order", "asc")
	v.SetDefault("key", "name")
	v.SetDefault("pinned_header", defaultPinnedHeader)
	v.SetConfigName(".sectionlist") // .yaml is implicit
	v.SetEnvPrefix("SECTIONLIST")
	v.AutomaticEnv()

	if override := os.Getenv("SECTIONLIST_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{
		Path:   path,
		List:   v.GetString("list"),
		Sort:   v.GetString("order"),
		Key:    v.GetString("key"),
		Pinned: v.GetString("pinned_header"),
	}, nil
}

type fileConfig struct {
	Path   string `json:"path"`
	List   string `json:"list"`
	Sort   string `json:"order"`
	Key    string `json:"key"`
	Pinned string `json:"pinned_header"`
}

func (f *fileConfig) BasePath() string     { return f.Path }
func (f *fileConfig) DefaultList() string  { return f.List }
func (f *fileConfig) Order() string        { return f.Sort }
func (f *fileConfig) KeyField() string     { return f.Key }
func (f *fileConfig) PinnedHeader() string { return f.Pinned }
