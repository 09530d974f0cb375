package store

import (
	"fmt"
	"sync"

	"github.com/spf13/viper"
)

// File is a viper-backed store: nested YAML/JSON/TOML documents address
// naturally by the same dotted paths the resolution layer uses. Writes go
// to the in-memory document; with WriteBack they also rewrite the file,
// and a failed rewrite is a failed Set.
type File struct {
	mu        sync.Mutex // viper instances are not safe for concurrent use
	v         *viper.Viper
	writeBack bool
}

var _ Store = (*File)(nil)

type FileConfig struct {
	Path      string
	WriteBack bool
}

func NewFile(cfg FileConfig) (*File, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("store: file path is required")
	}
	v := viper.New()
	v.SetConfigFile(cfg.Path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("store: read %s: %w", cfg.Path, err)
	}
	return &File{v: v, writeBack: cfg.WriteBack}, nil
}

func (f *File) Get(path string, def any) any {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.v.IsSet(path) {
		return def
	}
	return f.v.Get(path)
}

func (f *File) Set(path string, value any, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.v.Set(path, value)
	if f.writeBack {
		return f.v.WriteConfig()
	}
	return nil
}
