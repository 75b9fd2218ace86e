package leaderboard

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
)

// gdata layout: one object for the app, one property per record.
const (
	GdataAppName = "moonrunner"
	gdataObject  = "moonrunner"
)

// GdataBackend stores records with gdata: files under the user data
// directory on desktop, localStorage in the browser.
type GdataBackend struct {
	m *gdata.Manager
}

// OpenGdata opens the gdata store for appName.
func OpenGdata(appName string) (*GdataBackend, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("leaderboard: cannot open gdata: %w", err)
	}
	return &GdataBackend{m: m}, nil
}

// NewGdataBackend wraps an already opened manager.
func NewGdataBackend(m *gdata.Manager) *GdataBackend {
	return &GdataBackend{m: m}
}

// Read loads the record stored under key.
func (g *GdataBackend) Read(key string) ([]byte, error) {
	if !g.m.ObjectPropExists(gdataObject, key) {
		return nil, ErrNotFound
	}
	data, err := g.m.LoadObjectProp(gdataObject, key)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: gdata load %s: %w", key, err)
	}
	return data, nil
}

// Write stores the record under key.
func (g *GdataBackend) Write(key string, data []byte) error {
	if err := g.m.SaveObjectProp(gdataObject, key, data); err != nil {
		return fmt.Errorf("leaderboard: gdata save %s: %w", key, err)
	}
	return nil
}
