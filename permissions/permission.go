// Package permissions holds the route table that decides which roles may call
// which endpoint. Routes are keyed by chi pattern and method.
package permissions

import (
	_ "embed"
	"encoding/json"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

// Allows reports whether role may call the endpoint.
func (p Permission) Allows(role string) bool {
	if p.Skip {
		return true
	}

	for _, allowed := range p.Permissions {
		if allowed == role {
			return true
		}
	}

	return false
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`

	index map[string]Permission
}

func key(method, path string) string {
	return method + " " + strings.TrimSuffix(path, "/")
}

// FindPermissions looks up a chi route pattern. A mounted group answers both
// "/v1/bookings" and "/v1/bookings/", so trailing slashes are ignored.
// Unknown routes get the zero Permission, which allows nobody.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	if r.index != nil {
		return r.index[key(method, path)]
	}

	for _, p := range r.Endpoints {
		if key(p.Method, p.Path) == key(method, path) {
			return p
		}
	}

	return Permission{}
}

func parse(raw []byte) (*PermissionData, error) {
	var data PermissionData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}

	data.index = make(map[string]Permission, len(data.Endpoints))
	for _, p := range data.Endpoints {
		k := key(p.Method, p.Path)
		if _, dup := data.index[k]; dup {
			log.Warn().Str("route", k).Msg("duplicate permission entry, keeping the first")

			continue
		}

		data.index[k] = p
	}

	return &data, nil
}

var load = sync.OnceValue(func() *PermissionData {
	data, err := parse(permissionsData)
	if err != nil {
		log.Error().Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(data.Endpoints)).Msg("Loaded embedded permissions")

	return data
})

// Get returns the embedded route table, parsed once.
func Get() *PermissionData {
	return load()
}
