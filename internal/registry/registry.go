package registry

import (
	"errors"
	"fmt"
	"sort"
)

// Errors
var (
	ErrNotFound      = errors.New("tool not found in registry")
	ErrDuplicateName = errors.New("duplicate tool name")
	ErrEmptyName     = errors.New("tool profile has empty name")
	ErrEmptyBinary   = errors.New("tool profile has empty binary")
	ErrNoProfiles    = errors.New("registry has no tool profiles")
)

// Registry is a read-only lookup table of tool profiles. It is built once at
// startup and shared by the detection cache and the execution engine.
type Registry struct {
	profiles map[string]ToolProfile
	order    []string
}

// New validates the given profiles and builds a registry. Duplicate names and
// empty binary fields are configuration errors, fatal at construction time.
func New(profiles []ToolProfile) (*Registry, error) {
	if len(profiles) == 0 {
		return nil, ErrNoProfiles
	}

	r := &Registry{profiles: make(map[string]ToolProfile, len(profiles))}
	for _, p := range profiles {
		if p.Name == "" {
			return nil, ErrEmptyName
		}
		if p.Binary == "" {
			return nil, fmt.Errorf("%w: %q", ErrEmptyBinary, p.Name)
		}
		if _, exists := r.profiles[p.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, p.Name)
		}
		r.profiles[p.Name] = p
		r.order = append(r.order, p.Name)
	}
	return r, nil
}

// Resolve returns the profile for a logical tool name.
func (r *Registry) Resolve(name string) (ToolProfile, error) {
	p, ok := r.profiles[name]
	if !ok {
		return ToolProfile{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return p, nil
}

// Names returns tool names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// EnabledNames returns the names of enabled tools in registration order.
func (r *Registry) EnabledNames() []string {
	var out []string
	for _, name := range r.order {
		if r.profiles[name].Enabled {
			out = append(out, name)
		}
	}
	return out
}

// Profiles returns all profiles sorted by name.
func (r *Registry) Profiles() []ToolProfile {
	out := make([]ToolProfile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	return len(r.profiles)
}
