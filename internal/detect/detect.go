// Package detect decides whether a tool's binary is installed and functional,
// caching the answer with a short TTL so menu renders do not re-probe PATH.
package detect

import (
	"context"
	"os/exec"
	"sync"
	"time"

	"github.com/minhvu92/termpilot/internal/constants"
	"github.com/minhvu92/termpilot/internal/logging"
	"github.com/minhvu92/termpilot/internal/registry"
)

// Record is one cached detection result. Records are replaced whole, never
// partially updated.
type Record struct {
	Installed bool
	CheckedAt time.Time
	TTL       time.Duration
}

// Expired reports whether the record is older than its TTL at the given time.
func (r Record) Expired(now time.Time) bool {
	return now.Sub(r.CheckedAt) > r.TTL
}

// Options configures a Cache. Zero values fall back to the package defaults.
type Options struct {
	TTL          time.Duration
	ProbeTimeout time.Duration

	// LookPath and RunProbe are injection points for tests. LookPath resolves
	// a binary against PATH; RunProbe runs `binary flag` and returns nil when
	// the probe exited 0 within the timeout.
	LookPath func(binary string) (string, error)
	RunProbe func(ctx context.Context, binary, flag string) error
}

// Cache caches per-tool detection records.
type Cache struct {
	mu           sync.Mutex
	records      map[string]Record
	ttl          time.Duration
	probeTimeout time.Duration
	now          func() time.Time
	lookPath     func(string) (string, error)
	runProbe     func(context.Context, string, string) error
}

// NewCache creates a detection cache.
func NewCache(opts Options) *Cache {
	c := &Cache{
		records:      make(map[string]Record),
		ttl:          opts.TTL,
		probeTimeout: opts.ProbeTimeout,
		now:          time.Now,
		lookPath:     opts.LookPath,
		runProbe:     opts.RunProbe,
	}
	if c.ttl == 0 {
		c.ttl = constants.DefaultDetectionTTL
	}
	if c.probeTimeout == 0 {
		c.probeTimeout = constants.DefaultProbeTimeout
	}
	if c.lookPath == nil {
		c.lookPath = exec.LookPath
	}
	if c.runProbe == nil {
		c.runProbe = runProbeCommand
	}
	return c
}

// IsAvailable reports whether the tool is installed, consulting the cache
// first. Detection never returns an error: unexpected failures (permission
// denied, hung probes) are treated as "not installed".
func (c *Cache) IsAvailable(tool registry.ToolProfile) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if rec, ok := c.records[tool.Name]; ok && !rec.Expired(now) {
		return rec.Installed
	}

	installed := c.probe(tool)
	c.records[tool.Name] = Record{Installed: installed, CheckedAt: now, TTL: c.ttl}
	logging.Debug("tool detection", logging.Fields{
		"tool":      tool.Name,
		"installed": installed,
	})
	return installed
}

// Invalidate drops the cached record for a tool, forcing a fresh probe on the
// next lookup. Used after an install flow completes.
func (c *Cache) Invalidate(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.records, name)
}

// probe runs the profile's detection methods in order until one succeeds.
func (c *Cache) probe(tool registry.ToolProfile) bool {
	// A PATH hit alone is not enough: the binary must also answer a probe.
	// A path-only chain (no probe methods) trusts the PATH hit.
	onPath := false
	probed := false

	for _, method := range tool.Detection() {
		switch method {
		case registry.DetectPath:
			if _, err := c.lookPath(tool.Binary); err == nil {
				onPath = true
			}
		case registry.DetectVersionProbe:
			probed = true
			if c.tryProbe(tool.Binary, "--version") {
				return true
			}
		case registry.DetectHelpProbe:
			probed = true
			if c.tryProbe(tool.Binary, "--help") {
				return true
			}
		}
	}
	return onPath && !probed
}

// tryProbe runs one bounded probe; a timeout counts as a failed method, not a
// fatal error.
func (c *Cache) tryProbe(binary, flag string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), c.probeTimeout)
	defer cancel()

	if err := c.runProbe(ctx, binary, flag); err != nil {
		logging.Debug("detection probe failed", logging.Fields{
			"binary": binary,
			"flag":   flag,
			"error":  err.Error(),
		})
		return false
	}
	return true
}

// runProbeCommand is the production probe: run the binary with the flag,
// discard output, succeed only on exit 0.
func runProbeCommand(ctx context.Context, binary, flag string) error {
	cmd := exec.CommandContext(ctx, binary, flag)
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run()
}
