// Copyright (c) 2026 Langbind. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package flags

import (
	"log/slog"
	"sync"

	"github.com/taibuivan/langbind/langerr"
)

// key addresses a single stored flag value.
type key struct {
	ns   Namespace
	name Name
}

// Registry holds the flag state consulted by the validation engine.
//
// # Concurrency
//
// All methods are safe for concurrent use; state is guarded by a RWMutex.
// For read-heavy hot paths, [Registry.Snapshot] returns an immutable copy
// that can be consulted without locking.
type Registry struct {
	mu     sync.RWMutex
	values map[key]bool
	logger *slog.Logger
}

// Option configures a Registry at construction time.
type Option func(*Registry)

// WithLogger sets the logger used by [Registry.Print] and diagnostic paths.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) { r.logger = logger }
}

// New creates a Registry with every flag at its default value.
func New(opts ...Option) *Registry {
	r := &Registry{
		values: make(map[key]bool, len(defaults)*len(Namespaces())),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	for _, ns := range Namespaces() {
		for name, def := range defaults {
			r.values[key{ns, name}] = def
		}
	}
	return r
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the shared process-wide registry, created on first use.
//
// Entities constructed without an explicit engine consult this registry.
func Default() *Registry {
	defaultOnce.Do(func() { defaultReg = New() })
	return defaultReg
}

// check validates a (namespace, name) pair, returning a KIND_ERROR for
// identifiers outside the four namespaces or nine flag names.
func check(ns Namespace, name Name) error {
	if !knownNamespace(ns) {
		return langerr.Kindf("unknown flag namespace %q", ns)
	}
	if !knownName(name) {
		return langerr.Kindf("unknown flag %q", name)
	}
	return nil
}

// Set assigns a flag value.
//
// Setting a Global flag atomically assigns the same-named flag in all three
// entity namespaces as well.
func (r *Registry) Set(ns Namespace, name Name, value bool) error {
	if err := check(ns, name); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.values[key{ns, name}] = value
	if ns == Global {
		for _, target := range entityNamespaces {
			r.values[key{target, name}] = value
		}
	}
	return nil
}

// Get returns the current value of a flag.
func (r *Registry) Get(ns Namespace, name Name) (bool, error) {
	if err := check(ns, name); err != nil {
		return false, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.values[key{ns, name}], nil
}

// All returns a copy of every flag in the given namespace.
func (r *Registry) All(ns Namespace) (map[Name]bool, error) {
	if !knownNamespace(ns) {
		return nil, langerr.Kindf("unknown flag namespace %q", ns)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[Name]bool, len(defaults))
	for name := range defaults {
		out[name] = r.values[key{ns, name}]
	}
	return out, nil
}

// Reset restores a single flag to its default value.
//
// Resetting a Global flag cascades like [Registry.Set]; resetting an
// entity-scoped flag never perturbs any other flag.
func (r *Registry) Reset(ns Namespace, name Name) error {
	if err := check(ns, name); err != nil {
		return err
	}
	return r.Set(ns, name, defaults[name])
}

// ResetAll restores every flag in the namespace to its default.
// Resetting the Global namespace resets all four namespaces.
func (r *Registry) ResetAll(ns Namespace) error {
	if !knownNamespace(ns) {
		return langerr.Kindf("unknown flag namespace %q", ns)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	targets := []Namespace{ns}
	if ns == Global {
		targets = Namespaces()
	}
	for _, target := range targets {
		for name, def := range defaults {
			r.values[key{target, name}] = def
		}
	}
	return nil
}

// Print logs every flag of the namespace through the registry's logger.
func (r *Registry) Print(ns Namespace) error {
	all, err := r.All(ns)
	if err != nil {
		return err
	}
	for _, name := range Names() {
		r.logger.Info("flag state",
			slog.String("namespace", string(ns)),
			slog.String("flag", string(name)),
			slog.Bool("value", all[name]),
		)
	}
	return nil
}

// # Snapshots

// Snapshot is an immutable copy of a registry's state, safe for lock-free
// concurrent reads.
type Snapshot map[Namespace]map[Name]bool

// Snapshot copies the registry's current state.
func (r *Registry) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(Snapshot, len(Namespaces()))
	for _, ns := range Namespaces() {
		m := make(map[Name]bool, len(defaults))
		for name := range defaults {
			m[name] = r.values[key{ns, name}]
		}
		out[ns] = m
	}
	return out
}

// Get returns a flag value from the snapshot. Unknown identifiers report false.
func (s Snapshot) Get(ns Namespace, name Name) bool {
	return s[ns][name]
}
