package loopselect

import (
	"fmt"
	"strings"
	"sync"
)

// Builtin describes a compile-time registered loop engine. Engines register
// at package init time; dynamic "path:symbol" loading is the only way to add
// an implementation after the binary is linked.
type Builtin struct {
	// Supported reports whether the engine can run under the given facts.
	// Nil means the engine runs everywhere.
	Supported func(Facts) bool

	// Probe verifies the engine's runtime prerequisites, such as being able
	// to create a kernel poller instance. Probe results are memoized by the
	// registry; a failure means "not available" and is never propagated.
	// Nil always succeeds.
	Probe func() error

	// New constructs the factory for the given facts. Required.
	New func(Facts) Factory

	// Name is the identifier accepted as a loop specifier.
	Name string

	// Perf marks a high-performance engine preferred by automatic
	// selection over the baseline engines.
	Perf bool
}

// Availability is the set of built-in names usable under some Facts.
type Availability map[string]struct{}

// Has reports whether name is in the set.
func (a Availability) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// Registry holds built-in engine registrations. Registration order is
// preserved and breaks ties during automatic selection.
type Registry struct {
	builtins map[string]Builtin
	avail    map[Facts]Availability
	order    []string
	mu       sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		builtins: make(map[string]Builtin),
		avail:    make(map[Facts]Availability),
	}
}

// Register adds a built-in engine. Registrations happen at init time, so a
// bad one is a programming error: an empty or reserved name, a name
// containing ':' (which would be unparseable), a missing constructor, or a
// duplicate all panic.
func (r *Registry) Register(b Builtin) {
	if b.Name == "" || b.Name == Auto {
		panic(fmt.Sprintf("loopselect: invalid builtin name %q", b.Name))
	}
	if strings.Contains(b.Name, ":") {
		panic(fmt.Sprintf("loopselect: builtin name %q must not contain ':'", b.Name))
	}
	if b.New == nil {
		panic(fmt.Sprintf("loopselect: builtin %q requires a constructor", b.Name))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, dup := r.builtins[b.Name]; dup {
		panic(fmt.Sprintf("loopselect: builtin %q already registered", b.Name))
	}
	r.builtins[b.Name] = b
	r.order = append(r.order, b.Name)

	// Invalidate memoized availability; the new engine may appear in it.
	clear(r.avail)
}

// Lookup returns the registration for name.
func (r *Registry) Lookup(name string) (Builtin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.builtins[name]
	return b, ok
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Availability derives the set of engines usable under facts. Results are
// memoized: platform facts do not change mid-run, and probes may do real
// syscall work. Worker count never affects availability, so it is excluded
// from the memo key.
func (r *Registry) Availability(facts Facts) Availability {
	key := facts
	key.Workers = 0

	r.mu.RLock()
	if avail, ok := r.avail[key]; ok {
		r.mu.RUnlock()
		return avail
	}
	candidates := make([]Builtin, 0, len(r.order))
	for _, name := range r.order {
		candidates = append(candidates, r.builtins[name])
	}
	r.mu.RUnlock()

	// Probes run outside the lock; they may block on syscalls.
	avail := make(Availability, len(candidates))
	for _, b := range candidates {
		if b.Supported != nil && !b.Supported(facts) {
			continue
		}
		if b.Probe != nil && b.Probe() != nil {
			continue
		}
		avail[b.Name] = struct{}{}
	}

	r.mu.Lock()
	if cached, ok := r.avail[key]; ok {
		// Lost the race to another prober; keep the first result.
		avail = cached
	} else {
		r.avail[key] = avail
	}
	r.mu.Unlock()
	return avail
}
