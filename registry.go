package fontreg

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/fontreg/asset"
	"github.com/gogpu/fontreg/native"
)

// Registry tracks which fonts are loaded or loading and deduplicates
// concurrent loads of the same font name. Construct one Registry per process
// with New and share it; its zero value is not usable.
//
// Registry is safe for concurrent use. The loaded set and in-flight map are
// guarded by a single mutex; the dedup check, source normalization, and
// in-flight insertion happen in one critical section so two concurrent
// callers can never both decide to start a load for the same name. Downloads
// and native registration run outside the lock.
type Registry struct {
	mu sync.Mutex

	// loaded holds names whose native registration succeeded.
	// Entries are never removed: there is no unload operation.
	loaded map[string]struct{}

	// inflight holds the single shared pending operation per name.
	// An entry exists exactly while a load is in progress and is removed
	// unconditionally when the operation settles.
	inflight map[string]*inflight

	env       Environment
	registrar native.Registrar

	// batchWarn gates the LoadBatches deprecation warning.
	batchWarn sync.Once
}

// inflight is the shared pending load for one font name. The starting
// caller writes err and deletes the registry entry before closing done, so
// joiners observing done closed always see the settled outcome and an
// IsLoading that already reports false.
type inflight struct {
	done chan struct{}
	err  error
}

// New creates a Registry.
//
// By default the registry uses the platform environment (per-OS system font
// list, one random session id per process) and an in-process [native.Book]
// as the registration layer.
func New(opts ...Option) *Registry {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	env := cfg.env
	if env == nil {
		env = newDefaultEnvironment(cfg.systemFonts, cfg.bundled)
	}
	registrar := cfg.registrar
	if registrar == nil {
		registrar = native.NewBook()
	}

	return &Registry{
		loaded:    make(map[string]struct{}),
		inflight:  make(map[string]*inflight),
		env:       env,
		registrar: registrar,
	}
}

// IsLoaded reports whether the font was successfully loaded and registered.
// It never blocks and has no side effects.
func (r *Registry) IsLoaded(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.loaded[name]
	return ok
}

// IsLoading reports whether a load for the font is currently in progress.
// It never blocks and has no side effects.
func (r *Registry) IsLoading(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.inflight[name]
	return ok
}

// LoadedFonts returns the names of all successfully loaded fonts, sorted.
func (r *Registry) LoadedFonts() []string {
	r.mu.Lock()
	names := make([]string, 0, len(r.loaded))
	for name := range r.loaded {
		names = append(names, name)
	}
	r.mu.Unlock()

	sort.Strings(names)
	return names
}

// Load downloads the font from src and registers it with the native layer
// under a session-namespaced name. On success the font becomes visible to
// IsLoaded and ResolveFamily.
//
// Load deduplicates concurrent calls: if a load for name is already in
// flight, Load joins it instead of starting a second download, and all
// callers observe the same outcome. If the font is already loaded, Load
// returns immediately.
//
// A caller joining an in-flight load may stop waiting when ctx is
// cancelled; the load itself is never cancelled and still settles for every
// other caller. Failures are not sticky: after a failed load the in-flight
// entry is removed and a subsequent Load starts fresh.
func (r *Registry) Load(ctx context.Context, name string, src Source) error {
	r.mu.Lock()

	if _, ok := r.loaded[name]; ok {
		r.mu.Unlock()
		return nil
	}

	if op, ok := r.inflight[name]; ok {
		r.mu.Unlock()
		return r.await(ctx, op)
	}

	if src == nil {
		r.mu.Unlock()
		return &LoadError{Name: name, Err: ErrNoSource}
	}

	// Normalization is synchronous and does no I/O, so it can run under the
	// lock: either it fails with no state created, or the in-flight entry is
	// inserted before any other caller can pass the checks above.
	a, err := src.resolve(name)
	if err != nil {
		r.mu.Unlock()
		return &LoadError{Name: name, Err: err}
	}

	op := &inflight{done: make(chan struct{})}
	r.inflight[name] = op
	r.mu.Unlock()

	err = r.run(ctx, name, a)
	r.settle(name, op, err)
	return err
}

// run performs the download and native registration for one font.
// It runs outside the registry lock.
func (r *Registry) run(ctx context.Context, name string, a *asset.Asset) error {
	log := Logger()
	log.Debug("fontreg: downloading font asset", "name", name)

	if err := a.Download(ctx); err != nil {
		return &LoadError{Name: name, Err: err}
	}
	if !a.Downloaded {
		return &LoadError{Name: name, Err: ErrNotDownloaded}
	}

	family := namespacedName(r.env.SessionID(), name)
	if err := r.registrar.Register(ctx, family, a.LocalURI); err != nil {
		return &LoadError{Name: name, Err: err}
	}

	log.Debug("fontreg: font registered", "name", name, "family", family)
	return nil
}

// settle records the outcome of a load and wakes all joined callers.
// The in-flight entry is removed on every exit path, success or failure, so
// a retry after a failed load starts fresh.
func (r *Registry) settle(name string, op *inflight, err error) {
	r.mu.Lock()
	if err == nil {
		r.loaded[name] = struct{}{}
	}
	delete(r.inflight, name)
	r.mu.Unlock()

	op.err = err
	close(op.done)
}

// await blocks until the shared operation settles or ctx is cancelled.
func (r *Registry) await(ctx context.Context, op *inflight) error {
	select {
	case <-op.done:
		return op.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// LoadAll loads every font in sources concurrently and waits for all of
// them. If any load fails, LoadAll returns the first failure; sibling loads
// are not cancelled and still run to completion, so a successful sibling is
// loaded even when LoadAll returns an error.
func (r *Registry) LoadAll(ctx context.Context, sources map[string]Source) error {
	var g errgroup.Group
	for name, src := range sources {
		name, src := name, src
		g.Go(func() error {
			return r.Load(ctx, name, src)
		})
	}
	return g.Wait()
}

// LoadBatches loads every font in every map concurrently, with the same
// failure policy as LoadAll.
//
// Deprecated: merge the maps and call LoadAll instead. LoadBatches exists
// for compatibility with callers that accumulated font maps incrementally.
func (r *Registry) LoadBatches(ctx context.Context, batches []map[string]Source) error {
	r.batchWarn.Do(func() {
		Logger().Warn("fontreg: LoadBatches is deprecated; merge the maps into a single LoadAll call")
	})

	var g errgroup.Group
	for _, sources := range batches {
		for name, src := range sources {
			name, src := name, src
			g.Go(func() error {
				return r.Load(ctx, name, src)
			})
		}
	}
	return g.Wait()
}
