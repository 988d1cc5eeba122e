package engine

import (
	"sort"
	"sync"

	apperrors "github.com/agbru/mpcalc/internal/errors"
	"github.com/agbru/mpcalc/internal/mpint"
)

// Creator builds an engine on first use.
type Creator func() Engine

// Factory is a registry of engines by name.
type Factory interface {
	// Register adds or replaces the engine built by create under name.
	Register(name string, create Creator)
	// Get returns the engine registered under name.
	Get(name string) (Engine, error)
	// List returns the registered names in sorted order.
	List() []string
	// GetAll returns every registered engine in List order.
	GetAll() []Engine
}

var (
	nativeMu      sync.Mutex
	nativeEngines = map[string]Creator{}
)

// registerNative records an engine compiled in through a build tag.
func registerNative(name string, create Creator) {
	nativeMu.Lock()
	defer nativeMu.Unlock()
	nativeEngines[name] = create
}

// Names returns the engines NewDefaultFactory registers, in sorted order.
func Names() []string {
	names := []string{PureName, BigRefName, AutoName}
	nativeMu.Lock()
	for name := range nativeEngines {
		names = append(names, name)
	}
	nativeMu.Unlock()
	sort.Strings(names)
	return names
}

// Settings configures the engines of the default factory.
type Settings struct {
	// Options tunes the pure engine.
	Options mpint.Options
	// NativeThreshold is the operand length, in limbs, from which the auto
	// engine switches to the native backend. Zero selects
	// DefaultNativeThreshold; a negative value keeps auto on the pure
	// engine.
	NativeThreshold int
}

// DefaultFactory creates engines lazily and caches them.
type DefaultFactory struct {
	mu       sync.RWMutex
	creators map[string]Creator
	cache    map[string]Engine
}

var _ Factory = (*DefaultFactory)(nil)

// NewFactory returns an empty factory.
func NewFactory() *DefaultFactory {
	return &DefaultFactory{
		creators: make(map[string]Creator),
		cache:    make(map[string]Engine),
	}
}

// NewDefaultFactory returns a factory holding the pure and bigref engines,
// every native engine compiled into the binary, and the auto dispatcher.
// Auto prefers GMP as its native backend and falls back to bigref.
func NewDefaultFactory(s Settings) *DefaultFactory {
	f := NewFactory()
	pure := NewPure(s.Options)
	f.Register(PureName, func() Engine { return pure })
	f.Register(BigRefName, func() Engine { return BigRef{} })

	nativeMu.Lock()
	natives := make(map[string]Creator, len(nativeEngines))
	for name, create := range nativeEngines {
		natives[name] = create
	}
	nativeMu.Unlock()
	for name, create := range natives {
		f.Register(name, create)
	}

	limbs := s.NativeThreshold
	if limbs == 0 {
		limbs = DefaultNativeThreshold
	}
	f.Register(AutoName, func() Engine {
		native := Engine(BigRef{})
		if create, ok := natives[GMPName]; ok {
			native = create()
		}
		return NewThreshold(pure, native, limbs)
	})
	return f
}

// Register adds or replaces an engine creator.
func (f *DefaultFactory) Register(name string, create Creator) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creators[name] = create
	delete(f.cache, name)
}

// Get returns the engine registered under name, creating it on first use.
func (f *DefaultFactory) Get(name string) (Engine, error) {
	f.mu.RLock()
	if e, ok := f.cache[name]; ok {
		f.mu.RUnlock()
		return e, nil
	}
	f.mu.RUnlock()

	f.mu.Lock()
	defer f.mu.Unlock()
	if e, ok := f.cache[name]; ok {
		return e, nil
	}
	create, ok := f.creators[name]
	if !ok {
		return nil, apperrors.NewConfigError("unknown engine %q", name)
	}
	e := create()
	f.cache[name] = e
	return e, nil
}

// List returns the registered engine names in sorted order.
func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	names := make([]string, 0, len(f.creators))
	for name := range f.creators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAll returns every registered engine in List order.
func (f *DefaultFactory) GetAll() []Engine {
	names := f.List()
	engines := make([]Engine, 0, len(names))
	for _, name := range names {
		if e, err := f.Get(name); err == nil {
			engines = append(engines, e)
		}
	}
	return engines
}
