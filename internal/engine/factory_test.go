package engine

import (
	"errors"
	"slices"
	"sync"
	"testing"

	apperrors "github.com/agbru/mpcalc/internal/errors"
	"github.com/agbru/mpcalc/internal/mpint"
)

func TestDefaultFactory(t *testing.T) {
	t.Parallel()
	f := NewDefaultFactory(Settings{Options: mpint.DefaultOptions()})

	names := f.List()
	for _, want := range []string{AutoName, BigRefName, PureName} {
		found := false
		for _, n := range names {
			if n == want {
				found = true
			}
		}
		if !found {
			t.Errorf("List() = %v, missing %q", names, want)
		}
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("List() not sorted: %v", names)
		}
	}

	if want := Names(); len(want) != len(names) {
		t.Errorf("Names() = %v, List() = %v", want, names)
	}

	all := f.GetAll()
	if len(all) != len(names) {
		t.Fatalf("GetAll() returned %d engines for %d names", len(all), len(names))
	}
	for i, e := range all {
		if e.Name() != names[i] {
			t.Errorf("GetAll()[%d] = %s, want %s", i, e.Name(), names[i])
		}
	}

	auto, err := f.Get(AutoName)
	if err != nil {
		t.Fatal(err)
	}
	th, ok := auto.(*Threshold)
	if !ok {
		t.Fatalf("auto engine is %T", auto)
	}
	if th.Limbs != DefaultNativeThreshold {
		t.Errorf("auto threshold = %d, want %d", th.Limbs, DefaultNativeThreshold)
	}
	if th.Small.Name() != PureName {
		t.Errorf("auto small engine = %s", th.Small.Name())
	}
}

func TestDefaultFactory_AutoLargeEngine(t *testing.T) {
	t.Parallel()
	f := NewDefaultFactory(Settings{Options: mpint.DefaultOptions(), NativeThreshold: 64})
	auto, err := f.Get(AutoName)
	if err != nil {
		t.Fatal(err)
	}
	th := auto.(*Threshold)
	if th.Limbs != 64 {
		t.Errorf("auto threshold = %d, want 64", th.Limbs)
	}

	want := BigRefName
	if slices.Contains(f.List(), GMPName) {
		want = GMPName
	}
	if got := th.Large.Name(); got != want {
		t.Errorf("auto large engine = %s, want %s", got, want)
	}
}

func TestFactoryUnknownEngine(t *testing.T) {
	t.Parallel()
	_, err := NewFactory().Get("missing")
	var ce apperrors.ConfigError
	if !errors.As(err, &ce) {
		t.Errorf("Get(missing) error = %v, want ConfigError", err)
	}
}

func TestFactoryCachesAndReplaces(t *testing.T) {
	t.Parallel()
	f := NewFactory()
	created := 0
	f.Register("x", func() Engine { created++; return BigRef{} })

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.Get("x"); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()
	if created != 1 {
		t.Errorf("creator called %d times, want 1", created)
	}

	f.Register("x", func() Engine { return NewPure(mpint.Options{}) })
	e, err := f.Get("x")
	if err != nil {
		t.Fatal(err)
	}
	if e.Name() != PureName {
		t.Errorf("replaced engine = %s, want %s", e.Name(), PureName)
	}
}

func TestFactoryNegativeNativeThreshold(t *testing.T) {
	t.Parallel()
	f := NewDefaultFactory(Settings{NativeThreshold: -1})
	auto, err := f.Get(AutoName)
	if err != nil {
		t.Fatal(err)
	}
	if th := auto.(*Threshold); th.pick(1<<20) != th.Small {
		t.Error("negative threshold should keep auto on the small engine")
	}
}
