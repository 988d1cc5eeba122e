package parallel

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
)

// TestErrorCollectorContention sets errors and nils from many goroutines at
// once and checks that exactly one real error survives.
func TestErrorCollectorContention(t *testing.T) {
	t.Parallel()
	for round := 0; round < 20; round++ {
		var ec ErrorCollector
		var wg sync.WaitGroup
		start := make(chan struct{})

		for i := 0; i < 256; i++ {
			wg.Add(1)
			go func(id int) {
				defer wg.Done()
				<-start
				if id%2 == 0 {
					ec.SetError(nil)
					return
				}
				ec.SetError(fmt.Errorf("limb worker %d failed", id))
			}(i)
		}
		close(start)
		wg.Wait()

		err := ec.Err()
		if err == nil {
			t.Fatalf("round %d: no error recorded", round)
		}
		if !strings.HasPrefix(err.Error(), "limb worker ") {
			t.Errorf("round %d: unexpected error %v", round, err)
		}
	}
}

// TestExecuteAllReturnsOneOfTheErrors runs many failing tasks and checks the
// returned error is one they produced.
func TestExecuteAllReturnsOneOfTheErrors(t *testing.T) {
	t.Parallel()
	sentinels := make([]error, 32)
	fns := make([]func() error, len(sentinels))
	for i := range sentinels {
		sentinels[i] = fmt.Errorf("product %d overflowed", i)
		err := sentinels[i]
		fns[i] = func() error { return err }
	}

	got := ExecuteAll(4, fns...)
	if got == nil {
		t.Fatal("expected an error")
	}
	for _, s := range sentinels {
		if errors.Is(got, s) {
			return
		}
	}
	t.Errorf("returned error %v was not produced by any task", got)
}
