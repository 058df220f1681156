package testkit

import (
	"sync"
	"testing"
	"time"
)

var (
	backendName = func() string { return "ga" }
	pageLimit   = 10
)

func TestSwapRestores(t *testing.T) {
	t.Run("func", func(t *testing.T) {
		Swap(t, &backendName, func() string { return "clickhouse" })
		if got := backendName(); got != "clickhouse" {
			t.Fatalf("swapped func = %q", got)
		}
	})
	t.Run("value", func(t *testing.T) {
		Swap(t, &pageLimit, 50)
		if pageLimit != 50 {
			t.Fatalf("swapped value = %d", pageLimit)
		}
	})

	if backendName() != "ga" || pageLimit != 10 {
		t.Fatalf("seams not restored: %q %d", backendName(), pageLimit)
	}
}

func TestSerialDoesNotInterleave(t *testing.T) {
	var (
		mu  sync.Mutex
		log []string
	)
	note := func(s string) {
		mu.Lock()
		log = append(log, s)
		mu.Unlock()
	}

	t.Run("group", func(t *testing.T) {
		for _, name := range []string{"a", "b"} {
			t.Run(name, func(t *testing.T) {
				t.Parallel()
				Serial(t)
				note(name + "+")
				time.Sleep(20 * time.Millisecond)
				note(name + "-")
			})
		}
	})

	// parallel subtests have finished once group returns
	if len(log) != 4 {
		t.Fatalf("log = %v", log)
	}
	for i := 0; i < 4; i += 2 {
		if log[i][:1] != log[i+1][:1] || log[i][1] != '+' || log[i+1][1] != '-' {
			t.Fatalf("interleaved: %v", log)
		}
	}
}
