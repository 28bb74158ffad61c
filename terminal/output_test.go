package terminal

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type lockedSink struct {
	mu     sync.Mutex
	writes [][]byte
}

func (s *lockedSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	s.writes = append(s.writes, append([]byte(nil), p...))
	s.mu.Unlock()
	return len(p), nil
}

func TestOutputConcurrentWritesStayContiguous(t *testing.T) {
	sink := &lockedSink{}
	out := NewOutput(sink)

	lines := []string{"aaaaaaaa", "bbbbbbbb", "cccccccc", "dddddddd"}
	var wg sync.WaitGroup
	for _, l := range lines {
		wg.Add(1)
		go func(l string) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				out.Write([]byte(l))
			}
		}(l)
	}
	wg.Wait()
	if len(sink.writes) != 4*100 {
		t.Fatalf("Expected one sink write per call, got %d", len(sink.writes))
	}

	var all []byte
	for _, w := range sink.writes {
		all = append(all, w...)
	}
	if len(all) != 4*100*8 {
		t.Fatalf("Expected %d bytes, got %d", 4*100*8, len(all))
	}
	for i := 0; i < len(all); i += 8 {
		chunk := all[i : i+8]
		for _, b := range chunk {
			if b != chunk[0] {
				t.Fatalf("Expected contiguous line at offset %d, got %q", i, chunk)
			}
		}
	}
}

func TestOutputWriteGuarded(t *testing.T) {
	sink := &lockedSink{}
	out := NewOutput(sink)
	ctx, cancel := context.WithCancel(context.Background())

	if ok, err := out.WriteGuarded(ctx, []byte("kept")); !ok || err != nil {
		t.Fatalf("Expected guarded write to pass, got %v %v", ok, err)
	}
	cancel()
	if ok, _ := out.WriteGuarded(ctx, []byte("late")); ok {
		t.Error("Expected write after stop to be rejected")
	}
	if len(sink.writes) != 1 || string(sink.writes[0]) != "kept" {
		t.Errorf("Expected only the first write, got %q", sink.writes)
	}
}

// stallSink blocks every write until release is closed
type stallSink struct {
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (s *stallSink) Write(p []byte) (int, error) {
	s.once.Do(func() { close(s.entered) })
	<-s.release
	return len(p), nil
}

func TestOutputWaitsAreBoundedBehindStalledWrite(t *testing.T) {
	sink := &stallSink{entered: make(chan struct{}), release: make(chan struct{})}
	defer close(sink.release)
	out := NewOutput(sink)

	go out.Write([]byte("stalled"))
	select {
	case <-sink.entered:
	case <-time.After(time.Second):
		t.Fatal("Expected the first write to reach the sink")
	}

	start := time.Now()
	if err := out.WriteTimeout([]byte("x"), 20*time.Millisecond); !errors.Is(err, ErrOutputBusy) {
		t.Errorf("Expected ErrOutputBusy, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("Expected WriteTimeout to give up quickly, took %v", elapsed)
	}

	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan bool, 1)
	go func() {
		ok, _ := out.WriteGuarded(ctx, []byte("y"))
		result <- ok
	}()
	cancel()
	select {
	case ok := <-result:
		if ok {
			t.Error("Expected stopped guarded write to be dropped")
		}
	case <-time.After(time.Second):
		t.Fatal("Expected guarded write to return once stopped")
	}
}
