package loader

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestEventLoop_RunsInOrder(t *testing.T) {
	loop := NewEventLoop(8)

	var got []int
	for i := 0; i < 5; i++ {
		i := i
		loop.Dispatch(func() { got = append(got, i) })
	}
	loop.Stop()

	select {
	case <-loop.done:
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not finish")
	}
	for i, v := range got {
		if v != i {
			t.Errorf("got[%d] = %d, want %d", i, v, i)
		}
	}
	if len(got) != 5 {
		t.Errorf("ran %d functions, want 5", len(got))
	}
}

func TestEventLoop_StopDrainsQueue(t *testing.T) {
	loop := NewEventLoop(8)

	block := make(chan struct{})
	loop.Dispatch(func() { <-block })

	var ran int32
	for i := 0; i < 3; i++ {
		loop.Dispatch(func() { atomic.AddInt32(&ran, 1) })
	}

	loop.Stop()
	loop.Stop()
	close(block)

	select {
	case <-loop.done:
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not finish")
	}
	if got := atomic.LoadInt32(&ran); got != 3 {
		t.Errorf("ran %d queued functions, want 3", got)
	}
}

func TestEventLoop_DispatchAfterStop(t *testing.T) {
	loop := NewEventLoop(1)
	loop.Stop()

	ran := false
	loop.Dispatch(func() { ran = true })
	if !ran {
		t.Error("Dispatch after Stop should run the function")
	}
}

func TestLoader_ResolvesOnStoppedLoop(t *testing.T) {
	loop := NewEventLoop(1)

	f := &fakeFetcher{body: []byte(`["a"]`), release: make(chan struct{})}
	l := newTestLoader(f, func(o *Options[[]string]) {
		o.Dispatcher = loop
	})

	loop.Stop()
	close(f.release)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s, err := l.Wait(ctx)
	if err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	if s.Status != StatusLoaded {
		t.Errorf("Status = %v, want %v", s.Status, StatusLoaded)
	}
}
