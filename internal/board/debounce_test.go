package board_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/fr4nk3nst1ner/offerboard/internal/board"
)

func TestDebouncer_RunsOnlyLastTrigger(t *testing.T) {
	d := board.NewDebouncer(30 * time.Millisecond)

	var calls int32
	done := make(chan int, 4)
	for i := 1; i <= 4; i++ {
		i := i
		d.Trigger(func() {
			atomic.AddInt32(&calls, 1)
			done <- i
		})
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case got := <-done:
		if got != 4 {
			t.Fatalf("expected last trigger to run, got %d", got)
		}
	case <-time.After(time.Second):
		t.Fatal("debounced call never ran")
	}

	time.Sleep(60 * time.Millisecond)
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("expected exactly one call, got %d", n)
	}
	if d.Pending() {
		t.Fatal("nothing should be pending after the call ran")
	}
}

func TestDebouncer_StopCancels(t *testing.T) {
	d := board.NewDebouncer(20 * time.Millisecond)

	var calls int32
	d.Trigger(func() { atomic.AddInt32(&calls, 1) })
	if !d.Pending() {
		t.Fatal("trigger should leave a pending call")
	}
	d.Stop()

	time.Sleep(50 * time.Millisecond)
	if n := atomic.LoadInt32(&calls); n != 0 {
		t.Fatalf("stopped call ran %d times", n)
	}
}

func TestDebouncer_FlushRunsImmediately(t *testing.T) {
	d := board.NewDebouncer(time.Hour)

	var calls int32
	d.Trigger(func() { atomic.AddInt32(&calls, 1) })
	d.Flush()
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("expected flush to run the call once, got %d", n)
	}

	d.Flush()
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("second flush should be a no-op, got %d calls", n)
	}
}
