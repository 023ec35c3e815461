package vary

import (
	"context"
	"testing"
	"time"
)

func TestChannelWatcher_ForwardsSnapshots(t *testing.T) {
	source := make(chan []byte, 2)
	source <- []byte(compactJSON)
	source <- []byte(regularJSON)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	out, err := NewChannelWatcher(source).Watch(ctx)
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	for i, want := range []string{compactJSON, regularJSON} {
		select {
		case v := <-out:
			if string(v) != want {
				t.Errorf("snapshot %d: expected %s, got %s", i, want, v)
			}
		case <-time.After(100 * time.Millisecond):
			t.Fatalf("timeout waiting for snapshot %d", i)
		}
	}
}

func TestChannelWatcher_ClosesOnSourceClose(t *testing.T) {
	source := make(chan []byte, 1)
	source <- []byte(compactJSON)
	close(source)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	out, err := NewChannelWatcher(source).Watch(ctx)
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	<-out

	select {
	case _, ok := <-out:
		if ok {
			t.Error("expected channel to be closed")
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("timeout waiting for channel close")
	}
}

func TestChannelWatcher_ClosesOnContextCancel(t *testing.T) {
	source := make(chan []byte)

	ctx, cancel := context.WithCancel(context.Background())

	out, err := NewChannelWatcher(source).Watch(ctx)
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	cancel()

	select {
	case _, ok := <-out:
		if ok {
			t.Error("expected channel to be closed")
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("timeout waiting for channel close")
	}
}

func TestChannelWatcher_CancelWhileBlockedOnSend(t *testing.T) {
	source := make(chan []byte)

	ctx, cancel := context.WithCancel(context.Background())

	out, err := NewChannelWatcher(source).Watch(ctx)
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	go func() {
		source <- []byte(compactJSON)
	}()

	// The forwarding goroutine is now blocked sending to out.
	time.Sleep(20 * time.Millisecond)

	cancel()

	select {
	case <-out:
	case <-time.After(100 * time.Millisecond):
		t.Error("channel did not close after context cancel")
	}
}

func TestSyncChannelWatcher_ReturnsSource(t *testing.T) {
	source := make(chan []byte, 1)
	source <- []byte(compactJSON)

	out, err := NewSyncChannelWatcher(source).Watch(context.Background())
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	select {
	case v := <-out:
		if string(v) != compactJSON {
			t.Errorf("expected %s, got %s", compactJSON, v)
		}
	default:
		t.Fatal("expected snapshot available without a forwarding goroutine")
	}
}
