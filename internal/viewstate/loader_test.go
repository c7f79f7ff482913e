package viewstate

import (
	"context"
	"errors"
	"testing"
)

func TestLoadAppliesResult(t *testing.T) {
	var loader Loader[int]

	applied := loader.Load(context.Background(), func(context.Context) (int, error) {
		return 42, nil
	})
	if !applied {
		t.Fatalf("expected load to apply")
	}
	if !loader.Loaded() {
		t.Fatalf("expected loader to report loaded")
	}
	value, err := loader.Current()
	if err != nil || value != 42 {
		t.Fatalf("unexpected state: value=%d err=%v", value, err)
	}
}

func TestStaleCompletionIsDiscarded(t *testing.T) {
	var loader Loader[string]

	_, staleGen := loader.Begin(context.Background())
	_, freshGen := loader.Begin(context.Background())

	if loader.Complete(staleGen, "stale", nil) {
		t.Fatalf("stale completion must not apply")
	}
	if loader.Loaded() {
		t.Fatalf("no completion applied yet")
	}
	if !loader.Complete(freshGen, "fresh", nil) {
		t.Fatalf("current completion must apply")
	}
	value, _ := loader.Current()
	if value != "fresh" {
		t.Fatalf("expected fresh value, got %q", value)
	}
}

func TestBeginCancelsInFlightLoad(t *testing.T) {
	var loader Loader[int]

	staleCtx, _ := loader.Begin(context.Background())
	loader.Begin(context.Background())

	select {
	case <-staleCtx.Done():
	default:
		t.Fatalf("expected superseded context to be cancelled")
	}
}

func TestLateResponseDoesNotOverwriteNewerState(t *testing.T) {
	var loader Loader[string]

	_, slowGen := loader.Begin(context.Background())

	if !loader.Load(context.Background(), func(context.Context) (string, error) {
		return "newer", nil
	}) {
		t.Fatalf("newer load must apply")
	}

	// The slow load's response arrives after the newer one finished.
	if loader.Complete(slowGen, "older", nil) {
		t.Fatalf("late response must be discarded")
	}
	value, _ := loader.Current()
	if value != "newer" {
		t.Fatalf("expected newer state to survive, got %q", value)
	}
}

func TestCompleteRecordsError(t *testing.T) {
	var loader Loader[int]
	loadErr := errors.New("load failed")

	loader.Load(context.Background(), func(context.Context) (int, error) {
		return 0, loadErr
	})

	_, err := loader.Current()
	if !errors.Is(err, loadErr) {
		t.Fatalf("expected load error, got %v", err)
	}
}
