package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestWatchMesh(t *testing.T) {
	dir := t.TempDir()
	meshPath := filepath.Join(dir, "brain.stl")
	if err := os.WriteFile(meshPath, []byte("v1"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	renders := make(chan struct{}, 10)
	done := make(chan error, 1)
	go func() {
		done <- watchMesh(ctx, meshPath, zap.NewNop(), func() error {
			renders <- struct{}{}
			return nil
		})
	}()

	// Writes to other files are ignored; writes to the mesh trigger a render.
	deadline := time.After(10 * time.Second)
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for rendered := false; !rendered; {
		select {
		case <-renders:
			rendered = true
		case <-ticker.C:
			os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644)
			os.WriteFile(meshPath, []byte("v2"), 0644)
		case <-deadline:
			t.Fatal("no render after mesh changed")
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
