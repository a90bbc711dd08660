/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/suparena/cmdproc/manifest"
	"github.com/suparena/cmdproc/manifeststore"
	"github.com/suparena/cmdproc/manifeststore/mock"
)

func sampleManifest(name string) *manifest.Manifest {
	return &manifest.Manifest{
		Name:        name,
		MaxCommands: 4,
		MaxHelpLen:  32,
		Commands: []manifest.Command{
			{Name: "status", Help: "status: ok"},
		},
	}
}

func TestMockStore(t *testing.T) {
	ctx := context.Background()

	t.Run("BasicOperations", func(t *testing.T) {
		store := mock.New()

		// Test Put
		if err := store.Put(ctx, sampleManifest("tool-a")); err != nil {
			t.Fatalf("Put failed: %v", err)
		}

		// Test Get
		m, err := store.Get(ctx, "tool-a")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if m.Name != "tool-a" || len(m.Commands) != 1 {
			t.Fatalf("Retrieved manifest mismatch: %+v", m)
		}

		// Test List
		if err := store.Put(ctx, sampleManifest("tool-b")); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		names, err := store.List(ctx)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(names) != 2 || names[0] != "tool-a" || names[1] != "tool-b" {
			t.Fatalf("Expected sorted [tool-a tool-b], got %v", names)
		}

		// Test Delete
		if err := store.Delete(ctx, "tool-a"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, err := store.Get(ctx, "tool-a"); !errors.Is(err, manifeststore.ErrManifestNotFound) {
			t.Fatalf("Expected ErrManifestNotFound, got %v", err)
		}
	})

	t.Run("GetAbsent", func(t *testing.T) {
		store := mock.New()

		if _, err := store.Get(ctx, "nope"); !errors.Is(err, manifeststore.ErrManifestNotFound) {
			t.Fatalf("Expected ErrManifestNotFound, got %v", err)
		}
	})

	t.Run("PutValidates", func(t *testing.T) {
		store := mock.New()

		bad := sampleManifest("bad")
		bad.MaxCommands = 0
		if err := store.Put(ctx, bad); err == nil {
			t.Fatal("Expected validation error from Put")
		}
		if store.Len() != 0 {
			t.Fatalf("Failed Put must not store; got %d manifests", store.Len())
		}
	})

	t.Run("CopiesOnGet", func(t *testing.T) {
		store := mock.New()

		if err := store.Put(ctx, sampleManifest("tool")); err != nil {
			t.Fatalf("Put failed: %v", err)
		}

		m, _ := store.Get(ctx, "tool")
		m.Name = "mutated"

		again, _ := store.Get(ctx, "tool")
		if again.Name != "tool" {
			t.Fatal("Get must return a copy, not shared state")
		}
	})

	t.Run("InjectedErrors", func(t *testing.T) {
		boom := errors.New("boom")
		store := mock.New().
			WithGetError(boom).
			WithPutError(boom).
			WithDeleteError(boom).
			WithListError(boom)

		if _, err := store.Get(ctx, "x"); err != boom {
			t.Errorf("Get: expected injected error, got %v", err)
		}
		if err := store.Put(ctx, sampleManifest("x")); err != boom {
			t.Errorf("Put: expected injected error, got %v", err)
		}
		if err := store.Delete(ctx, "x"); err != boom {
			t.Errorf("Delete: expected injected error, got %v", err)
		}
		if _, err := store.List(ctx); err != boom {
			t.Errorf("List: expected injected error, got %v", err)
		}
	})
}
