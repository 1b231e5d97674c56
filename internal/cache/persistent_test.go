// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package cache

import (
	"errors"
	"testing"
	"time"
)

func openTestPersistent(t *testing.T) *Persistent {
	t.Helper()
	p, err := OpenInMemory(time.Hour)
	if err != nil {
		t.Fatalf("OpenInMemory: %v", err)
	}
	t.Cleanup(func() { _ = p.Close() })
	return p
}

func TestPersistent_SetGet(t *testing.T) {
	p := openTestPersistent(t)

	if err := p.Set("movie:heat", []byte(`{"title":"Heat"}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, ok, err := p.Get("movie:heat")
	if err != nil || !ok {
		t.Fatalf("Get = %v, %v", ok, err)
	}
	if string(got) != `{"title":"Heat"}` {
		t.Errorf("value = %s", got)
	}
}

func TestPersistent_Missing(t *testing.T) {
	p := openTestPersistent(t)

	got, ok, err := p.Get("nope")
	if err != nil || ok || got != nil {
		t.Errorf("Get(missing) = %v, %v, %v", got, ok, err)
	}
}

func TestPersistent_Delete(t *testing.T) {
	p := openTestPersistent(t)

	_ = p.Set("k", []byte("v"))
	if err := p.Delete("k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := p.Get("k"); ok {
		t.Error("key should be gone")
	}
	if err := p.Delete("k"); err != nil {
		t.Errorf("deleting a missing key should succeed: %v", err)
	}
}

func TestPersistent_TTL(t *testing.T) {
	p := openTestPersistent(t)

	// Badger TTLs have one-second resolution
	if err := p.SetWithTTL("short", []byte("v"), time.Second); err != nil {
		t.Fatalf("SetWithTTL: %v", err)
	}
	time.Sleep(2100 * time.Millisecond)

	if _, ok, _ := p.Get("short"); ok {
		t.Error("entry should have expired")
	}
}

func TestPersistent_Directory(t *testing.T) {
	dir := t.TempDir()

	p, err := OpenPersistent(dir, time.Hour)
	if err != nil {
		t.Fatalf("OpenPersistent: %v", err)
	}
	if err := p.Set("k", []byte("v")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := OpenPersistent(dir, time.Hour)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	got, ok, err := reopened.Get("k")
	if err != nil || !ok || string(got) != "v" {
		t.Errorf("value did not survive reopen: %q, %v, %v", got, ok, err)
	}
	if err := reopened.RunGC(0.5); err != nil {
		t.Errorf("RunGC: %v", err)
	}
}

func TestPersistent_Closed(t *testing.T) {
	p, err := OpenInMemory(time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}

	if _, _, err := p.Get("k"); !errors.Is(err, ErrClosed) {
		t.Errorf("Get after Close = %v, want ErrClosed", err)
	}
	if err := p.Set("k", nil); !errors.Is(err, ErrClosed) {
		t.Errorf("Set after Close = %v, want ErrClosed", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("second Close should be a no-op: %v", err)
	}
}
