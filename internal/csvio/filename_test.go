package csvio

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()

	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create %s: %v", path, err)
	}
}

func TestUniquePath(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "output.csv")

	if got := UniquePath(base); got != base {
		t.Errorf("Expected free name unchanged, got %q", got)
	}

	touch(t, base)
	touch(t, filepath.Join(dir, "output_1.csv"))

	expected := filepath.Join(dir, "output_2.csv")
	if got := UniquePath(base); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestResolveOutputPath_DeclinedOverwrite(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "output.csv")

	touch(t, base)
	touch(t, filepath.Join(dir, "output_1.csv"))

	decline := func(string) bool { return false }

	expected := filepath.Join(dir, "output_2.csv")
	if got := ResolveOutputPath(base, decline); got != expected {
		t.Errorf("Expected %q after declined overwrite, got %q", expected, got)
	}
}

func TestResolveOutputPath_ConfirmedOverwrite(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "output.csv")
	touch(t, base)

	accept := func(string) bool { return true }

	if got := ResolveOutputPath(base, accept); got != base {
		t.Errorf("Expected overwrite of %q, got %q", base, got)
	}
}

func TestResolveOutputPath_FreeName(t *testing.T) {
	base := filepath.Join(t.TempDir(), "output.csv")

	called := false
	confirm := func(string) bool { called = true; return false }

	if got := ResolveOutputPath(base, confirm); got != base {
		t.Errorf("Expected free name unchanged, got %q", got)
	}

	if called {
		t.Error("Confirm must not be asked when the name is free")
	}
}

func TestResolveOutputPath_NilConfirmNeverOverwrites(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "output.csv")
	touch(t, base)

	expected := filepath.Join(dir, "output_1.csv")
	if got := ResolveOutputPath(base, nil); got != expected {
		t.Errorf("Expected %q with nil confirm, got %q", expected, got)
	}
}
