package audio

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCachedFilesAndReset(t *testing.T) {
	dir := t.TempDir()
	svc := NewPhonicsService(dir)

	for _, name := range []string{"letter_a.mp3", "letter_b.mp3", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	files, err := svc.CachedFiles()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 mp3 files, got %d: %v", len(files), files)
	}

	if err := svc.Reset(); err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	files, err = svc.CachedFiles()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 0 {
		t.Fatalf("expected empty cache after reset, got %v", files)
	}

	// Non-mp3 files survive a reset.
	if _, err := os.Stat(filepath.Join(dir, "notes.txt")); err != nil {
		t.Fatalf("expected notes.txt to survive: %v", err)
	}
}

func TestLetterAudioFile_ServesCachedFile(t *testing.T) {
	dir := t.TempDir()
	svc := NewPhonicsService(dir)

	// Pre-seed the cache so no network call happens.
	if err := os.WriteFile(filepath.Join(dir, "letter_b.mp3"), []byte("mp3"), 0o644); err != nil {
		t.Fatal(err)
	}

	filename, err := svc.LetterAudioFile("B", "Bê. Bola.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filename != "letter_b.mp3" {
		t.Fatalf("expected letter_b.mp3, got %s", filename)
	}
}

func TestLetterAudioFile_EmptyLetter(t *testing.T) {
	svc := NewPhonicsService(t.TempDir())
	if _, err := svc.LetterAudioFile("", "x"); err == nil {
		t.Fatal("expected error for empty letter")
	}
}
