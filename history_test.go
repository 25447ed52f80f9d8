package replkit

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	h, err := OpenHistory(path, 10)
	if err != nil {
		t.Fatalf("Failed to open history: %v", err)
	}
	defer h.Close()

	t.Run("AppendAndRecent", func(t *testing.T) {
		for _, line := range []string{"greet Jane 30", "sum 1 2 3"} {
			if err := h.Append(line); err != nil {
				t.Fatalf("Failed to append %q: %v", line, err)
			}
		}
		lines, err := h.Recent(0)
		if err != nil {
			t.Fatalf("Failed to read history: %v", err)
		}
		want := []string{"greet Jane 30", "sum 1 2 3"}
		if !reflect.DeepEqual(lines, want) {
			t.Errorf("Expected %v, got %v", want, lines)
		}
	})

	t.Run("SkipsBlank", func(t *testing.T) {
		if err := h.Append("   "); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
		lines, _ := h.Recent(0)
		if len(lines) != 2 {
			t.Errorf("Expected blank lines to be skipped, got %v", lines)
		}
	})

	t.Run("SkipsConsecutiveDuplicate", func(t *testing.T) {
		if err := h.Append("sum 1 2 3"); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
		lines, _ := h.Recent(0)
		if len(lines) != 2 {
			t.Errorf("Expected the duplicate to be skipped, got %v", lines)
		}

		// The same line is fine again after something else in between.
		h.Append("help")
		h.Append("sum 1 2 3")
		lines, _ = h.Recent(0)
		if len(lines) != 4 {
			t.Errorf("Expected 4 entries, got %v", lines)
		}
	})

	t.Run("RecentLimit", func(t *testing.T) {
		lines, err := h.Recent(2)
		if err != nil {
			t.Fatalf("Failed to read history: %v", err)
		}
		want := []string{"help", "sum 1 2 3"}
		if !reflect.DeepEqual(lines, want) {
			t.Errorf("Expected %v, got %v", want, lines)
		}
	})
}

func TestHistoryTrim(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	h, err := OpenHistory(path, 3)
	if err != nil {
		t.Fatalf("Failed to open history: %v", err)
	}
	defer h.Close()

	for _, line := range []string{"one", "two", "three", "four", "five"} {
		if err := h.Append(line); err != nil {
			t.Fatalf("Failed to append %q: %v", line, err)
		}
	}

	lines, err := h.Recent(0)
	if err != nil {
		t.Fatalf("Failed to read history: %v", err)
	}
	want := []string{"three", "four", "five"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("Expected only the newest entries %v, got %v", want, lines)
	}
}

func TestHistoryPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	h, err := OpenHistory(path, 10)
	if err != nil {
		t.Fatalf("Failed to open history: %v", err)
	}
	h.Append("greet Jane")
	if err := h.Close(); err != nil {
		t.Fatalf("Failed to close history: %v", err)
	}

	reopened, err := OpenHistory(path, 10)
	if err != nil {
		t.Fatalf("Failed to reopen history: %v", err)
	}
	defer reopened.Close()

	lines, err := reopened.Recent(0)
	if err != nil {
		t.Fatalf("Failed to read history: %v", err)
	}
	if len(lines) != 1 || lines[0] != "greet Jane" {
		t.Errorf("Expected the entry to survive reopening, got %v", lines)
	}
}
