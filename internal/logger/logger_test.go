package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2024, 5, 1, 12, 30, 0, 0, time.Local)
}

func TestLogWritesMemoryAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sandbox.txt")
	l := New(path)
	l.now = fixedClock
	l.Log("added body")
	l.Logf("removed %d bodies", 2)

	want := []string{
		"[2024-05-01 12:30:00] added body",
		"[2024-05-01 12:30:00] removed 2 bodies",
	}
	got := l.Lines()
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("Lines = %q, want %q", got, want)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if string(data) != strings.Join(want, "\n")+"\n" {
		t.Fatalf("file = %q", data)
	}
}

func TestTail(t *testing.T) {
	l := New("")
	for i := 0; i < 5; i++ {
		l.Logf("line %d", i)
	}
	tail := l.Tail(2)
	if len(tail) != 2 || !strings.HasSuffix(tail[0], "line 3") || !strings.HasSuffix(tail[1], "line 4") {
		t.Fatalf("Tail(2) = %q", tail)
	}
	if len(l.Tail(10)) != 5 {
		t.Fatalf("Tail(10) returned %d lines", len(l.Tail(10)))
	}
	tail[0] = "mutated"
	if l.Tail(2)[0] == "mutated" {
		t.Fatal("Tail exposed internal storage")
	}
}

func TestHistoryIsBounded(t *testing.T) {
	l := New("")
	for i := 0; i < maxLines+25; i++ {
		l.Logf("line %d", i)
	}
	lines := l.Lines()
	if len(lines) != maxLines {
		t.Fatalf("kept %d lines, want %d", len(lines), maxLines)
	}
	if !strings.HasSuffix(lines[0], fmt.Sprintf("line %d", 25)) {
		t.Fatalf("oldest kept line = %q", lines[0])
	}
}

func TestConcurrentLog(t *testing.T) {
	l := New("")
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				l.Logf("g%d-%d", g, i)
			}
		}(g)
	}
	wg.Wait()
	if n := len(l.Lines()); n != 160 {
		t.Fatalf("got %d lines, want 160", n)
	}
}
