package logger

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestLogStampsAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "viewer.txt")
	l := New(path)
	l.now = func() time.Time { return time.Date(2024, 3, 9, 14, 5, 7, 0, time.Local) }

	l.Log("Curve toggled: ON")
	l.Logf("texture %dx%d", 256, 256)

	want := []string{
		"[2024-03-09 14:05:07] Curve toggled: ON",
		"[2024-03-09 14:05:07] texture 256x256",
	}
	got := l.Lines()
	if len(got) != len(want) {
		t.Fatalf("lines = %q", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != strings.Join(want, "\n")+"\n" {
		t.Errorf("file = %q", data)
	}
}

func TestLinesIsACopy(t *testing.T) {
	l := New("")
	l.Log("a")
	lines := l.Lines()
	lines[0] = "changed"
	if l.Lines()[0] == "changed" {
		t.Error("Lines exposed internal slice")
	}
}

func TestConcurrentLog(t *testing.T) {
	l := New(filepath.Join(t.TempDir(), "viewer.txt"))
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				l.Log("frame")
			}
		}()
	}
	wg.Wait()
	if n := len(l.Lines()); n != 200 {
		t.Errorf("lines = %d, want 200", n)
	}
	data, err := os.ReadFile(l.Path())
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(data), "\n"); n != 200 {
		t.Errorf("file lines = %d, want 200", n)
	}
}
