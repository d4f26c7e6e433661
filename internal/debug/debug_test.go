package debug

import (
	"reflect"
	"strings"
	"testing"
)

func TestLinesHiddenByDefault(t *testing.T) {
	if got := New().Lines(60); len(got) != 0 {
		t.Errorf("Lines = %q, want none", got)
	}
}

func TestLinesRefreshInterval(t *testing.T) {
	d := New()
	d.ShowFPS = true
	d.ShowState = true
	calls := 0
	d.State = func() string {
		calls++
		return "angle 5.0  t 0.10  red"
	}

	want := []string{"FPS: 60", "angle 5.0  t 0.10  red"}
	if got := d.Lines(60); !reflect.DeepEqual(got, want) {
		t.Fatalf("Lines = %q, want %q", got, want)
	}
	for i := 2; i < updateInterval; i++ {
		d.Lines(30)
	}
	if calls != 1 {
		t.Errorf("state computed %d times before the interval elapsed", calls)
	}
	if got := d.Lines(30); got[0] != "FPS: 30" {
		t.Errorf("after interval: %q", got)
	}
}

func TestLinesMemAlloc(t *testing.T) {
	d := New()
	d.ShowMemAlloc = true
	got := d.Lines(60)
	if len(got) != 1 || !strings.HasPrefix(got[0], "Mem: ") || !strings.HasSuffix(got[0], " MiB") {
		t.Errorf("Lines = %q, want one Mem line", got)
	}
}
