package encoder

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/qrgrid"
)

func TestEncodeSmallPayload(t *testing.T) {
	m, err := New().Encode("HELLO", qrgrid.ECLevelL)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if m.Size() != 21 {
		t.Errorf("Size() = %d, want 21", m.Size())
	}
	if m.Version() != 1 {
		t.Errorf("Version() = %d, want 1", m.Version())
	}
	// Finder pattern corners are always dark; the separator ring is light.
	for _, c := range []qrgrid.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 20}, {Row: 20, Col: 0}, {Row: 3, Col: 3}} {
		if !m.Dark(c.Row, c.Col) {
			t.Errorf("Dark(%d, %d) = false, want true", c.Row, c.Col)
		}
	}
	if m.Dark(7, 7) {
		t.Error("Dark(7, 7) = true, want separator to be light")
	}
}

func TestEncodeTimingPattern(t *testing.T) {
	m, err := New().Encode("timing", qrgrid.ECLevelM)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	for i := 8; i < m.Size()-8; i++ {
		want := i%2 == 0
		if got := m.Dark(6, i); got != want {
			t.Errorf("Dark(6, %d) = %v, want %v", i, got, want)
		}
		if got := m.Dark(i, 6); got != want {
			t.Errorf("Dark(%d, 6) = %v, want %v", i, got, want)
		}
	}
}

func TestEncodeHigherLevelGrows(t *testing.T) {
	text := strings.Repeat("qrgrid ", 8)
	low, err := New().Encode(text, qrgrid.ECLevelL)
	if err != nil {
		t.Fatalf("Encode(L) error = %v", err)
	}
	high, err := New().Encode(text, qrgrid.ECLevelH)
	if err != nil {
		t.Fatalf("Encode(H) error = %v", err)
	}
	if high.Version() <= low.Version() {
		t.Errorf("version at H = %d, want > %d (at L)", high.Version(), low.Version())
	}
}

func TestEncodeForcedVersion(t *testing.T) {
	m, err := New(WithVersion(7)).Encode("v7", qrgrid.ECLevelM)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if m.Size() != 45 {
		t.Errorf("Size() = %d, want 45", m.Size())
	}
}

func TestEncodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		level qrgrid.ECLevel
		opts  []Option
		want  error
	}{
		{"empty", "", qrgrid.ECLevelM, nil, qrgrid.ErrEmptyPayload},
		{"bad level", "x", qrgrid.ECLevel(9), nil, qrgrid.ErrInvalidECLevel},
		{"too long", strings.Repeat("x", 4000), qrgrid.ECLevelH, nil, nil},
		{"forced too small", strings.Repeat("x", 200), qrgrid.ECLevelM, []Option{WithVersion(1)}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opts...).Encode(tt.text, tt.level)
			var ee *qrgrid.EncodeError
			if !errors.As(err, &ee) {
				t.Fatalf("Encode() error = %v, want *qrgrid.EncodeError", err)
			}
			if ee.Level != tt.level {
				t.Errorf("EncodeError.Level = %v, want %v", ee.Level, tt.level)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("Encode() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestEncodeCache(t *testing.T) {
	e := New(WithCache(2))
	first, err := e.Encode("cached", qrgrid.ECLevelM)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	again, err := e.Encode("cached", qrgrid.ECLevelM)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if again != first {
		t.Error("second Encode() did not return the cached matrix")
	}
	if _, err := e.Encode("cached", qrgrid.ECLevelH); err != nil {
		t.Fatal(err)
	}
	if got := e.CacheStats(); got != (CacheStats{Len: 2, Hits: 1, Misses: 2}) {
		t.Errorf("CacheStats() = %+v, want 2 entries, 1 hit, 2 misses", got)
	}

	// A third key evicts the least recently used ("cached", M).
	if _, err := e.Encode("other", qrgrid.ECLevelM); err != nil {
		t.Fatal(err)
	}
	evicted, err := e.Encode("cached", qrgrid.ECLevelM)
	if err != nil {
		t.Fatal(err)
	}
	if evicted == first {
		t.Error("evicted entry was still served from the cache")
	}
	if got := e.CacheStats().Len; got != 2 {
		t.Errorf("CacheStats().Len = %d, want 2", got)
	}
}

func TestEncodeCacheSkipsFailures(t *testing.T) {
	e := New(WithVersion(1), WithCache(0))
	long := strings.Repeat("x", 200)
	for range 2 {
		if _, err := e.Encode(long, qrgrid.ECLevelL); err == nil {
			t.Fatal("expected capacity error")
		}
	}
	if got := e.CacheStats(); got.Len != 0 || got.Hits != 0 {
		t.Errorf("CacheStats() = %+v, want no entries or hits", got)
	}
	if got := New().CacheStats(); got != (CacheStats{}) {
		t.Errorf("CacheStats() without cache = %+v", got)
	}
}
