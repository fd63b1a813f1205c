package urlcache

import (
	"errors"
	"testing"
	"time"
)

func TestGetOrSet(t *testing.T) {
	c := New[bool](t.TempDir(), time.Hour)

	calls := 0
	fn := func() (bool, error) {
		calls++
		return true, nil
	}

	for i := 0; i < 3; i++ {
		got, err := c.GetOrSet("https://example.com/page?q=1", fn)
		if err != nil {
			t.Fatalf("GetOrSet() error = %v", err)
		}
		if !got {
			t.Fatal("GetOrSet() = false, want true")
		}
	}

	if calls != 1 {
		t.Errorf("value computed %d times, want 1", calls)
	}
}

func TestGetOrSetExpiry(t *testing.T) {
	c := New[string](t.TempDir(), time.Nanosecond)

	calls := 0
	fn := func() (string, error) {
		calls++
		return "v", nil
	}

	if _, err := c.GetOrSet("k", fn); err != nil {
		t.Fatal(err)
	}
	time.Sleep(time.Millisecond)
	if _, err := c.GetOrSet("k", fn); err != nil {
		t.Fatal(err)
	}

	if calls != 2 {
		t.Errorf("value computed %d times, want 2 after expiry", calls)
	}
}

func TestGetOrSetError(t *testing.T) {
	c := New[string](t.TempDir(), time.Hour)

	wantErr := errors.New("boom")
	if _, err := c.GetOrSet("k", func() (string, error) {
		return "", wantErr
	}); !errors.Is(err, wantErr) {
		t.Fatalf("GetOrSet() error = %v, want %v", err, wantErr)
	}

	// The failure must not be cached
	got, err := c.GetOrSet("k", func() (string, error) {
		return "ok", nil
	})
	if err != nil || got != "ok" {
		t.Errorf("GetOrSet() = %q, %v", got, err)
	}
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"https://example.com/a?b=c", "https___example.com_a_b_c"},
		{"plain", "plain"},
		{"a..b", "a.b"},
	}
	for _, tt := range tests {
		if got := normalizeKey(tt.key); got != tt.want {
			t.Errorf("normalizeKey(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestClear(t *testing.T) {
	dir := t.TempDir()
	c := New[int](dir, time.Hour)

	if _, err := c.GetOrSet("k", func() (int, error) { return 1, nil }); err != nil {
		t.Fatal(err)
	}
	if err := c.Clear(); err != nil {
		t.Fatal(err)
	}

	calls := 0
	if _, err := c.GetOrSet("k", func() (int, error) {
		calls++
		return 2, nil
	}); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Error("cleared entry still served from cache")
	}
}
