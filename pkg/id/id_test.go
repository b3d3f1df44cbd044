package id

import (
	"testing"
	"time"
)

func TestNewUniqueUnderRapidCalls(t *testing.T) {
	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		v := New()
		if seen[v] {
			t.Fatalf("duplicate id after %d calls: %s", i, v)
		}
		seen[v] = true
	}
}

func TestNewAtPrefix(t *testing.T) {
	at := time.Date(2026, time.March, 2, 10, 30, 0, 0, time.UTC)
	v := NewAt(at)
	if !Valid(v) {
		t.Fatalf("expected valid id, got %s", v)
	}
	want := "1772447400000-"
	if v[:len(want)] != want {
		t.Fatalf("expected prefix %s, got %s", want, v)
	}
}

func TestValid(t *testing.T) {
	if Valid("") {
		t.Fatalf("empty string should not validate")
	}
	if Valid("not-an-id") {
		t.Fatalf("non-numeric prefix should not validate")
	}
	if Valid("1772447400000-ab") {
		t.Fatalf("short suffix should not validate")
	}
	if !Valid(New()) {
		t.Fatalf("fresh id should validate")
	}
}
