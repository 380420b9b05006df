package util

import (
	"testing"
	"time"
)

func TestEpochToISO(t *testing.T) {
	ts := time.Date(2024, 10, 10, 10, 10, 10, 0, time.UTC).Unix()
	got := EpochToISO(ts)
	if got != "2024-10-10T10:10:10Z" {
		t.Fatalf("unexpected iso %q", got)
	}
}

func TestEpochToISOZero(t *testing.T) {
	if got := EpochToISO(0); got != "1970-01-01T00:00:00Z" {
		t.Fatalf("unexpected iso %q", got)
	}
}
