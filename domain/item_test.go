package domain

import (
	"regexp"
	"testing"
	"time"
)

var hexID = regexp.MustCompile(`^[0-9a-f]{64}$`)

func TestGenerateItemIDShape(t *testing.T) {
	desc := "bar"
	id := GenerateItemID("foo", &desc)

	if !hexID.MatchString(id) {
		t.Errorf("expected 64 lowercase hex chars, got %q", id)
	}
}

func TestGenerateItemIDNilDescription(t *testing.T) {
	id := GenerateItemID("foo", nil)

	if !hexID.MatchString(id) {
		t.Errorf("expected 64 lowercase hex chars, got %q", id)
	}
}

func TestGenerateItemIDDiffersAcrossCalls(t *testing.T) {
	desc := "bar"

	seen := make(map[string]struct{})
	for i := 0; i < 5; i++ {
		id := GenerateItemID("foo", &desc)
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %q for identical inputs", id)
		}
		seen[id] = struct{}{}
		time.Sleep(time.Microsecond)
	}
}

func TestNewItem(t *testing.T) {
	desc := "a widget"
	item := NewItem("widget", &desc)

	if !hexID.MatchString(item.ID) {
		t.Errorf("expected 64 lowercase hex id, got %q", item.ID)
	}
	if item.Name != "widget" {
		t.Errorf("expected name %q, got %q", "widget", item.Name)
	}
	if item.Description == nil || *item.Description != desc {
		t.Errorf("description not carried over: %v", item.Description)
	}
}
