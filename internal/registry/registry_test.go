package registry

import (
	"testing"

	"chatstream/internal/wire"
)

func TestIntroduceAndGet(t *testing.T) {
	r := New()
	if err := r.Introduce("a", wire.KindSimple, map[string]any{"title": "x"}); err != nil {
		t.Fatalf("Introduce: %v", err)
	}
	if !r.Has("a") {
		t.Fatalf("expected Has(a) to be true")
	}
	data, ok := r.Get("a")
	if !ok {
		t.Fatalf("expected Get(a) to succeed")
	}
	if data["title"] != "x" {
		t.Fatalf("unexpected data: %+v", data)
	}
}

func TestIntroduceDuplicateFails(t *testing.T) {
	r := New()
	if err := r.Introduce("a", wire.KindSimple, nil); err != nil {
		t.Fatalf("first Introduce: %v", err)
	}
	if err := r.Introduce("a", wire.KindSimple, nil); err == nil {
		t.Fatalf("expected error on duplicate introduction")
	}
}

func TestUpdateUnknownIDFails(t *testing.T) {
	r := New()
	if err := r.Update("missing", map[string]any{"units": 1}); err == nil {
		t.Fatalf("expected error updating unknown id")
	}
}

func TestUpdateMergesShallow(t *testing.T) {
	r := New()
	if err := r.Introduce("a", wire.KindSimple, map[string]any{"title": "x", "value": float64(1)}); err != nil {
		t.Fatalf("Introduce: %v", err)
	}
	if err := r.Update("a", map[string]any{"value": float64(2)}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	data, _ := r.Get("a")
	if data["title"] != "x" {
		t.Fatalf("expected title to survive partial update, got %+v", data)
	}
	if data["value"] != float64(2) {
		t.Fatalf("expected value replaced, got %+v", data)
	}
}

func TestUpdateNullDeletesKey(t *testing.T) {
	r := New()
	if err := r.Introduce("a", wire.KindSimple, map[string]any{"title": "x"}); err != nil {
		t.Fatalf("Introduce: %v", err)
	}
	if err := r.Update("a", map[string]any{"title": nil}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	data, _ := r.Get("a")
	if _, exists := data["title"]; exists {
		t.Fatalf("expected title removed by null merge patch, got %+v", data)
	}
}

func TestGetUnknownID(t *testing.T) {
	r := New()
	if _, ok := r.Get("missing"); ok {
		t.Fatalf("expected Get on unknown id to report false")
	}
}

func TestGetReturnsACopy(t *testing.T) {
	r := New()
	if err := r.Introduce("a", wire.KindSimple, map[string]any{"title": "x"}); err != nil {
		t.Fatalf("Introduce: %v", err)
	}
	data, _ := r.Get("a")
	data["title"] = "mutated"

	data2, _ := r.Get("a")
	if data2["title"] != "x" {
		t.Fatalf("expected mutation of Get's result not to affect stored entry, got %+v", data2)
	}
}
