// Package registry implements the per-request component registry: the
// in-memory record of each component's last-known data, used to enforce
// that updates only reference already-introduced ids and to compute the
// next cumulative frame for tables and charts.
package registry

import (
	"encoding/json"
	"fmt"
	"sync"

	jsonpatch "github.com/evanphx/json-patch/v5"

	"chatstream/internal/wire"
)

type entry struct {
	kind wire.Kind
	data map[string]any
}

// Registry is a per-request, stack-local mapping from component id to its
// current server-side data. It is not safe to share across requests and
// carries no cross-request state.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*entry
}

// New constructs an empty Registry for one request.
func New() *Registry {
	return &Registry{entries: make(map[string]*entry)}
}

// Introduce inserts a new entry for id. It fails if id is already
// present, a programming error id generation must prevent.
func (r *Registry) Introduce(id string, kind wire.Kind, initial map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[id]; exists {
		return fmt.Errorf("registry: duplicate id introduction %q", id)
	}
	r.entries[id] = &entry{kind: kind, data: cloneMap(initial)}
	return nil
}

// Update merges patch into id's stored data using RFC 7396 JSON Merge
// Patch semantics: each top-level key in patch replaces the stored value,
// arrays are replaced wholesale, a null value deletes the key, and only a
// nested object value is merged recursively into a stored object. Callers
// pass the already-accumulated full array for the two cumulative fields
// (TableA.rows, ChartComponent.series), so replacing them is correct. Update on an unknown id is a programming error; the caller
// must log and drop the frame rather than surface it to the client.
func (r *Registry) Update(id string, patch map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok {
		return fmt.Errorf("registry: update on unknown id %q", id)
	}

	merged, err := mergePatch(e.data, patch)
	if err != nil {
		return fmt.Errorf("registry: merge patch for %q: %w", id, err)
	}
	e.data = merged
	return nil
}

// Get returns a copy of id's current data, needed by emitters to build the
// next cumulative array, and whether id is known.
func (r *Registry) Get(id string) (map[string]any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok {
		return nil, false
	}
	return cloneMap(e.data), true
}

// Has reports whether id has been introduced.
func (r *Registry) Has(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.entries[id]
	return ok
}

func mergePatch(original, patch map[string]any) (map[string]any, error) {
	origBytes, err := json.Marshal(original)
	if err != nil {
		return nil, err
	}
	patchBytes, err := json.Marshal(patch)
	if err != nil {
		return nil, err
	}
	mergedBytes, err := jsonpatch.MergePatch(origBytes, patchBytes)
	if err != nil {
		return nil, err
	}
	var merged map[string]any
	if err := json.Unmarshal(mergedBytes, &merged); err != nil {
		return nil, err
	}
	return merged, nil
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
