package reports

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Registry keeps report metadata in memory. Reports are regenerable from
// the trend stores at any time, so losing the registry on restart only
// invalidates previously issued download links.
type Registry struct {
	mu      sync.RWMutex
	reports map[uuid.UUID]*Report
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{reports: make(map[uuid.UUID]*Report)}
}

// Put stores report under its ID.
func (r *Registry) Put(report *Report) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports[report.ID] = report
}

// Get returns the report with the given ID.
func (r *Registry) Get(id uuid.UUID) (*Report, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	report, ok := r.reports[id]
	return report, ok
}

// List returns reports newest first, sliced by limit/offset.
func (r *Registry) List(limit, offset int) []Report {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]Report, 0, len(r.reports))
	for _, report := range r.reports {
		all = append(all, *report)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	if offset >= len(all) {
		return nil
	}
	all = all[offset:]
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all
}

// Delete removes the report with the given ID.
func (r *Registry) Delete(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.reports[id]; !ok {
		return false
	}
	delete(r.reports, id)
	return true
}
