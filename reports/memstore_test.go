// path: reports/memstore_test.go
package reports

import (
	"context"
	"sort"
	"sync"

	"github.com/ljh8159/rail-back/apperr"
	"github.com/ljh8159/rail-back/models"
)

// memStore is an in-memory Store with the same observable semantics as
// the mongo implementation.
type memStore struct {
	mu     sync.Mutex
	nextID int64
	rows   []*models.Report
}

func newMemStore() *memStore { return &memStore{} }

func (m *memStore) Insert(_ context.Context, r *models.Report) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	r.ID = m.nextID
	cp := *r
	m.rows = append(m.rows, &cp)
	return nil
}

func (m *memStore) MarkDispatched(_ context.Context, location, dispatchUserID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, r := range m.rows {
		if r.Location == location && r.Type == models.TypeReport {
			r.Type = models.TypeDispatched
			r.AIStage = models.StageDispatched
			r.DispatchUserID = dispatchUserID
			n++
		}
	}
	return n, nil
}

func (m *memStore) SetDecision(_ context.Context, id int64, stage int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if r.ID == id {
			r.AIStage = stage
			r.ForUserpageStage = stage
			return nil
		}
	}
	return apperr.NotFoundf("report %d not found", id)
}

func (m *memStore) FindRecent(_ context.Context, filters []Filter, limit int64) ([]models.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Report
	for _, r := range m.rows {
		for _, f := range filters {
			if matches(r, f) {
				out = append(out, *r)
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memStore) FindMarkers(_ context.Context, f Filter) ([]models.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Report
	for _, r := range m.rows {
		if matches(r, f) {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memStore) Count(_ context.Context, f Filter) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, r := range m.rows {
		if matches(r, f) {
			n++
		}
	}
	return n, nil
}

func (m *memStore) get(id int64) *models.Report {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if r.ID == id {
			cp := *r
			return &cp
		}
	}
	return nil
}

func matches(r *models.Report, f Filter) bool {
	if f.Type != "" && r.Type != f.Type {
		return false
	}
	if f.Stage != 0 && r.AIStage != f.Stage {
		return false
	}
	if f.UserID != "" && r.UserID != f.UserID {
		return false
	}
	if f.UserpageType != "" && r.ForUserpageType != f.UserpageType {
		return false
	}
	if f.UserpageStage != 0 && r.ForUserpageStage != f.UserpageStage {
		return false
	}
	if f.DispatchUserID != "" && r.DispatchUserID != f.DispatchUserID {
		return false
	}
	return true
}
