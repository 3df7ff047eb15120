package store

import (
	"context"
	"sort"
	"sync"

	"github.com/jonathan/london-crypto-directory/internal/types"
)

// Memory is an ephemeral store.
type Memory struct {
	mu          sync.RWMutex
	companies   []types.Company
	submissions []types.Submission
}

// NewMemory returns a store seeded with companies.
func NewMemory(companies ...types.Company) *Memory {
	m := &Memory{companies: make([]types.Company, len(companies))}
	copy(m.companies, companies)
	return m
}

// ListCompanies returns a copy of the companies ordered by name.
func (m *Memory) ListCompanies(_ context.Context) ([]types.Company, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]types.Company, len(m.companies))
	copy(out, m.companies)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// SaveSubmission appends the submission.
func (m *Memory) SaveSubmission(_ context.Context, sub *types.Submission) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submissions = append(m.submissions, *sub)
	return nil
}

// Submissions returns the recorded submissions in insertion order.
func (m *Memory) Submissions() []types.Submission {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]types.Submission, len(m.submissions))
	copy(out, m.submissions)
	return out
}

// Close is a no-op.
func (m *Memory) Close() error { return nil }
