package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/london-crypto-directory/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed() []types.Company {
	return []types.Company{
		{ID: "3", Name: "Zeta", Category: types.StringPtr("Exchange")},
		{ID: "1", Name: "Acme", Category: types.StringPtr("DeFi"), TwitterHandle: types.StringPtr("@acme")},
		{ID: "2", Name: "Beta", Category: types.StringPtr("Other"), OriginalCategory: types.StringPtr("NFT Tools")},
	}
}

func names(companies []types.Company) []string {
	out := make([]string, 0, len(companies))
	for _, c := range companies {
		out = append(out, c.Name)
	}
	return out
}

func TestMemory_ListOrderedByName(t *testing.T) {
	m := NewMemory(seed()...)
	companies, err := m.ListCompanies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme", "Beta", "Zeta"}, names(companies))

	// Returned slice is a copy.
	companies[0].Name = "Mutated"
	again, _ := m.ListCompanies(context.Background())
	assert.Equal(t, "Acme", again[0].Name)
}

func TestMemory_SaveSubmission(t *testing.T) {
	m := NewMemory()
	sub := &types.Submission{ID: uuid.New(), Kind: types.SubmissionKindCompany, Subject: "s", CreatedAt: time.Now()}
	require.NoError(t, m.SaveSubmission(context.Background(), sub))
	require.Len(t, m.Submissions(), 1)
	assert.Equal(t, sub.ID, m.Submissions()[0].ID)
}

func openTestSQLite(t *testing.T) *SQLite {
	t.Helper()
	s, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "nested", "directory.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLite_ListOrderedByName(t *testing.T) {
	s := openTestSQLite(t)
	ctx := context.Background()

	for _, c := range seed() {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO companies (id, name, category, original_category, twitter_handle, twitter_url)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			c.ID, c.Name, c.Category, c.OriginalCategory, c.TwitterHandle, c.TwitterURL)
		require.NoError(t, err)
	}

	companies, err := s.ListCompanies(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"Acme", "Beta", "Zeta"}, names(companies))

	assert.Equal(t, "@acme", companies[0].TwitterHandleValue())
	assert.Nil(t, companies[0].OriginalCategory)
	assert.Equal(t, "NFT Tools", companies[1].OriginalCategoryValue())
	assert.Nil(t, companies[2].TwitterURL)
}

func TestSQLite_EmptyTable(t *testing.T) {
	s := openTestSQLite(t)
	companies, err := s.ListCompanies(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, companies)
	assert.Empty(t, companies)
}

func TestSQLite_SaveSubmission(t *testing.T) {
	s := openTestSQLite(t)
	ctx := context.Background()

	sub := &types.Submission{
		ID:        uuid.New(),
		Kind:      types.SubmissionKindCompany,
		Subject:   "New Company Submission: Acme",
		Payload:   map[string]string{"companyName": "Acme"},
		CreatedAt: time.Now(),
	}
	require.NoError(t, s.SaveSubmission(ctx, sub))

	var kind, subject string
	require.NoError(t, s.db.QueryRowContext(ctx,
		`SELECT kind, subject FROM submissions WHERE id = ?`, sub.ID.String()).Scan(&kind, &subject))
	assert.Equal(t, "company", kind)
	assert.Equal(t, sub.Subject, subject)

	// Same ID twice violates the primary key.
	assert.Error(t, s.SaveSubmission(ctx, sub))
}

func TestOpen_Drivers(t *testing.T) {
	ctx := context.Background()

	st, err := Open(ctx, Options{Driver: DriverMemory})
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, st)

	st, err = Open(ctx, Options{SQLitePath: filepath.Join(t.TempDir(), "d.db")})
	require.NoError(t, err)
	assert.IsType(t, &SQLite{}, st)
	require.NoError(t, st.Close())

	_, err = Open(ctx, Options{Driver: DriverPostgres})
	assert.ErrorContains(t, err, "database URL")

	_, err = Open(ctx, Options{Driver: "mongo"})
	assert.ErrorContains(t, err, "unknown storage driver")
}
