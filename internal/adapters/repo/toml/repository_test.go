package toml

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bnema/splitcalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, sessionPath string) *Repository {
	t.Helper()

	config := viper.New()
	config.Set("store.path", sessionPath)

	repo, err := NewRepository(config)
	require.NoError(t, err)
	return repo
}

func sampleSession() domain.Session {
	return domain.Session{
		Items: []domain.Item{
			{
				ID:           "item-1",
				Name:         "Pizza",
				UnitCost:     decimal.RequireFromString("12.5"),
				Quantity:     2,
				Participants: []domain.ParticipantID{"p-1", domain.DetachedParticipantID("p-0", "Old")},
			},
			{ID: "item-2", Name: "", UnitCost: decimal.Zero, Quantity: 0, Participants: []domain.ParticipantID{}},
		},
		Participants: []domain.Participant{{ID: "p-1", Name: "Ana"}, {ID: "p-2", Name: ""}},
		TaxApplied:   true,
		CountryCode:  "uk",
		UpdatedAt:    time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC),
	}
}

func TestRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "session.toml"))
	session := sampleSession()

	require.NoError(t, repo.Save(context.Background(), session))

	got, found, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.True(t, found)

	require.Len(t, got.Items, 2)
	assert.Equal(t, session.Items[0].ID, got.Items[0].ID)
	assert.Equal(t, "Pizza", got.Items[0].Name)
	assert.True(t, session.Items[0].UnitCost.Equal(got.Items[0].UnitCost))
	assert.Equal(t, int64(2), got.Items[0].Quantity)
	assert.Equal(t, session.Items[0].Participants, got.Items[0].Participants)
	assert.Empty(t, got.Items[1].Participants)
	assert.Equal(t, session.Participants, got.Participants)
	assert.True(t, got.TaxApplied)
	assert.Equal(t, "uk", got.CountryCode)
	assert.True(t, session.UpdatedAt.Equal(got.UpdatedAt))
}

func TestRepositoryKeepsEmptyCollections(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "session.toml"))

	require.NoError(t, repo.Save(context.Background(), domain.Session{CountryCode: "india"}))

	got, found, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.True(t, found)
	assert.Empty(t, got.Items)
	assert.Empty(t, got.Participants)
}

func TestRepositoryMissingFileReportsNotFound(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "missing", "session.toml"))

	_, found, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRepositoryPartialRecordFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	sessionPath := filepath.Join(t.TempDir(), "session.toml")
	require.NoError(t, os.WriteFile(sessionPath, []byte("version = 1\n"), 0o600))

	repo := newTestRepository(t, sessionPath)

	got, found, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, got.Items, 1)
	require.Len(t, got.Participants, 1)
	assert.NotEmpty(t, got.Items[0].ID)
	assert.NotEmpty(t, got.Participants[0].ID)
	assert.False(t, got.TaxApplied)
	assert.Equal(t, domain.DefaultCountryCode, got.CountryCode)
}

func TestRepositoryLegacyRecordWithoutVersionOrIDs(t *testing.T) {
	t.Parallel()

	sessionPath := filepath.Join(t.TempDir(), "session.toml")
	require.NoError(t, os.WriteFile(sessionPath, []byte(strings.Join([]string{
		"tax_applied = true",
		"",
		"[[items]]",
		"name = \"Bread\"",
		"cost = \"-4\"",
		"quantity = -1",
		"",
		"[[people]]",
		"name = \"Kim\"",
		"",
	}, "\n")), 0o600))

	repo := newTestRepository(t, sessionPath)

	got, found, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Bread", got.Items[0].Name)
	assert.True(t, got.Items[0].UnitCost.IsZero())
	assert.Equal(t, int64(0), got.Items[0].Quantity)
	assert.NotEmpty(t, got.Items[0].ID)
	require.Len(t, got.Participants, 1)
	assert.Equal(t, "Kim", got.Participants[0].Name)
	assert.True(t, got.TaxApplied)
}

func TestRepositorySaveCreatesDefaultPathAndEnforcesPermissions(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	repo, err := NewRepository(viper.New())
	require.NoError(t, err)

	require.NoError(t, repo.Save(context.Background(), sampleSession()))

	sessionPath := filepath.Join(homeDir, ".splitcalc", "session.toml")
	assert.Equal(t, sessionPath, repo.Path())
	info, err := os.Stat(sessionPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestRepositoryMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	sessionPath := filepath.Join(t.TempDir(), "session.toml")
	require.NoError(t, os.WriteFile(sessionPath, []byte("items = ["), 0o600))

	repo := newTestRepository(t, sessionPath)

	_, _, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode session file")
}

func TestRepositorySaveCanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "session.toml"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Save(ctx, sampleSession())
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRepositoryConcurrentSavesLeaveOneCompleteRecord(t *testing.T) {
	t.Parallel()

	sessionPath := filepath.Join(t.TempDir(), "session.toml")
	repoA := newTestRepository(t, sessionPath)
	repoB := newTestRepository(t, sessionPath)

	const perRepoWrites = 50
	start := make(chan struct{})
	errCh := make(chan error, perRepoWrites*2)
	var wg sync.WaitGroup
	wg.Add(2)

	write := func(repo *Repository, prefix string) {
		defer wg.Done()
		<-start
		for i := 0; i < perRepoWrites; i++ {
			session := sampleSession()
			session.Participants[0].Name = prefix + strconv.Itoa(i)
			errCh <- repo.Save(context.Background(), session)
		}
	}

	go write(repoA, "a-")
	go write(repoB, "b-")

	close(start)
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	got, found, err := repoA.Load(context.Background())
	require.NoError(t, err)
	require.True(t, found)
	assert.Len(t, got.Items, 2)
	assert.Len(t, got.Participants, 2)
}

func TestRepositorySaveSerializedTOMLIncludesVersion(t *testing.T) {
	t.Parallel()

	sessionPath := filepath.Join(t.TempDir(), "session.toml")
	repo := newTestRepository(t, sessionPath)

	require.NoError(t, repo.Save(context.Background(), sampleSession()))

	data, err := os.ReadFile(sessionPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "tax_applied = true")
	assert.Contains(t, string(data), "[[items]]")
	assert.Contains(t, string(data), "[[people]]")
}

func TestRepositoryFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	sessionPath := filepath.Join(t.TempDir(), "session.toml")
	require.NoError(t, os.WriteFile(sessionPath, []byte("version = 999\n"), 0o600))

	repo := newTestRepository(t, sessionPath)

	_, _, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported session schema version")
}
