package repository_test

import (
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/blueprint-app/blueprint/pkg/domain/interfaces"
	"github.com/blueprint-app/blueprint/pkg/repository/memory"
	"github.com/blueprint-app/blueprint/pkg/repository/sqlite"
)

func newMemoryRepo(t *testing.T) interfaces.Repository {
	t.Helper()
	return memory.New()
}

func newSQLiteRepo(t *testing.T) interfaces.Repository {
	t.Helper()

	repo, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	gt.NoError(t, err).Required()
	t.Cleanup(func() {
		gt.NoError(t, repo.Close())
	})
	return repo
}
