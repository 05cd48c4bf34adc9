package uow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	db DBTX
}

func TestTransactionGet(t *testing.T) {
	var created int
	factories := map[RepositoryName]RepositoryFactory{
		"fake": func(db DBTX) Repository {
			created++
			return &fakeRepo{db: db}
		},
	}
	tx := NewTransaction(nil, factories)

	first, err := tx.Get("fake")
	require.NoError(t, err)
	second, err := tx.Get("fake")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, created)

	_, err = tx.Get("missing")
	require.ErrorIs(t, err, ErrRepositoryNotRegistered)
}

func TestGetAs(t *testing.T) {
	tx := NewTransaction(nil, map[RepositoryName]RepositoryFactory{
		"fake": func(db DBTX) Repository { return &fakeRepo{db: db} },
	})

	repo, err := GetAs[*fakeRepo](tx, "fake")
	require.NoError(t, err)
	assert.NotNil(t, repo)

	_, err = GetAs[string](tx, "fake")
	require.ErrorIs(t, err, ErrInvalidRepositoryType)
}

func TestRegister(t *testing.T) {
	u := NewUnitOfWork(nil)
	factory := func(db DBTX) Repository { return &fakeRepo{db: db} }

	require.NoError(t, u.Register("fake", factory))
	require.ErrorIs(t, u.Register("fake", factory), ErrRepositoryAlreadyRegistered)

	_, err := u.GetRepository("missing")
	require.ErrorIs(t, err, ErrRepositoryNotRegistered)
}
