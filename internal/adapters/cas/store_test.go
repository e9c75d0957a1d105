package cas_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cascade/internal/adapters/cas"
	"go.trai.ch/cascade/internal/core/domain"
)

func TestStore_PutGet(t *testing.T) {
	t.Parallel()

	buildPath := t.TempDir()
	store := cas.NewStore()

	stamp := domain.Stamp{
		Generator:   `-G "Unix Makefiles"`,
		Fingerprint: cas.NewHasher().Fingerprint("-G", "Unix Makefiles"),
	}

	t.Run("put and get", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, store.Put(buildPath, stamp))

		got, err := store.Get(buildPath)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, stamp, *got)
		assert.FileExists(t, filepath.Join(buildPath, ".cascade", "stamp.json"))
	})

	t.Run("get missing", func(t *testing.T) {
		t.Parallel()
		got, err := store.Get(t.TempDir())
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestStore_Get_Corrupt(t *testing.T) {
	t.Parallel()

	buildPath := t.TempDir()
	store := cas.NewStore()
	require.NoError(t, store.Put(buildPath, domain.Stamp{Generator: "x"}))
	require.NoError(t, os.WriteFile(domain.StampPath(buildPath), []byte("{not json"), domain.FilePerm))

	got, err := store.Get(buildPath)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domain.ErrStampUnmarshalFailed))
}

func TestStore_Put_Unwritable(t *testing.T) {
	t.Parallel()

	// A regular file where the metadata directory should go blocks MkdirAll.
	buildPath := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(buildPath, domain.CascadeDirName), nil, domain.FilePerm))

	err := cas.NewStore().Put(buildPath, domain.Stamp{})
	assert.True(t, errors.Is(err, domain.ErrStampWriteFailed))
}

func TestHasher_Fingerprint(t *testing.T) {
	t.Parallel()

	h := cas.NewHasher()
	a := h.Fingerprint("-G", "Ninja")
	assert.Len(t, a, 16)
	assert.Equal(t, a, h.Fingerprint("-G", "Ninja"), "deterministic")
	assert.NotEqual(t, a, h.Fingerprint("-G", "Unix Makefiles"))
	assert.NotEqual(t, h.Fingerprint("ab", "c"), h.Fingerprint("a", "bc"))
	assert.NotEqual(t, h.Fingerprint(), h.Fingerprint(""))
}
