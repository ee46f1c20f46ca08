package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFile_JSON(t *testing.T) {
	collection, err := LoadFromFile("testdata/characters.json")
	require.NoError(t, err)
	require.Len(t, collection, 3)

	assert.Equal(t, "1", collection[0].ID())
	assert.Equal(t, "Spider-Man", collection[0].Name())
	assert.Equal(t, "spider-man", collection[0].Slug())
}

func TestLoadFromFile_NormalizesMissingIDAndSlug(t *testing.T) {
	collection, err := LoadFromFile("testdata/characters.json")
	require.NoError(t, err)

	// The second record has no id or slug in the source file.
	rec := collection[1]
	assert.NotEmpty(t, rec.ID())
	assert.Equal(t, "cyborg", rec.Slug())
}

func TestLoadFromFile_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.yaml")
	content := []byte("- name: Atom\n  appearance:\n    race: Human\n- name: Groot\n  appearance:\n    race: Flora Colossus\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	collection, err := LoadFromFile(path)
	require.NoError(t, err)
	require.Len(t, collection, 2)
	assert.Equal(t, "Atom", collection[0].Name())
	assert.Equal(t, "groot", collection[1].Slug())
}

func TestLoadFromFile_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("not found", func(t *testing.T) {
		_, err := LoadFromFile(filepath.Join(dir, "missing.json"))
		assert.ErrorIs(t, err, ErrFileNotFound)
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(dir, "empty.json")
		require.NoError(t, os.WriteFile(path, nil, 0o644))
		_, err := LoadFromFile(path)
		assert.ErrorIs(t, err, ErrEmptyFile)
	})

	t.Run("invalid json", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
		_, err := LoadFromFile(path)
		assert.ErrorIs(t, err, ErrInvalidJSON)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte(":\t not yaml"), 0o644))
		_, err := LoadFromFile(path)
		assert.ErrorIs(t, err, ErrInvalidYAML)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := LoadFromFile(dir)
		assert.Error(t, err)
	})
}

func TestCollection_Find(t *testing.T) {
	collection, err := LoadFromFile("testdata/characters.json")
	require.NoError(t, err)

	assert.NotNil(t, collection.Find("1"))
	assert.Equal(t, "Spider-Man", collection.Find("spider-man").Name())
	assert.Nil(t, collection.Find("nope"))
}

func TestRecord_StringAtNonString(t *testing.T) {
	rec := Record{"id": float64(7), "name": "Atom"}
	assert.Equal(t, "7", rec.ID())
}
