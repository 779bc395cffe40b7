package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/ctfboard/internal/model"
)

const catalogJSON = `[
  {"id": "c1", "title": "Web 100", "description": "Find the flag.", "flag": "flag{one}", "attachments": ["handout.zip"]},
  {"id": "c2", "title": "Crypto 200", "description": "Break it.", "flag": "flag{two}"}
]`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ctfs.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestChallengeCatalog_GetByID(t *testing.T) {
	catalog, err := NewChallengeCatalog(writeCatalog(t, catalogJSON))
	require.NoError(t, err)

	challenge, err := catalog.GetByID(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "Web 100", challenge.Title)
	assert.Equal(t, "flag{one}", challenge.Flag)
	assert.Equal(t, []string{"handout.zip"}, challenge.Attachments)

	_, err = catalog.GetByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestChallengeCatalog_List_PreservesOrder(t *testing.T) {
	catalog, err := NewChallengeCatalog(writeCatalog(t, catalogJSON))
	require.NoError(t, err)

	challenges, err := catalog.List(context.Background())
	require.NoError(t, err)
	require.Len(t, challenges, 2)
	assert.Equal(t, "c1", challenges[0].ID)
	assert.Equal(t, "c2", challenges[1].ID)
}

func TestChallengeCatalog_DuplicateID(t *testing.T) {
	_, err := NewChallengeCatalog(writeCatalog(t, `[
  {"id": "c1", "title": "A", "description": "", "flag": "f"},
  {"id": "c1", "title": "B", "description": "", "flag": "g"}
]`))
	require.Error(t, err)
}

func TestChallengeCatalog_MissingID(t *testing.T) {
	_, err := NewChallengeCatalog(writeCatalog(t, `[{"title": "A", "description": "", "flag": "f"}]`))
	require.Error(t, err)
}

func TestChallengeCatalog_BadJSON(t *testing.T) {
	_, err := NewChallengeCatalog(writeCatalog(t, "not json"))
	require.Error(t, err)
}

func TestChallengeCatalog_MissingFile(t *testing.T) {
	_, err := NewChallengeCatalog(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
