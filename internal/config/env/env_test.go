package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidates(t *testing.T) {
	assert.Equal(t, []string{filepath.Join(Dir, ".env.development"), ".env"}, Candidates(""))
	assert.Equal(t, []string{filepath.Join(Dir, ".env.production"), ".env"}, Candidates("production"))
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	oldDir := Dir
	Dir = dir
	t.Cleanup(func() { Dir = oldDir })

	t.Setenv("ENV", "staging")
	t.Setenv("AGENCYSITE_TEST_PRESET", "from-process")

	content := "AGENCYSITE_TEST_VALUE=from-file\nAGENCYSITE_TEST_PRESET=from-file\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.staging"), []byte(content), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("AGENCYSITE_TEST_VALUE") })

	path, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".env.staging"), path)
	assert.Equal(t, "from-file", os.Getenv("AGENCYSITE_TEST_VALUE"))
	assert.Equal(t, "from-process", os.Getenv("AGENCYSITE_TEST_PRESET"))
}
