package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadParsesLibraryRootsTopUnitAndOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "elabctl.yaml")
	contents := `
library_roots:
  - ./rtl
  - ./ip/vendor
top_unit: top
depth_cap: 16
overrides:
  - name: .WIDTH
    value: "32"
  - name: .DEPTH
    value: "4"
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"./rtl", "./ip/vendor"}, cfg.LibraryRoots)
	require.Equal(t, "top", cfg.TopUnit)
	require.Equal(t, 16, cfg.DepthCap)
	require.Len(t, cfg.Overrides, 2)
	require.Equal(t, ".WIDTH", cfg.Overrides[0].Name)
	require.Equal(t, "32", cfg.Overrides[0].Value)
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err, "expected an error for a missing config file")
}

func TestDefaultIsZeroValue(t *testing.T) {
	cfg := Default()
	require.Empty(t, cfg.TopUnit)
	require.Zero(t, cfg.DepthCap)
	require.Empty(t, cfg.LibraryRoots)
	require.Empty(t, cfg.Overrides)
}
