package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apiprobe/structdiff/pkg/differ"
	"github.com/apiprobe/structdiff/pkg/logging"
)

func TestLoadOptionsFile(t *testing.T) {
	content := `check_redundant: true
check_value: false
ignore_order: false
exclude_fields:
  - rows[*].link
  - meta
type_groups:
  - int,float,str
log:
  level: debug
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	fileOpts, err := loadOptionsFile(path)
	require.NoError(t, err)

	opts := differ.DefaultOptions()
	logCfg := logging.Config{Level: "info", Format: "console"}
	require.NoError(t, fileOpts.apply(opts, &logCfg))

	assert.True(t, opts.CheckRedundant)
	assert.False(t, opts.CheckValue)
	assert.False(t, opts.IgnoreOrder)
	// Untouched settings keep their defaults.
	assert.True(t, opts.CheckMissing)
	assert.True(t, opts.CheckType)

	assert.Equal(t, []string{"rows[*].link", "meta"}, opts.ExcludeFields)
	require.Len(t, opts.TypeGroups, 1)
	assert.Equal(t, "debug", logCfg.Level)
	assert.Equal(t, "console", logCfg.Format)
}

func TestLoadOptionsFile_Missing(t *testing.T) {
	_, err := loadOptionsFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestFileOptions_BadTypeGroup(t *testing.T) {
	fileOpts := &FileOptions{TypeGroups: []string{"int,banana"}}

	opts := differ.DefaultOptions()
	logCfg := logging.Config{}
	err := fileOpts.apply(opts, &logCfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown type tag")
}
