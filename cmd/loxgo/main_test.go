/*
File    : loxgo/cmd/loxgo/main_test.go
Package : main
*/
package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rverma-dev/loxgo/driver"
)

func TestRun_HelpAndVersionExitSuccess(t *testing.T) {
	assert.Equal(t, driver.ExitSuccess, run([]string{"--help"}))
	assert.Equal(t, driver.ExitSuccess, run([]string{"-v"}))
}

func TestRun_ServerMissingPortIsUsageError(t *testing.T) {
	assert.Equal(t, 1, run([]string{"server"}))
}

func TestRun_StageMissingFileIsUsageError(t *testing.T) {
	assert.Equal(t, 1, run([]string{"run"}))
}

func TestRun_StageMissingSourceFileFails(t *testing.T) {
	assert.Equal(t, 1, run([]string{"run", filepath.Join(t.TempDir(), "nope.lox")}))
}

func TestRun_RunStageExecutesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.lox")
	require.NoError(t, os.WriteFile(path, []byte(`print 1 + 2;`), 0o644))

	assert.Equal(t, driver.ExitSuccess, run([]string{"run", path}))
}

func TestRun_BareFilenameDefaultsToRunStage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.lox")
	require.NoError(t, os.WriteFile(path, []byte(`print "ok";`), 0o644))

	assert.Equal(t, driver.ExitSuccess, run([]string{path}))
}
