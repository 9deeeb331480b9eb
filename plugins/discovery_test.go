package plugins_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/jumppad-labs/hdltarget/logger"
	"github.com/jumppad-labs/hdltarget/plugins"
	"github.com/stretchr/testify/require"
)

func createPlugin(t *testing.T, dir, name string, mode os.FileMode) string {
	if runtime.GOOS == "windows" {
		name += ".exe"
	}

	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte("#!/bin/sh\n"), mode))

	return p
}

func TestDiscoverFindsExecutableTargets(t *testing.T) {
	dir := t.TempDir()
	stubPath := createPlugin(t, dir, "tgt-stub", 0755)
	vvpPath := createPlugin(t, dir, "tgt-vvp", 0755)
	createPlugin(t, dir, "other", 0755)

	d := plugins.NewTargetDiscovery([]string{dir}, "", logger.NewTestLogger(t))

	targets, err := d.Discover()
	require.NoError(t, err)
	require.Equal(t, []plugins.TargetInfo{
		{Name: "stub", Path: stubPath},
		{Name: "vvp", Path: vvpPath},
	}, targets)
}

func TestDiscoverSkipsNonExecutableFiles(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not used on windows")
	}

	dir := t.TempDir()
	createPlugin(t, dir, "tgt-stub", 0644)

	targets, err := plugins.NewTargetDiscovery([]string{dir}, "", nil).Discover()
	require.NoError(t, err)
	require.Empty(t, targets)
}

func TestDiscoverFirstDirectoryWins(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()

	p := createPlugin(t, first, "tgt-stub", 0755)
	createPlugin(t, second, "tgt-stub", 0755)

	ti, err := plugins.NewTargetDiscovery([]string{first, second, first}, "", nil).Find("stub")
	require.NoError(t, err)
	require.Equal(t, p, ti.Path)
}

func TestDiscoverIgnoresMissingDirectories(t *testing.T) {
	targets, err := plugins.NewTargetDiscovery([]string{filepath.Join(t.TempDir(), "missing")}, "", nil).Discover()
	require.NoError(t, err)
	require.Empty(t, targets)
}

func TestDiscoverFailsWhenDirectoryIsAFile(t *testing.T) {
	dir := t.TempDir()
	file := createPlugin(t, dir, "tgt-stub", 0755)

	_, err := plugins.NewTargetDiscovery([]string{file}, "", nil).Discover()
	require.Error(t, err)
}

func TestFindReturnsErrorForUnknownTarget(t *testing.T) {
	_, err := plugins.NewTargetDiscovery([]string{t.TempDir()}, "", nil).Find("vvp")
	require.ErrorContains(t, err, "target vvp not found")
}
