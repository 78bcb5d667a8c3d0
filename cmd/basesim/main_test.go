package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/automoto/balloons-static/config"
	"github.com/automoto/balloons-static/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("BASE_LOGGER_LEVEL", "error")

	root, _ := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestClassifyCommand(t *testing.T) {
	out, err := execute(t, "classify", "621", "211")
	require.NoError(t, err)
	assert.Contains(t, out, "location: AT_WALL")
	assert.Contains(t, out, "row:      CENTER_PLAY_AREA")

	out, err = execute(t, "classify", "--wall=false", "621", "211")
	require.NoError(t, err)
	assert.Contains(t, out, "location: RIGHT_PLAY_AREA")
}

func TestClassifyCommandRejectsBadInput(t *testing.T) {
	_, err := execute(t, "classify", "left", "10")
	assert.Error(t, err)

	_, err = execute(t, "classify", "10")
	assert.Error(t, err)
}

func TestDefaultsCommand(t *testing.T) {
	out, err := execute(t, "defaults")
	require.NoError(t, err)
	assert.Contains(t, out, "physics.forceConstant")
	assert.Contains(t, out, "flags.wallVisible")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(config.Default().Describe()))
}

func TestDefaultsCommandReadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "base.yaml")
	require.NoError(t, os.WriteFile(path, []byte("drag:\n  positionDelta: 7\n"), 0o600))

	out, err := execute(t, "--config", path, "defaults")
	require.NoError(t, err)
	assert.Regexp(t, `drag\.positionDelta\s+7`, out)
}

func TestRunCommand(t *testing.T) {
	out, err := execute(t, "run", "--ticks", "100", "--rub", "20", "--flight", "40")
	require.NoError(t, err)

	var snap sim.Snapshot
	require.NoError(t, json.Unmarshal([]byte(out), &snap))
	require.NotEmpty(t, snap.Balloons)
	assert.Equal(t, uint64(62), snap.Tick)
	assert.Less(t, snap.Balloons[0].Charge, 0)
	assert.Equal(t, -snap.Balloons[0].Charge, snap.SweaterCharge)
	assert.False(t, snap.Balloons[0].Dragged)
}

func TestRunCommandWithoutDemo(t *testing.T) {
	out, err := execute(t, "run", "--demo=false", "--ticks", "5", "--two")
	require.NoError(t, err)

	var snap sim.Snapshot
	require.NoError(t, json.Unmarshal([]byte(out), &snap))
	assert.Equal(t, uint64(5), snap.Tick)
	assert.Zero(t, snap.SweaterCharge)
	require.Len(t, snap.Balloons, 2)
	assert.True(t, snap.Balloons[1].Visible)
}

func TestRootLogsEffectiveConfiguration(t *testing.T) {
	t.Setenv("BASE_DRAG_POSITIONDELTA", "9")
	core, logs := observer.New(zap.InfoLevel)

	root, a := newRootCmd()
	a.newLogger = func(config.LoggerConfig) *zap.Logger { return zap.New(core) }
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"classify", "440", "211"})
	require.NoError(t, root.Execute())

	entries := logs.FilterMessage("effective configuration").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Len(t, fields, len(config.Default().Describe()))
	assert.Equal(t, 9.0, fields["drag.positionDelta"])
}
