package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testConfig struct {
	env     string
	level   string
	outputs []string
}

func (c testConfig) Env() string       { return c.env }
func (c testConfig) Level() string     { return c.level }
func (c testConfig) Outputs() []string { return c.outputs }

func Test_OnInitWithFileOutput_ShouldWriteAboveLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, Init(testConfig{env: "prod", level: "warn", outputs: []string{path}}))

	Info("hidden")
	Warn("shown", zap.String("file", "x.csv"))
	Sync()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "hidden")
	assert.Contains(t, string(raw), "shown")
	assert.Contains(t, string(raw), "x.csv")
}

func Test_OnUnknownEnv_ShouldFail(t *testing.T) {
	assert.Error(t, Init(testConfig{env: "staging"}))
}

func Test_OnUnknownLevel_ShouldFail(t *testing.T) {
	assert.Error(t, Init(testConfig{env: "dev", level: "loud"}))
}
