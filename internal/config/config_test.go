package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func Test_OnMissingFile_ShouldUseDefaults(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "yacht_koltsegek_2024.csv", s.App().ExpensesFile())
	assert.Equal(t, "yacht_berlesek_2024.csv", s.App().RentalsFile())
	assert.Equal(t, 2024, s.App().ReportYear())
	assert.Equal(t, "en", s.App().ReportLocale())
	assert.Equal(t, "prod", s.Log().Env())
	assert.Equal(t, "warn", s.Log().Level())
	assert.Equal(t, []string{"stderr"}, s.Log().Outputs())
}

func Test_OnDefaultOption_ShouldApplyBeforeFile(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "absent.yaml"), WithLogOutputs("app.log"))
	require.NoError(t, err)
	assert.Equal(t, []string{"app.log"}, s.Log().Outputs())

	path := writeConfig(t, "log:\n  outputs: [stdout]\n")
	s, err = New(path, WithLogOutputs("app.log"))
	require.NoError(t, err)
	assert.Equal(t, []string{"stdout"}, s.Log().Outputs())
}

func Test_OnPartialFile_ShouldOverrideOnlyGivenKeys(t *testing.T) {
	path := writeConfig(t, `
app:
  rentals-file: other.csv
  report-year: 2025
log:
  env: dev
`)
	s, err := New(path)
	require.NoError(t, err)

	assert.Equal(t, "yacht_koltsegek_2024.csv", s.App().ExpensesFile())
	assert.Equal(t, "other.csv", s.App().RentalsFile())
	assert.Equal(t, 2025, s.App().ReportYear())
	assert.Equal(t, "dev", s.Log().Env())
	assert.Equal(t, "warn", s.Log().Level())
}

func Test_OnBrokenYAML_ShouldFail(t *testing.T) {
	path := writeConfig(t, "app: [unclosed\n")
	_, err := New(path)
	assert.Error(t, err)
}

func Test_OnInvalidValues_ShouldFail(t *testing.T) {
	_, err := New(writeConfig(t, "app:\n  report-year: 0\n"))
	assert.Error(t, err)

	_, err = New(writeConfig(t, "app:\n  expenses-file: \"\"\n"))
	assert.Error(t, err)
}
