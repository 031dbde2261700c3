package storage

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/yachtfleet/internal/model/customerr"
)

func Test_OnShortRow_ShouldFollowPolicy(t *testing.T) {
	path := writeFile(t, "rows.csv", "a;b;c\n1;2;3\n4;5\n6;7;8;9\n")

	var lines []int
	err := readRows(path, 3, SkipMalformed, func(r row) error {
		lines = append(lines, r.line)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, lines)

	lines = nil
	err = readRows(path, 3, AbortOnMalformed, func(r row) error {
		lines = append(lines, r.line)
		return nil
	})
	var malformed *customerr.MalformedRowError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, 3, malformed.Line)
	assert.Equal(t, []int{2}, lines)
}

func Test_OnMalformedPolicy_ShouldPrintName(t *testing.T) {
	assert.Equal(t, "skip", SkipMalformed.String())
	assert.Equal(t, "abort", AbortOnMalformed.String())
}
