package spreadsheet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRoundTrip(t *testing.T) {
	headers := []string{"Student Email", "Room ID"}

	data, err := Write(headers)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	parsed, rows, err := ReadRows(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, headers, parsed)
	assert.Empty(t, rows)
}

func TestWriteRequiresHeaders(t *testing.T) {
	_, err := Write(nil)
	require.Error(t, err)
}
