package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReader(input string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(input))
}

func TestPromptText(t *testing.T) {
	var out bytes.Buffer

	got, err := promptText(newReader("  Colombo  \n"), &out, "City")
	require.NoError(t, err)
	assert.Equal(t, "Colombo", got)
	assert.Equal(t, "City: ", out.String())
}

func TestPromptText_EOFWithPartialLine(t *testing.T) {
	var out bytes.Buffer

	got, err := promptText(newReader("Colombo"), &out, "City")
	require.NoError(t, err)
	assert.Equal(t, "Colombo", got)
}

func TestPromptText_EOFEmpty(t *testing.T) {
	var out bytes.Buffer

	_, err := promptText(newReader(""), &out, "City")
	assert.Error(t, err)
}

func TestPromptPassword(t *testing.T) {
	origReadPassword := readPassword
	defer func() { readPassword = origReadPassword }()
	readPassword = func(fd int) ([]byte, error) {
		return []byte("secret123"), nil
	}

	var out bytes.Buffer
	got, err := promptPassword(0, &out, "Password")
	require.NoError(t, err)
	assert.Equal(t, "secret123", got)
	assert.Equal(t, "Password: \n", out.String())
}

func TestPromptFloat(t *testing.T) {
	var out bytes.Buffer

	got, err := promptFloat(newReader("6.9271\n"), &out, "Latitude", 0)
	require.NoError(t, err)
	assert.Equal(t, 6.9271, got)

	got, err = promptFloat(newReader("\n"), &out, "Latitude", 7.29)
	require.NoError(t, err)
	assert.Equal(t, 7.29, got)

	_, err = promptFloat(newReader("abc\n"), &out, "Latitude", 0)
	assert.Error(t, err)
}

func TestPromptInt(t *testing.T) {
	var out bytes.Buffer

	got, err := promptInt(newReader("5000\n"), &out, "Radius", 0)
	require.NoError(t, err)
	assert.Equal(t, 5000, got)

	got, err = promptInt(newReader("\n"), &out, "Radius", 5000)
	require.NoError(t, err)
	assert.Equal(t, 5000, got)
}

func TestPromptDefault(t *testing.T) {
	var out bytes.Buffer

	got, err := promptDefault(newReader("\n"), &out, "Full name", "Test Valuer")
	require.NoError(t, err)
	assert.Equal(t, "Test Valuer", got)
	assert.Contains(t, out.String(), "[Test Valuer]")

	got, err = promptDefault(newReader("Renamed\n"), &out, "Full name", "Test Valuer")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got)
}
