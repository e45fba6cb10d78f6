package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatUint(t *testing.T) {
	assert.Equal(t, "00001111", FormatUintBinary(0xF, 8))
	assert.Equal(t, "0x0f", FormatUintHex(0xF, 2))
	assert.Equal(t, "0xfd", FormatUintHex(0xFD, 2))
}

func TestFormatBytesHex(t *testing.T) {
	assert.Equal(t, "FD6400", FormatBytesHex([]byte{0xFD, 0x64, 0x00}))
	assert.Equal(t, "", FormatBytesHex(nil))
}

func TestParseBytesHex(t *testing.T) {
	for _, text := range []string{"fd6400", "FD 64 00", "0xFD6400", " 0XfD64 00\n"} {
		data, err := ParseBytesHex(text)
		require.NoError(t, err, text)
		assert.Equal(t, []byte{0xFD, 0x64, 0x00}, data, text)
	}

	_, err := ParseBytesHex("F")
	assert.Error(t, err)

	_, err = ParseBytesHex("GG")
	assert.Error(t, err)
}

func TestFormatSlice(t *testing.T) {
	assert.Equal(t, "1, 2, 3", FormatSlice([]int{1, 2, 3}, ", "))
	assert.Equal(t, "", FormatSlice([]int{}, ", "))
}

func TestMakeError_WrapsSentinel(t *testing.T) {
	sentinel := errors.New("sentinel")
	err := MakeError(sentinel, "value %v out of %v", 3, "range")

	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, "sentinel: value 3 out of range", err.Error())
}

func TestSortedKeys(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SortedKeys(map[string]int{"c": 1, "a": 2, "b": 3}))
}
