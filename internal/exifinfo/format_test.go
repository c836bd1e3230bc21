package exifinfo

import (
	"encoding/binary"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatExposureTime(t *testing.T) {
	tests := []struct {
		num, den int64
		expected string
	}{
		{1, 250, "1/250 sec"},
		{10, 2500, "1/250 sec"}, // not in lowest terms in the file
		{1, 2, "1/2 sec"},
		{2, 1, "2 sec"},
		{1, 1, "1 sec"},
		{3, 2, "1.5 sec"},
	}
	for _, test := range tests {
		got := FormatExposureTime(big.NewRat(test.num, test.den))
		assert.Equal(t, test.expected, got, "%d/%d", test.num, test.den)
	}
}

func TestFormatEV(t *testing.T) {
	tests := []struct {
		num, den int64
		expected string
	}{
		{0, 1, "+0"},
		{1, 3, "+ 1/3"},
		{-1, 3, "- 1/3"},
		{4, 3, "+1 1/3"},
		{-5, 3, "-1 2/3"},
		{2, 1, "+2"},
		{-2, 1, "-2"},
	}
	for _, test := range tests {
		got := FormatEV(big.NewRat(test.num, test.den))
		assert.Equal(t, test.expected, got, "%d/%d", test.num, test.den)
	}
}

func TestFormatAperture(t *testing.T) {
	tests := []struct {
		num, den int64
		expected string
	}{
		{8, 1, "f/8"},
		{28, 10, "f/2.8"},
		{56, 10, "f/5.6"},
		{95, 10, "f/9.5"},
	}
	for _, test := range tests {
		got := FormatAperture(big.NewRat(test.num, test.den))
		assert.Equal(t, test.expected, got, "%d/%d", test.num, test.den)
	}
}

func TestEnumFallback(t *testing.T) {
	assert.Equal(t, "Spot", enumValue(meteringModes, 3))
	assert.Equal(t, "Undefined", enumValue(meteringModes, 42))
	assert.Equal(t, "Landscape", enumValue(exposurePrograms, 8))
	assert.Equal(t, "Undefined", enumValue(exposurePrograms, 99))
	assert.Equal(t, "Auto bracket", enumValue(exposureModes, 2))
	assert.Equal(t, "Undefined", enumValue(exposureModes, 7))
}

func utf16Bytes(s string, order binary.ByteOrder) []byte {
	var out []byte
	for _, r := range s {
		buf := make([]byte, 2)
		order.PutUint16(buf, uint16(r))
		out = append(out, buf...)
	}
	return out
}

func TestDecodeUserCommentUnicode(t *testing.T) {
	for _, order := range []binary.ByteOrder{binary.BigEndian, binary.LittleEndian} {
		raw := append([]byte("UNICODE\x00"), utf16Bytes("première", order)...)
		got, err := DecodeUserComment(raw, order)
		require.NoError(t, err)
		assert.Equal(t, "première", got)
	}
}

func TestDecodeUserCommentAscii(t *testing.T) {
	raw := append([]byte("ASCII\x00\x00\x00"), []byte("plain comment\x00\x00")...)
	got, err := DecodeUserComment(raw, binary.BigEndian)
	require.NoError(t, err)
	assert.Equal(t, "plain comment", got)
}

func TestDecodeUserCommentUnknownEncodingFallsBackToAscii(t *testing.T) {
	raw := append([]byte("JIS\x00\x00\x00\x00\x00"), []byte("whatever")...)
	got, err := DecodeUserComment(raw, binary.BigEndian)
	require.NoError(t, err)
	assert.Equal(t, "whatever", got)
}

func TestDecodeUserCommentTooShort(t *testing.T) {
	_, err := DecodeUserComment([]byte("short"), binary.BigEndian)
	assert.Error(t, err)
}
