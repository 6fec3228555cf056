package vlq

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/icza/bitio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitioRoundTrip(t *testing.T) {
	vals := sampleValues(3000)
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	var total uint
	for _, v := range vals {
		require.NoError(t, WriteBits(w, v))
		total += ClassOf(v).TotalBits()
	}
	require.NoError(t, w.Close())
	assert.EqualValues(t, (total+7)/8, buf.Len(), "values must pack without padding")

	r := bitio.NewReader(bytes.NewReader(buf.Bytes()))
	for _, v := range vals {
		got, err := ReadBits(r)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestBitioMatchesEncode(t *testing.T) {
	for _, v := range boundaryValues() {
		var buf bytes.Buffer
		w := bitio.NewWriter(&buf)
		require.NoError(t, WriteBits(w, v))
		require.NoError(t, w.Close())
		e := Encode(v)
		assert.Equal(t, e.Bytes(), buf.Bytes(), "%#x", v)
	}
}

func TestBitioTruncated(t *testing.T) {
	e := Encode(1<<64 - 1)
	r := bitio.NewReader(bytes.NewReader(e.Bytes()[:5]))
	_, err := ReadBits(r)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInsufficient))
	// the prefix is gone from r, so a second attempt has nothing to read
	_, err = ReadBits(r)
	assert.True(t, errors.Is(err, io.EOF))

	r = bitio.NewReader(bytes.NewReader(nil))
	_, err = ReadBits(r)
	assert.True(t, errors.Is(err, ErrInsufficient))
	assert.True(t, errors.Is(err, io.EOF))
}
