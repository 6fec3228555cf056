//go:build debug
// +build debug

package vlq

import (
	"testing"

	"github.com/pi/bitvlq/bits"
	"github.com/pi/bitvlq/debug"
	"github.com/stretchr/testify/require"
)

// runs the reader's logging branches; go test -tags debug ./...
func TestReaderLogsTransitions(t *testing.T) {
	require.True(t, debug.Enabled)
	for _, v := range boundaryValues() {
		e := Encode(v)
		data := e.Bytes()
		var r Reader
		for i := range data {
			got, err := r.Poll(bits.NewBuf(data[i : i+1]))
			if err == nil {
				require.Equal(t, v, got)
				break
			}
			require.ErrorIs(t, err, ErrInsufficient)
		}
		require.Equal(t, Complete, r.State())
	}
}
