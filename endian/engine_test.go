package endian

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLittleEndianEngine(t *testing.T) {
	e := GetLittleEndianEngine()

	buf := e.AppendUint32(nil, 0x3FC00000)
	require.Equal(t, []byte{0x00, 0x00, 0xC0, 0x3F}, buf)
	require.Equal(t, uint32(0x3FC00000), e.Uint32(buf))

	buf = e.AppendUint16(nil, 0x0201)
	require.Equal(t, []byte{0x01, 0x02}, buf)
	require.Equal(t, uint16(0x0201), e.Uint16(buf))

	buf = e.AppendUint64(nil, 0x0807060504030201)
	require.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, buf)
	require.Equal(t, uint64(0x0807060504030201), e.Uint64(buf))
}

func TestBigEndianEngine(t *testing.T) {
	e := GetBigEndianEngine()

	buf := e.AppendUint32(nil, 0x3FC00000)
	require.Equal(t, []byte{0x3F, 0xC0, 0x00, 0x00}, buf)
	require.Equal(t, uint32(0x3FC00000), e.Uint32(buf))
}
