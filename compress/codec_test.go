package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/structbio/bcif/errs"
	"github.com/structbio/bcif/format"
)

func testPayload() []byte {
	var buf bytes.Buffer
	for i := 0; i < 256; i++ {
		buf.WriteString("atom_site coordinates and other repetitive column text ")
		buf.WriteByte(byte(i))
	}

	return buf.Bytes()
}

func TestCodec_RoundTrip(t *testing.T) {
	types := []format.CompressionType{
		format.CompressionNone,
		format.CompressionGzip,
		format.CompressionZstd,
		format.CompressionLZ4,
		format.CompressionS2,
	}

	payload := testPayload()
	for _, ct := range types {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := ForType(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, decompressed)
		})
	}
}

func TestDetect_MagicBytes(t *testing.T) {
	payload := testPayload()
	types := []format.CompressionType{
		format.CompressionGzip,
		format.CompressionZstd,
		format.CompressionLZ4,
		format.CompressionS2,
	}

	for _, ct := range types {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := ForType(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)
			require.Equal(t, ct, Detect(compressed))
		})
	}
}

func TestDetect_BareMsgpackIsNone(t *testing.T) {
	// A BinaryCIF file starts with a msgpack fixmap byte.
	require.Equal(t, format.CompressionNone, Detect([]byte{0x83, 0xA7}))
	require.Equal(t, format.CompressionNone, Detect(nil))
}

func TestForType_Unknown(t *testing.T) {
	_, err := ForType(format.CompressionType(42))
	require.ErrorIs(t, err, errs.ErrUsage)
}
