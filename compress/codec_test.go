package compress

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/arloliu/hilbert/format"
	"github.com/stretchr/testify/require"
)

var errRoundTrip = errors.New("round trip mismatch")

var allTypes = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

// tracePayload mimics a trace payload: 2D points along a walk where consecutive
// steps repeat most coordinates.
func tracePayload(steps, points int) []byte {
	rng := rand.New(rand.NewPCG(1, 2))
	base := make([]byte, points*2)
	for i := range base {
		base[i] = byte(rng.IntN(256))
	}

	out := make([]byte, 0, steps*len(base))
	for range steps {
		base[rng.IntN(len(base))] ^= 1
		out = append(out, base...)
	}

	return out
}

func TestGetCodec(t *testing.T) {
	for _, ct := range allTypes {
		codec, err := GetCodec(ct)
		require.NoError(t, err)
		require.Equal(t, ct, codec.Type())
	}

	_, err := GetCodec(format.CompressionType(0x9))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported compression type")
}

func TestCodecs_RoundTrip(t *testing.T) {
	payloads := map[string][]byte{
		"single byte": {42},
		"small":       tracePayload(4, 16),
		"large":       tracePayload(64, 4096),
		"zeros":       make([]byte, 1<<16),
	}

	for _, ct := range allTypes {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		for name, payload := range payloads {
			t.Run(ct.String()+"/"+name, func(t *testing.T) {
				packed, err := codec.Compress(payload)
				require.NoError(t, err)

				got, err := codec.Decompress(packed, len(payload))
				require.NoError(t, err)
				require.Equal(t, payload, got)
			})
		}
	}
}

func TestCodecs_Shrink(t *testing.T) {
	payload := tracePayload(64, 4096)

	for _, ct := range allTypes[1:] {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		packed, err := codec.Compress(payload)
		require.NoError(t, err)
		require.Less(t, len(packed), len(payload), ct.String())
	}
}

func TestCodecs_EmptyData(t *testing.T) {
	for _, ct := range allTypes {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		packed, err := codec.Compress(nil)
		require.NoError(t, err)
		require.Empty(t, packed)

		got, err := codec.Decompress(nil, 0)
		require.NoError(t, err)
		require.Empty(t, got)
	}
}

func TestCodecs_InvalidData(t *testing.T) {
	garbage := []byte{0xFF, 0xFE, 0xFD, 0xFC, 0x00, 0x01, 0x02, 0x03}

	for _, ct := range allTypes[1:] {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		_, err = codec.Decompress(garbage, 64)
		require.Error(t, err, ct.String())
	}
}

func TestLZ4_UnknownSize(t *testing.T) {
	payload := bytes.Repeat([]byte("0,1,1,0,"), 4096)
	codec := NewLZ4Compressor()

	packed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Less(t, len(packed)*4, len(payload), "payload must expand beyond the first guess")

	got, err := codec.Decompress(packed, 0)
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestNoOp_SharesInput(t *testing.T) {
	payload := []byte{1, 2, 3}
	codec := NewNoOpCompressor()

	packed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Same(t, &payload[0], &packed[0])

	got, err := codec.Decompress(packed, 99)
	require.NoError(t, err)
	require.Same(t, &payload[0], &got[0])
}

func TestCodecs_Concurrent(t *testing.T) {
	payload := tracePayload(16, 512)

	for _, ct := range allTypes {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		var wg sync.WaitGroup
		errs := make([]error, 8)
		for g := range errs {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range 20 {
					packed, err := codec.Compress(payload)
					if err != nil {
						errs[g] = err
						return
					}
					got, err := codec.Decompress(packed, len(payload))
					if err != nil {
						errs[g] = err
						return
					}
					if !bytes.Equal(payload, got) {
						errs[g] = errRoundTrip
						return
					}
				}
			}()
		}
		wg.Wait()

		for _, err := range errs {
			require.NoError(t, err, ct.String())
		}
	}
}

func BenchmarkCodecs(b *testing.B) {
	payload := tracePayload(64, 4096)

	for _, ct := range allTypes {
		codec, err := GetCodec(ct)
		if err != nil {
			b.Fatal(err)
		}
		packed, err := codec.Compress(payload)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(ct.String()+"/Compress", func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(payload)))
			for b.Loop() {
				_, _ = codec.Compress(payload)
			}
		})

		b.Run(ct.String()+"/Decompress", func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(payload)))
			for b.Loop() {
				_, _ = codec.Decompress(packed, len(payload))
			}
		})
	}
}
