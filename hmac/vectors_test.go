package hmac

import (
	"encoding/hex"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type vectorFile struct {
	Vectors []vector `yaml:"vectors"`
}

type vector struct {
	Name      string `yaml:"name"`
	Algorithm string `yaml:"algorithm"`
	Key       string `yaml:"key"`
	Message   string `yaml:"message"`
	Tag       string `yaml:"tag"`
}

func loadVectors(t *testing.T) []vector {
	t.Helper()

	raw, err := os.ReadFile("testdata/vectors.yaml")
	require.NoError(t, err)

	var file vectorFile
	require.NoError(t, yaml.Unmarshal(raw, &file))
	require.NotEmpty(t, file.Vectors)

	return file.Vectors
}

func engineFor(t *testing.T, algorithm string) *Engine {
	t.Helper()

	switch algorithm {
	case "sha-1":
		return NewSHA1()
	case "sha-256":
		return NewSHA256()
	case "sha-384":
		return NewSHA384()
	case "sha-512":
		return NewSHA512()
	default:
		t.Fatalf("unknown algorithm %q", algorithm)

		return nil
	}
}

func TestVectors(t *testing.T) {
	for _, v := range loadVectors(t) {
		t.Run(fmt.Sprintf("%s/%s", v.Algorithm, v.Name), func(t *testing.T) {
			e := engineFor(t, v.Algorithm)

			rawKey, err := hex.DecodeString(v.Key)
			require.NoError(t, err)
			require.LessOrEqual(t, len(rawKey), e.BlockSize())

			message, err := hex.DecodeString(v.Message)
			require.NoError(t, err)

			want, err := hex.DecodeString(v.Tag)
			require.NoError(t, err)

			// The engine takes keys of exactly the block size;
			// zero-padding matches RFC 2104 normalization of short keys.
			key := make([]byte, e.BlockSize())
			copy(key, rawKey)

			tag, err := e.Compute(key, message)
			require.NoError(t, err)
			assert.Equal(t, want, tag, "one-shot")

			assert.Equal(t, want, stream(t, e, key, split(message, 7)), "streaming")
		})
	}
}
