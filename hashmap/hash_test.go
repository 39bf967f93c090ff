package hashmap

import (
	"hash/fnv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  uint32
	}{
		{
			name:  "Empty string is the seed",
			input: "",
			want:  2166136261,
		},
		{
			name:  "Single byte a",
			input: "a",
			want:  84696446,
		},
		{
			name:  "Single byte b",
			input: "b",
			want:  84696445,
		},
		{
			name:  "Short word",
			input: "foo",
			want:  1083137555,
		},
		{
			name:  "With space",
			input: "hello world",
			want:  1418570095,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Hash(tt.input))
		})
	}
}

func TestHash_MatchesFNV1(t *testing.T) {
	for _, key := range []string{"", "x", "foo", "The quick brown fox", "\x00\xff"} {
		h := fnv.New32()
		_, _ = h.Write([]byte(key))

		require.Equalf(t, h.Sum32(), Hash(key), "key %q", key)
	}
}

func TestBucket(t *testing.T) {
	require.Equal(t, 197, bucket(Hash(""), 256))
	require.Equal(t, 126, bucket(Hash("a"), 256))
	require.Equal(t, 19, bucket(Hash("foo"), 256))
	require.Equal(t, 0, bucket(0xFFFFFFFF, 1))
	require.Equal(t, int(uint64(0xFFFFFFFF)%3), bucket(0xFFFFFFFF, 3))
}
