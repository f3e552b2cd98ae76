package basesets

import (
	"testing"

	"basemedia/core/baseset"
	"basemedia/core/checksum"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shortIDs(qs []baseset.ContentQuery) []uint32 {
	ids := make([]uint32, len(qs))
	for i, q := range qs {
		ids[i] = q.ShortID
	}
	return ids
}

func TestParseContentQuery(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want []uint32
	}{
		{"ShortName", "OSFX", []uint32{baseset.PackShortName("OSFX")}},
		{"NumericID", "1481003855", []uint32{1481003855}},
		{"ShortDigitsTryBoth", "1234", []uint32{1234, baseset.PackShortName("1234")}},
		{"IDPrefix", "id:1234", []uint32{1234}},
		{"NamePrefix", "name:1234", []uint32{baseset.PackShortName("1234")}},
		{"NamePrefixLetters", "name:OSFX", []uint32{baseset.PackShortName("OSFX")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qs, err := ParseContentQuery(tt.id, "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, shortIDs(qs))
			for _, q := range qs {
				assert.False(t, q.CheckDigest)
			}
		})
	}

	t.Run("WithChecksum", func(t *testing.T) {
		qs, err := ParseContentQuery("12", "00112233445566778899AABBCCDDEEFF")
		require.NoError(t, err)
		require.Len(t, qs, 2)
		for _, q := range qs {
			assert.True(t, q.CheckDigest)
			assert.Equal(t, "00112233445566778899aabbccddeeff", q.Digest.String())
		}
	})

	t.Run("MalformedChecksum", func(t *testing.T) {
		_, err := ParseContentQuery("OSFX", "xyz")
		assert.ErrorIs(t, err, checksum.ErrMalformed)
	})

	t.Run("InvalidPrefixedIDs", func(t *testing.T) {
		for _, id := range []string{"id:OSFX", "id:", "id:99999999999", "name:"} {
			_, err := ParseContentQuery(id, "")
			assert.ErrorIs(t, err, ErrInvalidContentID, id)
		}
	})
}
