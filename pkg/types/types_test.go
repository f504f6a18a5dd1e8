package types

import (
	"crypto/rand"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const vectorSeedHex = "3f00ff1c9c5eaafe09c3080dacc1832b358a40d5f38ccb97e3a6c1b3b75f42ab1734e64189e157931274dbbdb428d0fb"

func TestParseMasterSeed(t *testing.T) {
	seed, err := ParseMasterSeed(vectorSeedHex)
	require.NoError(t, err)
	assert.Equal(t, byte(0x3f), seed[0])
	assert.Equal(t, byte(0xfb), seed[MasterSeedSize-1])

	tests := []struct {
		name  string
		input string
	}{
		{"too short", vectorSeedHex[:94]},
		{"too long", vectorSeedHex + "00"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMasterSeed(tt.input)
			assert.ErrorIs(t, err, ErrSeedLength)
		})
	}

	_, err = ParseMasterSeed("zz" + vectorSeedHex[2:])
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSeedLength)
}

func TestSplitSeed_SegmentsAreContiguousAndOrdered(t *testing.T) {
	for i := 0; i < 16; i++ {
		var seed MasterSeed
		_, err := rand.Read(seed[:])
		require.NoError(t, err)

		km := SplitSeed(&seed)
		require.Len(t, km.SecretSeed, SegmentSize)
		require.Len(t, km.SecretPRFKey, SegmentSize)
		require.Len(t, km.PublicSeed, SegmentSize)

		assert.Equal(t, seed[0:16], km.SecretSeed)
		assert.Equal(t, seed[16:32], km.SecretPRFKey)
		assert.Equal(t, seed[32:48], km.PublicSeed)
		assert.Equal(t, seed[:], km.Bytes())
	}
}

func TestSplitSeed_ViewsAliasSeed(t *testing.T) {
	seed, err := ParseMasterSeed(vectorSeedHex)
	require.NoError(t, err)

	km := SplitSeed(&seed)
	seed[0] = 0x00
	seed[47] = 0x00
	assert.Equal(t, byte(0x00), km.SecretSeed[0])
	assert.Equal(t, byte(0x00), km.PublicSeed[SegmentSize-1])

	// Appending to a segment must not spill into its neighbour.
	grown := append(km.SecretSeed, 0xff)
	assert.Len(t, grown, SegmentSize+1)
	assert.Equal(t, byte(0x35), seed[16])
	assert.Equal(t, byte(0x35), km.SecretPRFKey[0])
}

func TestHeaderAndPayloadJSON(t *testing.T) {
	header, err := json.Marshal(Header{Alg: "SPHINCS+128s", Typ: "JWT"})
	require.NoError(t, err)
	assert.Equal(t, `{"alg":"SPHINCS+128s","typ":"JWT"}`, string(header))

	payload := Payload{Sub: "vapor", Name: "Foo", Admin: false, Exp: 2000000000}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.Equal(t, `{"sub":"vapor","name":"Foo","admin":false,"exp":2000000000}`, string(raw))

	var decoded Payload
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, payload, decoded)
}

func TestPayloadClaims(t *testing.T) {
	p := &Payload{Sub: "vapor", Exp: 2000000000}

	sub, err := p.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "vapor", sub)

	exp, err := p.GetExpirationTime()
	require.NoError(t, err)
	require.NotNil(t, exp)
	assert.Equal(t, int64(2000000000), exp.Unix())

	exp, err = (&Payload{}).GetExpirationTime()
	require.NoError(t, err)
	assert.Nil(t, exp)

	aud, err := p.GetAudience()
	require.NoError(t, err)
	assert.Empty(t, aud)
}
