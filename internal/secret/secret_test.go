package secret

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecret_NeverFormatsValue(t *testing.T) {
	s := New("correct-secret")

	assert.Equal(t, redacted, s.String())
	assert.Equal(t, redacted, fmt.Sprintf("%v", s))
	assert.Equal(t, redacted, fmt.Sprintf("%#v", s))
	assert.NotContains(t, fmt.Sprintf("%s", s), "correct")
}

func TestSecret_MarshalJSON_Redacted(t *testing.T) {
	payload := struct {
		Secret *Secret `json:"secret"`
	}{Secret: New("correct-secret")}

	b, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "correct")
	assert.Contains(t, string(b), redacted)
}

func TestSecret_ZerologRedacted(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	log.Info().Object("auth", New("correct-secret")).Msg("x")

	assert.NotContains(t, buf.String(), "correct")
}

func TestSecret_Equal(t *testing.T) {
	assert.True(t, New("abcdefghij").Equal(New("abcdefghij")))
	assert.False(t, New("abcdefghij").Equal(New("abcdefghik")))
	assert.False(t, New("abc").Equal(nil))
}

func TestSecret_Zero(t *testing.T) {
	raw := []byte("wallet-secret")
	s := FromBytes(raw)

	s.Zero()

	assert.Equal(t, make([]byte, len(raw)), raw)
	assert.Equal(t, make([]byte, len(raw)), s.Bytes())
}

func TestSecret_NilSafe(t *testing.T) {
	var s *Secret
	assert.Equal(t, 0, s.Len())
	assert.Nil(t, s.Bytes())
	s.Zero()
}

func TestSecret_LenCountsRunes(t *testing.T) {
	assert.Equal(t, 10, New("éééééééééé").Len())
	assert.Equal(t, 9, New("123456789").Len())
}

func TestWipe(t *testing.T) {
	b := []byte{1, 2, 3}
	Wipe(b)
	assert.Equal(t, []byte{0, 0, 0}, b)
}
