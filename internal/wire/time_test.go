package wire

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_EpochSecondsExact(t *testing.T) {
	values := []int64{0, 1, -1, 2147483647, 1700000000, -2147483648, math.MaxInt64, math.MinInt64}

	for _, n := range values {
		assert.Equal(t, n, FromEpochSeconds(n).EpochSeconds(), "n=%d", n)
	}
}

func TestTimestamp_JSON(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 2147483647, 1700000000} {
		ts := FromEpochSeconds(n)

		data, err := json.Marshal(ts)
		require.NoError(t, err)

		var decoded Timestamp
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, ts, decoded)
		assert.Equal(t, n, decoded.EpochSeconds())
	}
}

func TestTimestamp_Errors(t *testing.T) {
	_, err := json.Marshal(NewTimestamp(time.Unix(10, 500)))
	assert.ErrorIs(t, err, ErrUnrepresentable)

	var ts Timestamp
	assert.ErrorIs(t, ts.UnmarshalJSON([]byte(`1.25`)), ErrTypeMismatch)
	assert.ErrorIs(t, ts.UnmarshalJSON([]byte(`"1700000000"`)), ErrTypeMismatch)
	assert.ErrorIs(t, ts.UnmarshalJSON([]byte(`99999999999999999999`)), ErrTypeMismatch)
}

func TestSeconds(t *testing.T) {
	s, err := FromSeconds(90)
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, s.Duration())
	assert.Equal(t, int64(90), s.Int64())

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, "90", string(data))

	var decoded Seconds
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, s, decoded)

	for _, n := range []int64{0, 1, -1, 2147483647, 1700000000} {
		s, err := FromSeconds(n)
		require.NoError(t, err)
		assert.Equal(t, n, s.Int64())
	}
}

func TestSeconds_Errors(t *testing.T) {
	_, err := FromSeconds(math.MaxInt64)
	assert.ErrorIs(t, err, ErrUnrepresentable)

	_, err = json.Marshal(Seconds(1500 * time.Millisecond))
	assert.ErrorIs(t, err, ErrUnrepresentable)

	var s Seconds
	assert.ErrorIs(t, s.UnmarshalJSON([]byte(`9223372036854775807`)), ErrTypeMismatch)
	assert.ErrorIs(t, s.UnmarshalJSON([]byte(`true`)), ErrTypeMismatch)
}
