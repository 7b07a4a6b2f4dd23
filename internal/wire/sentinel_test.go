package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testFull struct {
	ID   int64     `json:"id"`
	Chat testChat  `json:"chat"`
	Date Timestamp `json:"date"`
	Text string    `json:"text,omitempty"`
}

type testStub struct {
	ID   int64    `json:"id"`
	Chat testChat `json:"chat"`
}

var testPair = SentinelPair[testFull, testStub]{Field: "date"}

func TestSentinelPair_DecodeStub(t *testing.T) {
	full, stub, err := testPair.Decode([]byte(`{"id": 7, "chat": {"id": 1, "type": "private"}, "date": 0, "text": "ignored"}`))
	require.NoError(t, err)
	assert.Nil(t, full)
	assert.Equal(t, &testStub{ID: 7, Chat: testChat{ID: 1, Type: "private"}}, stub)
}

func TestSentinelPair_DecodeFull(t *testing.T) {
	full, stub, err := testPair.Decode([]byte(`{"id": 7, "chat": {"id": 1, "type": "private"}, "date": 1700000000, "text": "hi"}`))
	require.NoError(t, err)
	assert.Nil(t, stub)
	require.NotNil(t, full)
	assert.Equal(t, int64(1700000000), full.Date.EpochSeconds())
	assert.Equal(t, "hi", full.Text)
}

func TestSentinelPair_DecodeErrors(t *testing.T) {
	_, _, err := testPair.Decode([]byte(`{"id": 7, "chat": {"id": 1, "type": "private"}}`))
	require.ErrorIs(t, err, ErrMissingField)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "date", decodeErr.Field)

	_, _, err = testPair.Decode([]byte(`{"id": 7, "chat": {"id": 1, "type": "private"}, "date": null}`))
	assert.ErrorIs(t, err, ErrMissingField)

	_, _, err = testPair.Decode([]byte(`{"id": 7, "date": 0}`))
	assert.ErrorIs(t, err, ErrMissingField)

	_, _, err = testPair.Decode([]byte(`{"id": 7, "chat": {"id": 1, "type": "private"}, "date": "soon"}`))
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestSentinelPair_Encode(t *testing.T) {
	stub := &testStub{ID: 7, Chat: testChat{ID: 1, Type: "private"}}

	data, err := testPair.Encode(nil, stub)
	require.NoError(t, err)
	assert.Equal(t, `{"id":7,"chat":{"id":1,"type":"private"},"date":0}`, string(data))

	isStub, err := IsSentinel(data, "date")
	require.NoError(t, err)
	assert.True(t, isStub)

	full, decodedStub, err := testPair.Decode(data)
	require.NoError(t, err)
	assert.Nil(t, full)
	assert.Equal(t, stub, decodedStub)

	original := &testFull{ID: 8, Chat: testChat{ID: 1, Type: "private"}, Date: FromEpochSeconds(1700000000)}
	data, err = testPair.Encode(original, nil)
	require.NoError(t, err)
	assert.Equal(t, `{"id":8,"chat":{"id":1,"type":"private"},"date":1700000000}`, string(data))

	decodedFull, _, err := testPair.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, original, decodedFull)

	_, err = testPair.Encode(nil, nil)
	assert.Error(t, err)

	_, err = testPair.Encode(original, stub)
	assert.Error(t, err)
}

func TestIsSentinel_IntegerZero(t *testing.T) {
	tests := []struct {
		name string
		date string
		stub bool
	}{
		{name: "zero", date: `0`, stub: true},
		{name: "negative zero", date: `-0`, stub: true},
		{name: "padded zero", date: ` 0 `, stub: true},
		{name: "timestamp", date: `1700000000`, stub: false},
		{name: "negative", date: `-1`, stub: false},
		{name: "float zero", date: `0.0`, stub: false},
		{name: "string zero", date: `"0"`, stub: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub, err := IsSentinel([]byte(`{"date":`+tt.date+`}`), "date")
			require.NoError(t, err)
			assert.Equal(t, tt.stub, stub)
		})
	}
}

func TestSentinelPair_NegativeZeroIsStable(t *testing.T) {
	full, stub, err := testPair.Decode([]byte(`{"id": 7, "chat": {"id": 1, "type": "private"}, "date": -0}`))
	require.NoError(t, err)
	assert.Nil(t, full)
	require.NotNil(t, stub)

	data, err := testPair.Encode(nil, stub)
	require.NoError(t, err)

	_, again, err := testPair.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, stub, again)
}

type testRequiredList struct {
	Items []testChat        `json:"items"`
	Extra []testChat        `json:"extra,omitempty"`
	Raw   []byte            `json:"raw,omitempty"`
	Next  *testRequiredList `json:"next,omitempty"`
}

func TestMarshal_NilRequiredListIsEmptyArray(t *testing.T) {
	original := testRequiredList{Next: &testRequiredList{}}

	data, err := Marshal(original)
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[],"next":{"items":[]}}`, string(data))
	assert.Nil(t, original.Items)
	assert.Nil(t, original.Next.Items)

	var decoded testRequiredList
	require.NoError(t, Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}
