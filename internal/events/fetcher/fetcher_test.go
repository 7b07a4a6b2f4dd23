package fetcher

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letsssgooo/botapi/internal/botapi"
	"github.com/letsssgooo/botapi/internal/client"
)

type fakeClient struct {
	batches [][]botapi.Update
	err     error
	params  []client.GetUpdatesParams
}

func (f *fakeClient) GetMe(context.Context) (*botapi.User, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeClient) SendMessage(context.Context, client.SendMessageParams) (*botapi.Message, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeClient) GetUpdates(_ context.Context, params client.GetUpdatesParams) ([]botapi.Update, error) {
	f.params = append(f.params, params)
	if f.err != nil {
		return nil, f.err
	}
	if len(f.batches) == 0 {
		return nil, nil
	}

	batch := f.batches[0]
	f.batches = f.batches[1:]

	return batch, nil
}

func TestTelegramFetcher_AdvancesOffset(t *testing.T) {
	fake := &fakeClient{batches: [][]botapi.Update{
		{{UpdateID: 100}, {UpdateID: 101}},
		{},
		{{UpdateID: 105}},
	}}
	f := NewTelegramFetcher(fake, "message")

	updates, err := f.GetUpdates(context.Background(), 30*time.Second)
	require.NoError(t, err)
	assert.Len(t, updates, 2)
	assert.Equal(t, int64(102), f.Offset())

	updates, err = f.GetUpdates(context.Background(), 30*time.Second)
	require.NoError(t, err)
	assert.Empty(t, updates)
	assert.Equal(t, int64(102), f.Offset())

	_, err = f.GetUpdates(context.Background(), time.Second)
	require.NoError(t, err)
	assert.Equal(t, int64(106), f.Offset())

	require.Len(t, fake.params, 3)
	assert.Equal(t, int64(0), fake.params[0].Offset)
	assert.Equal(t, int64(102), fake.params[1].Offset)
	assert.Equal(t, int64(102), fake.params[2].Offset)
	assert.Equal(t, 30*time.Second, fake.params[0].Timeout)
	assert.Equal(t, []string{"message"}, fake.params[0].AllowedUpdates)
}

func TestTelegramFetcher_ErrorKeepsOffset(t *testing.T) {
	fake := &fakeClient{err: errors.New("network down")}
	f := NewTelegramFetcher(fake)

	_, err := f.GetUpdates(context.Background(), time.Second)
	require.Error(t, err)
	assert.Equal(t, int64(0), f.Offset())
}
