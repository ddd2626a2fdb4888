package directory

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestFirstPollOnlyRecordsHead(t *testing.T) {
	is := is.New(t)
	logs := &fakeLogSource{head: 100}
	dir := &DirectoryServiceMock{ExpireFunc: func() {}}

	w := newTestWatcher(logs, dir)

	count, err := w.poll()
	is.NoErr(err)
	is.Equal(count, 0)
	is.Equal(w.lastBlock, uint64(100))
	is.Equal(len(logs.queries), 0)
	is.Equal(len(dir.ExpireCalls()), 0)
}

func TestPollExpiresDirectoryWhenEventsAreFound(t *testing.T) {
	is := is.New(t)
	logs := &fakeLogSource{head: 100}
	dir := &DirectoryServiceMock{ExpireFunc: func() {}}

	w := newTestWatcher(logs, dir)
	_, err := w.poll()
	is.NoErr(err)

	logs.head = 105
	logs.found = []types.Log{{BlockNumber: 103}}

	count, err := w.poll()
	is.NoErr(err)
	is.Equal(count, 1)
	is.Equal(len(dir.ExpireCalls()), 1)

	is.Equal(len(logs.queries), 1)
	is.Equal(logs.queries[0].FromBlock.Uint64(), uint64(101))
	is.Equal(logs.queries[0].ToBlock.Uint64(), uint64(105))
	is.Equal(logs.queries[0].Addresses, w.addresses)
	is.Equal(w.lastBlock, uint64(105))
}

func TestPollWithoutEventsKeepsCache(t *testing.T) {
	is := is.New(t)
	logs := &fakeLogSource{head: 10}
	dir := &DirectoryServiceMock{ExpireFunc: func() {}}

	w := newTestWatcher(logs, dir)
	w.poll()

	logs.head = 12
	count, err := w.poll()
	is.NoErr(err)
	is.Equal(count, 0)
	is.Equal(len(dir.ExpireCalls()), 0)
}

func TestPollSkipsFilterWhenNoNewBlocks(t *testing.T) {
	is := is.New(t)
	logs := &fakeLogSource{head: 10}
	dir := &DirectoryServiceMock{ExpireFunc: func() {}}

	w := newTestWatcher(logs, dir)
	w.poll()
	w.poll()

	is.Equal(len(logs.queries), 0)
}

func TestFailedFilterIsRetriedFromSameBlock(t *testing.T) {
	is := is.New(t)
	logs := &fakeLogSource{head: 10}
	dir := &DirectoryServiceMock{ExpireFunc: func() {}}

	w := newTestWatcher(logs, dir)
	w.poll()

	logs.head = 20
	logs.err = errors.New("query timeout exceeded")

	_, err := w.poll()
	is.True(err != nil)
	is.Equal(w.lastBlock, uint64(10))

	logs.err = nil
	_, err = w.poll()
	is.NoErr(err)
	is.Equal(logs.queries[1].FromBlock.Uint64(), uint64(11))
}

func TestWatcherWithoutTopicsNeverExpires(t *testing.T) {
	is := is.New(t)
	logs := &fakeLogSource{head: 10, found: []types.Log{{BlockNumber: 11}}}
	dir := &DirectoryServiceMock{ExpireFunc: func() {}}

	w := NewRegistryWatcher(context.Background(), zerolog.Nop(), logs, []common.Address{common.HexToAddress("0xa1")}, nil, 0, dir).(*registryWatcher)

	w.poll()
	logs.head = 20
	count, err := w.poll()

	is.NoErr(err)
	is.Equal(count, 0)
	is.Equal(len(logs.queries), 0)
	is.Equal(len(dir.ExpireCalls()), 0)
}

func newTestWatcher(logs LogSource, dir DirectoryService) *registryWatcher {
	addresses := []common.Address{
		common.HexToAddress("0x00000000000000000000000000000000000000a1"),
		common.HexToAddress("0x00000000000000000000000000000000000000b2"),
	}
	topics := []common.Hash{common.HexToHash("0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef")}

	return NewRegistryWatcher(context.Background(), zerolog.Nop(), logs, addresses, topics, 0, dir).(*registryWatcher)
}

type fakeLogSource struct {
	head    uint64
	found   []types.Log
	err     error
	queries []ethereum.FilterQuery
}

func (f *fakeLogSource) BlockNumber(ctx context.Context) (uint64, error) {
	return f.head, nil
}

func (f *fakeLogSource) FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
	f.queries = append(f.queries, q)
	if f.err != nil {
		return nil, f.err
	}
	return f.found, nil
}
