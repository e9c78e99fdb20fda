package syncstate

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgtype"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/warp-contracts/syncstate/src/syncstate/request"
	monitor_api "github.com/warp-contracts/syncstate/src/utils/monitoring/api"
	"github.com/warp-contracts/syncstate/src/utils/model"
)

func TestUpdaterTestSuite(t *testing.T) {
	suite.Run(t, new(UpdaterTestSuite))
}

type UpdaterTestSuite struct {
	suite.Suite
	ctx        context.Context
	repository *memoryRepository
	monitor    *monitor_api.Monitor
	updater    *Updater
}

func (s *UpdaterTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repository = new(memoryRepository)
	s.monitor = monitor_api.NewMonitor()
	s.updater = NewUpdater().
		WithRepository(s.repository).
		WithMonitor(s.monitor)
}

func (s *UpdaterTestSuite) full() *request.UpdateState {
	return &request.UpdateState{
		LastLowerSyncedSlot:      u64(10),
		LastUpperSyncedSlot:      u64(20),
		LastFinalizedBlock:       u64(30),
		LastUpperSyncedBlockRoot: str(blockRoot),
		LastUpperSyncedBlockSlot: u64(20),
	}
}

func (s *UpdaterTestSuite) TestLowerAboveUpperIsRejected() {
	require.Nil(s.T(), s.updater.Update(s.ctx, s.full()))
	before := s.repository.get()

	err := s.updater.Update(s.ctx, &request.UpdateState{
		LastLowerSyncedSlot: u64(50),
		LastUpperSyncedSlot: u64(40),
	})

	var validationErr *request.ValidationError
	require.True(s.T(), errors.As(err, &validationErr))
	require.Equal(s.T(), "Last lower synced slot must be less than or equal to last upper synced slot", err.Error())
	require.Equal(s.T(), before, s.repository.get())
	require.Equal(s.T(), 1, s.repository.calls)
	require.Equal(s.T(), uint64(1), s.monitor.Report.Api.Errors.Validation.Load())
}

func (s *UpdaterTestSuite) TestRejectedUpdateDoesNotCreateRow() {
	err := s.updater.Update(s.ctx, &request.UpdateState{
		LastLowerSyncedSlot: u64(50),
		LastUpperSyncedSlot: u64(40),
	})
	require.ErrorIs(s.T(), err, request.ErrLowerAboveUpper)
	require.Nil(s.T(), s.repository.get())
	require.Equal(s.T(), 0, s.repository.calls)
}

func (s *UpdaterTestSuite) TestOrderedSlots() {
	err := s.updater.Update(s.ctx, &request.UpdateState{
		LastLowerSyncedSlot: u64(40),
		LastUpperSyncedSlot: u64(50),
	})
	require.Nil(s.T(), err)

	state := s.repository.get()
	require.Equal(s.T(), model.SyncStateId, state.Id)
	require.Equal(s.T(), pgtype.Int8{Int: 40, Status: pgtype.Present}, state.LastLowerSyncedSlot)
	require.Equal(s.T(), pgtype.Int8{Int: 50, Status: pgtype.Present}, state.LastUpperSyncedSlot)
	require.Equal(s.T(), uint64(1), s.monitor.Report.Api.State.SyncStateUpdatesSaved.Load())
}

func (s *UpdaterTestSuite) TestCreateWithSingleField() {
	require.Nil(s.T(), s.updater.Update(s.ctx, &request.UpdateState{LastUpperSyncedSlot: u64(100)}))

	state := s.repository.get()
	require.Equal(s.T(), pgtype.Int8{Int: 100, Status: pgtype.Present}, state.LastUpperSyncedSlot)
	require.Equal(s.T(), pgtype.Null, state.LastLowerSyncedSlot.Status)
	require.Equal(s.T(), pgtype.Null, state.LastFinalizedBlock.Status)
	require.Equal(s.T(), pgtype.Null, state.LastUpperSyncedBlockRoot.Status)
	require.Equal(s.T(), pgtype.Null, state.LastUpperSyncedBlockSlot.Status)
}

func (s *UpdaterTestSuite) TestPartialUpdate() {
	require.Nil(s.T(), s.updater.Update(s.ctx, s.full()))
	before := s.repository.get()

	require.Nil(s.T(), s.updater.Update(s.ctx, &request.UpdateState{LastFinalizedBlock: u64(31)}))

	after := s.repository.get()
	require.Equal(s.T(), pgtype.Int8{Int: 31, Status: pgtype.Present}, after.LastFinalizedBlock)

	after.LastFinalizedBlock = before.LastFinalizedBlock
	require.Equal(s.T(), before, after)
}

func (s *UpdaterTestSuite) TestSlotsValidatedOnlyWithinInput() {
	require.Nil(s.T(), s.updater.Update(s.ctx, s.full()))

	// Stored upper is 20, but only the input is checked
	require.Nil(s.T(), s.updater.Update(s.ctx, &request.UpdateState{LastLowerSyncedSlot: u64(25)}))
	require.Equal(s.T(), int64(25), s.repository.get().LastLowerSyncedSlot.Int)
}

func (s *UpdaterTestSuite) TestIdempotent() {
	require.Nil(s.T(), s.updater.Update(s.ctx, s.full()))
	once := s.repository.get()

	require.Nil(s.T(), s.updater.Update(s.ctx, s.full()))
	require.Equal(s.T(), once, s.repository.get())
}

func (s *UpdaterTestSuite) TestEmptyInput() {
	require.Nil(s.T(), s.updater.Update(s.ctx, s.full()))
	before := s.repository.get()

	require.Nil(s.T(), s.updater.Update(s.ctx, &request.UpdateState{}))
	require.Equal(s.T(), before, s.repository.get())
}

func (s *UpdaterTestSuite) TestRepositoryErrorIsReturnedAsIs() {
	dbErr := errors.New("connection refused")
	s.repository.err = dbErr

	err := s.updater.Update(s.ctx, s.full())
	require.Equal(s.T(), dbErr, err)
	require.Equal(s.T(), 1, s.repository.calls)
	require.Equal(s.T(), uint64(1), s.monitor.Report.Api.Errors.DbError.Load())
	require.False(s.T(), s.monitor.IsOK())
}
