package syncstate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/warp-contracts/syncstate/src/syncstate/request"
)

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

// Checks generated SQL, queries aren't sent anywhere
type StoreTestSuite struct {
	suite.Suite
	store *Store
}

func (s *StoreTestSuite) SetupSuite() {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=127.0.0.1 port=5432 user=postgres dbname=blobscan sslmode=disable",
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.Nil(s.T(), err)

	s.store = NewStore().WithDB(db)
}

func (s *StoreTestSuite) sql(in *request.UpdateState) string {
	return s.store.upsertQuery(context.Background(), in.ToModel(), in.Columns()).Statement.SQL.String()
}

func (s *StoreTestSuite) TestUpdatesOnlyProvidedColumns() {
	sql := s.sql(&request.UpdateState{
		LastLowerSyncedSlot: u64(40),
		LastFinalizedBlock:  u64(5),
	})

	require.Contains(s.T(), sql, `INSERT INTO "blockchain_sync_state"`)
	require.Contains(s.T(), sql, `ON CONFLICT ("id") DO UPDATE SET`)
	require.Contains(s.T(), sql, `"last_lower_synced_slot"="excluded"."last_lower_synced_slot"`)
	require.Contains(s.T(), sql, `"last_finalized_block"="excluded"."last_finalized_block"`)
	require.NotContains(s.T(), sql, `"last_upper_synced_slot"="excluded"`)
	require.NotContains(s.T(), sql, `"last_upper_synced_block_root"="excluded"`)
	require.NotContains(s.T(), sql, `"last_upper_synced_block_slot"="excluded"`)
}

func (s *StoreTestSuite) TestInsertsAllColumns() {
	sql := s.sql(&request.UpdateState{LastUpperSyncedSlot: u64(100)})

	for _, column := range []string{
		`"id"`,
		`"last_lower_synced_slot"`,
		`"last_upper_synced_slot"`,
		`"last_finalized_block"`,
		`"last_upper_synced_block_root"`,
		`"last_upper_synced_block_slot"`,
	} {
		require.Contains(s.T(), sql, column)
	}
}

func (s *StoreTestSuite) TestEmptyUpdateDoesNothingOnConflict() {
	sql := s.sql(&request.UpdateState{})
	require.Contains(s.T(), sql, `ON CONFLICT ("id") DO NOTHING`)
	require.NotContains(s.T(), sql, "DO UPDATE")
}

func (s *StoreTestSuite) TestUpsertIsRunInDryRun() {
	in := &request.UpdateState{LastFinalizedBlock: u64(1)}
	tx := s.store.upsertQuery(context.Background(), in.ToModel(), in.Columns())
	require.NoError(s.T(), tx.Error)
	require.Contains(s.T(), tx.Statement.SQL.String(), `"last_finalized_block"="excluded"."last_finalized_block"`)

	require.NoError(s.T(), s.store.Upsert(context.Background(), in.ToModel(), in.Columns()))
}
