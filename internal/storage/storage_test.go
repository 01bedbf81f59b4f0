package storage

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/nxcube"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenMigrates(t *testing.T) {
	db := openTestDB(t)

	version, err := db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, LatestVersion(), version)

	// Reopening does not reapply migrations.
	path := db.Path()
	require.NoError(t, db.Close())
	db2, err := Open(path)
	require.NoError(t, err)
	defer db2.Close()

	version, err = db2.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, LatestVersion(), version)
}

func TestSessionLifecycle(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)

	id, err := sessions.Create(4, "R U 2F'", "practice")
	require.NoError(t, err)

	s, err := sessions.Get(id)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, 4, s.CubeSize)
	require.NotNil(t, s.ScrambleText)
	assert.Equal(t, "R U 2F'", *s.ScrambleText)
	require.NotNil(t, s.Notes)
	assert.Equal(t, "practice", *s.Notes)
	assert.Nil(t, s.EndedAt)
	assert.False(t, s.Solved)
	assert.Zero(t, s.Duration())

	require.NoError(t, sessions.End(id, true, "state"))
	s, err = sessions.Get(id)
	require.NoError(t, err)
	require.NotNil(t, s.EndedAt)
	assert.True(t, s.Solved)
	require.NotNil(t, s.FinalState)
	assert.Equal(t, "state", *s.FinalState)
	assert.GreaterOrEqual(t, s.Duration().Nanoseconds(), int64(0))
}

func TestSessionCreateRejectsSmallCube(t *testing.T) {
	sessions := NewSessionRepository(openTestDB(t))
	_, err := sessions.Create(1, "", "")
	assert.True(t, errors.Is(err, nxcube.ErrInvalidSize))
}

func TestSessionMissing(t *testing.T) {
	sessions := NewSessionRepository(openTestDB(t))

	s, err := sessions.Get("nope")
	require.NoError(t, err)
	assert.Nil(t, s)

	s, err = sessions.GetLast()
	require.NoError(t, err)
	assert.Nil(t, s)

	err = sessions.End("nope", false, "")
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestSessionListAndLast(t *testing.T) {
	sessions := NewSessionRepository(openTestDB(t))

	var ids []string
	for _, size := range []int{2, 3, 5} {
		id, err := sessions.Create(size, "", "")
		require.NoError(t, err)
		ids = append(ids, id)
	}

	list, err := sessions.List(10)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, ids[2], list[0].SessionID)
	assert.Nil(t, list[0].ScrambleText)

	list, err = sessions.List(2)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	last, err := sessions.GetLast()
	require.NoError(t, err)
	assert.Equal(t, ids[2], last.SessionID)
	assert.Equal(t, 5, last.CubeSize)
}

func TestMoves(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	moves := NewMoveRepository(db)

	id, err := sessions.Create(3, "", "")
	require.NoError(t, err)

	_, err = moves.Create(id, 0, nxcube.MustParseMove("r"), 100)
	require.NoError(t, err)
	require.NoError(t, moves.CreateBatch(id, []MoveRecord{
		{MoveIndex: 1, Notation: "U'", TsMs: 250},
		{MoveIndex: 2, Notation: "F2", TsMs: 900},
	}))

	records, err := moves.GetBySession(id)
	require.NoError(t, err)
	assert.Equal(t, []string{"2R", "U'", "F2"}, Tokens(records))
	assert.Equal(t, int64(900), records[2].TsMs)

	n, err := moves.Count(id)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = sessions.GetMoveCount(id)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestCreateBatchIsAtomic(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	moves := NewMoveRepository(db)

	id, err := sessions.Create(3, "", "")
	require.NoError(t, err)

	err = moves.CreateBatch(id, []MoveRecord{{MoveIndex: 0, Notation: "R"}, {MoveIndex: 1, Notation: "Q"}})
	assert.True(t, errors.Is(err, nxcube.ErrInvalidNotation))

	// Duplicate index fails inside the transaction and rolls back.
	err = moves.CreateBatch(id, []MoveRecord{{MoveIndex: 0, Notation: "R"}, {MoveIndex: 0, Notation: "U"}})
	assert.Error(t, err)

	n, err := moves.Count(id)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestDeleteCascades(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	moves := NewMoveRepository(db)

	id, err := sessions.Create(3, "", "")
	require.NoError(t, err)
	require.NoError(t, moves.CreateBatch(id, []MoveRecord{{MoveIndex: 0, Notation: "R"}}))

	require.NoError(t, sessions.Delete(id))

	s, err := sessions.Get(id)
	require.NoError(t, err)
	assert.Nil(t, s)

	n, err := moves.Count(id)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestReplay(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	moves := NewMoveRepository(db)

	id, err := sessions.Create(3, "R U", "")
	require.NoError(t, err)
	require.NoError(t, moves.CreateBatch(id, []MoveRecord{
		{MoveIndex: 0, Notation: "U'"},
		{MoveIndex: 1, Notation: "R'"},
	}))

	s, err := sessions.Get(id)
	require.NoError(t, err)
	records, err := moves.GetBySession(id)
	require.NoError(t, err)

	cube, err := Replay(s, records)
	require.NoError(t, err)
	assert.True(t, cube.IsSolved())
	assert.Equal(t, []string{"R", "U", "U'", "R'"}, cube.History())
}
