package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "modernc.org/sqlite"

	"github.com/mistveil/backoffice-next/internal/model"
)

// newTestDB opens an in-memory SQLite database with the tables this layer
// touches, so engine tests can drive real bun queries without a Postgres
// instance.
func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// a second pooled connection would see its own empty :memory: database
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	for _, m := range []interface{}{
		(*model.Item)(nil),
		(*model.Event)(nil),
		(*model.Monster)(nil),
		(*model.Map)(nil),
		(*model.MapConnection)(nil),
		(*model.MapArea)(nil),
		(*model.RewardPool)(nil),
		(*model.RewardPoolItem)(nil),
		(*model.MapEventAssociation)(nil),
		(*model.AreaEventAssociation)(nil),
	} {
		_, err := db.NewCreateTable().Model(m).Exec(ctx)
		require.NoError(t, err)
	}
	return db
}

func seedItem(t *testing.T, db *bun.DB, name string) int {
	t.Helper()

	item := &model.Item{Name: name, ItemType: "material"}
	_, err := db.NewInsert().Model(item).Returning("item_id").Exec(context.Background())
	require.NoError(t, err)
	return item.ItemID
}

func seedEvent(t *testing.T, db *bun.DB, name string) int {
	t.Helper()

	event := &model.Event{Name: name, Type: "encounter"}
	_, err := db.NewInsert().Model(event).Returning("event_id").Exec(context.Background())
	require.NoError(t, err)
	return event.EventID
}

func seedMap(t *testing.T, db *bun.DB, name string) int {
	t.Helper()

	m := &model.Map{Name: name}
	_, err := db.NewInsert().Model(m).Returning("map_id").Exec(context.Background())
	require.NoError(t, err)
	return m.MapID
}

func seedArea(t *testing.T, db *bun.DB, mapID int, name string) int {
	t.Helper()

	area := &model.MapArea{MapID: mapID, Name: name}
	_, err := db.NewInsert().Model(area).Returning("area_id").Exec(context.Background())
	require.NoError(t, err)
	return area.AreaID
}

func seedMonster(t *testing.T, db *bun.DB, name string) int {
	t.Helper()

	monster := &model.Monster{Name: name, Hp: 10, Atk: 2}
	_, err := db.NewInsert().Model(monster).Returning("monster_id").Exec(context.Background())
	require.NoError(t, err)
	return monster.MonsterID
}
