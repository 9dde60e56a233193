package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	"github.com/mistveil/backoffice-next/internal/model/types"
	"github.com/mistveil/backoffice-next/internal/pkg/mverr"
	"github.com/mistveil/backoffice-next/internal/repo"
)

func newMapServices(t *testing.T) (*Map, *MapArea, *bun.DB) {
	t.Helper()

	db := newTestDB(t)
	mapRepo := repo.NewMap(db)
	areaRepo := repo.NewMapArea(db)
	associations := NewEventAssociation(repo.NewEventAssociation(db), repo.NewEvent(db))
	return NewMap(db, mapRepo, areaRepo, associations),
		NewMapArea(db, mapRepo, areaRepo, associations),
		db
}

func TestMapEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("add edit remove round trip", func(t *testing.T) {
		mapSvc, _, db := newMapServices(t)
		mapID := seedMap(t, db, "Dark Forest")
		eventID := seedEvent(t, db, "Ambush")

		require.NoError(t, mapSvc.AddMapEvent(ctx, mapID, &types.AddEventAssociationRequest{
			EventID:     eventID,
			Probability: 0.3,
		}))
		require.NoError(t, mapSvc.UpdateMapEvent(ctx, mapID, eventID, 0.8))

		detail, err := mapSvc.GetMapDetail(ctx, mapID)
		require.NoError(t, err)
		require.Len(t, detail.Events, 1)
		assert.InDelta(t, 0.8, detail.Events[0].Probability, 1e-9)

		require.NoError(t, mapSvc.RemoveMapEvent(ctx, mapID, eventID))

		err = mapSvc.RemoveMapEvent(ctx, mapID, eventID)
		var boErr *mverr.BackofficeError
		require.ErrorAs(t, err, &boErr)
		assert.Equal(t, mverr.CodeNotFound, boErr.ErrorCode)
	})

	t.Run("unknown map is not found", func(t *testing.T) {
		mapSvc, _, db := newMapServices(t)
		eventID := seedEvent(t, db, "Ambush")

		err := mapSvc.AddMapEvent(ctx, 999, &types.AddEventAssociationRequest{
			EventID:     eventID,
			Probability: 0.3,
		})
		var boErr *mverr.BackofficeError
		require.ErrorAs(t, err, &boErr)
		assert.Equal(t, mverr.CodeNotFound, boErr.ErrorCode)
	})
}

func TestAreaEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("add edit remove round trip", func(t *testing.T) {
		_, areaSvc, db := newMapServices(t)
		mapID := seedMap(t, db, "Dark Forest")
		areaID := seedArea(t, db, mapID, "Clearing")
		eventID := seedEvent(t, db, "Treasure")

		require.NoError(t, areaSvc.AddAreaEvent(ctx, mapID, areaID, &types.AddEventAssociationRequest{
			EventID:     eventID,
			Probability: 0.4,
		}))
		require.NoError(t, areaSvc.UpdateAreaEvent(ctx, mapID, areaID, eventID, 0.6))

		detail, err := areaSvc.GetAreaDetail(ctx, mapID, areaID)
		require.NoError(t, err)
		require.Len(t, detail.Events, 1)
		assert.InDelta(t, 0.6, detail.Events[0].Probability, 1e-9)

		require.NoError(t, areaSvc.RemoveAreaEvent(ctx, mapID, areaID, eventID))

		detail, err = areaSvc.GetAreaDetail(ctx, mapID, areaID)
		require.NoError(t, err)
		assert.Empty(t, detail.Events)
	})

	t.Run("area under another map is not found", func(t *testing.T) {
		_, areaSvc, db := newMapServices(t)
		mapID := seedMap(t, db, "Dark Forest")
		otherMapID := seedMap(t, db, "Sunny Plains")
		areaID := seedArea(t, db, mapID, "Clearing")
		eventID := seedEvent(t, db, "Treasure")

		err := areaSvc.AddAreaEvent(ctx, otherMapID, areaID, &types.AddEventAssociationRequest{
			EventID:     eventID,
			Probability: 0.4,
		})
		var boErr *mverr.BackofficeError
		require.ErrorAs(t, err, &boErr)
		assert.Equal(t, mverr.CodeNotFound, boErr.ErrorCode)
	})
}
