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

func newEventAssociationEngine(t *testing.T) (*EventAssociation, *bun.DB) {
	t.Helper()

	db := newTestDB(t)
	return NewEventAssociation(repo.NewEventAssociation(db), repo.NewEvent(db)), db
}

func TestEventAssociationEngine(t *testing.T) {
	ctx := context.Background()

	t.Run("add resolves names and double add conflicts", func(t *testing.T) {
		engine, db := newEventAssociationEngine(t)
		mapID := seedMap(t, db, "Dark Forest")
		eventID := seedEvent(t, db, "Ambush")

		require.NoError(t, engine.AddAssociation(ctx, db, repo.OwnerMap, mapID, eventID, 0.3))

		err := engine.AddAssociation(ctx, db, repo.OwnerMap, mapID, eventID, 0.6)
		var boErr *mverr.BackofficeError
		require.ErrorAs(t, err, &boErr)
		assert.Equal(t, mverr.CodeConflict, boErr.ErrorCode)

		associations, err := engine.GetAssociations(ctx, db, repo.OwnerMap, mapID)
		require.NoError(t, err)
		require.Len(t, associations, 1)
		assert.Equal(t, "Ambush", associations[0].EventName)
		assert.InDelta(t, 0.3, associations[0].Probability, 1e-9)
	})

	t.Run("adding an unknown event is not found", func(t *testing.T) {
		engine, db := newEventAssociationEngine(t)
		mapID := seedMap(t, db, "Dark Forest")

		err := engine.AddAssociation(ctx, db, repo.OwnerMap, mapID, 999, 0.3)
		var boErr *mverr.BackofficeError
		require.ErrorAs(t, err, &boErr)
		assert.Equal(t, mverr.CodeNotFound, boErr.ErrorCode)
	})

	t.Run("removing an absent event is not found", func(t *testing.T) {
		engine, db := newEventAssociationEngine(t)
		mapID := seedMap(t, db, "Dark Forest")
		eventID := seedEvent(t, db, "Ambush")

		err := engine.RemoveAssociation(ctx, db, repo.OwnerMap, mapID, eventID)
		var boErr *mverr.BackofficeError
		require.ErrorAs(t, err, &boErr)
		assert.Equal(t, mverr.CodeNotFound, boErr.ErrorCode)
	})

	t.Run("owners do not share event tables", func(t *testing.T) {
		engine, db := newEventAssociationEngine(t)
		mapID := seedMap(t, db, "Dark Forest")
		areaID := seedArea(t, db, mapID, "Clearing")
		eventID := seedEvent(t, db, "Ambush")

		require.NoError(t, engine.AddAssociation(ctx, db, repo.OwnerMap, mapID, eventID, 0.3))

		areaEvents, err := engine.GetAssociations(ctx, db, repo.OwnerArea, areaID)
		require.NoError(t, err)
		assert.Empty(t, areaEvents)

		require.NoError(t, engine.AddAssociation(ctx, db, repo.OwnerArea, areaID, eventID, 0.9))
		require.NoError(t, engine.RemoveAssociation(ctx, db, repo.OwnerMap, mapID, eventID))

		areaEvents, err = engine.GetAssociations(ctx, db, repo.OwnerArea, areaID)
		require.NoError(t, err)
		require.Len(t, areaEvents, 1)
		assert.InDelta(t, 0.9, areaEvents[0].Probability, 1e-9)
	})

	t.Run("batch upsert of an unknown event fails before mutation", func(t *testing.T) {
		engine, db := newEventAssociationEngine(t)
		mapID := seedMap(t, db, "Dark Forest")
		eventID := seedEvent(t, db, "Ambush")

		_, err := engine.BatchUpdateAssociations(ctx, db, repo.OwnerMap, mapID, &types.BatchEventsRequest{
			Upsert: []types.EventWeightUpsert{
				{EventID: eventID, Probability: 0.3},
				{EventID: 999, Probability: 0.3},
			},
		})
		var boErr *mverr.BackofficeError
		require.ErrorAs(t, err, &boErr)
		assert.Equal(t, mverr.CodeNotFound, boErr.ErrorCode)

		associations, err := engine.GetAssociations(ctx, db, repo.OwnerMap, mapID)
		require.NoError(t, err)
		assert.Empty(t, associations)
	})

	t.Run("batch is idempotent and normalizes on request", func(t *testing.T) {
		engine, db := newEventAssociationEngine(t)
		mapID := seedMap(t, db, "Dark Forest")
		areaID := seedArea(t, db, mapID, "Clearing")
		ambushID := seedEvent(t, db, "Ambush")
		treasureID := seedEvent(t, db, "Treasure")

		request := &types.BatchEventsRequest{
			Upsert: []types.EventWeightUpsert{
				{EventID: ambushID, Probability: 0.2},
				{EventID: treasureID, Probability: 0.2},
			},
		}
		first, err := engine.BatchUpdateAssociations(ctx, db, repo.OwnerArea, areaID, request)
		require.NoError(t, err)
		require.Len(t, first, 2)

		second, err := engine.BatchUpdateAssociations(ctx, db, repo.OwnerArea, areaID, request)
		require.NoError(t, err)
		require.Len(t, second, 2)
		for i := range first {
			assert.Equal(t, first[i].AssociationID, second[i].AssociationID)
		}

		normalized, err := engine.BatchUpdateAssociations(ctx, db, repo.OwnerArea, areaID, &types.BatchEventsRequest{
			Normalize: true,
		})
		require.NoError(t, err)
		require.Len(t, normalized, 2)
		assert.InDelta(t, 0.5, normalized[0].Probability, 1e-9)
		assert.InDelta(t, 0.5, normalized[1].Probability, 1e-9)
	})

	t.Run("batch removal of an absent event is skipped", func(t *testing.T) {
		engine, db := newEventAssociationEngine(t)
		mapID := seedMap(t, db, "Dark Forest")
		eventID := seedEvent(t, db, "Ambush")

		require.NoError(t, engine.AddAssociation(ctx, db, repo.OwnerMap, mapID, eventID, 0.3))

		associations, err := engine.BatchUpdateAssociations(ctx, db, repo.OwnerMap, mapID, &types.BatchEventsRequest{
			Remove: []int{eventID + 100},
		})
		require.NoError(t, err)
		require.Len(t, associations, 1)
	})
}
