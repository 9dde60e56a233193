package rekuest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mistveil/backoffice-next/internal/model/types"
	"github.com/mistveil/backoffice-next/internal/pkg/mverr"
)

func TestValidStruct(t *testing.T) {
	t.Run("valid reward upsert", func(t *testing.T) {
		assert.NoError(t, ValidStruct(&types.RewardUpsert{ItemID: 1, Probability: 0.5}))
		assert.NoError(t, ValidStruct(&types.RewardUpsert{ItemID: 1, Probability: 0}))
		assert.NoError(t, ValidStruct(&types.RewardUpsert{ItemID: 1, Probability: 1}))
	})

	t.Run("probability out of range", func(t *testing.T) {
		require.Error(t, ValidStruct(&types.RewardUpsert{ItemID: 1, Probability: 1.5}))
		require.Error(t, ValidStruct(&types.RewardUpsert{ItemID: 1, Probability: -0.1}))
	})

	t.Run("missing item id", func(t *testing.T) {
		err := ValidStruct(&types.RewardUpsert{Probability: 0.5})
		require.Error(t, err)

		var boErr *mverr.BackofficeError
		require.ErrorAs(t, err, &boErr)
		assert.Equal(t, mverr.CodeInvalidRequest, boErr.ErrorCode)
	})

	t.Run("nested batch dive", func(t *testing.T) {
		err := ValidStruct(&types.BatchRewardsRequest{
			Upsert: []types.RewardUpsert{
				{ItemID: 1, Probability: 0.5},
				{ItemID: 2, Probability: 2.0},
			},
		})
		require.Error(t, err)
	})

	t.Run("empty batch is valid", func(t *testing.T) {
		assert.NoError(t, ValidStruct(&types.BatchRewardsRequest{}))
	})
}

func TestValidVar(t *testing.T) {
	assert.NoError(t, ValidVar(0.5, "min=0,max=1"))
	assert.Error(t, ValidVar(1.01, "min=0,max=1"))
}
