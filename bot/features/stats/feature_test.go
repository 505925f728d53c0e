package stats

import (
	"context"
	"errors"
	"io"
	"testing"

	"unionlotto/domain/entities"
	"unionlotto/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeature_BuildStatsMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("empty history has no chart", func(t *testing.T) {
		lotto := new(testhelpers.MockLotterySession)
		lotto.On("Stats", ctx).Return([]entities.NumberStat{}, nil)
		lotto.On("Count", ctx).Return(0, nil)

		embed, file, err := NewFeature(lotto, nil).BuildStatsMessage(ctx)

		require.NoError(t, err)
		assert.Nil(t, file)
		assert.Equal(t, EmptyStatsMessage, embed.Description)
		assert.Nil(t, embed.Image)
		lotto.AssertExpectations(t)
	})

	t.Run("history renders chart attachment", func(t *testing.T) {
		stats := []entities.NumberStat{
			{Number: 5, Count: 2, Category: entities.CategoryRed},
			{Number: 9, Count: 1, Category: entities.CategoryBlue},
		}
		lotto := new(testhelpers.MockLotterySession)
		lotto.On("Stats", ctx).Return(stats, nil)
		lotto.On("Count", ctx).Return(2, nil)

		embed, file, err := NewFeature(lotto, nil).BuildStatsMessage(ctx)

		require.NoError(t, err)
		require.NotNil(t, file)
		assert.Equal(t, ChartFilename, file.Name)
		assert.Equal(t, "attachment://"+ChartFilename, embed.Image.URL)
		assert.Equal(t, "Based on 2 sets", embed.Footer.Text)

		data, err := io.ReadAll(file.Reader)
		require.NoError(t, err)
		assert.Equal(t, []byte("\x89PNG"), data[:4])
	})

	t.Run("session error", func(t *testing.T) {
		lotto := new(testhelpers.MockLotterySession)
		lotto.On("Stats", ctx).Return(nil, errors.New("boom"))

		_, _, err := NewFeature(lotto, nil).BuildStatsMessage(ctx)

		assert.EqualError(t, err, "boom")
	})
}

func TestBuildStatsEmbed_Summaries(t *testing.T) {
	stats := []entities.NumberStat{
		{Number: 1, Count: 3, Category: entities.CategoryRed},
		{Number: 1, Count: 2, Category: entities.CategoryBlue},
		{Number: 22, Count: 1, Category: entities.CategoryRed},
	}

	embed := BuildStatsEmbed(stats, 3)

	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "`01` ×3\n`22` ×1", embed.Fields[0].Value)
	assert.Equal(t, "`01` ×2", embed.Fields[1].Value)
}

func TestSummarize_NoEntries(t *testing.T) {
	assert.Equal(t, "-", summarize(nil, entities.CategoryBlue))
}
