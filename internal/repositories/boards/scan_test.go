package boards_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/catan-odds/internal/entities/catan"
	"github.com/KirkDiggler/catan-odds/internal/pkg/clock"
	"github.com/KirkDiggler/catan-odds/internal/repositories/boards"
	"github.com/KirkDiggler/catan-odds/internal/testutils"
)

func TestFindCorrupt(t *testing.T) {
	ctx := context.Background()
	client, mr := testutils.CreateTestRedisClient(t)

	repo, err := boards.NewRedisRepository(&boards.Config{Client: client, Clock: clock.New()})
	require.NoError(t, err)

	layout, err := catan.GenerateLayout(catan.WithSeed(9))
	require.NoError(t, err)

	_, err = repo.Create(ctx, boards.CreateInput{ID: "good", Layout: layout})
	require.NoError(t, err)

	illegal := append(catan.Layout{}, layout...)
	illegal[0] = catan.TileSpec{Resource: "wood", Chit: 7}
	raw, err := json.Marshal(boards.BoardData{ID: "illegal", Layout: illegal})
	require.NoError(t, err)

	require.NoError(t, mr.Set("board:illegal", string(raw)))
	require.NoError(t, mr.Set("board:garbage", "{not json"))
	require.NoError(t, mr.Set("session:other", "{not json"))

	report, err := boards.FindCorrupt(ctx, client)
	require.NoError(t, err)

	assert.Equal(t, 3, report.Checked)
	require.Len(t, report.Corrupt, 2)

	reasons := map[string]string{}
	for _, c := range report.Corrupt {
		reasons[c.Key] = c.Reason
	}
	assert.Equal(t, "invalid JSON", reasons["board:garbage"])
	assert.NotEmpty(t, reasons["board:illegal"])
	assert.NotContains(t, reasons, "board:good")

	removed, err := boards.RemoveKeys(ctx, client, []string{"board:garbage", "board:illegal", "board:missing"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	assert.True(t, mr.Exists("board:good"))
	assert.True(t, mr.Exists("session:other"))
}

func TestFindCorruptNilClient(t *testing.T) {
	_, err := boards.FindCorrupt(context.Background(), nil)
	assert.Error(t, err)
}
