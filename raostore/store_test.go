package raostore_test

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seakeeping/raogrid/rao"
	"github.com/seakeeping/raogrid/raostore"
)

func openTestStore(t *testing.T) *raostore.Store {
	t.Helper()
	s, err := raostore.Open(filepath.Join(t.TempDir(), "rao.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func newStoreGrid(t *testing.T) *rao.Grid {
	t.Helper()
	g, err := rao.New(
		[]float64{0, 90, 180},
		[]float64{0.5, 1.0},
		[][]float64{{1.0, 2.0}, {3.0, 4.0}, {5.0, 6.0}},
		[][]float64{{0.1, -0.2}, {0.3, -0.4}, {0.5, -0.6}},
		rao.Roll,
	)
	require.NoError(t, err)

	return g
}

// TestSaveLoad_RoundTrip verifies a grid survives the flattened SQLite round
// trip with amplitude and phase intact.
func TestSaveLoad_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	g := newStoreGrid(t)

	id, err := s.Save("barge roll", g)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	back, name, err := s.Load(id)
	require.NoError(t, err)
	assert.Equal(t, "barge roll", name)
	assert.Equal(t, rao.Roll, back.Component())
	assert.Equal(t, g.Headings(), back.Headings())
	assert.Equal(t, g.Frequencies(), back.Frequencies())

	wantAmp, err := g.Channel(rao.ChannelAmplitude)
	require.NoError(t, err)
	wantPh, err := g.Channel(rao.ChannelPhase)
	require.NoError(t, err)
	gotAmp, err := back.Channel(rao.ChannelAmplitude)
	require.NoError(t, err)
	gotPh, err := back.Channel(rao.ChannelPhase)
	require.NoError(t, err)

	for i := range wantAmp {
		for j := range wantAmp[i] {
			assert.InDelta(t, wantAmp[i][j], gotAmp[i][j], 1e-12)
			diff := wantPh[i][j] - gotPh[i][j]
			assert.InDelta(t, 0, math.Atan2(math.Sin(diff), math.Cos(diff)), 1e-12)
		}
	}
}

// TestLoad_NotFound verifies the sentinel for unknown ids.
func TestLoad_NotFound(t *testing.T) {
	s := openTestStore(t)

	_, _, err := s.Load("no-such-id")
	assert.ErrorIs(t, err, raostore.ErrNotFound)
}

// TestList reports one record per saved grid with axis counts.
func TestList(t *testing.T) {
	s := openTestStore(t)
	g := newStoreGrid(t)

	_, err := s.Save("alpha", g)
	require.NoError(t, err)
	_, err = s.Save("beta", g)
	require.NoError(t, err)

	recs, err := s.List()
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "alpha", recs[0].Name)
	assert.Equal(t, "beta", recs[1].Name)
	assert.Equal(t, 3, recs[0].Headings)
	assert.Equal(t, 2, recs[0].Omegas)
	assert.Equal(t, rao.Roll, recs[0].Component)
}

// TestDelete removes a grid and its cells.
func TestDelete(t *testing.T) {
	s := openTestStore(t)
	g := newStoreGrid(t)

	id, err := s.Save("to delete", g)
	require.NoError(t, err)

	require.NoError(t, s.Delete(id))

	_, _, err = s.Load(id)
	assert.ErrorIs(t, err, raostore.ErrNotFound)
	assert.ErrorIs(t, s.Delete(id), raostore.ErrNotFound)
}

// TestSave_DistinctIDs verifies every save gets its own identifier.
func TestSave_DistinctIDs(t *testing.T) {
	s := openTestStore(t)
	g := newStoreGrid(t)

	id1, err := s.Save("same grid", g)
	require.NoError(t, err)
	id2, err := s.Save("same grid", g)
	require.NoError(t, err)

	assert.NotEqual(t, id1, id2)
}
