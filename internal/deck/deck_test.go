package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDeck(t *testing.T) Deck[string] {
	t.Helper()
	d, err := New(
		Exactly("Starter", 3),
		Exactly("Extender", 6),
		Exactly("Other", 31),
	)
	require.NoError(t, err)
	return d
}

func TestNewDeck(t *testing.T) {
	d := testDeck(t)

	assert.Equal(t, 40, d.Size())
	assert.Equal(t, 3, d.Len())
	assert.Equal(t, []string{"Extender", "Other", "Starter"}, d.Names())
	assert.False(t, d.IsEmpty())
	require.NoError(t, d.CheckSize(40))
	require.Error(t, d.CheckSize(41))
}

func TestNewDeckDropsEmptyGroups(t *testing.T) {
	d, err := New(Exactly("Starter", 3), Exactly("Gone", 0))
	require.NoError(t, err)

	_, ok := d.Group("Gone")
	assert.False(t, ok)
	assert.Equal(t, 1, d.Len())
}

func TestNewDeckRejectsDuplicates(t *testing.T) {
	_, err := New(Exactly("Starter", 3), Exactly("Starter", 2))
	require.ErrorIs(t, err, ErrDuplicateGroup)
	assert.Contains(t, err.Error(), "Starter")
}

func TestNewDeckRejectsInvalidGroup(t *testing.T) {
	_, err := New(Group[string]{Name: "Bad", Size: 2, Minimum: 0, Maximum: 3})
	require.ErrorIs(t, err, ErrInvalidGroup)
}

func TestDeckDraw(t *testing.T) {
	d := testDeck(t)

	t.Run("reduces size", func(t *testing.T) {
		next, err := d.Draw("Extender", 2, nil)
		require.NoError(t, err)

		g, ok := next.Group("Extender")
		require.True(t, ok)
		assert.Equal(t, 4, g.Size)
		assert.Equal(t, 38, next.Size())

		// original is untouched
		orig, _ := d.Group("Extender")
		assert.Equal(t, 6, orig.Size)
	})

	t.Run("drops exhausted group", func(t *testing.T) {
		next, err := d.Draw("Starter", 3, nil)
		require.NoError(t, err)
		_, ok := next.Group("Starter")
		assert.False(t, ok)
		assert.Equal(t, 37, next.Size())
	})

	t.Run("unknown group is a no-op", func(t *testing.T) {
		next, err := d.Draw("Missing", 1, nil)
		require.NoError(t, err)
		assert.Equal(t, d.Size(), next.Size())
	})

	t.Run("zero draw still resizes", func(t *testing.T) {
		bounded, err := d.Change("Starter", func(g Group[string]) Group[string] {
			g.Minimum = 1
			return g
		})
		require.NoError(t, err)

		next, err := bounded.Draw("Starter", 0, Unbounded[string])
		require.NoError(t, err)
		g, _ := next.Group("Starter")
		assert.Equal(t, Exactly("Starter", 3), g)
		assert.Equal(t, bounded.Size(), next.Size())

		kept, err := bounded.Draw("Starter", 0, nil)
		require.NoError(t, err)
		g, _ = kept.Group("Starter")
		assert.Equal(t, 1, g.Minimum, "Shrink keeps bounds at the same size")
	})

	t.Run("negative draw fails", func(t *testing.T) {
		_, err := d.Draw("Starter", -1, nil)
		require.ErrorIs(t, err, ErrInvalidGroup)
	})

	t.Run("overdraw fails", func(t *testing.T) {
		_, err := d.Draw("Starter", 4, nil)
		require.ErrorIs(t, err, ErrInvalidGroup)
	})

	t.Run("custom resizer", func(t *testing.T) {
		next, err := d.Draw("Extender", 1, func(g Group[string], size int) Group[string] {
			return Group[string]{Name: g.Name, Size: size, Minimum: 1, Maximum: 1}
		})
		require.NoError(t, err)
		g, _ := next.Group("Extender")
		assert.Equal(t, Group[string]{Name: "Extender", Size: 5, Minimum: 1, Maximum: 1}, g)
	})
}

func TestDeckChangeAndWithout(t *testing.T) {
	d := testDeck(t)

	changed, err := d.Change("Starter", func(g Group[string]) Group[string] {
		g.Minimum = 1
		return g
	})
	require.NoError(t, err)
	g, _ := changed.Group("Starter")
	assert.Equal(t, 1, g.Minimum)

	same, err := d.Change("Missing", func(g Group[string]) Group[string] { return g })
	require.NoError(t, err)
	assert.Equal(t, d.Names(), same.Names())

	without := d.Without("Other")
	assert.Equal(t, 9, without.Size())
	assert.Equal(t, 40, d.Size())
}

func TestDeckWithFiller(t *testing.T) {
	d, err := New(Exactly("Starter", 3), Exactly("Extender", 6))
	require.NoError(t, err)

	padded, err := d.WithFiller("Other", 40)
	require.NoError(t, err)
	assert.Equal(t, 40, padded.Size())

	filler, ok := padded.Group("Other")
	require.True(t, ok)
	assert.Equal(t, Group[string]{Name: "Other", Size: 31, Minimum: 0, Maximum: 31}, filler)

	_, err = d.WithFiller("Other", 5)
	require.Error(t, err)

	_, err = d.WithFiller("Starter", 40)
	require.ErrorIs(t, err, ErrDuplicateGroup)

	exact, err := d.WithFiller("Other", 9)
	require.NoError(t, err)
	assert.Equal(t, 2, exact.Len())
}

func TestDeckIntegerNames(t *testing.T) {
	d, err := New(Exactly(3, 1), Exactly(1, 2), Exactly(2, 3))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, d.Names())
}
