package blocklist_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/CoreLab-Tech/BlockKit/block"
	"github.com/CoreLab-Tech/BlockKit/blocklist"
)

func textBlock(t testing.TB, text string) *block.TextBlock {
	b, err := block.NewTextBlock(text, block.TextFormatPlain)
	require.NoError(t, err)
	return b
}

func TestEmpty(t *testing.T) {
	l := blocklist.Empty()
	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.Blocks())
	assert.Empty(t, l.IDs())
}

func TestNewRejectsDuplicates(t *testing.T) {
	a := textBlock(t, "a")
	_, err := blocklist.New(a, textBlock(t, "b"), a)
	require.Error(t, err)

	var de *blocklist.DuplicateError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, a.ID(), de.ID)
}

func TestNilBlocksRejected(t *testing.T) {
	var typedNil *block.TextBlock
	l, err := blocklist.New(textBlock(t, "a"))
	require.NoError(t, err)

	cases := []struct {
		name  string
		run   func() (*blocklist.List, error)
		index int
	}{
		{"new nil", func() (*blocklist.List, error) { return blocklist.New(textBlock(t, "a"), nil) }, 1},
		{"new typed nil", func() (*blocklist.List, error) { return blocklist.New(typedNil) }, 0},
		{"add nil", func() (*blocklist.List, error) { return l.Add(nil) }, 1},
		{"add at typed nil", func() (*blocklist.List, error) { return l.AddAt(typedNil, 0) }, 0},
		{"replace nil", func() (*blocklist.List, error) { return l.Replace(nil) }, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out *blocklist.List
			var err error
			require.NotPanics(t, func() { out, err = tc.run() })
			assert.Nil(t, out)

			var ne *blocklist.NilBlockError
			require.True(t, errors.As(err, &ne))
			assert.Equal(t, tc.index, ne.Index)
		})
	}
	assert.Equal(t, 1, l.Len())
}

func TestAddAndFind(t *testing.T) {
	a, b := textBlock(t, "a"), textBlock(t, "b")
	empty := blocklist.Empty()

	one, err := empty.Add(a)
	require.NoError(t, err)
	two, err := one.Add(b)
	require.NoError(t, err)

	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, 1, one.Len())
	assert.Equal(t, []uuid.UUID{a.ID(), b.ID()}, two.IDs())

	found, err := two.FindByID(b.ID())
	require.NoError(t, err)
	assert.Same(t, b, found)

	i, ok := two.IndexOf(b.ID())
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	assert.True(t, two.Contains(a.ID()))
	assert.Same(t, a, two.At(0))
}

func TestAddDuplicate(t *testing.T) {
	a := textBlock(t, "a")
	l, err := blocklist.New(a)
	require.NoError(t, err)

	_, err = l.Add(a)
	var de *blocklist.DuplicateError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 1, l.Len())
}

func TestAddAt(t *testing.T) {
	a, b, c := textBlock(t, "a"), textBlock(t, "b"), textBlock(t, "c")
	l, err := blocklist.New(a, b)
	require.NoError(t, err)

	front, err := l.AddAt(c, 0)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{c.ID(), a.ID(), b.ID()}, front.IDs())

	middle, err := l.AddAt(c, 1)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a.ID(), c.ID(), b.ID()}, middle.IDs())

	end, err := l.AddAt(c, 2)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a.ID(), b.ID(), c.ID()}, end.IDs())

	for _, index := range []int{-1, 3} {
		_, err = l.AddAt(c, index)
		var ie *blocklist.IndexError
		require.True(t, errors.As(err, &ie), "index %d", index)
		assert.Equal(t, index, ie.Index)
	}
}

func TestRemove(t *testing.T) {
	a, b := textBlock(t, "a"), textBlock(t, "b")
	l, err := blocklist.New(a, b)
	require.NoError(t, err)

	removed, err := l.Remove(a.ID())
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{b.ID()}, removed.IDs())
	assert.Equal(t, 2, l.Len())
	assert.False(t, removed.Contains(a.ID()))

	_, err = removed.Remove(a.ID())
	var nf *blocklist.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, a.ID(), nf.ID)
}

func TestFindByIDMissing(t *testing.T) {
	_, err := blocklist.Empty().FindByID(uuid.New())
	var nf *blocklist.NotFoundError
	assert.True(t, errors.As(err, &nf))
}

func TestMoveSwapsTwoBlocks(t *testing.T) {
	b1, b2 := textBlock(t, "first"), textBlock(t, "second")
	l, err := blocklist.New(b1, b2)
	require.NoError(t, err)

	moved, err := l.Move(b1.ID(), 1)
	require.NoError(t, err)
	assert.Equal(t, b2.ID(), moved.At(0).ID())
	assert.Equal(t, b1.ID(), moved.At(1).ID())
	assert.Equal(t, []uuid.UUID{b1.ID(), b2.ID()}, l.IDs())
}

func TestMove(t *testing.T) {
	a, b, c, d := textBlock(t, "a"), textBlock(t, "b"), textBlock(t, "c"), textBlock(t, "d")
	l, err := blocklist.New(a, b, c, d)
	require.NoError(t, err)

	back, err := l.Move(b.ID(), 3)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a.ID(), c.ID(), d.ID(), b.ID()}, back.IDs())

	forward, err := l.Move(d.ID(), 0)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{d.ID(), a.ID(), b.ID(), c.ID()}, forward.IDs())

	same, err := l.Move(c.ID(), 2)
	require.NoError(t, err)
	assert.Same(t, l, same)
}

func TestMoveErrors(t *testing.T) {
	a := textBlock(t, "a")
	l, err := blocklist.New(a)
	require.NoError(t, err)

	var nf *blocklist.NotFoundError
	_, err = l.Move(uuid.New(), 0)
	assert.True(t, errors.As(err, &nf))

	var ie *blocklist.IndexError
	_, err = l.Move(a.ID(), 1)
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, 0, ie.Max)
	_, err = l.Move(a.ID(), -1)
	assert.True(t, errors.As(err, &ie))
}

func TestReplace(t *testing.T) {
	a, b := textBlock(t, "a"), textBlock(t, "b")
	l, err := blocklist.New(a, b)
	require.NoError(t, err)

	fav := a.UpdateMeta(a.Meta().WithFavorite(true))
	replaced, err := l.Replace(fav)
	require.NoError(t, err)
	assert.Same(t, fav, replaced.At(0))
	assert.Same(t, a, l.At(0))

	_, err = l.Replace(textBlock(t, "stranger"))
	var nf *blocklist.NotFoundError
	assert.True(t, errors.As(err, &nf))
}

func TestBlocksReturnsCopy(t *testing.T) {
	a := textBlock(t, "a")
	l, err := blocklist.New(a)
	require.NoError(t, err)

	blocks := l.Blocks()
	blocks[0] = textBlock(t, "other")
	assert.Same(t, a, l.At(0))
}

func genList(t *rapid.T, min int) *blocklist.List {
	n := rapid.IntRange(min, 8).Draw(t, "n")
	blocks := make([]block.Block, n)
	for i := range blocks {
		b, err := block.NewTextBlock(fmt.Sprintf("block %d", i), block.TextFormatPlain)
		if err != nil {
			t.Fatal(err)
		}
		blocks[i] = b
	}
	l, err := blocklist.New(blocks...)
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func TestAddRemoveInverse(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		l := genList(t, 0)
		b, err := block.NewQuoteBlock(block.QuoteFields{Text: "new"})
		if err != nil {
			t.Fatal(err)
		}
		index := rapid.IntRange(0, l.Len()).Draw(t, "index")

		added, err := l.AddAt(b, index)
		if err != nil {
			t.Fatal(err)
		}
		removed, err := added.Remove(b.ID())
		if err != nil {
			t.Fatal(err)
		}
		if !removed.Equal(l) {
			t.Fatalf("add then remove changed the list: %v != %v", removed.IDs(), l.IDs())
		}
	})
}

func TestNoOpMoveIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		l := genList(t, 1)
		i := rapid.IntRange(0, l.Len()-1).Draw(t, "i")
		moved, err := l.Move(l.At(i).ID(), i)
		if err != nil {
			t.Fatal(err)
		}
		if moved != l {
			t.Fatalf("no-op move returned a different list")
		}
	})
}

func TestMovePreservesMembership(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		l := genList(t, 1)
		from := rapid.IntRange(0, l.Len()-1).Draw(t, "from")
		to := rapid.IntRange(0, l.Len()-1).Draw(t, "to")
		id := l.At(from).ID()

		moved, err := l.Move(id, to)
		if err != nil {
			t.Fatal(err)
		}
		if moved.Len() != l.Len() || moved.At(to).ID() != id {
			t.Fatalf("block %s not at %d after move", id, to)
		}
		for _, other := range l.IDs() {
			if !moved.Contains(other) {
				t.Fatalf("block %s lost by move", other)
			}
		}
	})
}
