package coordinator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cmdwiki/internal/catalog"
	"cmdwiki/internal/domain"
	"cmdwiki/internal/eventbus"
	"cmdwiki/internal/ui/services/feedback"
	"cmdwiki/internal/ui/services/selection"
)

func setup(t *testing.T) (*Coordinator, *feedback.ManualScheduler, *[]string) {
	t.Helper()
	store := catalog.NewStore(nil)
	require.NoError(t, store.Load(catalog.Static(&domain.Catalog{Categories: []domain.Category{
		{Name: "Net", Entries: []domain.Entry{
			{Title: "Ping", Command: "ping host"},
			{Title: "Trace", Command: "traceroute host"},
		}},
		{Name: "Storage", Entries: []domain.Entry{{Title: "Mount", Command: "mount /dev"}}},
	}})))

	var copied []string
	sched := feedback.NewManualScheduler()
	var board *feedback.Board
	board = feedback.NewBoard(feedback.SinkFunc(func(s string) { copied = append(copied, s) }),
		func(k domain.EntryKey, tok uint64) { board.Expire(k, tok) },
		feedback.WithScheduler(sched))

	c := NewCoordinator(store, board, eventbus.NewRecorder(), nil)
	t.Cleanup(c.Close)
	return c, sched, &copied
}

func TestScenarioDThroughCoordinator(t *testing.T) {
	c, _, _ := setup(t)
	c.SetQuery("ping")
	assert.Equal(t, selection.Selected, c.ToggleCategory("Net"))
	require.Equal(t, 1, c.View().EntryCount())

	c.ResetFilters()
	assert.Equal(t, domain.Filters{}, c.Filters())
	assert.Equal(t, 3, c.View().EntryCount())
}

func TestCursorFollowsEntryAcrossFilterChanges(t *testing.T) {
	c, _, _ := setup(t)
	c.Navigation.MoveToIndex(2)

	c.ToggleCategory("Storage")
	row, ok := c.CurrentRow()
	require.True(t, ok)
	assert.Equal(t, "Mount", row.Entry.Entry.Title)
	assert.Equal(t, 0, c.Navigation.GetCursor())

	c.ToggleCategory("Storage")
	assert.Equal(t, 2, c.Navigation.GetCursor())
}

func TestCopyCurrentAndExpiry(t *testing.T) {
	c, sched, copied := setup(t)
	c.Navigation.MoveToIndex(1)

	key, ok := c.CopyCurrent()
	require.True(t, ok)
	assert.Equal(t, domain.EntryKey{Category: "Net", Index: 1}, key)
	assert.Equal(t, []string{"traceroute host"}, *copied)
	assert.Equal(t, feedback.Copied, c.CopyState(key))

	sched.Advance(feedback.DefaultDelay)
	assert.Equal(t, feedback.Idle, c.CopyState(key))
}

func TestFilteringOutCopiedEntryCancelsTimer(t *testing.T) {
	c, sched, _ := setup(t)
	key, ok := c.CopyCurrent()
	require.True(t, ok)

	c.SetQuery("mount")
	assert.Zero(t, sched.Pending())
	assert.Equal(t, feedback.Idle, c.CopyState(key))

	c.ClearSearch()
	assert.Equal(t, feedback.Idle, c.CopyState(key))
}

func TestCopyOnEmptyView(t *testing.T) {
	c, _, copied := setup(t)
	c.SetQuery("nothing")
	_, ok := c.CopyCurrent()
	assert.False(t, ok)
	assert.Empty(t, *copied)
}
