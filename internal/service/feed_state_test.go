package service

import (
	"testing"

	"vitalfit/wellness-app/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedStateStartsLoading(t *testing.T) {
	st := newFeedState()
	assert.True(t, st.Snapshot().Loading)

	st.BeginLoad()
	st.EndLoad()
	assert.False(t, st.Snapshot().Loading)
}

func TestFeedStatePrependAndRemove(t *testing.T) {
	st := newFeedState()
	st.Replace([]domain.Post{{ID: "a"}, {ID: "b"}}, "")

	st.Prepend(domain.Post{ID: "temp-1"})
	snap := st.Snapshot()
	require.Len(t, snap.Posts, 3)
	assert.Equal(t, "temp-1", snap.Posts[0].ID)

	assert.True(t, st.Remove("temp-1"))
	assert.False(t, st.Remove("temp-1"))
	snap = st.Snapshot()
	require.Len(t, snap.Posts, 2)
	assert.Equal(t, "a", snap.Posts[0].ID)
}

func TestFeedStateSnapshotIsACopy(t *testing.T) {
	st := newFeedState()
	st.Replace([]domain.Post{{ID: "a", Content: "original"}}, "")

	snap := st.Snapshot()
	snap.Posts[0].Content = "mutated"

	assert.Equal(t, "original", st.Snapshot().Posts[0].Content)
}

func TestFeedStateClosedDropsUpdates(t *testing.T) {
	st := newFeedState()
	st.Replace([]domain.Post{{ID: "a"}}, "")
	st.EndLoad()
	st.Close()

	// Everything after Close is a no-op.
	st.Replace([]domain.Post{{ID: "late"}}, "late warning")
	st.Prepend(domain.Post{ID: "temp-9"})
	st.Remove("a")
	st.BeginLoad()

	snap := st.Snapshot()
	require.Len(t, snap.Posts, 1)
	assert.Equal(t, "a", snap.Posts[0].ID)
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Warning)
}
