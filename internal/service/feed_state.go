package service

import (
	"sync"

	"vitalfit/wellness-app/internal/domain"
)

// FeedSnapshot is a point-in-time copy of the feed state handed to callers.
type FeedSnapshot struct {
	Posts   []domain.Post `json:"posts"`
	Loading bool          `json:"loading"`
	Warning string        `json:"warning,omitempty"`
}

// feedState is the single owner of the in-memory feed list. Every mutation
// goes through one of its methods under the mutex, so overlapping async
// operations are serialized; whichever completes last wins the list.
//
// After Close, all mutations become no-ops. That is the guard against a
// late-arriving load writing into a feed that has been torn down.
type feedState struct {
	mu      sync.Mutex
	posts   []domain.Post
	loading bool
	warning string
	closed  bool
}

func newFeedState() *feedState {
	// The feed starts out loading; the first Refresh clears the flag.
	return &feedState{loading: true}
}

func (st *feedState) BeginLoad() {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.closed {
		return
	}
	st.loading = true
	st.warning = ""
}

func (st *feedState) EndLoad() {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.closed {
		return
	}
	st.loading = false
}

// Replace swaps in a freshly loaded list. A pending speculative post that
// has not yet reached the store is dropped here; it reappears once its
// write lands and triggers the next refresh. Accepted behavior, not a bug.
func (st *feedState) Replace(posts []domain.Post, warning string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.closed {
		return
	}
	st.posts = posts
	st.warning = warning
}

// Prepend puts a post at the head of the feed.
func (st *feedState) Prepend(post domain.Post) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.closed {
		return
	}
	st.posts = append([]domain.Post{post}, st.posts...)
}

// Remove deletes the post with the given ID, reporting whether it was found.
func (st *feedState) Remove(postID string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.closed {
		return false
	}
	for i, p := range st.posts {
		if p.ID == postID {
			st.posts = append(st.posts[:i], st.posts[i+1:]...)
			return true
		}
	}
	return false
}

// Snapshot returns a copy of the current state.
func (st *feedState) Snapshot() FeedSnapshot {
	st.mu.Lock()
	defer st.mu.Unlock()
	posts := make([]domain.Post, len(st.posts))
	copy(posts, st.posts)
	return FeedSnapshot{
		Posts:   posts,
		Loading: st.loading,
		Warning: st.warning,
	}
}

// Close freezes the state. Any update arriving afterwards is dropped.
func (st *feedState) Close() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.closed = true
}
