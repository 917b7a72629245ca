package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"vitalfit/wellness-app/internal/domain"
	"vitalfit/wellness-app/internal/functions"
	"vitalfit/wellness-app/internal/repository"
)

// --- Error Definitions ---
var (
	ErrAuthRequired     = errors.New("sign in required to create posts")
	ErrPostCreateFailed = errors.New("failed to create post")
	ErrPostNotFound     = errors.New("post not found")
	ErrAlreadyWatching  = errors.New("feed watch already started")
)

// Warning surfaced alongside the sample feed when no live data source
// produced any posts.
const degradedDataWarning = "Failed to load community posts. Using sample data instead."

// --- Service Interface ---

// FeedService owns the community feed: loading it from tiered data sources,
// optimistic post creation, likes, and the realtime resubscription that
// keeps it in sync with remote changes.
type FeedService interface {
	// Refresh reloads the feed through the tiered sources. It always
	// completes with some list; source failures degrade, they never error.
	Refresh(ctx context.Context)

	// Feed returns a snapshot of the current feed, optionally filtered by a
	// search term matched against post content and author name.
	Feed(search string) FeedSnapshot

	// CreatePost publishes a post for userID. The post appears in the feed
	// immediately as a speculative entry and is rolled back if the
	// authoritative write fails.
	CreatePost(ctx context.Context, userID, content, imageURL string) error

	// LikePost increments the like counter of a post.
	LikePost(ctx context.Context, userID, postID string) error

	// Start performs the initial load and subscribes to change
	// notifications on the post collection; every remote change triggers a
	// full Refresh. It may be called once.
	Start(ctx context.Context) error

	// Stop tears the subscription down and freezes the feed state. Safe to
	// call more than once; only the first call does anything.
	Stop()
}

// --- Service Implementation ---

// feedService implements the FeedService interface.
type feedService struct {
	postRepo    repository.PostRepository
	profileRepo repository.ProfileRepository
	fallback    functions.Client
	state       *feedState
	now         func() time.Time

	mu      sync.Mutex
	started bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewFeedService creates a new instance of feedService.
func NewFeedService(
	postRepo repository.PostRepository,
	profileRepo repository.ProfileRepository,
	fallback functions.Client,
) FeedService {
	return &feedService{
		postRepo:    postRepo,
		profileRepo: profileRepo,
		fallback:    fallback,
		state:       newFeedState(),
		now:         time.Now,
	}
}

// Refresh runs the tiered fetch: the post store first, then the hosted list
// function, then the fixed sample feed with a degraded-data warning. The
// tiers run strictly in order and a failing tier counts the same as an
// empty one. The loading flag flips on once at entry and off once on exit.
func (s *feedService) Refresh(ctx context.Context) {
	s.state.BeginLoad()
	defer s.state.EndLoad()

	now := s.now()

	rows, err := s.postRepo.ListNewestFirst(ctx)
	if err == nil && len(rows) > 0 {
		log.Printf("Found %d posts in database", len(rows))
		s.state.Replace(postsFromRows(rows, now), "")
		return
	}
	if err != nil {
		log.Printf("WARN: Primary post query failed, trying list function: %v", err)
	}

	rows, err = s.fallback.ListPosts(ctx)
	if err == nil && len(rows) > 0 {
		log.Printf("Found %d posts from list function", len(rows))
		s.state.Replace(postsFromRows(rows, now), "")
		return
	}
	if err != nil {
		log.Printf("WARN: List function failed: %v", err)
	}

	log.Println("No posts from database or list function, using sample data")
	s.state.Replace(SamplePosts(), degradedDataWarning)
}

// Feed returns the current snapshot, filtered by the search term if one is
// given.
func (s *feedService) Feed(search string) FeedSnapshot {
	snap := s.state.Snapshot()
	if search == "" {
		return snap
	}

	term := strings.ToLower(search)
	filtered := make([]domain.Post, 0, len(snap.Posts))
	for _, p := range snap.Posts {
		if strings.Contains(strings.ToLower(p.Content), term) ||
			strings.Contains(strings.ToLower(p.Author.Name), term) {
			filtered = append(filtered, p)
		}
	}
	snap.Posts = filtered
	return snap
}

// CreatePost publishes a post optimistically: a speculative entry with a
// temporary ID is prepended to the feed before the authoritative insert is
// issued. On insert failure the speculative entry is removed and nothing
// else changes. On success the whole feed is refreshed; the temporary ID is
// never patched in place.
func (s *feedService) CreatePost(ctx context.Context, userID, content, imageURL string) error {
	if userID == "" {
		return ErrAuthRequired
	}

	// Profile lookup failure is non-fatal; post under a generic identity.
	name, avatar := "You", ""
	if profile, err := s.profileRepo.GetByID(ctx, userID); err == nil {
		if profile.FullName != "" {
			name = profile.FullName
		}
		avatar = profile.AvatarURL
	} else {
		log.Printf("WARN: Could not load profile for user %s: %v", userID, err)
	}

	speculative := domain.Post{
		ID: fmt.Sprintf("%s%d", domain.SpeculativeIDPrefix, s.now().UnixMilli()),
		Author: domain.Author{
			ID:       userID,
			Name:     name,
			Username: "user_" + shortUserID(userID),
			Avatar:   avatar,
		},
		Content:    content,
		Image:      imageURL,
		TimePosted: "Just now",
	}

	// Visible before the write is even issued.
	s.state.Prepend(speculative)

	newPost := &domain.NewPost{UserID: userID, Content: content, ImageURL: imageURL}
	if _, err := s.postRepo.Insert(ctx, newPost); err != nil {
		s.state.Remove(speculative.ID)
		log.Printf("ERROR: Failed to create post: %v", err)
		return fmt.Errorf("%w: %v", ErrPostCreateFailed, err)
	}

	s.Refresh(ctx)
	return nil
}

// LikePost increments the stored like counter. The feed picks the new count
// up on the next refresh or change notification.
func (s *feedService) LikePost(ctx context.Context, userID, postID string) error {
	if userID == "" {
		return ErrAuthRequired
	}
	if strings.HasPrefix(postID, domain.SpeculativeIDPrefix) {
		// Not confirmed by the store yet, nothing to like.
		return ErrPostNotFound
	}

	if err := s.postRepo.IncrementLikes(ctx, postID, 1); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	return nil
}

// Start loads the feed and subscribes to the post collection's change
// stream. The subscription is established at most once for the lifetime of
// the service. The initial load does not depend on the subscription; when
// the stream cannot be opened the feed is still populated through the
// tiered sources, it just will not resync.
func (s *feedService) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return ErrAlreadyWatching
	}

	watchCtx, cancel := context.WithCancel(ctx)
	events, err := s.postRepo.Watch(watchCtx)
	if err != nil {
		cancel()
		s.mu.Unlock()
		s.Refresh(ctx)
		return fmt.Errorf("start post watch: %w", err)
	}
	s.started = true
	s.cancel = cancel
	s.done = make(chan struct{})
	done := s.done
	s.mu.Unlock()

	s.Refresh(ctx)

	go func() {
		defer close(done)
		for change := range events {
			log.Printf("Posts collection changed (%s), refreshing feed", change.Operation)
			s.Refresh(watchCtx)
		}
	}()

	return nil
}

// Stop cancels the subscription, waits for the watch loop to drain, and
// freezes the feed state so nothing in flight can write to it afterwards.
func (s *feedService) Stop() {
	s.mu.Lock()
	if !s.started || s.cancel == nil {
		s.mu.Unlock()
		return
	}
	cancel := s.cancel
	done := s.done
	s.cancel = nil
	s.mu.Unlock()

	cancel()
	<-done
	s.state.Close()
}

// --- Row transformation ---

// postsFromRows shapes raw backend rows for display, applying the author
// defaults for rows whose profile join came back empty.
func postsFromRows(rows []domain.PostRow, now time.Time) []domain.Post {
	posts := make([]domain.Post, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, postFromRow(row, now))
	}
	return posts
}

func postFromRow(row domain.PostRow, now time.Time) domain.Post {
	name, username, avatar := "User", "", ""
	if row.Profile != nil {
		if row.Profile.FullName != "" {
			name = row.Profile.FullName
		}
		username = row.Profile.Username
		avatar = row.Profile.AvatarURL
	}
	if username == "" {
		username = "user_" + shortUserID(row.UserID)
	}

	return domain.Post{
		ID: row.ID,
		Author: domain.Author{
			ID:       row.UserID,
			Name:     name,
			Username: username,
			Avatar:   avatar,
		},
		Content:    row.Content,
		Image:      row.ImageURL,
		Likes:      row.Likes,
		TimePosted: TimeAgo(row.CreatedAt, now),
	}
}

func shortUserID(userID string) string {
	if userID == "" {
		return "anonymous"
	}
	if len(userID) > 6 {
		return userID[:6]
	}
	return userID
}
