package inmemory

import (
	"context"
	"strings"
	"sync"
	"time"

	"newswire/internal/adapter/out/storage"
	"newswire/internal/model"
	"newswire/internal/service"
)

type PostStorage struct {
	mu    sync.RWMutex
	posts []model.Post
	byID  map[int64]model.Post
}

func NewPostStorage() *PostStorage {
	return &PostStorage{
		// index 0 holds a zero sentinel so a post's id equals its slice index
		posts: []model.Post{{}},
		byID:  make(map[int64]model.Post),
	}
}

func (s *PostStorage) CreatePost(_ context.Context, in model.Post) (model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	in.ID = int64(len(s.posts))
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now()
	}
	s.posts = append(s.posts, in)
	s.byID[in.ID] = in
	return in, nil
}

func (s *PostStorage) GetPostByID(_ context.Context, postID int64) (model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if post, ok := s.byID[postID]; ok {
		return post, nil
	}
	return model.Post{}, service.ErrNotFound
}

// ListPosts returns matching posts oldest first. Category is an exact,
// case-sensitive match; search is a case-insensitive substring test over
// title or content; both set means both must hold.
func (s *PostStorage) ListPosts(_ context.Context, filter storage.ListPostsFilter) ([]model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(filter.Search)

	out := make([]model.Post, 0, len(s.posts)-1)
	for id := 1; id < len(s.posts); id++ {
		p := s.posts[id]
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Title), needle) &&
			!strings.Contains(strings.ToLower(p.Content), needle) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}
