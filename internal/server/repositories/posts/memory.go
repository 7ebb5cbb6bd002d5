package posts

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophblog/internal/common"
	"github.com/dmitrijs2005/gophblog/internal/server/models"
)

// MemoryRepository keeps posts in process memory. Safe for concurrent use.
type MemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]models.Post
	now    func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		items: make(map[int64]models.Post),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (r *MemoryRepository) Create(_ context.Context, post *models.Post) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	p := *post
	p.ID = r.nextID
	p.CreatedAt = r.now()
	p.UpdatedAt = p.CreatedAt
	r.items[p.ID] = p

	return &p, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id int64) (*models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &p, nil
}

func (r *MemoryRepository) List(_ context.Context, limit, offset uint64) ([]*models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]int64, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	result := make([]*models.Post, 0)
	if offset >= uint64(len(ids)) {
		return result, nil
	}
	end := uint64(len(ids))
	if limit < end-offset {
		end = offset + limit
	}
	for _, id := range ids[offset:end] {
		p := r.items[id]
		result = append(result, &p)
	}
	return result, nil
}

func (r *MemoryRepository) Count(context.Context) (uint64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return uint64(len(r.items)), nil
}

func (r *MemoryRepository) Update(_ context.Context, post *models.Post) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[post.ID]
	if !ok {
		return nil, common.ErrNotFound
	}
	p.Title = post.Title
	p.Content = post.Content
	p.UpdatedAt = r.now()
	r.items[p.ID] = p

	return &p, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.items, id)
	return nil
}
