package jsonstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/semaphore"

	"portfolioapi/internal/model"
	"portfolioapi/internal/postschema"
	"portfolioapi/internal/repository"
	"portfolioapi/internal/storage"
)

// PartitionKey returns the object key holding the posts of lang.
func PartitionKey(lang string) string {
	return "blog_posts_" + lang + ".json"
}

// PostStore is a storage-backed implementation of repository.PostRepository.
// Each language partition is one JSON array object; every call reads or rewrites it whole.
// Writers to the same partition are serialized; different partitions never contend.
type PostStore struct {
	store  storage.Storage
	now    func() time.Time
	logger *slog.Logger
	saved  *prometheus.CounterVec

	mu    sync.Mutex
	locks map[string]*semaphore.Weighted
}

var _ repository.PostRepository = (*PostStore)(nil)

// Option configures a PostStore.
type Option func(*PostStore) error

// WithClock overrides the clock used to date seeded posts.
func WithClock(now func() time.Time) Option {
	return func(s *PostStore) error {
		s.now = now
		return nil
	}
}

// WithLocation dates seeded posts in loc. It wraps the clock set so far.
func WithLocation(loc *time.Location) Option {
	return func(s *PostStore) error {
		if loc == nil {
			return nil
		}
		now := s.now
		s.now = func() time.Time { return now().In(loc) }
		return nil
	}
}

// WithLogger sets the logger used for partition lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return func(s *PostStore) error {
		s.logger = l
		return nil
	}
}

// WithRegisterer registers the blog_posts_saved_total counter on reg.
// A collector already registered on reg by another store is shared.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(s *PostStore) error {
		c := prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "blog_posts_saved_total",
			Help: "Total number of blog posts appended, by language partition.",
		}, []string{"lang"})
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if !errors.As(err, &are) {
				return fmt.Errorf("register blog_posts_saved_total: %w", err)
			}
			existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				return fmt.Errorf("register blog_posts_saved_total: %w", err)
			}
			c = existing
		}
		s.saved = c
		return nil
	}
}

// NewPostStore creates a PostStore writing partitions through store.
func NewPostStore(store storage.Storage, opts ...Option) (*PostStore, error) {
	s := &PostStore{
		store:  store,
		now:    time.Now,
		logger: slog.Default(),
		locks:  make(map[string]*semaphore.Weighted),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Load returns the posts of lang in file order, seeding the partition if it does not exist.
func (s *PostStore) Load(ctx context.Context, lang string) ([]model.BlogPost, error) {
	posts, err := s.read(ctx, lang)
	if err == nil {
		return posts, nil
	}
	if !errors.Is(err, storage.ErrNotExist) {
		return nil, err
	}

	// Seeding writes, so it runs under the partition lock like Save.
	release, err := s.lock(ctx, lang)
	if err != nil {
		return nil, err
	}
	defer release()
	return s.loadLocked(ctx, lang)
}

// Save appends post to the partition of lang.
func (s *PostStore) Save(ctx context.Context, post model.BlogPost, lang string) error {
	release, err := s.lock(ctx, lang)
	if err != nil {
		return err
	}
	defer release()

	posts, err := s.loadLocked(ctx, lang)
	if err != nil {
		return err
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	posts = append(posts, post)
	if err := s.write(ctx, lang, posts); err != nil {
		return err
	}
	if s.saved != nil {
		s.saved.WithLabelValues(lang).Inc()
	}
	return nil
}

// loadLocked must be called with the partition lock held.
func (s *PostStore) loadLocked(ctx context.Context, lang string) ([]model.BlogPost, error) {
	posts, err := s.read(ctx, lang)
	if err == nil {
		return posts, nil
	}
	if !errors.Is(err, storage.ErrNotExist) {
		return nil, err
	}

	posts = []model.BlogPost{SeedPost(lang, s.now())}
	if err := s.write(ctx, lang, posts); err != nil {
		return nil, err
	}
	s.logger.Info("blog partition created", slog.String("lang", lang), slog.String("key", PartitionKey(lang)))
	return posts, nil
}

func (s *PostStore) read(ctx context.Context, lang string) ([]model.BlogPost, error) {
	data, err := storage.ReadAll(ctx, s.store, PartitionKey(lang))
	if err != nil {
		return nil, err
	}
	if err := postschema.ValidatePartition(data); err != nil {
		return nil, fmt.Errorf("%w %s: %v", repository.ErrMalformedPartition, PartitionKey(lang), err)
	}
	var posts []model.BlogPost
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, fmt.Errorf("%w %s: %v", repository.ErrMalformedPartition, PartitionKey(lang), err)
	}
	if posts == nil {
		posts = []model.BlogPost{}
	}
	return posts, nil
}

func (s *PostStore) write(ctx context.Context, lang string, posts []model.BlogPost) error {
	data, err := Encode(posts)
	if err != nil {
		return fmt.Errorf("encode partition: %w", err)
	}
	if _, err := s.store.Put(ctx, PartitionKey(lang), bytes.NewReader(data), storage.PutObjectOptions{
		Size:        int64(len(data)),
		ContentType: "application/json",
	}); err != nil {
		return fmt.Errorf("write partition %s: %w", PartitionKey(lang), err)
	}
	return nil
}

// lock acquires the exclusive scope of a partition. The returned func releases it.
func (s *PostStore) lock(ctx context.Context, lang string) (func(), error) {
	s.mu.Lock()
	sem, ok := s.locks[lang]
	if !ok {
		sem = semaphore.NewWeighted(1)
		// lang may alias a request buffer that is reused once the request ends.
		s.locks[strings.Clone(lang)] = sem
	}
	s.mu.Unlock()

	if err := sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	return func() { sem.Release(1) }, nil
}

// Encode renders posts the way partitions are stored: a two-space indented JSON array
// with non-ASCII characters kept as-is.
func Encode(posts []model.BlogPost) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(posts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
