package service

import (
	"context"
	"errors"
	"strings"

	"portfolioapi/internal/model"
	"portfolioapi/internal/repository"
)

// DefaultLang is used when a request does not name a language.
const DefaultLang = "es"

var (
	ErrIDRequired    = errors.New("id is required")
	ErrTitleRequired = errors.New("title is required")
	ErrPostNotFound  = errors.New("post not found")
)

// BlogService defines the use cases for reading and publishing blog posts.
type BlogService interface {
	// List returns every post of the language partition in append order.
	List(ctx context.Context, lang string) ([]model.BlogPost, error)

	// Get returns the first post whose id matches, or ErrPostNotFound.
	Get(ctx context.Context, lang, id string) (*model.BlogPost, error)

	// Create appends a post to the language partition.
	Create(ctx context.Context, lang string, post model.BlogPost) error
}

type blogService struct {
	repo repository.PostRepository
}

// NewBlogService constructs a new BlogService.
func NewBlogService(repo repository.PostRepository) BlogService {
	return &blogService{repo: repo}
}

func normalizeLang(lang string) string {
	if lang == "" {
		return DefaultLang
	}
	return lang
}

func (s *blogService) List(ctx context.Context, lang string) ([]model.BlogPost, error) {
	return s.repo.Load(ctx, normalizeLang(lang))
}

// Get scans in file order so duplicated ids resolve to the earliest appended post.
func (s *blogService) Get(ctx context.Context, lang, id string) (*model.BlogPost, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	posts, err := s.repo.Load(ctx, normalizeLang(lang))
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].ID == id {
			p := posts[i]
			return &p, nil
		}
	}
	return nil, ErrPostNotFound
}

func (s *blogService) Create(ctx context.Context, lang string, post model.BlogPost) error {
	if strings.TrimSpace(post.ID) == "" {
		return ErrIDRequired
	}
	if strings.TrimSpace(post.Title) == "" {
		return ErrTitleRequired
	}
	return s.repo.Save(ctx, post, normalizeLang(lang))
}
