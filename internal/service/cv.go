package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"portfolioapi/internal/storage"
)

var ErrCVNotFound = errors.New("cv not found")

// CVLangs lists the languages a CV document is published in.
var CVLangs = []string{"es", "en"}

// CVService serves the static CV document of each language.
type CVService interface {
	// Get returns the raw JSON document for lang, unchanged.
	Get(ctx context.Context, lang string) ([]byte, error)
}

type cvService struct {
	store storage.Storage
}

// NewCVService constructs a CVService reading cv_{lang}.json objects from store.
func NewCVService(store storage.Storage) CVService {
	return &cvService{store: store}
}

// CVKey returns the object key of the CV document for lang.
func CVKey(lang string) string {
	return "cv_" + lang + ".json"
}

func (s *cvService) Get(ctx context.Context, lang string) ([]byte, error) {
	if !slices.Contains(CVLangs, lang) {
		return nil, ErrCVNotFound
	}
	data, err := storage.ReadAll(ctx, s.store, CVKey(lang))
	if err != nil {
		if errors.Is(err, storage.ErrNotExist) {
			return nil, ErrCVNotFound
		}
		return nil, fmt.Errorf("read cv %s: %w", lang, err)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("cv %s is not valid JSON", lang)
	}
	return data, nil
}
