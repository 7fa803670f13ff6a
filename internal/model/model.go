package model

// Package model contains the domain data structures shared by the HTTP, service and storage layers.

// ContactRequest is the payload submitted by the contact form.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// PinnedRepository mirrors a repository node returned by the GitHub GraphQL API.
type PinnedRepository struct {
	Name              string           `json:"name"`
	Description       *string          `json:"description"`
	URL               string           `json:"url"`
	OpenGraphImageURL string           `json:"openGraphImageUrl"`
	PrimaryLanguage   *PrimaryLanguage `json:"primaryLanguage"`
}

// PrimaryLanguage is the main language GitHub detected for a repository.
type PrimaryLanguage struct {
	Name string `json:"name"`
}
