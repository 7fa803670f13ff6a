// Package github queries the GitHub GraphQL API for the pinned repositories of one account.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/oauth2"

	"portfolioapi/internal/config"
	"portfolioapi/internal/model"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected status from github")
	ErrNoData           = errors.New("github response has no user data")
)

const pinnedQuery = `{
  user(login: %q) {
    pinnedItems(first: 6, types: REPOSITORY) {
      nodes {
        ... on Repository {
          name
          description
          url
          openGraphImageUrl
          primaryLanguage {
            name
          }
        }
      }
    }
  }
}`

// PinnedQuery returns the GraphQL document sent for username.
func PinnedQuery(username string) string {
	return fmt.Sprintf(pinnedQuery, username)
}

type graphQLRequest struct {
	Query string `json:"query"`
}

type pinnedResponse struct {
	Data *struct {
		User *struct {
			PinnedItems struct {
				Nodes []model.PinnedRepository `json:"nodes"`
			} `json:"pinnedItems"`
		} `json:"user"`
	} `json:"data"`
}

// Client issues the pinned repositories query.
type Client struct {
	http     *http.Client
	endpoint string
	username string
}

// NewClient builds a Client whose transport adds the bearer token and traces each call.
// The configured timeout bounds every request.
func NewClient(cfg config.GitHubConfig) *Client {
	var transport http.RoundTripper = otelhttp.NewTransport(http.DefaultTransport)
	if cfg.Token != "" {
		transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token, TokenType: "Bearer"}),
			Base:   transport,
		}
	}
	return &Client{
		http:     &http.Client{Transport: transport, Timeout: cfg.Timeout},
		endpoint: cfg.GraphQLURL,
		username: cfg.Username,
	}
}

// FetchPinned returns the pinned repositories in the order GitHub reports them.
func (c *Client) FetchPinned(ctx context.Context) ([]model.PinnedRepository, error) {
	body, err := json.Marshal(graphQLRequest{Query: PinnedQuery(c.username)})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var out pinnedResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode github response: %w", err)
	}
	if out.Data == nil || out.Data.User == nil {
		return nil, ErrNoData
	}
	nodes := out.Data.User.PinnedItems.Nodes
	if nodes == nil {
		nodes = []model.PinnedRepository{}
	}
	return nodes, nil
}
