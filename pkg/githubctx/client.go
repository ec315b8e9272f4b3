package githubctx

import (
	"context"

	"github.com/gravitational/trace"

	"github.com/google/go-github/v37/github"
	"golang.org/x/oauth2"
)

// NewClient returns a GitHub client authenticated with the run's token,
// pointed at the API URL of the current context. GitHub Enterprise Server
// API URLs are honored.
//
// The context accessor itself never performs network calls; this only wires a
// client from values already present in the snapshot.
func (c *Context[T]) NewClient(ctx context.Context) (*github.Client, error) {
	token := c.Token()
	if token == "" {
		return nil, trace.NotFound("GITHUB_TOKEN is not set")
	}
	httpClient := oauth2.NewClient(ctx, oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	))
	apiURL := c.APIURL()
	if apiURL == defaultAPIURL {
		return github.NewClient(httpClient), nil
	}
	client, err := github.NewEnterpriseClient(apiURL, apiURL, httpClient)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	return client, nil
}
