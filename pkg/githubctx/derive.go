package githubctx

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Repo identifies a GitHub repository split into its components.
type Repo struct {
	// Owner is the owner of the repository.
	Owner string
	// Name is the name of the repository.
	Name string
}

// Issue identifies a GitHub issue or pull request split into its components.
type Issue struct {
	// Owner is the owner of the repository.
	Owner string
	// Name is the name of the repository.
	Name string
	// Number is the issue or pull request number.
	Number string
}

// Repository returns the repository the workflow run executes against.
//
// GITHUB_REPOSITORY takes precedence; when it is unset or unusable the
// repository object of the raw payload is consulted. Derived once on first
// access and memoized for the lifetime of the context, even if the snapshot
// map is mutated by the caller afterwards.
func (c *Context[T]) Repository() (Repo, bool) {
	c.repoOnce.Do(func() {
		c.repo, c.repoOK = c.deriveRepository()
	})
	return c.repo, c.repoOK
}

func (c *Context[T]) deriveRepository() (Repo, bool) {
	if full := c.env["GITHUB_REPOSITORY"]; full != "" {
		owner, name, found := strings.Cut(full, "/")
		if found {
			return Repo{Owner: owner, Name: name}, true
		}
		// Slash-less value, fall through to the payload.
	}
	owner := gjson.GetBytes(c.payload, "repository.owner.login")
	name := gjson.GetBytes(c.payload, "repository.name")
	if !owner.Exists() || !name.Exists() {
		return Repo{}, false
	}
	return Repo{Owner: owner.String(), Name: name.String()}, true
}

// Issue returns the issue or pull request the workflow run relates to.
//
// The number is read from the raw payload's issue object, else its
// pull_request object, else the payload itself. Absent when no number is
// found or the repository cannot be resolved. Derived once on first access
// and memoized.
func (c *Context[T]) Issue() (Issue, bool) {
	c.issueOnce.Do(func() {
		c.issue, c.issueOK = c.deriveIssue()
	})
	return c.issue, c.issueOK
}

func (c *Context[T]) deriveIssue() (Issue, bool) {
	doc := gjson.ParseBytes(c.payload)
	candidate := doc
	if issue := doc.Get("issue"); truthy(issue) {
		candidate = issue
	} else if pr := doc.Get("pull_request"); truthy(pr) {
		candidate = pr
	}
	number := candidate.Get("number")
	repo, ok := c.Repository()
	if !truthy(number) || !ok {
		return Issue{}, false
	}
	return Issue{Owner: repo.Owner, Name: repo.Name, Number: number.String()}, true
}

// RepositoryURL returns the URL to the repository on the GitHub server, absent
// when the repository cannot be resolved.
func (c *Context[T]) RepositoryURL() (string, bool) {
	repo, ok := c.Repository()
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%s/%s/%s", c.ServerURL(), repo.Owner, repo.Name), true
}

// truthy reports whether a payload value is present and non-empty: null,
// false, 0, "", and empty objects or arrays all count as absent. The string
// "0" counts as present.
func truthy(value gjson.Result) bool {
	if !value.Exists() {
		return false
	}
	switch value.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.Number:
		return value.Num != 0
	case gjson.String:
		return value.Str != ""
	}
	if value.IsObject() {
		return len(value.Map()) != 0
	}
	if value.IsArray() {
		return len(value.Array()) != 0
	}
	return true
}
