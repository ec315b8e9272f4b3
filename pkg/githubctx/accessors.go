package githubctx

import (
	"os"
	"strings"
)

const (
	defaultAPIURL     = "https://api.github.com"
	defaultGraphQLURL = "https://api.github.com/graphql"
	defaultServerURL  = "https://github.com"
)

// get returns the named environment variable from the snapshot, or fallback
// when it is unset.
func (c *Context[T]) get(key, fallback string) string {
	if value, ok := c.env[key]; ok {
		return value
	}
	return fallback
}

// lookup returns the named environment variable from the snapshot and whether
// it was set.
func (c *Context[T]) lookup(key string) (string, bool) {
	value, ok := c.env[key]
	return value, ok
}

// Action returns the name of the action currently running, or the id of a
// step. GitHub removes special characters, and uses the name __run when the
// current step runs a script without an id. If the same action runs more than
// once in the same job, the name includes a sequence number suffix.
func (c *Context[T]) Action() string {
	return c.get("GITHUB_ACTION", "")
}

// ActionPath returns the path where an action is located. Only set for
// composite actions; it can be used to access files located in the same
// repository as the action.
func (c *Context[T]) ActionPath() (string, bool) {
	value := c.get("GITHUB_ACTION_PATH", "")
	return value, value != ""
}

// ActionRef returns the ref of the action being executed, for a step
// executing an action.
func (c *Context[T]) ActionRef() (string, bool) {
	return c.lookup("GITHUB_ACTION_REF")
}

// ActionRepository returns the owner and repository name of the action, for a
// step executing an action.
func (c *Context[T]) ActionRepository() (string, bool) {
	return c.lookup("GITHUB_ACTION_REPOSITORY")
}

// Actor returns the username of the user that triggered the initial workflow
// run.
func (c *Context[T]) Actor() string {
	return c.get("GITHUB_ACTOR", "")
}

// APIURL returns the URL of the GitHub REST API.
func (c *Context[T]) APIURL() string {
	return c.get("GITHUB_API_URL", defaultAPIURL)
}

// BaseRef returns the target branch of the pull request in a workflow run.
// Only set when the triggering event is pull_request or pull_request_target.
func (c *Context[T]) BaseRef() (string, bool) {
	return c.lookup("GITHUB_BASE_REF")
}

// EventName returns the name of the event that triggered the workflow run.
func (c *Context[T]) EventName() string {
	return c.get("GITHUB_EVENT_NAME", "")
}

// EventPath returns the path of the file with the complete webhook event
// payload on the runner: the explicit construction-time path when one was
// given, else the value of GITHUB_EVENT_PATH.
func (c *Context[T]) EventPath() (string, bool) {
	if c.eventPath != "" {
		return c.eventPath, true
	}
	value := c.get("GITHUB_EVENT_PATH", "")
	return value, value != ""
}

// GraphQLURL returns the URL of the GitHub GraphQL API.
func (c *Context[T]) GraphQLURL() string {
	return c.get("GITHUB_GRAPHQL_URL", defaultGraphQLURL)
}

// HeadRef returns the source branch of the pull request in a workflow run.
// Only set when the triggering event is pull_request or pull_request_target.
func (c *Context[T]) HeadRef() (string, bool) {
	return c.lookup("GITHUB_HEAD_REF")
}

// Job returns the job_id of the current job. Set by the Actions runner, and
// only available within the execution steps of a job.
func (c *Context[T]) Job() (string, bool) {
	return c.lookup("GITHUB_JOB")
}

// Ref returns the fully-formed ref of the branch or tag that triggered the
// workflow run, e.g. refs/heads/<branch_name> for branches,
// refs/pull/<pr_number>/merge for pull requests, refs/tags/<tag_name> for
// tags. Empty if no branch or tag is available for the event type.
func (c *Context[T]) Ref() string {
	return c.get("GITHUB_REF", "")
}

// RefName returns the short ref name of the branch or tag that triggered the
// workflow run. For pull requests the format is <pr_number>/merge.
func (c *Context[T]) RefName() string {
	return c.get("GITHUB_REF_NAME", "")
}

// RefProtected reports whether branch protections or rulesets are configured
// for the ref that triggered the workflow run.
func (c *Context[T]) RefProtected() bool {
	switch strings.ToLower(c.get("GITHUB_REF_PROTECTED", "")) {
	case "1", "true":
		return true
	}
	return false
}

// RefType returns the type of ref that triggered the workflow run, either
// "branch" or "tag".
func (c *Context[T]) RefType() string {
	return c.get("GITHUB_REF_TYPE", "branch")
}

// ServerURL returns the URL of the GitHub server.
func (c *Context[T]) ServerURL() string {
	return c.get("GITHUB_SERVER_URL", defaultServerURL)
}

// SHA returns the commit SHA that triggered the workflow run.
func (c *Context[T]) SHA() string {
	return c.get("GITHUB_SHA", "")
}

// Token returns the token to authenticate on behalf of the GitHub App
// installed on the repository, equivalent to the GITHUB_TOKEN secret.
func (c *Context[T]) Token() string {
	return c.get("GITHUB_TOKEN", "")
}

// TriggeringActor returns the username of the user that initiated the
// workflow run.
func (c *Context[T]) TriggeringActor() string {
	return c.get("GITHUB_TRIGGERING_ACTOR", "")
}

// Workflow returns the name of the workflow. If the workflow file doesn't
// specify a name, this is the full path of the workflow file in the
// repository.
func (c *Context[T]) Workflow() string {
	return c.get("GITHUB_WORKFLOW", "")
}

// WorkflowRef returns the ref path to the workflow, e.g.
// octocat/hello-world/.github/workflows/my-workflow.yml@refs/heads/my_branch.
func (c *Context[T]) WorkflowRef() string {
	return c.get("GITHUB_WORKFLOW_REF", "")
}

// WorkflowSHA returns the commit SHA for the workflow file.
func (c *Context[T]) WorkflowSHA() string {
	return c.get("GITHUB_WORKFLOW_SHA", "")
}

// Workspace returns the default working directory on the runner for steps,
// also the default location of the repository when using the checkout action.
// Falls back to the current working directory at the moment of the call when
// GITHUB_WORKSPACE is unset.
func (c *Context[T]) Workspace() string {
	if value := c.get("GITHUB_WORKSPACE", ""); value != "" {
		return value
	}
	wd, _ := os.Getwd()
	return wd
}
