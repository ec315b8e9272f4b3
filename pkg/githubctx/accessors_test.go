package githubctx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

type stringEvent = map[string]string

func TestStringAccessors(t *testing.T) {
	tests := []struct {
		desc       string
		key        string
		defaultVal string
		get        func(*Context[stringEvent]) string
	}{
		{desc: "action", key: "GITHUB_ACTION", defaultVal: "", get: (*Context[stringEvent]).Action},
		{desc: "actor", key: "GITHUB_ACTOR", defaultVal: "", get: (*Context[stringEvent]).Actor},
		{desc: "api url", key: "GITHUB_API_URL", defaultVal: "https://api.github.com", get: (*Context[stringEvent]).APIURL},
		{desc: "event name", key: "GITHUB_EVENT_NAME", defaultVal: "", get: (*Context[stringEvent]).EventName},
		{desc: "graphql url", key: "GITHUB_GRAPHQL_URL", defaultVal: "https://api.github.com/graphql", get: (*Context[stringEvent]).GraphQLURL},
		{desc: "ref", key: "GITHUB_REF", defaultVal: "", get: (*Context[stringEvent]).Ref},
		{desc: "ref name", key: "GITHUB_REF_NAME", defaultVal: "", get: (*Context[stringEvent]).RefName},
		{desc: "ref type", key: "GITHUB_REF_TYPE", defaultVal: "branch", get: (*Context[stringEvent]).RefType},
		{desc: "server url", key: "GITHUB_SERVER_URL", defaultVal: "https://github.com", get: (*Context[stringEvent]).ServerURL},
		{desc: "sha", key: "GITHUB_SHA", defaultVal: "", get: (*Context[stringEvent]).SHA},
		{desc: "token", key: "GITHUB_TOKEN", defaultVal: "", get: (*Context[stringEvent]).Token},
		{desc: "triggering actor", key: "GITHUB_TRIGGERING_ACTOR", defaultVal: "", get: (*Context[stringEvent]).TriggeringActor},
		{desc: "workflow", key: "GITHUB_WORKFLOW", defaultVal: "", get: (*Context[stringEvent]).Workflow},
		{desc: "workflow ref", key: "GITHUB_WORKFLOW_REF", defaultVal: "", get: (*Context[stringEvent]).WorkflowRef},
		{desc: "workflow sha", key: "GITHUB_WORKFLOW_SHA", defaultVal: "", get: (*Context[stringEvent]).WorkflowSHA},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			ctx := newTestContext(t, map[string]string{})
			require.Equal(t, test.defaultVal, test.get(ctx))

			ctx = newTestContext(t, map[string]string{test.key: "test-value"})
			require.Equal(t, "test-value", test.get(ctx))
		})
	}
}

func TestOptionalAccessors(t *testing.T) {
	tests := []struct {
		desc string
		key  string
		get  func(*Context[stringEvent]) (string, bool)
	}{
		{desc: "action ref", key: "GITHUB_ACTION_REF", get: (*Context[stringEvent]).ActionRef},
		{desc: "action repository", key: "GITHUB_ACTION_REPOSITORY", get: (*Context[stringEvent]).ActionRepository},
		{desc: "base ref", key: "GITHUB_BASE_REF", get: (*Context[stringEvent]).BaseRef},
		{desc: "head ref", key: "GITHUB_HEAD_REF", get: (*Context[stringEvent]).HeadRef},
		{desc: "job", key: "GITHUB_JOB", get: (*Context[stringEvent]).Job},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			ctx := newTestContext(t, map[string]string{})
			_, ok := test.get(ctx)
			require.False(t, ok)

			ctx = newTestContext(t, map[string]string{test.key: "test-value"})
			value, ok := test.get(ctx)
			require.True(t, ok)
			require.Equal(t, "test-value", value)
		})
	}
}

func TestActionPath(t *testing.T) {
	ctx := newTestContext(t, map[string]string{})
	_, ok := ctx.ActionPath()
	require.False(t, ok)

	// Set but empty still counts as unset for path values.
	ctx = newTestContext(t, map[string]string{"GITHUB_ACTION_PATH": ""})
	_, ok = ctx.ActionPath()
	require.False(t, ok)

	ctx = newTestContext(t, map[string]string{"GITHUB_ACTION_PATH": "/srv/action"})
	path, ok := ctx.ActionPath()
	require.True(t, ok)
	require.Equal(t, "/srv/action", path)
}

func TestRefProtected(t *testing.T) {
	tests := []struct {
		desc     string
		environ  map[string]string
		expected bool
	}{
		{desc: "unset", environ: map[string]string{}, expected: false},
		{desc: "one", environ: map[string]string{"GITHUB_REF_PROTECTED": "1"}, expected: true},
		{desc: "true", environ: map[string]string{"GITHUB_REF_PROTECTED": "true"}, expected: true},
		{desc: "mixed case", environ: map[string]string{"GITHUB_REF_PROTECTED": "True"}, expected: true},
		{desc: "false", environ: map[string]string{"GITHUB_REF_PROTECTED": "false"}, expected: false},
		{desc: "zero", environ: map[string]string{"GITHUB_REF_PROTECTED": "0"}, expected: false},
		{desc: "junk", environ: map[string]string{"GITHUB_REF_PROTECTED": "yes"}, expected: false},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			require.Equal(t, test.expected, newTestContext(t, test.environ).RefProtected())
		})
	}
}

func TestWorkspace(t *testing.T) {
	ctx := newTestContext(t, map[string]string{"GITHUB_WORKSPACE": "/srv/workspace"})
	require.Equal(t, "/srv/workspace", ctx.Workspace())

	wd, err := os.Getwd()
	require.NoError(t, err)
	ctx = newTestContext(t, map[string]string{})
	require.Equal(t, wd, ctx.Workspace())
}
