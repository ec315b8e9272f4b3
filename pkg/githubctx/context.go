// Package githubctx exposes the GitHub Actions runner context (the GITHUB_*
// environment variables and the webhook event payload that triggered the
// workflow run) as a read-only, typed view.
//
// https://docs.github.com/en/actions/writing-workflows/choosing-what-your-workflow-does/contexts#github-context
package githubctx

import (
	"encoding/json"
	"os"
	"strings"
	"sync"

	"github.com/gravitational/trace"
)

// Config is used to configure Context.
type Config[T any] struct {
	// Environ is the environment variable snapshot the context reads from.
	// If nil, the live process environment is captured once at construction
	// and never consulted again.
	Environ map[string]string
	// Event is the event that triggered the workflow run. It is stored
	// as-is and returned verbatim by Context.Event.
	Event T
	// EventPath overrides the path of the file containing the full webhook
	// event payload. If empty, GITHUB_EVENT_PATH from the snapshot is used.
	EventPath string
}

// CheckAndSetDefaults verifies configuration and sets defaults.
func (c *Config[T]) CheckAndSetDefaults() error {
	if c.Environ == nil {
		c.Environ = environSnapshot()
	}
	return nil
}

// Context is a read-only view of the environment a workflow run executes in.
//
// It is a pure function of the inputs it was constructed with: an environment
// snapshot, an event value of any shape, and an optional payload file path.
// The repository and issue derivations are computed once on first access and
// memoized; the derivations are idempotent, so a duplicated computation under
// concurrent first access would store the same value.
type Context[T any] struct {
	env       map[string]string
	event     T
	eventPath string
	// payload holds the raw webhook payload parsed from the event file,
	// nil when no file was found. Used only to derive Repository and Issue.
	payload []byte

	repoOnce sync.Once
	repo     Repo
	repoOK   bool

	issueOnce sync.Once
	issue     Issue
	issueOK   bool
}

// New returns a new instance of Context.
//
// If a payload file path resolves (explicit EventPath, else GITHUB_EVENT_PATH)
// and names a regular file, its contents are read and validated as JSON; a
// malformed file is a fatal error reported by IsParseError. A missing file is
// not an error, the payload is simply empty.
func New[T any](cfg Config[T]) (*Context[T], error) {
	err := cfg.CheckAndSetDefaults()
	if err != nil {
		return nil, trace.Wrap(err)
	}
	ctx := &Context[T]{
		env:       cfg.Environ,
		event:     cfg.Event,
		eventPath: cfg.EventPath,
	}
	path, ok := ctx.EventPath()
	if !ok || !isFile(path) {
		return ctx, nil
	}
	body, err := readPayload(path)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	ctx.payload = body
	return ctx, nil
}

// FileConfig is used to configure FromFile.
type FileConfig struct {
	// Environ is the environment variable snapshot. If nil, the live
	// process environment is captured at call time.
	Environ map[string]string
	// EventPath overrides the path of the event payload file. If empty,
	// GITHUB_EVENT_PATH from the snapshot is used.
	EventPath string
}

// CheckAndSetDefaults verifies configuration and sets defaults.
func (c *FileConfig) CheckAndSetDefaults() error {
	if c.Environ == nil {
		c.Environ = environSnapshot()
	}
	return nil
}

// FromFile loads the event from the payload file on the runner and returns a
// Context whose event value and raw payload are both that parsed document.
//
// Returns a trace.NotFound error when no path resolves or the resolved path
// is not a regular file.
func FromFile(cfg FileConfig) (*Context[map[string]any], error) {
	err := cfg.CheckAndSetDefaults()
	if err != nil {
		return nil, trace.Wrap(err)
	}
	path := cfg.EventPath
	if path == "" {
		path = cfg.Environ["GITHUB_EVENT_PATH"]
	}
	if path == "" {
		return nil, trace.NotFound("no event payload path: GITHUB_EVENT_PATH is not set")
	}
	if !isFile(path) {
		return nil, trace.NotFound("event payload file %q not found", path)
	}
	body, err := readPayload(path)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	var event map[string]any
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, trace.Wrap(err, "parsing event payload file %q", path)
	}
	return &Context[map[string]any]{
		env:       cfg.Environ,
		event:     event,
		eventPath: path,
		payload:   body,
	}, nil
}

// Event returns the event that triggered the workflow run, exactly as it was
// passed at construction (or parsed by FromFile).
func (c *Context[T]) Event() T {
	return c.event
}

// Environ returns the environment snapshot the context was constructed with.
// Callers must not modify the returned map.
func (c *Context[T]) Environ() map[string]string {
	return c.env
}

// readPayload reads the event payload file and verifies it is valid JSON.
func readPayload(path string) ([]byte, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	var probe any
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, trace.Wrap(err, "parsing event payload file %q", path)
	}
	return body, nil
}

// isFile reports whether path names an existing regular file.
func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// environSnapshot captures the current process environment.
func environSnapshot() map[string]string {
	environ := os.Environ()
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		env[key] = value
	}
	return env
}
