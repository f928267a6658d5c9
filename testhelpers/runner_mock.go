package testhelpers

import (
	"context"
	"strings"
	"sync"
)

// RunnerCall records one process invocation seen by the FakeRunner
type RunnerCall struct {
	Dir         string
	Name        string
	Args        []string
	Interactive bool
}

// Command returns the invocation as a single space-joined string
func (c RunnerCall) Command() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// RunnerResult is the canned outcome for a stubbed command
type RunnerResult struct {
	Stdout string
	Stderr string
	Err    error
}

// FakeRunner implements the process runner interfaces by recording every
// invocation and playing back stubbed results. Commands without a stub
// succeed with empty output.
type FakeRunner struct {
	mu      sync.Mutex
	calls   []RunnerCall
	results map[string]RunnerResult
}

// NewFakeRunner creates an empty FakeRunner
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{results: make(map[string]RunnerResult)}
}

// Stub registers the result returned when the exact command line
// (name followed by arguments) is run.
func (r *FakeRunner) Stub(command string, result RunnerResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results[command] = result
}

// Calls returns a copy of the recorded invocations
func (r *FakeRunner) Calls() []RunnerCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]RunnerCall(nil), r.calls...)
}

// Commands returns the recorded invocations as joined command lines
func (r *FakeRunner) Commands() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	commands := make([]string, len(r.calls))
	for i, call := range r.calls {
		commands[i] = call.Command()
	}
	return commands
}

// Run records the invocation and returns its stubbed result
func (r *FakeRunner) Run(_ context.Context, dir string, name string, args ...string) (string, string, error) {
	call := RunnerCall{Dir: dir, Name: name, Args: args}

	r.mu.Lock()
	r.calls = append(r.calls, call)
	result := r.results[call.Command()]
	r.mu.Unlock()

	return result.Stdout, result.Stderr, result.Err
}

// RunInteractive records the invocation and returns its stubbed error
func (r *FakeRunner) RunInteractive(_ context.Context, dir string, name string, args ...string) error {
	call := RunnerCall{Dir: dir, Name: name, Args: args, Interactive: true}

	r.mu.Lock()
	r.calls = append(r.calls, call)
	result := r.results[call.Command()]
	r.mu.Unlock()

	return result.Err
}

// ScriptedConfirmer answers confirmation prompts from a queued script and
// records every prompt it was asked. An empty script answers yes.
type ScriptedConfirmer struct {
	mu      sync.Mutex
	Prompts []string
	answers []bool
	Err     error
}

// Script queues the next answers in order
func (c *ScriptedConfirmer) Script(answers ...bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.answers = append(c.answers, answers...)
}

// Confirm pops the next scripted answer
func (c *ScriptedConfirmer) Confirm(prompt string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.Prompts = append(c.Prompts, prompt)
	if c.Err != nil {
		return false, c.Err
	}
	if len(c.answers) == 0 {
		return true, nil
	}
	answer := c.answers[0]
	c.answers = c.answers[1:]
	return answer, nil
}
