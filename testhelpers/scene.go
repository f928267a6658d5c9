// Package testhelpers provides shared fixtures for fuxi tests: scenes that
// wire an App against temporary directories, fake process runners, scripted
// confirmations and seeded Git repositories.
package testhelpers

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ImShyMike/fuxi/internal/cli"
	"github.com/ImShyMike/fuxi/internal/config"
	"github.com/ImShyMike/fuxi/internal/git"
	"github.com/ImShyMike/fuxi/internal/mirror"
	"github.com/ImShyMike/fuxi/internal/output"
)

// Scene is a test fixture holding a fully wired App whose collaborators all
// point at temporary directories. Console output is captured in Out and
// confirmation prompts are answered by the scripted Confirm.
type Scene struct {
	Dir     string // scene root
	LiveDir string // stand-in for the user's live filesystem
	RepoDir string // backup repository working tree
	Out     *bytes.Buffer
	Store   *config.Store
	Confirm *ScriptedConfirmer
	Runner  *FakeRunner
	Repo    *GitRepo
	App     *cli.App
}

// NewScene creates a scene whose git and sudo invocations run against a
// FakeRunner. Use it for orchestration tests that must not touch a real
// git binary.
func NewScene(t *testing.T) *Scene {
	t.Helper()

	scene := newSceneDirs(t)
	scene.Runner = NewFakeRunner()
	scene.App = newApp(scene, scene.Runner)
	return scene
}

// NewGitScene creates a scene that runs real git commands. RepoDir is left
// uncreated so init flows can create it; seed it with SeedRepo when a test
// needs pre-existing backups.
func NewGitScene(t *testing.T) *Scene {
	t.Helper()

	scene := newSceneDirs(t)
	scene.App = newApp(scene, git.NewExecRunner())
	return scene
}

// SeedRepo initializes RepoDir as a real Git repository
func (s *Scene) SeedRepo(t *testing.T) *GitRepo {
	t.Helper()

	if err := os.MkdirAll(s.RepoDir, 0o755); err != nil {
		t.Fatalf("Failed to create repo dir: %v", err)
	}
	s.Repo = InitGitRepo(t, s.RepoDir)
	return s.Repo
}

// Config loads the scene's configuration from disk
func (s *Scene) Config() *config.Config {
	return s.Store.Load()
}

// SaveConfig persists cfg to the scene's config file
func (s *Scene) SaveConfig(t *testing.T, cfg *config.Config) {
	t.Helper()

	if err := s.Store.Save(cfg); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}
}

// WriteLiveFile writes a file under LiveDir, creating parent directories,
// and returns its absolute path.
func (s *Scene) WriteLiveFile(t *testing.T, rel string, content string) string {
	t.Helper()

	path := filepath.Join(s.LiveDir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create parent dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	return path
}

// Run executes a fuxi command in-process against the scene's App and
// returns the captured console output.
func (s *Scene) Run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	s.Out.Reset()
	root := cli.NewRootCmd(s.App, "test", "none", "unknown")
	root.SetArgs(args)
	root.SetOut(s.Out)
	root.SetErr(s.Out)
	err := root.Execute()
	return s.Out.String(), err
}

func newSceneDirs(t *testing.T) *Scene {
	t.Helper()

	dir := t.TempDir()
	liveDir := filepath.Join(dir, "live")
	if err := os.MkdirAll(liveDir, 0o755); err != nil {
		t.Fatalf("Failed to create live dir: %v", err)
	}

	return &Scene{
		Dir:     dir,
		LiveDir: liveDir,
		RepoDir: filepath.Join(dir, "repo"),
		Out:     &bytes.Buffer{},
		Store:   config.NewStoreAt(filepath.Join(dir, "config", "config.toml")),
		Confirm: &ScriptedConfirmer{},
	}
}

func newApp(scene *Scene, runner git.Runner) *cli.App {
	return &cli.App{
		Store:   scene.Store,
		Shell:   git.NewShell(runner),
		Syncer:  mirror.NewSyncer(scene.Confirm, runner),
		Confirm: scene.Confirm,
		Splog:   output.NewSplogTo(scene.Out),
	}
}
