package cli

import (
	"github.com/ImShyMike/fuxi/internal/config"
	"github.com/ImShyMike/fuxi/internal/git"
	"github.com/ImShyMike/fuxi/internal/mirror"
	"github.com/ImShyMike/fuxi/internal/output"
)

// App carries the collaborators shared by every command. Commands load the
// configuration at the start of their run and persist it at the end; nothing
// is cached between invocations.
type App struct {
	Store   *config.Store
	Shell   *git.Shell
	Syncer  *mirror.Syncer
	Confirm mirror.Confirmer
	Splog   *output.Splog
}

// NewApp wires the production collaborators: the real config store, the git
// binary, interactive prompts and stdout logging.
func NewApp() (*App, error) {
	store, err := config.NewStore()
	if err != nil {
		return nil, err
	}

	runner := git.NewExecRunner()
	confirm := NewSurveyConfirmer()

	return &App{
		Store:   store,
		Shell:   git.NewShell(runner),
		Syncer:  mirror.NewSyncer(confirm, runner),
		Confirm: confirm,
		Splog:   output.NewSplog(),
	}, nil
}
