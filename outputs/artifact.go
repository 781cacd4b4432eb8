// Package outputs persists generated strategies as an append-only python
// artifact. The artifact is both the final deliverable and the resume state:
// the class declarations already in it define which batch indices are done.
package outputs

import (
	"fmt"
	"os"

	"github.com/reusee/stratgen/strategies"
)

// Preamble imports the collaborator framework symbols every emitted class
// depends on.
const Preamble = `import axelrod as axl

from common import Attitude, auto_update_score, LLM_Strategy`

type Artifact struct {
	path string
	file *os.File
}

func NewArtifact(path string) *Artifact {
	return &Artifact{
		path: path,
	}
}

func (a *Artifact) Path() string {
	return a.path
}

// Init truncates the artifact and writes the preamble, for a fresh run.
func (a *Artifact) Init() error {
	return os.WriteFile(a.path, []byte(Preamble), 0644)
}

// OpenAppend opens the artifact for appending. The handle stays open for
// the whole run.
func (a *Artifact) OpenAppend() error {
	if a.file != nil {
		return fmt.Errorf("artifact already open: %s", a.path)
	}
	file, err := os.OpenFile(a.path, os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	a.file = file
	return nil
}

// AppendUnit renders and appends one unit.
func (a *Artifact) AppendUnit(unit strategies.Unit) error {
	if a.file == nil {
		return fmt.Errorf("artifact not open: %s", a.path)
	}
	_, err := a.file.WriteString("\n\n" + Render(unit))
	return err
}

// Sync flushes appended units to disk, called after each completed index so
// a crash loses at most the index in flight.
func (a *Artifact) Sync() error {
	if a.file == nil {
		return fmt.Errorf("artifact not open: %s", a.path)
	}
	return a.file.Sync()
}

func (a *Artifact) Close() error {
	if a.file == nil {
		return nil
	}
	err := a.file.Close()
	a.file = nil
	return err
}
