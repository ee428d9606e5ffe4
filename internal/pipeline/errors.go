package pipeline

import "fmt"

// Stage names a step of the repair sequence
type Stage string

const (
	StageRead      Stage = "read"
	StageDecode    Stage = "decode"
	StageTransform Stage = "transform"
	StageWrite     Stage = "write"
)

// StageError ties a failure to the stage and file it happened in
type StageError struct {
	Stage Stage
	Path  string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
