package seed

import "fmt"

// Stage identifies one step of a seeding run. Stages execute strictly in
// declaration order.
type Stage int

const (
	StageConnect Stage = iota
	StageClear
	StageGenerate
	StageValidate
	StageNormalize
	StageInsert
	StageReport
	StageDisconnect
)

var stageNames = [...]string{
	StageConnect:    "connect",
	StageClear:      "clear",
	StageGenerate:   "generate",
	StageValidate:   "validate",
	StageNormalize:  "normalize",
	StageInsert:     "insert",
	StageReport:     "report",
	StageDisconnect: "disconnect",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return fmt.Sprintf("stage(%d)", int(s))
	}
	return stageNames[s]
}

// StageError is returned by Run when a stage fails. Collection is empty for
// failures that are not tied to a single collection.
type StageError struct {
	Stage      Stage
	Collection string
	Err        error
}

func (e *StageError) Error() string {
	if e.Collection == "" {
		return fmt.Sprintf("seed %s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("seed %s %s: %v", e.Stage, e.Collection, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }
