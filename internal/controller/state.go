package controller

import "fmt"

// State identifies where the listing sequence currently is. The zero
// value is Idle.
type State int

const (
	Idle State = iota
	AwaitFilesystem
	OpeningDirectory
	ReadingDirectory
	ClosingDirectory
	Complete
	Error
)

var stateNames = [...]string{
	Idle:             "Idle",
	AwaitFilesystem:  "AwaitFilesystem",
	OpeningDirectory: "OpeningDirectory",
	ReadingDirectory: "ReadingDirectory",
	ClosingDirectory: "ClosingDirectory",
	Complete:         "Complete",
	Error:            "Error",
}

// String returns the display name of the state. A value outside the
// declared set is a programming error and panics.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		panic(fmt.Sprintf("controller: state %d out of bounds", int(s)))
	}
	return stateNames[s]
}

// Terminal reports whether the machine idles forever in this state.
func (s State) Terminal() bool {
	return s == Complete || s == Error
}
