package confirm

import (
	"github.com/llehouerou/shutter/internal/ui/action"
)

// Result contains the confirmation dialog result.
type Result struct {
	Confirmed bool
	Context   any // User-provided context passed through
}

// ActionType implements action.Action.
func (a Result) ActionType() string { return "confirm.result" }

const source = "confirm"

var _ action.Action = Result{}
