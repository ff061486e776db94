package helpbindings

import (
	"github.com/llehouerou/shutter/internal/ui/action"
)

// Close signals the help popup should close.
type Close struct{}

// ActionType implements action.Action.
func (a Close) ActionType() string { return "helpbindings.close" }

const source = "helpbindings"

var _ action.Action = Close{}
