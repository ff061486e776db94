package searchbox

import "github.com/llehouerou/shutter/internal/ui/action"

// Result is emitted when the search box closes.
type Result struct {
	Query    string
	Canceled bool // True if user pressed Escape
}

// ActionType implements action.Action.
func (a Result) ActionType() string { return "searchbox.result" }

const source = "searchbox"

var _ action.Action = Result{}
