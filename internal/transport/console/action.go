package console

import "strings"

// Action is one entry of the main menu.
type Action int

const (
	ActionUnknown Action = iota
	ActionAdd
	ActionList
	ActionClear
	ActionExit
)

func (a Action) String() string {
	switch a {
	case ActionAdd:
		return "add"
	case ActionList:
		return "list"
	case ActionClear:
		return "clear"
	case ActionExit:
		return "exit"
	default:
		return "unknown"
	}
}

// ParseAction maps a menu choice ("1".."4") to its action.
func ParseAction(choice string) Action {
	switch strings.TrimSpace(choice) {
	case "1":
		return ActionAdd
	case "2":
		return ActionList
	case "3":
		return ActionClear
	case "4":
		return ActionExit
	default:
		return ActionUnknown
	}
}
