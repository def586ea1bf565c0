package bgengine

// events are always delivered FROM the game to a client

type EventType string

const (
	EventTypeRolled     EventType = "rolled"
	EventTypeFailedRoll EventType = "failedroll"
	EventTypeMoved      EventType = "moved"
	EventTypeFailedMove EventType = "failedmove"
	EventTypeTurn       EventType = "turn"
	EventTypeFailedEnd  EventType = "failedend"
	EventTypeNoMoves    EventType = "nomoves"
	EventTypeWin        EventType = "win"
	EventTypeHint       EventType = "hint"
	EventTypeBoard      EventType = "board"
	EventTypeHistory    EventType = "history"
	EventTypeHelp       EventType = "help"
)

type Event struct {
	Type   EventType
	Player Color
}

type EventRolled struct {
	Event
	Dice []int
}

type EventFailedRoll struct {
	Event
	Reason string
}

type EventMoved struct {
	Event
	Move PlayedMove
}

type EventFailedMove struct {
	Event
	From   int
	To     int
	Reason string
}

// EventTurn is sent when the turn passes to Player.
type EventTurn struct {
	Event
}

type EventFailedEnd struct {
	Event
	Reason string
}

// EventNoMoves is sent when Player rolled but cannot play any die.
type EventNoMoves struct {
	Event
	Dice []int
}

type EventWin struct {
	Event
}

type EventHint struct {
	Event
	Moves []Move
}

type EventBoard struct {
	Event
	State GameState
}

type EventHistory struct {
	Event
	Moves []PlayedMove
}

type EventHelp struct {
	Event
}
