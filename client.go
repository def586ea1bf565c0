package bgengine

// Client is a front-end driving a game. ReadCommand returns either a Command
// or a CommandMove. WriteEvent receives one of the Event* types.
type Client interface {
	ReadCommand() (any, error)
	WriteEvent(ev any) error
}
