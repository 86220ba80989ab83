package contract

// CommandKind is the closed set of operations an agent understands.
type CommandKind string

const (
	CommandAdd     CommandKind = "add"
	CommandList    CommandKind = "list"
	CommandDelete  CommandKind = "delete"
	CommandUpdate  CommandKind = "update"
	CommandUnknown CommandKind = "unknown"
)

// Command is the validated form of a parsed user instruction. It is produced
// only by the parse boundary: an add always carries a non-empty Name, a delete
// or update always carries a positive ID. Optional fields are nil when the
// user did not mention them.
type Command struct {
	Kind      CommandKind
	ID        int64
	Name      *string
	Secondary *string
}
