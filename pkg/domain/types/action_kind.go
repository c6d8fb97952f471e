package types

// ActionKind identifies one kind of assistant-emitted instruction.
// The assistant is an untrusted producer: values outside this enumeration
// may arrive at any time and are ignored by the dispatcher.
type ActionKind string

const (
	ActionAddClient    ActionKind = "add_client"
	ActionAddService   ActionKind = "add_service"
	ActionAddNote      ActionKind = "add_note"
	ActionCompleteNote ActionKind = "complete_note"
	ActionMarkPayment  ActionKind = "mark_payment"

	// ActionNone marks a conversational reply with no side effects.
	// It is filtered out before a batch reaches the dispatcher.
	ActionNone ActionKind = "none"
)

// IsValid reports whether the kind is part of the recognized enumeration
func (k ActionKind) IsValid() bool {
	switch k {
	case ActionAddClient, ActionAddService, ActionAddNote, ActionCompleteNote, ActionMarkPayment, ActionNone:
		return true
	}
	return false
}

// String returns the string representation of ActionKind
func (k ActionKind) String() string {
	return string(k)
}
