package constants

// DocState is the canonical lifecycle state for rows in processed_documents.
type DocState string

// Stable values (store these exact strings in DB).
const (
	StateUploaded     DocState = "UPLOADED"      // record persisted, pipeline not started
	StateClassified   DocState = "CLASSIFIED"    // text extracted and type detected
	StateExtracted    DocState = "EXTRACTED"     // structured fields pulled from text
	StateAwaitingPair DocState = "AWAITING_PAIR" // parked until a complementary document arrives
	StatePaired       DocState = "PAIRED"        // matched with its complement
	StateAssembling   DocState = "ASSEMBLING"    // case assembly in progress
	StateCompleted    DocState = "COMPLETED"     // terminal: case created
	StateError        DocState = "ERROR"         // terminal: unrecoverable failure
)

// DocStates holds the allowed values for the state field.
var DocStates = []string{
	string(StateUploaded), string(StateClassified), string(StateExtracted),
	string(StateAwaitingPair), string(StatePaired), string(StateAssembling),
	string(StateCompleted), string(StateError),
}

// transitions is the enforced forward-edge table. ERROR is reachable from
// any non-terminal state and is handled in CanTransition directly.
var transitions = map[DocState][]DocState{
	StateUploaded:     {StateClassified},
	StateClassified:   {StateExtracted},
	StateExtracted:    {StateAwaitingPair, StatePaired},
	StateAwaitingPair: {StatePaired},
	StatePaired:       {StateAssembling},
	StateAssembling:   {StateCompleted},
}

// CanTransition reports whether from -> to is a legal lifecycle move.
func CanTransition(from, to DocState) bool {
	if from == StateCompleted || from == StateError {
		return false
	}
	if to == StateError {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Terminal reports whether s admits no further transitions.
func Terminal(s DocState) bool {
	return s == StateCompleted || s == StateError
}
