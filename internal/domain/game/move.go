package game

// Move kinds recorded in the game history.
const (
	MoveKindPlay   = "play"
	MoveKindPass   = "pass"
	MoveKindResign = "resign"
)

// MoveRecord is one entry of the append-only game history. Hash is the
// position hash of the board after the move was committed; the ko rule
// compares candidate positions against these.
type MoveRecord struct {
	Color Color  `json:"color"`
	Kind  string `json:"kind"`
	Point Point  `json:"point,omitempty"` // meaningful only for plays
	Hash  uint64 `json:"hash"`
}

// MoveOutcome is the observable delta of a committed play: the placed stone
// and every enemy stone it captured.
type MoveOutcome struct {
	Placed   Point   `json:"placed"`
	Captured []Point `json:"captured,omitempty"`
}
