package game

// ScoreResult is the final outcome of a terminated game. It is computed once
// and never mutated afterwards. Winner == Empty reports a tie. Scores are
// floats because komi may be fractional.
type ScoreResult struct {
	BlackTerritory int     `json:"black_territory"`
	WhiteTerritory int     `json:"white_territory"`
	BlackCaptures  int     `json:"black_captures"`
	WhiteCaptures  int     `json:"white_captures"`
	BlackScore     float64 `json:"black_score"`
	WhiteScore     float64 `json:"white_score"`
	Winner         Color   `json:"winner"`
	Reason         string  `json:"reason"`
}

// Snapshot is a read-only copy of the game for rendering. The grid is
// detached from the live board, so holding a Snapshot across later moves is
// safe.
type Snapshot struct {
	Size          int          `json:"size"`
	Board         [][]Color    `json:"board"`
	CurrentPlayer Color        `json:"current_player"`
	MoveCount     int          `json:"move_count"`
	Terminated    bool         `json:"terminated"`
	Result        *ScoreResult `json:"result,omitempty"`
}
