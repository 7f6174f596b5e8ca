package board

// This file contains some sample layouts, used for testing and for the
// `sample` shell command.

var (
	// StartLayout is the standard opening position.
	StartLayout = Layout{
		{0, 2, 0, 2, 0, 2, 0, 2},
		{2, 0, 2, 0, 2, 0, 2, 0},
		{0, 2, 0, 2, 0, 2, 0, 2},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{1, 0, 1, 0, 1, 0, 1, 0},
		{0, 1, 0, 1, 0, 1, 0, 1},
		{1, 0, 1, 0, 1, 0, 1, 0},
	}

	// DoubleJumpLayout gives player 2 exactly one double capture:
	// (2,1) over (3,2) and (5,4), landing on (6,5).
	DoubleJumpLayout = Layout{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 2, 0, 0, 0, 0, 0, 0},
		{0, 0, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{1, 0, 0, 0, 0, 0, 0, 0},
	}

	// KingChainLayout has a player 1 king on (6,1) that can jump (5,2) and
	// then turn backward over (5,4). A man on the same square could only
	// take the first piece.
	KingChainLayout = Layout{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 2, 0, 2, 0, 0, 0},
		{0, 11, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
	}

	// PromotionLayout has a player 2 man one step from the last row with
	// two ways to be crowned.
	PromotionLayout = Layout{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 1, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 2, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
	}

	// CrowningJumpLayout has a player 2 man on (5,2) whose jump over (6,3)
	// lands on the last row. Crowning ends the move, so (6,5) is safe.
	CrowningJumpLayout = Layout{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 2, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 0, 1, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
	}

	// BlockedLayout leaves player 2 without a legal move.
	BlockedLayout = Layout{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 2, 0, 0, 0, 0, 0, 0},
		{1, 0, 1, 0, 0, 0, 0, 0},
	}

	// MiddleGameLayout is a busy position with kings on both sides.
	MiddleGameLayout = Layout{
		{0, 2, 0, 0, 0, 2, 0, 0},
		{2, 0, 0, 0, 2, 0, 0, 0},
		{0, 2, 0, 2, 0, 0, 0, 2},
		{0, 0, 1, 0, 0, 0, 2, 0},
		{0, 22, 0, 0, 0, 1, 0, 0},
		{1, 0, 0, 0, 1, 0, 1, 0},
		{0, 0, 0, 11, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 1, 0},
	}

	// EndgameLayout is a sparse kings endgame.
	EndgameLayout = Layout{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 22, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 2, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 0, 0, 0},
		{0, 11, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
	}
)

// SampleLayouts indexes the layouts above by name.
var SampleLayouts = map[string]Layout{
	"start":      StartLayout,
	"doublejump": DoubleJumpLayout,
	"kingchain":  KingChainLayout,
	"promotion":  PromotionLayout,
	"crowning":   CrowningJumpLayout,
	"blocked":    BlockedLayout,
	"middlegame": MiddleGameLayout,
	"endgame":    EndgameLayout,
}
