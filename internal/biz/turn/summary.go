package turn

import "github.com/yola1107/ludo/internal/model"

// MoveOption 展示层可选项：棋子与其当前位置（nil=基地）
type MoveOption struct {
	TokenID  string
	Position *model.Position
}

// Summary 暴露给展示层的回合摘要
type Summary struct {
	Phase         string
	CurrentPlayer string
	DiceValue     int32
	Moves         []MoveOption
	CanRollDice   bool
	CanMakeMove   bool
	ExtraTurn     bool
	GameOver      bool
	Winners       []string
}

// Summary 构建当前状态的只读摘要
func (s State) Summary() Summary {
	moves := make([]MoveOption, 0, len(s.PossibleMoves))
	for _, mv := range s.PossibleMoves {
		opt := MoveOption{TokenID: mv.TokenID}
		if mv.From != nil {
			p := *mv.From
			opt.Position = &p
		}
		moves = append(moves, opt)
	}

	var winners []string
	if s.Game.Winners != nil {
		winners = append([]string(nil), s.Game.Winners...)
	}

	return Summary{
		Phase:         s.Phase.String(),
		CurrentPlayer: s.Game.Players[s.Game.CurrentPlayerIndex].ID,
		DiceValue:     s.DiceValue,
		Moves:         moves,
		CanRollDice:   s.Phase == PhaseWaitRoll && !s.Game.IsGameOver,
		CanMakeMove:   s.Phase == PhaseWaitMove && len(s.PossibleMoves) > 0 && !s.Game.IsGameOver,
		ExtraTurn:     s.ExtraTurn,
		GameOver:      s.Game.IsGameOver,
		Winners:       winners,
	}
}
