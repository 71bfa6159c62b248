package turn

import (
	"github.com/yola1107/kratos/v2/log"

	"github.com/yola1107/ludo/internal/model"
)

/*
	回合状态机

	WAITING_FOR_ROLL → WAITING_FOR_MOVE → TURN_END → (下一玩家)
	掷骰后无可行移动时直接 WAITING_FOR_ROLL → TURN_END。
	奖励回合（掷6 / 击杀 / 棋子到终点）在 MAKE_MOVE 时一次性判定，
	命中则回到 WAITING_FOR_ROLL 且不换人。
	状态机自身没有终局阶段，游戏结束以 GameState.IsGameOver 为准。
*/

const _MaxHistory = 16 // 保存的最大动作数 (避免内存膨胀过大)

// State 一回合的状态快照。Dispatch 返回新值，入参不被修改。
type State struct {
	Game          model.GameState
	Phase         Phase
	DiceValue     int32
	PossibleMoves []model.Move
	History       []Action
	ExtraTurn     bool
}

func (s State) clone() State {
	c := s
	c.Game = s.Game.Clone()
	if s.PossibleMoves != nil {
		c.PossibleMoves = append([]model.Move(nil), s.PossibleMoves...)
	}
	if s.History != nil {
		c.History = append([]Action(nil), s.History...)
	}
	return c
}

// Machine 驱动回合状态机。仅掷骰采样一处非确定，随机源可注入。
type Machine struct {
	dice *model.Dice
}

type Option func(*Machine)

// WithDiceSource 替换骰子随机源（测试/回放用固定序列）
func WithDiceSource(src model.Source) Option {
	return func(m *Machine) { m.dice = model.NewDice(src) }
}

func NewMachine(opts ...Option) *Machine {
	m := &Machine{dice: model.NewDice(nil)}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Start 开启一个回合
func (m *Machine) Start(g model.GameState) State {
	return State{Game: g.Clone(), Phase: PhaseWaitRoll}
}

// Dispatch 处理一条动作。阶段不符、字段缺失或棋子不在可行集合内时
// 原样返回入参，绝不抛出。
func (m *Machine) Dispatch(s State, a Action) State {
	if s.Game.IsGameOver {
		return s
	}

	switch s.Phase {
	case PhaseWaitRoll:
		if a.Type != ActionRollDice {
			return s
		}
		return m.onRoll(s, a)
	case PhaseWaitMove:
		if a.Type != ActionMakeMove || a.TokenID == "" {
			return s
		}
		return m.onMove(s, a)
	case PhaseTurnEnd:
		// 任意动作都触发收尾，END_TURN 只是显式触发器
		return m.onTurnEnd(s, a)
	default:
		log.Errorf("unhandled phase: %v", s.Phase)
		return s
	}
}

// onRoll 掷骰（或采用注入点数），计算当前玩家可行移动
func (m *Machine) onRoll(s State, a Action) State {
	v := a.Value
	if v == 0 {
		v = m.dice.Roll()
	}
	if v < 1 || v > 6 {
		return s // 非法点数按畸形动作吸收
	}

	ns := s.clone()
	ns.DiceValue = v
	ns.ExtraTurn = false
	ns.Game.LastRoll = v
	ns.Game.LastCaptures = nil

	pl := ns.Game.CurrentPlayer()
	ns.PossibleMoves = model.AllValidMoves(&pl, v)
	ns.History = appendHistory(ns.History, Action{Type: ActionRollDice, Value: v})

	if len(ns.PossibleMoves) == 0 {
		ns.Phase = PhaseTurnEnd
	} else {
		ns.Phase = PhaseWaitMove
	}

	log.Debugf("onRoll: p=%s dice=%d moves=%d phase=%v", pl.ID, v, len(ns.PossibleMoves), ns.Phase)
	return ns
}

// onMove 执行选中的移动，结算击杀与胜负，判定奖励回合
func (m *Machine) onMove(s State, a Action) State {
	mv, ok := findMove(s.PossibleMoves, a.TokenID)
	if !ok {
		return s
	}

	ns := s.clone()
	pl := ns.Game.CurrentPlayer()
	tok, ok := pl.TokenByID(a.TokenID)
	if !ok {
		return s
	}
	moved, code := model.MoveToken(tok, ns.DiceValue, &pl)
	if code != model.MoveOK {
		// PossibleMoves 已校验过，这里只是兜底
		log.Errorf("onMove: move rejected. p=%s tok=%s code=%d", pl.ID, a.TokenID, code)
		return s
	}

	tokens := make([]model.Token, len(pl.Tokens))
	for i, t := range pl.Tokens {
		if t.ID == moved.ID {
			tokens[i] = moved
		} else {
			tokens[i] = t
		}
	}

	game := ns.Game.WithPlayerTokens(pl.ID, tokens)
	players, captures := model.ResolveCaptures(game.Players, pl.ID, mv.To)
	game = game.WithPlayers(players)
	game.LastCaptures = captures
	game = game.WithWinState()
	ns.Game = game

	traits := model.Classify(ns.DiceValue)
	ns.ExtraTurn = traits.ExtraTurnCandidate || len(captures) > 0 || moved.IsCompleted
	ns.PossibleMoves = nil
	ns.History = appendHistory(ns.History, a)

	log.Debugf("onMove: p=%s tok=%s dice=%d to=(%d,%d) captures=%d done=%v extra=%v over=%v",
		pl.ID, moved.ID, ns.DiceValue, mv.To.Row, mv.To.Col, len(captures), moved.IsCompleted, ns.ExtraTurn, game.IsGameOver)

	if ns.ExtraTurn {
		ns.Phase = PhaseWaitRoll
		ns.DiceValue = 0
	} else {
		ns.Phase = PhaseTurnEnd
	}
	return ns
}

// onTurnEnd 回合收尾：奖励回合保持当前玩家，否则轮转到下一玩家
func (m *Machine) onTurnEnd(s State, _ Action) State {
	ns := s.clone()
	if ns.ExtraTurn {
		ns.ExtraTurn = false
	} else {
		ns.Game = ns.Game.AdvanceTurn()
	}
	ns.Phase = PhaseWaitRoll
	ns.DiceValue = 0
	ns.PossibleMoves = nil
	ns.History = nil

	log.Debugf("onTurnEnd: %s", ns.Game.Desc())
	return ns
}

func findMove(moves []model.Move, tokenID string) (model.Move, bool) {
	for _, mv := range moves {
		if mv.TokenID == tokenID {
			return mv, true
		}
	}
	return model.Move{}, false
}

func appendHistory(history []Action, a Action) []Action {
	history = append(history, a)
	if len(history) > _MaxHistory {
		copy(history, history[len(history)-_MaxHistory:])
		history = history[:_MaxHistory]
	}
	return history
}
