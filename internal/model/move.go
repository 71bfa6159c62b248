package model

// 移动原因码
const (
	MoveOK              int32 = iota // 移动合法
	ErrInvalidStep                   // 非法步数（<= 0）
	ErrNeedSixToExit                 // 基地棋子只能掷出 6 才能出发
	ErrAlreadyCompleted              // 棋子已到达终点，不能再移动
	ErrOvershootHome                 // 超出终点格，必须正好落在中心
	ErrUnknownPosition               // 位置不在环道也不在 Home 路径（容错，视为不可移动）
)

// MoveKind 移动类型
type MoveKind int32

const (
	MoveExitBase MoveKind = iota // 出基地
	MoveAdvance                  // 沿路径前进
)

func (k MoveKind) String() string {
	switch k {
	case MoveExitBase:
		return "exit"
	case MoveAdvance:
		return "advance"
	default:
		return "unknown"
	}
}

// Move 一个语义上独立的可行移动
type Move struct {
	TokenID   string
	Kind      MoveKind
	From      *Position // nil=基地
	To        Position
	Completes bool
}

// CanExitBase 基地棋子能否出发
func CanExitBase(t Token, dice int32) bool {
	return !t.IsOut && dice == 6
}

// NextPosition 核心计算函数：从 from 前进 steps 后的落点。
// 不合法时返回原位置与原因码，绝不返回部分移动。纯函数，无副作用。
func NextPosition(from Position, steps int32, pl *Player) (Position, int32) {
	if steps <= 0 {
		return from, ErrInvalidStep
	}

	if i, ok := RingIndexOf(from); ok {
		entry := HomeEntryIndexes[pl.Color]
		// 入口在行进方向上永远在前方，数值小于当前下标时依赖取模回绕
		toEntry := (entry - i + RingSize) % RingSize
		if steps <= toEntry {
			return Ring[(i+steps)%RingSize], MoveOK
		}
		remaining := steps - toEntry
		switch {
		case remaining <= HomePathLen:
			return pl.HomePath[remaining-1], MoveOK
		case remaining == HomePathLen+1:
			return Center, MoveOK
		default:
			return from, ErrOvershootHome
		}
	}

	if j, ok := HomePathIndexOf(pl.Color, from); ok {
		n := j + steps
		switch {
		case n < HomePathLen:
			return pl.HomePath[n], MoveOK
		case n == HomePathLen:
			return Center, MoveOK
		default:
			return from, ErrOvershootHome
		}
	}

	if from == Center {
		return from, ErrAlreadyCompleted
	}
	return from, ErrUnknownPosition
}

// MoveToken 纯函数：返回移动后的新棋子与原因码，原棋子不被修改。
// 基地棋子要求掷出 6，落在出发点；其余情况委托 NextPosition。
func MoveToken(t Token, dice int32, pl *Player) (Token, int32) {
	if t.IsCompleted {
		return t, ErrAlreadyCompleted
	}

	if !t.IsOut {
		if !CanExitBase(t, dice) {
			return t, ErrNeedSixToExit
		}
		nt := t.Clone()
		pos := pl.StartTile
		nt.Position = &pos
		nt.IsOut = true
		nt.IsSafe = IsSafeCell(pos)
		return nt, MoveOK
	}

	if t.Position == nil { // 脏数据兜底：场上棋子必有位置
		return t, ErrUnknownPosition
	}
	to, code := NextPosition(*t.Position, dice, pl)
	if code != MoveOK {
		return t, code
	}
	nt := t.Clone()
	pos := to
	nt.Position = &pos
	nt.IsCompleted = to == Center
	nt.IsSafe = nt.IsCompleted || IsSafeCell(to)
	return nt, MoveOK
}

// ValidMoves 单枚棋子在指定点数下的可行移动集合。
// 超出终点（必须精确落在中心）的移动不在集合中，而不是被截断。
func ValidMoves(t Token, dice int32, pl *Player) []Move {
	if t.IsCompleted {
		return nil
	}

	if !t.IsOut {
		if !CanExitBase(t, dice) {
			return nil
		}
		return []Move{{TokenID: t.ID, Kind: MoveExitBase, To: pl.StartTile}}
	}

	if t.Position == nil {
		return nil
	}
	to, code := NextPosition(*t.Position, dice, pl)
	if code != MoveOK || to == *t.Position {
		return nil
	}
	from := *t.Position
	return []Move{{TokenID: t.ID, Kind: MoveAdvance, From: &from, To: to, Completes: to == Center}}
}

// AllValidMoves 玩家全部棋子的可行移动
func AllValidMoves(pl *Player, dice int32) []Move {
	var all []Move
	for _, t := range pl.Tokens {
		all = append(all, ValidMoves(t, dice, pl)...)
	}
	return all
}

// HasValidMoves 玩家是否存在可行移动
func HasValidMoves(pl *Player, dice int32) bool {
	for _, t := range pl.Tokens {
		if len(ValidMoves(t, dice, pl)) > 0 {
			return true
		}
	}
	return false
}
