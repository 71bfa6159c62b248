package model

import "fmt"

// GameState 权威局面快照。每次转移都构造新值，绝不原地修改。
// 不变式: CurrentPlayerIndex ∈ [0,4)；IsGameOver ⟺ Winners != nil；
// Winners 仅含 4 枚棋子全部到达终点的玩家。
type GameState struct {
	Players            []Player
	CurrentPlayerIndex int32
	TurnCount          int32
	Winners            []string
	IsGameOver         bool
	LastRoll           int32
	LastCaptures       []CaptureInfo
}

// NewGame 创建新局：四名玩家按座位顺序 red/green/blue/yellow，全部棋子在基地
func NewGame() GameState {
	players := make([]Player, 0, ColorCount)
	for c := Color(0); c < ColorCount; c++ {
		players = append(players, NewPlayer(c.String(), c))
	}
	return GameState{Players: players}
}

// Clone 深拷贝局面
func (g GameState) Clone() GameState {
	c := g
	c.Players = make([]Player, len(g.Players))
	for i, p := range g.Players {
		c.Players[i] = p.Clone()
	}
	if g.Winners != nil {
		c.Winners = append([]string(nil), g.Winners...)
	}
	if g.LastCaptures != nil {
		c.LastCaptures = append([]CaptureInfo(nil), g.LastCaptures...)
	}
	return c
}

// CurrentPlayer 当前行动玩家的拷贝
func (g GameState) CurrentPlayer() Player {
	return g.Players[g.CurrentPlayerIndex].Clone()
}

// PlayerByID 按 ID 查找玩家的拷贝
func (g GameState) PlayerByID(id string) (Player, bool) {
	for _, p := range g.Players {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return Player{}, false
}

// WithPlayers 替换整个玩家列表，返回新局面
func (g GameState) WithPlayers(players []Player) GameState {
	c := g.Clone()
	c.Players = make([]Player, len(players))
	for i, p := range players {
		c.Players[i] = p.Clone()
	}
	return c
}

// WithPlayerTokens 替换某玩家的棋子列表，返回新局面
func (g GameState) WithPlayerTokens(playerID string, tokens []Token) GameState {
	c := g.Clone()
	for i := range c.Players {
		if c.Players[i].ID != playerID {
			continue
		}
		c.Players[i].Tokens = make([]Token, len(tokens))
		for j, t := range tokens {
			c.Players[i].Tokens[j] = t.Clone()
		}
		break
	}
	return c
}

// AdvanceTurn 轮转到下一玩家并累加回合数，返回新局面
func (g GameState) AdvanceTurn() GameState {
	c := g.Clone()
	c.CurrentPlayerIndex = (c.CurrentPlayerIndex + 1) % int32(len(c.Players))
	c.TurnCount++
	return c
}

// WithWinState 重算胜负：任一玩家 4 枚棋子全部到达终点即结束
func (g GameState) WithWinState() GameState {
	c := g.Clone()
	var winners []string
	for _, p := range c.Players {
		if p.AllCompleted() {
			winners = append(winners, p.ID)
		}
	}
	c.Winners = winners
	c.IsGameOver = winners != nil
	return c
}

func (g GameState) Desc() string {
	return fmt.Sprintf("(turn:%d active:%s over:%v winners:%v)",
		g.TurnCount, g.Players[g.CurrentPlayerIndex].ID, g.IsGameOver, g.Winners)
}
