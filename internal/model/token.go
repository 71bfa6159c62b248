package model

import "fmt"

// Token 代表一枚棋子。Position 为 nil 表示在基地（与 IsOut 互为充要）。
// 完成的棋子（IsCompleted）永远安全且不再移动。
type Token struct {
	ID          string
	Position    *Position
	IsOut       bool
	IsSafe      bool
	IsCompleted bool
}

// Clone 深拷贝棋子
func (t Token) Clone() Token {
	c := t
	if t.Position != nil {
		p := *t.Position
		c.Position = &p
	}
	return c
}

// At 是否位于指定格
func (t Token) At(p Position) bool {
	return t.Position != nil && *t.Position == p
}

func (t Token) Desc() string {
	pos := "base"
	if t.Position != nil {
		pos = fmt.Sprintf("(%d,%d)", t.Position.Row, t.Position.Col)
	}
	return fmt.Sprintf("[%s pos:%s out:%v safe:%v done:%v]", t.ID, pos, t.IsOut, t.IsSafe, t.IsCompleted)
}

// Player 玩家与其几何数据。StartTile/HomeEntryTile/HomePath 为整局固定的只读几何。
type Player struct {
	ID            string
	Color         Color
	Tokens        []Token
	StartTile     Position
	HomeEntryTile Position
	HomePath      []Position
}

// NewPlayer 创建玩家，4 枚棋子全部在基地
func NewPlayer(id string, c Color) Player {
	p := Player{
		ID:            id,
		Color:         c,
		Tokens:        make([]Token, TokensPerPlayer),
		StartTile:     StartTile(c),
		HomeEntryTile: HomeEntryTile(c),
		HomePath:      HomePathOf(c),
	}
	for i := range p.Tokens {
		p.Tokens[i] = Token{ID: fmt.Sprintf("%s-%d", c, i)}
	}
	return p
}

// Clone 深拷贝玩家（几何数据按值共享，棋子逐枚拷贝）
func (p Player) Clone() Player {
	c := p
	c.Tokens = make([]Token, len(p.Tokens))
	for i, t := range p.Tokens {
		c.Tokens[i] = t.Clone()
	}
	c.HomePath = make([]Position, len(p.HomePath))
	copy(c.HomePath, p.HomePath)
	return c
}

// TokenByID 按 ID 查找棋子
func (p Player) TokenByID(id string) (Token, bool) {
	for _, t := range p.Tokens {
		if t.ID == id {
			return t, true
		}
	}
	return Token{}, false
}

// AllCompleted 是否 4 枚棋子全部到达终点
func (p Player) AllCompleted() bool {
	for _, t := range p.Tokens {
		if !t.IsCompleted {
			return false
		}
	}
	return len(p.Tokens) > 0
}
