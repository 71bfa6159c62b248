package model

import "testing"

func TestNewGame(t *testing.T) {
	g := NewGame()
	if len(g.Players) != ColorCount {
		t.Fatalf("players = %d, want %d", len(g.Players), ColorCount)
	}
	wantIDs := []string{"red", "green", "blue", "yellow"}
	for i, p := range g.Players {
		if p.ID != wantIDs[i] || p.Color != Color(i) {
			t.Errorf("player %d = %s/%v, want %s", i, p.ID, p.Color, wantIDs[i])
		}
		if len(p.Tokens) != TokensPerPlayer {
			t.Fatalf("player %s tokens = %d", p.ID, len(p.Tokens))
		}
		for _, tok := range p.Tokens {
			if tok.Position != nil || tok.IsOut || tok.IsSafe || tok.IsCompleted {
				t.Errorf("token not in base: %s", tok.Desc())
			}
		}
	}
	if g.CurrentPlayerIndex != 0 || g.TurnCount != 0 || g.IsGameOver || g.Winners != nil {
		t.Errorf("fresh game dirty: %s", g.Desc())
	}
}

func TestAdvanceTurn(t *testing.T) {
	g := NewGame()
	for i := 1; i <= 5; i++ {
		g = g.AdvanceTurn()
		if g.CurrentPlayerIndex != int32(i%ColorCount) || g.TurnCount != int32(i) {
			t.Errorf("after %d advances: idx=%d turn=%d", i, g.CurrentPlayerIndex, g.TurnCount)
		}
	}
}

func TestWithWinState(t *testing.T) {
	g := NewGame()
	g = g.WithWinState()
	if g.IsGameOver || g.Winners != nil {
		t.Fatalf("premature game over: %s", g.Desc())
	}

	// green 全部到达终点
	green, _ := g.PlayerByID("green")
	for i := range green.Tokens {
		green.Tokens[i] = Token{ID: green.Tokens[i].ID, Position: &Center, IsOut: true, IsSafe: true, IsCompleted: true}
	}
	g = g.WithPlayerTokens("green", green.Tokens).WithWinState()

	if !g.IsGameOver || len(g.Winners) != 1 || g.Winners[0] != "green" {
		t.Errorf("win state wrong: %s", g.Desc())
	}
}

// TestCloneIsolation 转移必须产生新值，旧值不受影响
func TestCloneIsolation(t *testing.T) {
	g := NewGame()
	c := g.Clone()

	pos := Ring[3]
	c.Players[0].Tokens[0].Position = &pos
	c.Players[0].Tokens[0].IsOut = true

	if g.Players[0].Tokens[0].Position != nil || g.Players[0].Tokens[0].IsOut {
		t.Error("clone shares token storage with original")
	}

	red, _ := g.PlayerByID("red")
	red.Tokens[0] = outAt("red-0", Ring[3])
	g2 := g.WithPlayerTokens("red", red.Tokens)
	if g.Players[0].Tokens[0].IsOut {
		t.Error("WithPlayerTokens mutated the receiver")
	}
	if !g2.Players[0].Tokens[0].IsOut {
		t.Error("WithPlayerTokens lost the update")
	}
	if &g2.Players[0] == &g.Players[0] {
		t.Error("player slices shared")
	}
}
