package model

import "testing"

// 构造一局：red 与 green 各一枚棋子在场上指定位置
func twoOutPlayers(redPos, greenPos Position) []Player {
	red := NewPlayer("red", Red)
	red.Tokens[0] = outAt("red-0", redPos)
	green := NewPlayer("green", Green)
	green.Tokens[0] = outAt("green-0", greenPos)
	return []Player{red, green}
}

func TestResolveCaptures(t *testing.T) {
	landing := Ring[5] // 普通格

	t.Run("普通格_击杀", func(t *testing.T) {
		players := twoOutPlayers(landing, landing)
		out, captured := ResolveCaptures(players, "red", landing)

		if len(captured) != 1 || captured[0].TokenID != "green-0" || captured[0].From != landing {
			t.Fatalf("captured = %+v", captured)
		}
		victim := out[1].Tokens[0]
		if victim.Position != nil || victim.IsOut || victim.IsSafe || victim.IsCompleted {
			t.Errorf("victim not reset: %s", victim.Desc())
		}
		// 移动方不受影响
		if !out[0].Tokens[0].At(landing) {
			t.Errorf("mover moved: %s", out[0].Tokens[0].Desc())
		}
		// 入参不被修改
		if !players[1].Tokens[0].At(landing) {
			t.Error("input players mutated")
		}
	})

	t.Run("安全点_免杀", func(t *testing.T) {
		safe := Ring[8] // 星位
		players := twoOutPlayers(safe, safe)
		out, captured := ResolveCaptures(players, "red", safe)
		if len(captured) != 0 || !out[1].Tokens[0].At(safe) {
			t.Errorf("capture on safe cell: %+v", captured)
		}
	})

	t.Run("安全状态棋子_免杀", func(t *testing.T) {
		players := twoOutPlayers(landing, landing)
		players[1].Tokens[0].IsSafe = true
		_, captured := ResolveCaptures(players, "red", landing)
		if len(captured) != 0 {
			t.Errorf("safe token captured: %+v", captured)
		}
	})

	t.Run("同格多子_一次全部结算", func(t *testing.T) {
		players := twoOutPlayers(landing, landing)
		players[1].Tokens[1] = outAt("green-1", landing)
		out, captured := ResolveCaptures(players, "red", landing)
		if len(captured) != 2 {
			t.Fatalf("captured = %+v, want 2", captured)
		}
		for _, tok := range out[1].Tokens[:2] {
			if tok.IsOut {
				t.Errorf("stacked token survived: %s", tok.Desc())
			}
		}
	})

	t.Run("己方棋子_不受影响", func(t *testing.T) {
		red := NewPlayer("red", Red)
		red.Tokens[0] = outAt("red-0", landing)
		red.Tokens[1] = outAt("red-1", landing)
		out, captured := ResolveCaptures([]Player{red}, "red", landing)
		if len(captured) != 0 || !out[0].Tokens[1].At(landing) {
			t.Errorf("own token captured: %+v", captured)
		}
	})
}

// TestCaptureInvariant 结算后落点上不会残留可被击杀的敌方棋子
func TestCaptureInvariant(t *testing.T) {
	for i := int32(0); i < RingSize; i++ {
		landing := Ring[i]
		players := twoOutPlayers(landing, landing)
		out, _ := ResolveCaptures(players, "red", landing)
		for _, tok := range out[1].Tokens {
			if tok.At(landing) && !tok.IsSafe && !tok.IsCompleted && !IsSafeCell(landing) {
				t.Fatalf("cell %v: capturable token survived: %s", landing, tok.Desc())
			}
		}
	}
}
