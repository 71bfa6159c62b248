package model

// CaptureInfo 一次击杀记录
type CaptureInfo struct {
	PlayerID string
	TokenID  string
	From     Position
}

// ResolveCaptures 结算落点处的击杀：落点非安全点时，所有占据该格、
// 未完成且不处于安全状态的敌方棋子一次性回基地。
// 返回新的玩家切片与击杀记录，入参不被修改。
// Home 路径上的棋子不会被击杀：各色 Home 路径互不重合，属几何保证。
func ResolveCaptures(players []Player, moverID string, landing Position) ([]Player, []CaptureInfo) {
	out := make([]Player, len(players))
	safe := IsSafeCell(landing) || landing == Center

	var captured []CaptureInfo
	for i, pl := range players {
		np := pl.Clone()
		if !safe && pl.ID != moverID {
			for j, t := range np.Tokens {
				if t.IsOut && !t.IsCompleted && !t.IsSafe && t.At(landing) {
					captured = append(captured, CaptureInfo{PlayerID: pl.ID, TokenID: t.ID, From: *t.Position})
					np.Tokens[j] = Token{ID: t.ID} // 回基地
				}
			}
		}
		out[i] = np
	}
	return out, captured
}
