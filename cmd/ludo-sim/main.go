package main

import (
	"flag"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/yola1107/kratos/v2/library/log/zap"
	"github.com/yola1107/kratos/v2/library/xgo"
	"github.com/yola1107/kratos/v2/log"

	"github.com/yola1107/ludo/internal/biz/turn"
	"github.com/yola1107/ludo/internal/conf"
	"github.com/yola1107/ludo/internal/model"
)

var flagconf string // -conf path

func init() {
	flag.StringVar(&flagconf, "conf", "../../configs", "config path, e.g. -conf config.yaml")
}

func main() {
	flag.Parse()

	c, bc, lc := conf.LoadConfig(flagconf)
	defer c.Close()

	logger := zap.NewLogger(lc.Log)
	log.SetLogger(logger)
	defer logger.Close()

	log.Infof("%s %s starting. games=%d seed=%d maxTurns=%d",
		conf.Name, conf.Version, bc.Sim.Games, bc.Sim.Seed, bc.Sim.MaxTurns)

	for i := int32(0); i < bc.Sim.Games; i++ {
		runOne(bc.Sim, i)
	}
}

// runOne 以随机策略自对弈一局
func runOne(sc *conf.Sim, idx int32) {
	defer xgo.RecoverFromError(nil)

	gameID, _ := gonanoid.New(8)

	var src model.Source
	if sc.Seed != 0 {
		src = model.NewSeededSource(sc.Seed + int64(idx))
	} else {
		src = model.NewSource()
	}

	m := turn.NewMachine(turn.WithDiceSource(src))
	st := m.Start(model.NewGame())

	captures := 0
	for !st.Game.IsGameOver && st.Game.TurnCount < sc.MaxTurns {
		st = m.Dispatch(st, turn.Action{Type: turn.ActionRollDice})

		if st.Phase == turn.PhaseWaitMove {
			// 均匀随机选一个可行移动（非 AI，纯粹为了把整局走完）
			mv := st.PossibleMoves[xgo.RandInt(0, len(st.PossibleMoves))]
			st = m.Dispatch(st, turn.Action{Type: turn.ActionMakeMove, TokenID: mv.TokenID})
		}
		captures += len(st.Game.LastCaptures)

		if st.Phase == turn.PhaseTurnEnd {
			st = m.Dispatch(st, turn.Action{Type: turn.ActionEndTurn})
		}
	}

	sum := st.Summary()
	log.Infof("game %s done. turns=%d captures=%d over=%v winners=%v",
		gameID, st.Game.TurnCount, captures, sum.GameOver, sum.Winners)
}
