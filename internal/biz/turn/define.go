package turn

import "fmt"

/*
	Phase 回合阶段
*/

type Phase int32

const (
	PhaseWaitRoll Phase = iota // 等待掷骰
	PhaseWaitMove              // 等待走子
	PhaseTurnEnd               // 回合结束
)

// PhaseNames maps each phase to its string name.
var PhaseNames = map[Phase]string{
	PhaseWaitRoll: "WAITING_FOR_ROLL",
	PhaseWaitMove: "WAITING_FOR_MOVE",
	PhaseTurnEnd:  "TURN_END",
}

// String returns the string representation of the Phase.
func (p Phase) String() string {
	if name, ok := PhaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Phase(%d)", p)
}

/*
	Action 动作协议（由展示层投递）
*/

type ActionType int32

const (
	ActionRollDice ActionType = iota // 掷骰，Value 可注入点数（0=引擎采样）
	ActionMakeMove                   // 走子，TokenID 必须在可行集合内
	ActionEndTurn                    // 结束回合（TURN_END 阶段任意动作等效）
)

var actionNames = map[ActionType]string{
	ActionRollDice: "ROLL_DICE",
	ActionMakeMove: "MAKE_MOVE",
	ActionEndTurn:  "END_TURN",
}

func (a ActionType) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("ActionType(%d)", a)
}

// Action 一条动作。非法或与当前阶段不符的动作被静默吸收，局面不变。
type Action struct {
	Type    ActionType
	Value   int32
	TokenID string
}

func (a Action) Desc() string {
	return fmt.Sprintf("[%v v:%d id:%q]", a.Type, a.Value, a.TokenID)
}
