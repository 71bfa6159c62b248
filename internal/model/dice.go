package model

import (
	"math/rand"

	"github.com/yola1107/kratos/v2/library/xgo"
)

// Source 骰子随机源。可替换为固定序列以保证回放可复现。
type Source interface {
	Roll() int32 // [1,6]
}

type sourceFunc func() int32

func (f sourceFunc) Roll() int32 { return f() }

// NewSource 默认随机源
func NewSource() Source {
	return sourceFunc(func() int32 {
		return xgo.RandInt[int32](1, 7)
	})
}

// NewSeededSource 带种子的随机源，同一种子产生同一点数序列
func NewSeededSource(seed int64) Source {
	r := rand.New(rand.NewSource(seed))
	return sourceFunc(func() int32 {
		return int32(r.Intn(6)) + 1
	})
}

// NewSequenceSource 固定序列随机源，循环使用
func NewSequenceSource(values ...int32) Source {
	if len(values) == 0 {
		return NewSource()
	}
	i := 0
	return sourceFunc(func() int32 {
		v := values[i%len(values)]
		i++
		return v
	})
}

// Dice 掷骰器
type Dice struct {
	src Source
}

func NewDice(src Source) *Dice {
	if src == nil {
		src = NewSource()
	}
	return &Dice{src: src}
}

func (d *Dice) Roll() int32 {
	return d.src.Roll()
}

// RollTraits 点数分类。出基地与奖励回合目前都绑定在 6 上，
// 调用方不得假设两个信号相互独立。
type RollTraits struct {
	IsSix              bool
	AllowsBaseExit     bool
	ExtraTurnCandidate bool
}

// Classify 分类一个点数
func Classify(v int32) RollTraits {
	six := v == 6
	return RollTraits{
		IsSix:              six,
		AllowsBaseExit:     six,
		ExtraTurnCandidate: six,
	}
}
