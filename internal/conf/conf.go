package conf

import (
	"fmt"

	"github.com/yola1107/kratos/v2/config"
	"github.com/yola1107/kratos/v2/config/file"
	zconf "github.com/yola1107/kratos/v2/library/log/zap/conf"
)

const Name = "ludo"
const Version = "v0.0.1"

// Bootstrap 启动配置
type Bootstrap struct {
	Sim *Sim `json:"sim"`
}

// Sim 自对弈模拟器配置
type Sim struct {
	Games    int32 `json:"games"`    // 模拟局数
	Seed     int64 `json:"seed"`     // 骰子种子（0=时间随机）
	MaxTurns int32 `json:"maxTurns"` // 单局回合上限（防呆）
}

func (s *Sim) fix() {
	if s.Games <= 0 {
		s.Games = 1
	}
	if s.MaxTurns <= 0 {
		s.MaxTurns = 1000
	}
}

// LoadConfig 加载配置
func LoadConfig(flagconf string) (config.Config, *Bootstrap, *zconf.Bootstrap) {
	c := config.New(
		config.WithSource(
			file.NewSource(flagconf),
		),
	)

	if err := c.Load(); err != nil {
		panic(err)
	}

	var (
		bc Bootstrap
		lc zconf.Bootstrap
	)

	if err := c.Scan(&bc); err != nil {
		panic(fmt.Errorf("bootstrap config invalid: %v", err))
	}
	if bc.Sim == nil {
		bc.Sim = &Sim{}
	}
	bc.Sim.fix()

	if err := c.Scan(&lc); err != nil {
		panic(fmt.Errorf("logger config invalid: %v", err))
	}
	if lc.Log == nil {
		lc.Log = zconf.DefaultConfig(zconf.WithAppName(Name))
	}

	return c, &bc, &lc
}
