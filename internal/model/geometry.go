package model

/*
	棋盘几何数据（只读）：15x15 网格。
	- 52 格公共环道，按行进顺序排列
	- 每色: 出发点/回家入口(环道下标)、6 格 Home 路径、4 个基地格
	- 中心点 (7,7) 为终点格
	- 安全点 = 四色出发点 + 四个星位(环道下标 8/21/34/47)，不可被击杀
*/

// Position 网格坐标，值类型，按结构相等比较
type Position struct {
	Row int32
	Col int32
}

// Color 棋子颜色，同时是座位/行动顺序
type Color int32

const (
	Red Color = iota
	Green
	Blue
	Yellow
)

const (
	ColorCount      = 4  // 4种棋子颜色
	RingSize        = 52 // 公共路径长度
	HomePathLen     = 6  // Home路径长度
	TokensPerPlayer = 4  // 每色棋子数量
	GridSize        = 15 // 棋盘网格边长
)

// String returns the string representation of the Color.
func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Yellow:
		return "yellow"
	default:
		return "unknown"
	}
}

// Center 终点格
var Center = Position{Row: 7, Col: 7}

var (
	StartIndexes     = [ColorCount]int32{0, 13, 26, 39}  // 各色出发点（环道下标）
	HomeEntryIndexes = [ColorCount]int32{50, 11, 24, 37} // 各色回家入口（环道下标）
	starIndexes      = [...]int32{8, 21, 34, 47}         // 星位（环道下标）
)

// Ring 52 格公共环道，下标即行进顺序。0 为红色出发点。
var Ring = [RingSize]Position{
	// 0-4 左臂上沿 → 右
	{6, 1}, {6, 2}, {6, 3}, {6, 4}, {6, 5},
	// 5-10 上臂左列 → 上
	{5, 6}, {4, 6}, {3, 6}, {2, 6}, {1, 6}, {0, 6},
	// 11-12 顶部拐角（11 为绿色回家入口）
	{0, 7}, {0, 8},
	// 13-17 上臂右列 → 下（13 为绿色出发点）
	{1, 8}, {2, 8}, {3, 8}, {4, 8}, {5, 8},
	// 18-23 右臂上沿 → 右
	{6, 9}, {6, 10}, {6, 11}, {6, 12}, {6, 13}, {6, 14},
	// 24-25 右侧拐角（24 为蓝色回家入口）
	{7, 14}, {8, 14},
	// 26-30 右臂下沿 → 左（26 为蓝色出发点）
	{8, 13}, {8, 12}, {8, 11}, {8, 10}, {8, 9},
	// 31-36 下臂右列 → 下
	{9, 8}, {10, 8}, {11, 8}, {12, 8}, {13, 8}, {14, 8},
	// 37-38 底部拐角（37 为黄色回家入口）
	{14, 7}, {14, 6},
	// 39-43 下臂左列 → 上（39 为黄色出发点）
	{13, 6}, {12, 6}, {11, 6}, {10, 6}, {9, 6},
	// 44-49 左臂下沿 → 左
	{8, 5}, {8, 4}, {8, 3}, {8, 2}, {8, 1}, {8, 0},
	// 50-51 左侧拐角（50 为红色回家入口）
	{7, 0}, {6, 0},
}

// HomePaths 各色 6 格私有路径，从回家入口的下一格到中心点的前一格
var HomePaths = [ColorCount][HomePathLen]Position{
	{{7, 1}, {7, 2}, {7, 3}, {7, 4}, {7, 5}, {7, 6}},       // red: 入口(7,0) → 中心
	{{1, 7}, {2, 7}, {3, 7}, {4, 7}, {5, 7}, {6, 7}},       // green: 入口(0,7) → 中心
	{{7, 13}, {7, 12}, {7, 11}, {7, 10}, {7, 9}, {7, 8}},   // blue: 入口(7,14) → 中心
	{{13, 7}, {12, 7}, {11, 7}, {10, 7}, {9, 7}, {8, 7}},   // yellow: 入口(14,7) → 中心
}

// BaseSlots 各色基地 4 格，仅供展示层使用，规则层用 position=nil 表示在基地
var BaseSlots = [ColorCount][TokensPerPlayer]Position{
	{{2, 2}, {2, 3}, {3, 2}, {3, 3}},         // red 左上
	{{2, 11}, {2, 12}, {3, 11}, {3, 12}},     // green 右上
	{{11, 11}, {11, 12}, {12, 11}, {12, 12}}, // blue 右下
	{{11, 2}, {11, 3}, {12, 2}, {12, 3}},     // yellow 左下
}

var (
	ringIndex map[Position]int32
	safeCells map[Position]struct{}
)

func init() {
	ringIndex = make(map[Position]int32, RingSize)
	for i, p := range Ring {
		ringIndex[p] = int32(i)
	}

	// 安全点去重合并：出发点 + 星位
	safeCells = make(map[Position]struct{}, len(StartIndexes)+len(starIndexes))
	for _, i := range StartIndexes {
		safeCells[Ring[i]] = struct{}{}
	}
	for _, i := range starIndexes {
		safeCells[Ring[i]] = struct{}{}
	}
}

// IsSafeCell 是否安全点
func IsSafeCell(p Position) bool {
	_, ok := safeCells[p]
	return ok
}

// RingIndexOf 查找位置在环道上的下标
func RingIndexOf(p Position) (int32, bool) {
	i, ok := ringIndex[p]
	return i, ok
}

// HomePathIndexOf 查找位置在指定颜色 Home 路径上的下标
func HomePathIndexOf(c Color, p Position) (int32, bool) {
	if c < 0 || c >= ColorCount {
		return 0, false
	}
	for i, hp := range HomePaths[c] {
		if hp == p {
			return int32(i), true
		}
	}
	return 0, false
}

// StartTile 指定颜色的出发点
func StartTile(c Color) Position {
	return Ring[StartIndexes[c]]
}

// HomeEntryTile 指定颜色的回家入口
func HomeEntryTile(c Color) Position {
	return Ring[HomeEntryIndexes[c]]
}

// HomePathOf 指定颜色 Home 路径的拷贝
func HomePathOf(c Color) []Position {
	out := make([]Position, HomePathLen)
	copy(out, HomePaths[c][:])
	return out
}
