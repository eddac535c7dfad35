package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"log"

	"circuitlab/graph"
	"circuitlab/sim"
	"circuitlab/types"
)

// Record 记录历史状态
type Record struct {
	Nodes      [][][2]int  // 连接信息
	Elements   []string    // 元件列表
	Current    [][]float64 // 电流列
	CurrentStr []string    // 电流信息
	Voltage    [][]float64 // 电压列
	Time       []float64   // 时间列
}

// Init 根据电路拓扑初始化元件列表与连接信息
func (list *Record) Init(components []*types.Component, wires []types.Wire) {
	g := graph.Build(components, wires)
	eList := make([]string, 0, len(components)+1)
	eList = append(eList, "Gnd")
	index := map[types.ComponentID]int{}
	for i, c := range components {
		index[c.ID] = i + 1
		eList = append(eList, fmt.Sprintf("%s(%d)", c.Kind, c.ID))
	}
	nodes := g.Nodes()
	nList := make([][][2]int, len(nodes)+1)
	for _, c := range components {
		for l, t := range c.Terminals {
			row := g.RowOf(t.ID)
			// 地节点归并到0号槽位
			slot := 0
			if row != types.GndNodeID {
				slot = row + 1
			}
			nList[slot] = append(nList[slot], [2]int{index[c.ID], l})
		}
	}
	list.Elements = eList
	list.Nodes = nList
	for _, c := range components {
		for j := 0; j < c.Current.Len(); j++ {
			list.CurrentStr = append(list.CurrentStr, fmt.Sprintf("%s-%d(%d)", c.Kind, c.ID, j))
		}
	}
}

// Update 记录单步结果
func (list *Record) Update(now float64, out *sim.Output, components []*types.Component) {
	list.Time = append(list.Time, now)
	list.Voltage = append(list.Voltage, append([]float64{}, out.NodeVoltages...))
	row := make([]float64, 0, len(list.CurrentStr))
	for _, c := range components {
		row = append(row, c.Current.RawVector().Data...)
	}
	list.Current = append(list.Current, row)
}

// Render 格式和输出内容
func (list *Record) Render(w io.Writer) error { return json.NewEncoder(w).Encode(list) }

func (list *Record) Error(err error) { log.Println(err) }
