// Package graph 将任意用户布线归并为电学等价节点。
// 对引脚标识执行并查集合并，每条两端已知的导线执行一次合并操作。
// 接地选择为启发式: 取元件顺序中首个理想直流源家族元件第二引脚所在
// 的节点为地，不存在时退回首个发现的节点。多个独立源时可能选错地，
// 这是有意保留的已知简化，不做静默修正。
package graph

import (
	"circuitlab/types"
)

// Node 引脚的电学等价类。地节点行索引为 GndNodeID，电压恒为0。
type Node struct {
	Root      types.TerminalID   // 等价类代表引脚
	Row       types.NodeID       // 矩阵行索引(地节点为 GndNodeID)
	Terminals []types.TerminalID // 成员引脚(发现顺序)
	Voltage   float64            // 求解后的节点电压
}

// Graph 节点识别结果。每步仿真重建(连接可能在步间被外部修改)。
type Graph struct {
	parent  map[types.TerminalID]types.TerminalID // 并查集父指针
	order   []types.TerminalID                    // 引脚发现顺序
	rowOf   map[types.TerminalID]types.NodeID     // 代表引脚 -> 行索引
	nodeOf  map[types.TerminalID]*Node            // 代表引脚 -> 节点
	nodes   []*Node                               // 全部节点(发现顺序，含地)
	NumRows int                                   // 非地节点数量(矩阵行数)
}

// Build 由元件列表(引脚)和导线列表(连接)构建节点映射。
// 引脚发现顺序为元件顺序×引脚顺序，保证相同输入得到相同节点编号。
func Build(components []*types.Component, wires []types.Wire) *Graph {
	g := &Graph{
		parent: make(map[types.TerminalID]types.TerminalID),
		rowOf:  make(map[types.TerminalID]types.NodeID),
		nodeOf: make(map[types.TerminalID]*Node),
	}

	// 登记全部引脚
	for _, c := range components {
		for _, t := range c.Terminals {
			if _, ok := g.parent[t.ID]; !ok {
				g.parent[t.ID] = t.ID
				g.order = append(g.order, t.ID)
			}
		}
	}

	// 每条导线执行一次合并，两端引脚未知则跳过
	for _, w := range wires {
		if _, ok := g.parent[w.From]; !ok {
			continue
		}
		if _, ok := g.parent[w.To]; !ok {
			continue
		}
		g.union(w.From, w.To)
	}

	// 接地选择
	groundRoot := types.TerminalID(-1)
	hasGround := false
	for _, c := range components {
		if c.Kind.IsIdealSource() {
			groundRoot = g.find(c.Terminals[1].ID)
			hasGround = true
			break
		}
	}
	if !hasGround && len(g.order) > 0 {
		groundRoot = g.find(g.order[0])
		hasGround = true
	}

	// 按发现顺序为非地节点分配行索引 0..N-1
	for _, tid := range g.order {
		root := g.find(tid)
		node, ok := g.nodeOf[root]
		if !ok {
			row := types.GndNodeID
			if !hasGround || root != groundRoot {
				row = g.NumRows
				g.NumRows++
			}
			node = &Node{Root: root, Row: row}
			g.nodeOf[root] = node
			g.rowOf[root] = row
			g.nodes = append(g.nodes, node)
		}
		node.Terminals = append(node.Terminals, tid)
	}
	return g
}

// Nodes 全部节点(发现顺序)
func (g *Graph) Nodes() []*Node { return g.nodes }

// RowOf 引脚对应的矩阵行索引(地节点或未知引脚为 GndNodeID)
func (g *Graph) RowOf(t types.TerminalID) types.NodeID {
	if _, ok := g.parent[t]; !ok {
		return types.GndNodeID
	}
	return g.rowOf[g.find(t)]
}

// NodeOf 引脚所属节点(未知引脚为nil)
func (g *Graph) NodeOf(t types.TerminalID) *Node {
	if _, ok := g.parent[t]; !ok {
		return nil
	}
	return g.nodeOf[g.find(t)]
}

// find 路径压缩查找
func (g *Graph) find(t types.TerminalID) types.TerminalID {
	for g.parent[t] != t {
		g.parent[t] = g.parent[g.parent[t]]
		t = g.parent[t]
	}
	return t
}

// union 合并两个等价类(后者并入前者，保持代表确定性)
func (g *Graph) union(a, b types.TerminalID) {
	ra, rb := g.find(a), g.find(b)
	if ra != rb {
		g.parent[rb] = ra
	}
}
