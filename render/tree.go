package render

import "github.com/lixenwraith/lurkdash/terminal/tui"

// DrawFunc renders one leaf panel into its region
type DrawFunc func(r tui.Region, f *Frame)

// Node is one level of the dashboard layout
// Inner nodes split their rectangle among Children by Weights, leaves carry Draw
type Node struct {
	Name     string
	Dir      tui.Direction
	Weights  []int
	Children []*Node
	Draw     DrawFunc
}

// Placement is a resolved leaf rectangle
type Placement struct {
	Name string
	Rect tui.Rect
}

// Leaf panel names
const (
	PanelTop         = "top"
	PanelInfo        = "info"
	PanelStatList    = "stats.list"
	PanelAttack      = "stats.attack"
	PanelDefense     = "stats.defense"
	PanelRegen       = "stats.regen"
	PanelTotal       = "stats.total"
	PanelDescription = "description"
	PanelMessages    = "messages"
	PanelEntity      = "entity"
	PanelInput       = "input"
)

func leaf(name string, draw DrawFunc) *Node {
	return &Node{Name: name, Draw: draw}
}

func split(name string, dir tui.Direction, weights []int, children ...*Node) *Node {
	return &Node{Name: name, Dir: dir, Weights: weights, Children: children}
}

// DashboardTree builds the fixed panel layout
//
//	vertical 10/55/30/5: top bar, info bar, bottom triad, input bar
//	bottom triad horizontal 30/40/30: player, messages, entity
//	player vertical 50/50: stats, description
//	stats horizontal 30/70: list, gauges
//	gauges vertical 25/25/25/25: attack, defense, regen, total
func DashboardTree() *Node {
	gauges := split("stats.gauges", tui.Vertical, []int{25, 25, 25, 25},
		leaf(PanelAttack, drawAttackGauge),
		leaf(PanelDefense, drawDefenseGauge),
		leaf(PanelRegen, drawRegenGauge),
		leaf(PanelTotal, drawTotalPoints),
	)
	stats := split("stats", tui.Horizontal, []int{30, 70},
		leaf(PanelStatList, drawStatList),
		gauges,
	)
	player := split("player", tui.Vertical, []int{50, 50},
		stats,
		leaf(PanelDescription, drawDescription),
	)
	bottom := split("bottom", tui.Horizontal, []int{30, 40, 30},
		player,
		leaf(PanelMessages, drawMessages),
		leaf(PanelEntity, drawEntity),
	)
	return split("root", tui.Vertical, []int{10, 55, 30, 5},
		leaf(PanelTop, drawTopBar),
		leaf(PanelInfo, drawInfoBar),
		bottom,
		leaf(PanelInput, drawInputBar),
	)
}

// Resolve returns the leaf placements of the tree over rect, in drawing order
func Resolve(root *Node, rect tui.Rect) []Placement {
	var out []Placement
	walk(root, rect, func(n *Node, r tui.Rect) {
		out = append(out, Placement{Name: n.Name, Rect: r})
	})
	return out
}

// walk visits every leaf depth-first; children without a weight are skipped
func walk(n *Node, rect tui.Rect, visit func(*Node, tui.Rect)) {
	if n == nil {
		return
	}
	if len(n.Children) == 0 {
		visit(n, rect)
		return
	}
	rects := tui.Partition(rect, n.Dir, n.Weights)
	for i, child := range n.Children {
		if i >= len(rects) {
			break
		}
		walk(child, rects[i], visit)
	}
}
