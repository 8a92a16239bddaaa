package framegraph

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/refframe/epoch"
	"github.com/katalvlaran/refframe/frame"
)

// MermaidOverlay adds query state to a rendered graph.
type MermaidOverlay struct {
	// Epoch, when set, labels every edge with its cost at that epoch.
	Epoch *epoch.Epoch

	// Path, when set, is highlighted.
	Path *Path
}

// Mermaid renders the graph as a Mermaid flowchart ("graph LR"). Frames are
// listed in name order; each frame's outgoing edges follow it.
func (g *Graph) Mermaid(overlay *MermaidOverlay) string {
	if g == nil {
		return ""
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	frames := g.sortedFramesLocked()
	ids := mermaidIDs(frames)

	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for _, f := range frames {
		id := ids[f]
		sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", id, f))

		for _, a := range g.out[f] {
			arrow := "-->"
			if overlay != nil && overlay.Epoch != nil {
				arrow = fmt.Sprintf("-- \"%s\" -->", formatCost(a.Edge.Factory.Cost(*overlay.Epoch)))
			}
			sb.WriteString(fmt.Sprintf("    %s %s %s\n", id, arrow, ids[a.To]))
		}
	}

	if overlay != nil && overlay.Path != nil && overlay.Path.Len() > 0 {
		sb.WriteString("\n    %% Path\n")
		sb.WriteString("    classDef onPath fill:#ffeb3b,stroke:#fbc02d,stroke-width:3px,color:#000;\n")
		seen := make(map[frame.Frame]bool)
		for _, f := range overlay.Path.Frames() {
			if seen[f] {
				continue
			}
			seen[f] = true
			id, ok := ids[f]
			if !ok {
				continue
			}
			sb.WriteString(fmt.Sprintf("    class %s onPath;\n", id))
		}
	}

	return sb.String()
}

func formatCost(c float64) string {
	if math.IsInf(c, 1) {
		return "∞"
	}

	return strconv.FormatFloat(c, 'g', -1, 64)
}

// mermaidIDs assigns each frame a node ID. Names that sanitize to the same
// ID get a numeric suffix in frame order.
func mermaidIDs(frames []frame.Frame) map[frame.Frame]string {
	ids := make(map[frame.Frame]string, len(frames))
	used := make(map[string]bool, len(frames))
	for _, f := range frames {
		base := sanitizeMermaidID(f.String())
		id := base
		for n := 2; used[id]; n++ {
			id = base + "_" + strconv.Itoa(n)
		}
		used[id] = true
		ids[f] = id
	}

	return ids
}

func sanitizeMermaidID(id string) string {
	return strings.NewReplacer(".", "_", "-", "_", "/", "_", "\\", "_", " ", "_").Replace(id)
}
