package metrics

import (
	"sort"

	"go.uber.org/zap"
)

// LocationLevel is the depth of a node in the location hierarchy.
type LocationLevel int

// Hierarchy levels, root first.
const (
	LevelSite LocationLevel = iota + 1
	LevelBuilding
	LevelFloor
	LevelZone
	LevelStation
)

// MaxLocationDepth is the number of levels in the hierarchy.
const MaxLocationDepth = int(LevelStation)

// LocationNode is one node of the location hierarchy. Roots have an empty ParentID.
type LocationNode struct {
	ID       string        `json:"id"`
	ParentID string        `json:"parentId"`
	Level    LocationLevel `json:"level"`
	Code     string        `json:"code"`
	Name     string        `json:"name"`
}

// LocationRef is the code and name of one level in a flattened row.
type LocationRef struct {
	Code string
	Name string
}

// LocationRow is one root-to-leaf path. Levels below the leaf are empty.
type LocationRow struct {
	Levels [MaxLocationDepth]LocationRef
}

// Leaf returns the deepest non-empty level of the row.
func (r LocationRow) Leaf() LocationRef {
	for i := MaxLocationDepth - 1; i >= 0; i-- {
		if r.Levels[i].Code != "" {
			return r.Levels[i]
		}
	}
	return LocationRef{}
}

// FlattenHierarchy joins the parent/child hierarchy into one row per leaf.
// Children are visited in code order. Nodes whose parent is unknown, or whose
// level is not exactly one below their parent, are skipped along with their
// subtree.
func FlattenHierarchy(nodes []LocationNode, logger *zap.Logger) []LocationRow {
	if logger == nil {
		logger = zap.NewNop()
	}

	byID := make(map[string]LocationNode, len(nodes))
	for _, n := range nodes {
		byID[n.ID] = n
	}

	children := make(map[string][]LocationNode)
	var roots []LocationNode
	for _, n := range nodes {
		if n.ParentID == "" {
			if n.Level != LevelSite {
				logger.Warn("Skipping root location below site level",
					zap.String("id", n.ID),
					zap.Int("level", int(n.Level)))
				continue
			}
			roots = append(roots, n)
			continue
		}

		parent, ok := byID[n.ParentID]
		if !ok {
			logger.Warn("Skipping orphan location",
				zap.String("id", n.ID),
				zap.String("parent_id", n.ParentID))
			continue
		}
		if n.Level != parent.Level+1 {
			logger.Warn("Skipping location with inconsistent level",
				zap.String("id", n.ID),
				zap.Int("level", int(n.Level)),
				zap.Int("parent_level", int(parent.Level)))
			continue
		}
		children[n.ParentID] = append(children[n.ParentID], n)
	}

	byCode := func(list []LocationNode) {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Code < list[j].Code
		})
	}
	byCode(roots)
	for id := range children {
		byCode(children[id])
	}

	var rows []LocationRow
	var walk func(n LocationNode, row LocationRow)
	walk = func(n LocationNode, row LocationRow) {
		row.Levels[n.Level-1] = LocationRef{Code: n.Code, Name: n.Name}
		kids := children[n.ID]
		if len(kids) == 0 || n.Level == LevelStation {
			rows = append(rows, row)
			return
		}
		for _, child := range kids {
			walk(child, row)
		}
	}
	for _, root := range roots {
		walk(root, LocationRow{})
	}
	return rows
}
