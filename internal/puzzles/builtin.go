package puzzles

import "sort"

// builtin is the puzzle set shipped with the binary.
var builtin = map[string]Puzzle{
	"classic": {
		ID:   "classic",
		Name: "Classic 4x4",
		Rows: [][]string{
			{"Corner", "End", "End", "End"},
			{"Tee", "End", "Tee", "Tee"},
			{"Tee", "Corner", "Straight", "End"},
			{"End", "Corner", "Tee", "End"},
		},
	},
	// One row per shape kind. Known to be unsatisfiable for the
	// single-pass heuristic: the Tee row always ends up stuck.
	"shapes": {
		ID:   "shapes",
		Name: "Shape Rows",
		Rows: [][]string{
			{"End", "End", "End", "End"},
			{"Straight", "Straight", "Straight", "Straight"},
			{"Corner", "Corner", "Corner", "Corner"},
			{"Tee", "Tee", "Tee", "Tee"},
		},
	},
	"ring": {
		ID:   "ring",
		Name: "Rectangular Ring",
		Rows: [][]string{
			{"Corner", "Straight", "Corner"},
			{"Corner", "Straight", "Corner"},
		},
	},
	"junction": {
		ID:   "junction",
		Name: "Crossed Junctions",
		Rows: [][]string{
			{"Corner", "Tee", "Corner"},
			{"Tee", "Cross", "Tee"},
			{"Corner", "Tee", "Corner"},
		},
	},
}

// Builtin returns the builtin puzzle with the given ID.
func Builtin(id string) (Puzzle, bool) {
	p, ok := builtin[id]
	return p, ok
}

// BuiltinIDs returns all builtin puzzle IDs, sorted.
func BuiltinIDs() []string {
	ids := make([]string, 0, len(builtin))
	for id := range builtin {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
