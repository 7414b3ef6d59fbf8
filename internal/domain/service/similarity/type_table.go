package similarity

import (
	"slices"
	"strings"

	"boatmatch/internal/domain/value"
)

const (
	TypeScoreExact   = 100
	TypeScoreRelated = 80
	TypeScoreLoose   = 40
	TypeScoreFloor   = 20
)

// TypeTable groups boat types that are considered related. A type belongs to
// a group when it equals or contains one of the group's members, so
// "center console cabin boat" belongs wherever "center console" does.
type TypeTable struct {
	groups [][]string
}

func NewTypeTable(groups ...[]string) TypeTable {
	normalized := make([][]string, 0, len(groups))

	for _, group := range groups {
		members := make([]string, 0, len(group))

		for _, member := range group {
			if m := normalizeText(member); m != "" {
				members = append(members, m)
			}
		}

		if len(members) > 0 {
			normalized = append(normalized, members)
		}
	}

	return TypeTable{groups: normalized}
}

//nolint:gochecknoglobals
var defaultTypeTable = NewTypeTable(
	[]string{"sport fishing boat", "express cruiser", "center console", "center console cabin boat"},
	[]string{"sailboat", "sailing yacht", "sail"},
	[]string{"motor yacht", "powerboat", "cruiser"},
	[]string{"speedboat", "center console", "bowrider"},
	[]string{"catamaran", "power catamaran", "sailing catamaran"},
	[]string{"pontoon", "deck boat", "bowrider"},
)

func DefaultTypeTable() TypeTable {
	return defaultTypeTable
}

func (t TypeTable) IsZero() bool {
	return len(t.groups) == 0
}

func (t TypeTable) groupsOf(boatType string) []int {
	var out []int

	for i, group := range t.groups {
		for _, member := range group {
			if boatType == member || strings.Contains(boatType, member) {
				out = append(out, i)

				break
			}
		}
	}

	return out
}

// Score rates two normalized types: exact 100, same group 80, only loosely
// related (at least one side is a known type) 40, otherwise 20. An empty type
// only matches another empty type. Two known types from different groups
// (sailboat and motor yacht) land in the 40 tier as well.
func (t TypeTable) Score(a, b string) int {
	switch {
	case a == b:
		return TypeScoreExact
	case a == "" || b == "":
		return TypeScoreFloor
	}

	groupsA, groupsB := t.groupsOf(a), t.groupsOf(b)

	for _, g := range groupsA {
		if slices.Contains(groupsB, g) {
			return TypeScoreRelated
		}
	}

	if len(groupsA) > 0 || len(groupsB) > 0 {
		return TypeScoreLoose
	}

	return TypeScoreFloor
}

func (t TypeTable) ScoreType(a, b value.BoatAttributes) value.TypeFactor {
	return value.TypeFactor{
		Score:    t.Score(a.Type, b.Type),
		Evidence: value.TypeEvidence{Values: [2]string{a.Type, b.Type}},
	}
}

// ScoreType scores types against the default table.
func ScoreType(a, b value.BoatAttributes) value.TypeFactor {
	return defaultTypeTable.ScoreType(a, b)
}
