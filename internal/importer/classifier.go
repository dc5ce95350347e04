package importer

import (
	"fmt"
	"strings"
)

const (
	typeSimple    = "simple"
	typeVariable  = "variable"
	typeVariation = "variation"
)

// VariableGroup is one variable parent row together with the variation rows
// that follow it in the file.
type VariableGroup struct {
	Key        string
	Parent     IndexedRow
	Variations []IndexedRow
}

type classification struct {
	simple []IndexedRow
	groups []*VariableGroup
	failed []FailedRow
}

// classify partitions rows in a single linear pass. A variation row always
// binds to the most recently seen variable parent; rows must therefore be
// laid out parent-then-children in the file. Unclassifiable rows are recorded
// as failures and never stop the pass.
func classify(rows []Row) classification {
	var cl classification

	for index, row := range rows {
		switch strings.ToLower(row.Value("type")) {
		case typeSimple:
			cl.simple = append(cl.simple, IndexedRow{Index: index, Row: row})

		case typeVariable:
			group := &VariableGroup{
				Key:    fmt.Sprintf("variable_%d", len(cl.groups)+1),
				Parent: IndexedRow{Index: index, Row: row},
			}
			cl.groups = append(cl.groups, group)

		case typeVariation:
			if len(cl.groups) == 0 {
				cl.failed = append(cl.failed, FailedRow{
					Row:   lineNumber(index),
					Error: "Variation found without a parent variable product",
					Data:  row,
				})
				continue
			}
			last := cl.groups[len(cl.groups)-1]
			last.Variations = append(last.Variations, IndexedRow{Index: index, Row: row})

		default:
			cl.failed = append(cl.failed, FailedRow{
				Row:   lineNumber(index),
				Error: fmt.Sprintf("Unsupported product type: %s", row.Value("type")),
				Data:  row,
			})
		}
	}

	return cl
}
