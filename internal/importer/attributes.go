package importer

import (
	"context"
	"fmt"
	"strings"

	"wooflow/internal/logger"
	"wooflow/internal/woo"
)

const (
	// maxAttributeColumns caps the indexed attr_name_i/attr_value_i column
	// pairs scanned per row. Rows with more attribute columns are a documented
	// limitation, not an error.
	maxAttributeColumns = 10

	globalAttributePrefix = "pa_"
)

func attrNameColumn(i int) string {
	return fmt.Sprintf("attr_name_%d", i)
}

func attrValueColumn(i int) string {
	return fmt.Sprintf("attr_value_%d", i)
}

func attrVariationColumn(i int) string {
	return fmt.Sprintf("attr_var_%d", i)
}

// resolvedAttribute is the importer's internal attribute identity: the
// de-duplicated option set for one attribute name within a variable group,
// plus whether the attribute is globally registered on the store.
type resolvedAttribute struct {
	Name      string
	Options   []string
	Global    bool
	RemoteID  int // 0 when the store lookup failed or found nothing
	Variation bool

	seen map[string]bool
}

func (a *resolvedAttribute) addOption(value string) {
	if a.seen[value] {
		return
	}
	a.seen[value] = true
	a.Options = append(a.Options, value)
}

type attributeResolver struct {
	gateway Gateway
	logger  *logger.Logger
}

// resolveGroup builds the ordered attribute list needed to create a variable
// parent. Options come from the parent's comma-separated attr_value_i cells
// unioned with every value used by a variation row; attribute names keep
// first-seen order. Variation rows that omit attr_name_i borrow the parent's
// name at the same column position.
func (r *attributeResolver) resolveGroup(ctx context.Context, group *VariableGroup) ([]*resolvedAttribute, error) {
	var order []*resolvedAttribute
	byName := map[string]*resolvedAttribute{}

	lookup := func(name string) *resolvedAttribute {
		attr, ok := byName[name]
		if !ok {
			attr = &resolvedAttribute{Name: name, seen: map[string]bool{}}
			byName[name] = attr
			order = append(order, attr)
		}
		return attr
	}

	// Parent row: declared attributes with their full option sets.
	for i := 1; i <= maxAttributeColumns; i++ {
		name, ok := group.Parent.Row.Get(attrNameColumn(i))
		if !ok {
			continue
		}
		attr := lookup(name)
		for _, value := range splitOptions(group.Parent.Row.Value(attrValueColumn(i))) {
			attr.addOption(value)
		}
	}

	// Variation rows: mark attributes as variation-bearing and pick up any
	// option value the parent did not declare.
	parentNames := parentAttributeNames(group.Parent.Row)
	for _, variation := range group.Variations {
		for i := 1; i <= maxAttributeColumns; i++ {
			value, ok := variation.Row.Get(attrValueColumn(i))
			if !ok {
				continue
			}
			name := variation.Row.Value(attrNameColumn(i))
			if name == "" && i-1 < len(parentNames) {
				name = parentNames[i-1]
			}
			if name == "" {
				continue
			}
			attr := lookup(name)
			attr.addOption(value)
			attr.Variation = true
		}
	}

	if len(order) == 0 {
		return nil, fmt.Errorf("no attributes found for variable product")
	}

	for _, attr := range order {
		r.resolveGlobal(ctx, attr)
	}

	return order, nil
}

// resolveGlobal decides global vs. local identity. A failed store lookup is
// logged and the attribute degrades to local behavior; it never fails the
// group.
func (r *attributeResolver) resolveGlobal(ctx context.Context, attr *resolvedAttribute) {
	if !strings.HasPrefix(attr.Name, globalAttributePrefix) {
		return
	}
	attr.Global = true

	slug := strings.TrimPrefix(attr.Name, globalAttributePrefix)
	remote, err := r.gateway.GetAttributeBySlug(ctx, slug)
	if err != nil {
		r.logger.Warn("Could not find global attribute %s: %v", attr.Name, err)
		return
	}
	if remote != nil {
		attr.RemoteID = remote.ID
	}
}

// parentAttributeNames lists the parent's attribute names in column scan
// order. The positional index into this list is what a variation row falls
// back to when its own attr_name_i cell is empty, so a parent that skips
// column indexes shifts the pairing, and mismatched ordering between parent
// and variation columns silently mis-pairs values.
func parentAttributeNames(parent Row) []string {
	var names []string
	for i := 1; i <= maxAttributeColumns; i++ {
		if name, ok := parent.Get(attrNameColumn(i)); ok {
			names = append(names, name)
		}
	}
	return names
}

// productAttributes converts resolved attributes into the wire form for the
// parent product, preserving order.
func productAttributes(resolved []*resolvedAttribute) []woo.ProductAttribute {
	attributes := make([]woo.ProductAttribute, 0, len(resolved))
	for position, attr := range resolved {
		attributes = append(attributes, woo.ProductAttribute{
			ID:        attr.RemoteID,
			Name:      attr.Name,
			Position:  position,
			Visible:   true,
			Variation: attr.Variation,
			Options:   attr.Options,
		})
	}
	return attributes
}

// variationAttributes builds one variation's attribute assignments. Resolved
// global attributes are referenced by remote id; unresolved globals and local
// attributes are matched by name.
func variationAttributes(row Row, parentNames []string, resolved []*resolvedAttribute) []woo.VariationAttribute {
	byName := make(map[string]*resolvedAttribute, len(resolved))
	for _, attr := range resolved {
		byName[attr.Name] = attr
	}

	var attributes []woo.VariationAttribute
	for i := 1; i <= maxAttributeColumns; i++ {
		value, ok := row.Get(attrValueColumn(i))
		if !ok {
			continue
		}
		name := row.Value(attrNameColumn(i))
		if name == "" && i-1 < len(parentNames) {
			name = parentNames[i-1]
		}
		if name == "" {
			continue
		}

		assignment := woo.VariationAttribute{Name: name, Option: value}
		if attr := byName[name]; attr != nil && attr.Global && attr.RemoteID != 0 {
			assignment.ID = attr.RemoteID
		}
		attributes = append(attributes, assignment)
	}
	return attributes
}

// splitOptions splits a comma-separated option cell, trimming whitespace and
// dropping empty tokens.
func splitOptions(value string) []string {
	if value == "" {
		return nil
	}
	var options []string
	for _, token := range strings.Split(value, ",") {
		if token = strings.TrimSpace(token); token != "" {
			options = append(options, token)
		}
	}
	return options
}
