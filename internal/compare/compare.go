// Package compare reports which breakdown fields differ between two calculations.
package compare

import (
	"math"
	"sort"
	"strings"

	json "github.com/goccy/go-json"

	"payroll-engine/internal/model"
)

// Breakdowns returns the fields that differ between base and variant, sorted
// by field name. Numeric changes carry the variant minus base delta, rounded
// to the cent. Either side may be nil, in which case every field of the other
// side is reported.
func Breakdowns(base, variant *model.SalaryBreakdown) ([]model.FieldChange, error) {
	a, err := flatten(base)
	if err != nil {
		return nil, err
	}
	b, err := flatten(variant)
	if err != nil {
		return nil, err
	}
	return Diff(a, b, ""), nil
}

func flatten(b *model.SalaryBreakdown) (map[string]interface{}, error) {
	if b == nil {
		return map[string]interface{}{}, nil
	}
	raw, err := json.Marshal(b)
	if err != nil {
		return nil, err
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Diff walks two decoded JSON objects and returns one change per leaf that
// differs. Nested objects produce dotted field names under prefix.
func Diff(a, b map[string]interface{}, prefix string) []model.FieldChange {
	keys := make(map[string]struct{}, len(a)+len(b))
	for k := range a {
		keys[k] = struct{}{}
	}
	for k := range b {
		keys[k] = struct{}{}
	}

	var changes []model.FieldChange
	for k := range keys {
		field := k
		if prefix != "" {
			field = prefix + "." + k
		}

		av, bv := a[k], b[k]
		aMap, aIsMap := av.(map[string]interface{})
		bMap, bIsMap := bv.(map[string]interface{})
		if aIsMap && bIsMap {
			changes = append(changes, Diff(aMap, bMap, field)...)
			continue
		}

		if equal(av, bv) {
			continue
		}
		changes = append(changes, model.FieldChange{
			Field:   field,
			Base:    av,
			Variant: bv,
			Delta:   delta(av, bv),
		})
	}

	sort.Slice(changes, func(i, j int) bool {
		return strings.Compare(changes[i].Field, changes[j].Field) < 0
	})
	return changes
}

func equal(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case []interface{}:
		bv, ok := b.([]interface{})
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case map[string]interface{}:
		bv, ok := b.(map[string]interface{})
		return ok && len(Diff(av, bv, "")) == 0
	default:
		return a == b
	}
}

func delta(a, b interface{}) *float64 {
	af, aok := a.(float64)
	bf, bok := b.(float64)
	if !aok || !bok {
		return nil
	}
	d := math.Round((bf-af)*100) / 100
	return &d
}
