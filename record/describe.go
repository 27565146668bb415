package record

import (
	"fmt"
	"strings"
)

// Inspect renders the record on one line, stored fields only, in
// declaration order. Computed fields are omitted here; Describe is the
// full report.
func (r *Record) Inspect() string {
	if r == nil {
		return "(unset)"
	}
	var out strings.Builder
	out.WriteString(r.rtype.name)
	out.WriteString("{")
	n := 0
	for _, f := range r.rtype.fields {
		if f.Computed() {
			continue
		}
		if n > 0 {
			out.WriteString(", ")
		}
		n++
		out.WriteString(f.Name)
		out.WriteString(": ")
		out.WriteString(r.store[f.Name].Inspect())
	}
	out.WriteString("}")
	return out.String()
}

// Describe reports every field of the record, one labeled line each,
// in declaration order. Computed fields are derived at print time.
// Sub-records are expanded inline, indented one level deeper; an unset
// reference prints as (unset).
func (r *Record) Describe() string {
	var out strings.Builder
	r.describe(&out, 0)
	return out.String()
}

func (r *Record) describe(out *strings.Builder, depth int) {
	if r == nil {
		out.WriteString("(unset)")
		return
	}
	pad := strings.Repeat("  ", depth+1)
	out.WriteString(r.rtype.name)
	out.WriteString(" {\n")
	for _, f := range r.rtype.fields {
		out.WriteString(pad)
		out.WriteString(f.Name)
		out.WriteString(": ")
		v, err := r.fieldValue(f)
		switch {
		case err != nil:
			fmt.Fprintf(out, "(error: %v)", err)
		case v.Kind() == KindRecord:
			sub, _ := AsRecord(v)
			sub.describe(out, depth+1)
		default:
			out.WriteString(v.Inspect())
		}
		out.WriteString("\n")
	}
	out.WriteString(strings.Repeat("  ", depth))
	out.WriteString("}")
}

// fieldValue resolves one field for the report: stored fields read the
// store, computed fields derive from their backing field. The derived
// value gets the same kind check as the getter path, so a misbehaving
// Derive renders as an error line instead of crashing the report.
func (r *Record) fieldValue(f *Field) (Value, error) {
	if !f.Computed() {
		return r.get(f.Name)
	}
	backing, err := r.get(f.Backing)
	if err != nil {
		return nil, err
	}
	v, err := f.Derive(backing)
	if err != nil {
		return nil, err
	}
	if err := checkKind(f.Kind, v); err != nil {
		return nil, err
	}
	return v, nil
}
