package adt

import (
	"fmt"
	"hash/fnv"
	"reflect"
	"strconv"
	"strings"
)

// Instance is one constructed value of a sum case or product. Its field
// set is fixed at construction: there are no setters, and the canonical
// renderer, equality and hashing all observe the same frozen state.
type Instance struct {
	ctor   *Constructor
	fields []any
}

func newInstance(c *Constructor, args []any) *Instance {
	fields := make([]any, len(args))
	copy(fields, args)
	return &Instance{ctor: c, fields: fields}
}

// Constructor returns the constructor that built this instance.
func (i *Instance) Constructor() *Constructor { return i.ctor }

// Type returns the declared type the instance belongs to: the sum marker
// for a sum case, the product descriptor for a product.
func (i *Instance) Type() *Type { return i.ctor.typ }

// Field returns the value bound under the given binding name.
func (i *Instance) Field(name string) (any, bool) {
	for idx, f := range i.ctor.fields {
		if f.Name == name {
			return i.fields[idx], true
		}
	}
	return nil, false
}

// FieldAt returns the value at the given field ordinal.
func (i *Instance) FieldAt(idx int) any {
	return i.fields[idx]
}

// String renders the instance canonically: the constructor name followed
// by name=value pairs in field declaration order, with nested instances
// expanded recursively. Rendering is deterministic and idempotent.
func (i *Instance) String() string {
	var sb strings.Builder
	i.render(&sb)
	return sb.String()
}

func (i *Instance) render(sb *strings.Builder) {
	sb.WriteString(i.ctor.name)
	sb.WriteByte('(')
	for idx, f := range i.ctor.fields {
		if idx > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(f.Name)
		sb.WriteByte('=')
		renderValue(sb, i.fields[idx])
	}
	sb.WriteByte(')')
}

func renderValue(sb *strings.Builder, v any) {
	switch v := v.(type) {
	case nil:
		sb.WriteString("None")
	case *Instance:
		v.render(sb)
	case string:
		sb.WriteString(v)
	case float64:
		sb.WriteString(formatFloat(v))
	case []any:
		sb.WriteByte('[')
		for j, el := range v {
			if j > 0 {
				sb.WriteByte(',')
			}
			renderValue(sb, el)
		}
		sb.WriteByte(']')
	default:
		fmt.Fprintf(sb, "%v", v)
	}
}

// formatFloat keeps a decimal point on whole floats so that 32.0 renders
// as "32.0", not "32".
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnI") {
		s += ".0"
	}
	return s
}

// Equal reports structural equality: same constructor, recursively equal
// field values. Instances from different modules are never equal, even
// when their grammars coincide.
func (i *Instance) Equal(o *Instance) bool {
	if i == o {
		return true
	}
	if i == nil || o == nil || i.ctor != o.ctor {
		return false
	}
	for idx := range i.fields {
		if !equalValue(i.fields[idx], o.fields[idx]) {
			return false
		}
	}
	return true
}

func equalValue(a, b any) bool {
	ai, aok := a.(*Instance)
	bi, bok := b.(*Instance)
	if aok || bok {
		return aok && bok && ai.Equal(bi)
	}
	as, aok := a.([]any)
	bs, bok := b.([]any)
	if aok || bok {
		if !aok || !bok || len(as) != len(bs) {
			return false
		}
		for j := range as {
			if !equalValue(as[j], bs[j]) {
				return false
			}
		}
		return true
	}
	return reflect.DeepEqual(a, b)
}

// Hash returns a structural hash consistent with Equal.
func (i *Instance) Hash() uint64 {
	h := fnv.New64a()
	i.hashInto(h)
	return h.Sum64()
}

type hashWriter interface {
	Write(p []byte) (int, error)
}

func (i *Instance) hashInto(h hashWriter) {
	fmt.Fprintf(h, "%s.%s(", i.ctor.module.name, i.ctor.name)
	for _, v := range i.fields {
		hashValue(h, v)
		fmt.Fprint(h, ",")
	}
	fmt.Fprint(h, ")")
}

func hashValue(h hashWriter, v any) {
	switch v := v.(type) {
	case nil:
		fmt.Fprint(h, "None")
	case *Instance:
		v.hashInto(h)
	case []any:
		fmt.Fprint(h, "[")
		for _, el := range v {
			hashValue(h, el)
			fmt.Fprint(h, ",")
		}
		fmt.Fprint(h, "]")
	default:
		fmt.Fprintf(h, "%T:%v", v, v)
	}
}
