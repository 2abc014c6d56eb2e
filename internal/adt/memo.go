package adt

import (
	"fmt"
	"strings"

	"github.com/vk/asdlgo/internal/grammar"
)

// KeyFunc converts one external-type field value into a memoization key
// component. Built-in leaf values key by their contents and declared-type
// values key by instance identity; external types need a caller-supplied
// KeyFunc.
type KeyFunc func(value any) string

type keyFunc func(value any) string

// Memoize enables constructor memoization for the named constructors:
// afterwards, calls with equal arguments return the identical instance.
// Arguments are validated before the cache is consulted, so memoization
// never weakens the field checks. extKey supplies key functions for
// external leaf types used by any memoized constructor.
//
// Memoize is part of module setup and, like Build, is not safe to call
// concurrently with constructor use.
func (m *Module) Memoize(names []string, extKey map[string]KeyFunc) error {
	for _, name := range names {
		c := m.ctors[name]
		if c == nil {
			return fmt.Errorf("module %q: cannot memoize unknown constructor %q", m.name, name)
		}
		keyers := make([]keyFunc, len(c.fields))
		for i, f := range c.fields {
			k, err := m.fieldKeyer(f, extKey)
			if err != nil {
				return fmt.Errorf("cannot memoize %q: %w", name, err)
			}
			keyers[i] = k
		}
		c.keyers = keyers
		c.memo = make(map[string]*Instance)
	}
	return nil
}

func (m *Module) fieldKeyer(f grammar.Field, extKey map[string]KeyFunc) (keyFunc, error) {
	leaf, err := m.leafKeyer(f.Type, extKey)
	if err != nil {
		return nil, err
	}
	switch f.Mod {
	case grammar.Optional:
		return func(v any) string {
			if v == nil {
				return "None"
			}
			return leaf(v)
		}, nil
	case grammar.Sequence:
		return func(v any) string {
			seq, _ := v.([]any)
			var sb strings.Builder
			sb.WriteByte('[')
			for _, el := range seq {
				sb.WriteString(leaf(el))
				sb.WriteByte(',')
			}
			sb.WriteByte(']')
			return sb.String()
		}, nil
	default:
		return keyFunc(leaf), nil
	}
}

func (m *Module) leafKeyer(typeName string, extKey map[string]KeyFunc) (keyFunc, error) {
	if _, declared := m.types[typeName]; declared {
		// Declared types key by identity, matching the nominal checks.
		return func(v any) string { return fmt.Sprintf("%p", v) }, nil
	}
	switch typeName {
	case "string", "int", "float", "bool", "object":
		return func(v any) string { return fmt.Sprintf("%T:%v", v, v) }, nil
	}
	if k, ok := extKey[typeName]; ok {
		return keyFunc(k), nil
	}
	return nil, fmt.Errorf("module %q: no key function for external type %q", m.name, typeName)
}

func (c *Constructor) memoKey(args []any) string {
	var sb strings.Builder
	for i, k := range c.keyers {
		sb.WriteString(k(args[i]))
		sb.WriteByte('\x1f')
	}
	return sb.String()
}
