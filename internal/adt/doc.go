// Package adt turns a grammar model into a validated runtime type system.
//
// Build assembles a Module in three phases. First every declared type gets a
// stub descriptor, so that mutually recursive declarations can reference each
// other by name before any constructor exists. Second a check registry is
// built: built-in predicates for the primitive leaf kinds, caller-supplied
// predicates for external leaf types, and one nominal instance-of predicate
// per declared type. Third a validating constructor and canonical renderer
// are synthesized for every sum case and every product.
//
// The registry and the descriptors are written once during Build and
// read-only afterwards. Separate Build calls share nothing, even when two
// grammars declare identically named types: instance-of checks compare
// descriptor identity, so they are scoped to the module that created them.
package adt
