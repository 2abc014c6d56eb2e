// Package asdl parses the textual ASDL notation into a grammar model.
//
// The accepted syntax:
//
//	module      ::= "module" Id "{" { definition } "}"
//	definition  ::= TypeId "=" type
//	type        ::= product | sum
//	product     ::= fields [ "attributes" fields ]
//	sum         ::= constructor { "|" constructor } [ "attributes" fields ]
//	constructor ::= ConstructorId [ fields ]
//	fields      ::= "(" field { "," field } ")"
//	field       ::= TypeId [ "?" | "*" ] Id
//
// "--" starts a comment running to the end of the line. Constructor
// identifiers must start with an upper-case letter and type identifiers
// with a lower-case letter. Unlike classic ASDL the binding name of a
// field is mandatory: the generated constructors need it.
package asdl
