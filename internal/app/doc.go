// Package app wires the grammar front ends and the adt engine into the
// command line tool: it loads one or more grammar sources, assembles the
// runtime modules, and either describes them or evaluates a constructor
// expression against them.
package app
