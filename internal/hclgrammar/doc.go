// Package hclgrammar loads a grammar described as an HCL manifest and
// translates it into the same grammar model the asdl package produces.
//
// A manifest declares one grammar block; sum and product blocks inside it
// keep their file order, which becomes the declaration order of the model:
//
//	grammar "Poly" {
//	  sum "expr" {
//	    case "Var" {
//	      field "name" { type = string }
//	    }
//	    case "Const" {
//	      field "val" { type = float }
//	    }
//	    case "Add" {
//	      field "lhs" { type = expr }
//	      field "rhs" { type = expr }
//	    }
//	    attributes {
//	      field "loc" { type = optional(srcinfo) }
//	    }
//	  }
//	  product "srcinfo" {
//	    field "input"  { type = string }
//	    field "offset" { type = int }
//	  }
//	}
//
// Field types are written as HCL type-like expressions: a bare keyword is
// a plain field, optional(t) accepts the absence sentinel, and list(t) is
// a sequence.
package hclgrammar
