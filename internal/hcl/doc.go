// Package hcl provides the HCL implementation of config.Loader.
//
// A run file declares one or more `run` blocks:
//
//	run "example" {
//	  input  = "example.txt"
//	  rules  = ["coarse", "fine"]
//	  expect = { coarse = 3, fine = 6 }
//	}
//
// `rules` and `expect` are evaluated as cty values and converted to Go
// types, so any HCL expression producing a list of strings or a map of
// whole numbers is accepted.
package hcl
