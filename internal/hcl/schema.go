package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot is the top-level structure of a run file. Unknown blocks and
// attributes are rejected by gohcl.
type fileRoot struct {
	Runs []*runBlock `hcl:"run,block"`
}

// runBlock is the HCL shape of a single run. Optional expressions that
// are absent evaluate to a cty null.
type runBlock struct {
	Name   string         `hcl:"name,label"`
	Input  string         `hcl:"input"`
	Rules  hcl.Expression `hcl:"rules,optional"`
	Expect hcl.Expression `hcl:"expect,optional"`
}
