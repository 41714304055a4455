/*
Package dial simulates a dial on a circular track of Size positions (0-99)
and counts how often it comes to rest on position 0.

Input is a sequence of rotation commands such as `L68` or `R14`. A command
is parsed by ParseCommand, a whole input by Parse, and a parsed sequence is
scored by Count under one of two rules:

  - Coarse counts one hit per command whose final landing position is 0.
  - Fine counts one hit per individual unit step that lands on 0, so a
    single command can hit several times.

Both rules share the same position arithmetic (Normalize and Move), start
from the same position and consume commands in input order. The package is
pure: no I/O, no logging, no package-level mutable state.
*/
package dial
