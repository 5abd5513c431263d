/*
Package domain contains the core contract of the Switchback solver.

It defines what a puzzle state has to provide so that the search engine can
treat it as an opaque transition system, and the directional Move action shared
by the grid puzzles. This package is kept pure and free of I/O, logging or
third-party dependencies.

# Key Entities

  - State: the generic contract (actions, transition, goal test, identity, history).
  - Move: a single step over one of the four axis-aligned directions.
*/
package domain
