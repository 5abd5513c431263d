/*
Package toggle implements grid puzzles where stepping onto a cell flips the
feature of every orthogonally adjacent cell.

A Board holds the immutable rules of a puzzle (size, exit, trigger cells,
walls, polarity and move order). A State is one immutable configuration: token
position, feature Grid and trigger flags, plus the moves that produced it.
State satisfies domain.State and can be handed to the search engine directly.

# Polarity

  - GatesBlock: a raised cell is a closed gate and cannot be entered.
  - PlatformsCarry: only raised cells (platforms) can be entered.

# Transition

A move is legal when its destination is inside the field, is not a wall and is
not blocking in the pre-move grid. The next grid is the pre-move grid with the
destination's in-bounds, non-wall neighbours flipped. Entering a trigger cell
sets its flag permanently.
*/
package toggle
