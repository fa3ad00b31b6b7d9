// Package field generates seed-reproducible binary fields for Game of Life
// style simulators and serializes them in a flat token format.
//
// What:
//
//   - Config fixes seed, dimensions and alive probability; it fully
//     determines the output.
//   - Stream is a Mersenne Twister (MT19937) that reproduces CPython's
//     random.seed(n) / random.random() sequence exactly.
//   - Generate visits cells in row-major order, draws one float per cell and
//     writes "1" when the draw is strictly below the probability, "0" otherwise.
//   - WriteFile creates (or truncates) a destination file and streams the
//     field into it.
//
// Format:
//
//	<width> <height> <cell_0_0> <cell_0_1> ... <cell_{H-1}_{W-1}>
//
// Every token, including the last cell, is followed by a single space. There
// are no newlines.
//
// Complexity:
//
//   - Generate: O(W×H) time, O(1) memory beyond a fixed write buffer.
//
// Errors:
//
//   - ErrInvalidArgument: non-positive width or height.
//   - ErrIO: the sink or destination file could not be created or written.
package field
