// Package grid maps every viewport region to a short typed label.
//
// With a pool of the first N alphabet symbols the viewport is split into N
// rows and 2N columns. The left N columns carry plain labels (row symbol +
// column symbol); the right N columns carry dotted labels (row symbol + '.' +
// column symbol). Generate enumerates the cells, Filter narrows them by typed
// prefix, and Layout derives their rectangles from the viewport size.
//
// Filtered sets are index slices into the generated cells, so regenerating
// the cell slice can never leave a dangling reference behind.
package grid
