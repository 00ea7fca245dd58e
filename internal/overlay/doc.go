// Package overlay holds the interaction state machine that sits on top of the
// label grid. A Machine owns the generated cells, the typed prefix, the
// filtered index set and the current State; Handle is its only transition
// function. Handle never performs I/O: rendering, window visibility and
// pointer injection are returned as Effects for the caller to carry out, in
// order.
package overlay
