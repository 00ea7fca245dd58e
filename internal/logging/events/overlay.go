package events

import "github.com/atomicstack/gridjump/internal/logging"

type OverlayTracer struct{}

type GridTracer struct{}

var (
	Overlay = OverlayTracer{}
	Grid    = GridTracer{}
)

func (OverlayTracer) Transition(event, from, to string, effects []string) {
	logging.Trace("overlay.transition", map[string]interface{}{
		"event":   event,
		"from":    from,
		"to":      to,
		"effects": effects,
	})
}

func (OverlayTracer) Prefix(prefix string, matches int) {
	logging.Trace("overlay.prefix", map[string]interface{}{"prefix": prefix, "matches": matches})
}

func (OverlayTracer) Resolved(label string, x, y int) {
	logging.Trace("overlay.resolved", map[string]interface{}{"label": label, "x": x, "y": y})
}

func (GridTracer) Generate(alphabet string, poolSize, cells int) {
	logging.Trace("grid.generate", map[string]interface{}{"alphabet": alphabet, "pool": poolSize, "cells": cells})
}

func (GridTracer) Layout(width, height, poolSize int) {
	logging.Trace("grid.layout", map[string]interface{}{"width": width, "height": height, "pool": poolSize})
}
