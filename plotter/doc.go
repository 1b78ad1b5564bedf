// Package plotter renders tuning diagnostics as standalone SVG documents.
//
// It has two halves: History, an event collector that plugs into the
// tuner as an observer and keeps every bisection step and per-run result,
// and Plot, a small dependency-free SVG line renderer (axes, grid,
// series, legend). History.Plot ties them together, charting each run's
// literal probability next to its rolling average and the rolling
// averages of the four derived branch weights.
//
// Rendering is pure string assembly: no display surface, no goroutines,
// no randomness. Attach a History to Options.Observer, run the tuner,
// and write the rendered SVG wherever it should land.
package plotter
