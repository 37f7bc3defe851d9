// Package render provides drawing surfaces that particles can display onto.
//
// Every surface implements physics.Surface (Fill, NoStroke, Ellipse):
//
//   - [Canvas]: Braille sub-pixel canvas for terminals, coloured with lipgloss
//   - [SVG]: accumulates circles into an SVG document
//   - [Recorder]: keeps every call, for tests and replays
//
// The raylib window surface lives in package gui.
//
// Colours accept CSS-style names ("red", "steelblue") or hex ("#ff8800").
package render
