// Package gui plays a scene in a raylib window. It is the only package that
// links raylib, so the rest of the module builds and tests without cgo.
package gui
