// Package scene is the host loop around physics particles.
//
// Each frame applies every [physics.Field] to every particle, integrates the
// particle once, then displays it when a surface is attached:
//
//	sc, _ := scene.FromConfig(cfg)
//	sc.SetSurface(render.NewCanvas(80, 24, 5))
//	result, _ := sc.Run(ctx, scene.Config{Frames: 600})
//
// # Thread Safety
//
// Scene instances are NOT thread-safe. Use [Sweep] to run independent scenes
// in parallel.
package scene
