// Package physics provides the force helpers and particle type used by sketches.
//
// The package is deliberately small:
//
//   - [ApplyGravity]: adds a constant downward force (0, g) to a [Body]
//   - [LorentzForce]: computes q(v x B) for a moving charge
//   - [Particle]: position, velocity and accumulated acceleration integrated
//     with semi-implicit Euler, drawn through an injected [Surface]
//
// # Frame Cycle
//
// Forces are instantaneous. A host applies zero or more forces, then calls
// Update exactly once, then Display:
//
//	p := physics.NewParticle(vec.New2(100, 50), vec.Zero(2), physics.DefaultRadius)
//	physics.ApplyGravity(p, physics.DefaultGravity)
//	p.Update()
//	p.Display(surface, "red")
//
// # Thread Safety
//
// Particles are NOT thread-safe. Each particle belongs to a single host loop.
package physics
