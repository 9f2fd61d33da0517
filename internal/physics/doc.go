// Package physics provides the gravitational N-body model used by the
// nbody benchmark.
//
// The system is the fixed five-body Jovian configuration:
//
//   - [JovianBodies]: literal Sun, Jupiter, Saturn, Uranus, Neptune state
//   - [NewNBody]: the same bodies with the Sun's momentum offset
//   - [NBody.Advance]: one symplectic step (all kicks, then all drifts)
//   - [NBody.Energy]: total mechanical energy, used as a checkpoint
//
// [NBody] satisfies [dynamo.Model], so it can be driven by a
// [dynamo.Simulator]:
//
//	nb := physics.NewNBody()
//	res, _ := dynamo.New(nb).Run(dynamo.DefaultConfig())
//	fmt.Printf("%.9f\n%.9f\n", res.InitialEnergy, res.FinalEnergy)
//
// Advance and Energy never allocate.
package physics
