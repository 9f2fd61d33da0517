package physics

import "math"

// Typed so each literal is rounded to float64 before it is scaled.
const (
	Pi          float64 = 3.141592653589793
	SolarMass   float64 = 4 * Pi * Pi
	DaysPerYear float64 = 365.24
)

// NumBodies is the size of the Jovian system: the Sun plus four gas giants.
const NumBodies = 5

// Body is a point mass. Mass is fixed at construction; only position and
// velocity change while the system is advanced.
type Body struct {
	X, Y, Z    float64
	VX, VY, VZ float64
	Mass       float64
}

// NBody is the fixed five-body Jovian system. Index 0 is the Sun.
type NBody struct {
	Bodies [NumBodies]Body
}

// JovianBodies returns the classical Sun, Jupiter, Saturn, Uranus, Neptune
// initial conditions. Velocities are given in AU/day and scaled to AU/year,
// masses are given as fractions of the solar mass.
func JovianBodies() [NumBodies]Body {
	return [NumBodies]Body{
		// Sun
		{Mass: SolarMass},
		// Jupiter
		{
			X:    4.84143144246472090e+00,
			Y:    -1.16032004402742839e+00,
			Z:    -1.03622044471123109e-01,
			VX:   1.66007664274403694e-03 * DaysPerYear,
			VY:   7.69901118419740425e-03 * DaysPerYear,
			VZ:   -6.90460016972063023e-05 * DaysPerYear,
			Mass: 9.54791938424326609e-04 * SolarMass,
		},
		// Saturn
		{
			X:    8.34336671824457987e+00,
			Y:    4.12479856412430479e+00,
			Z:    -4.03523417114321381e-01,
			VX:   -2.76742510726862411e-03 * DaysPerYear,
			VY:   4.99852801234917238e-03 * DaysPerYear,
			VZ:   2.30417297573763929e-05 * DaysPerYear,
			Mass: 2.85885980666130812e-04 * SolarMass,
		},
		// Uranus
		{
			X:    1.28943695621391310e+01,
			Y:    -1.51111514016986312e+01,
			Z:    -2.23307578892655734e-01,
			VX:   2.96460137564761618e-03 * DaysPerYear,
			VY:   2.37847173959480950e-03 * DaysPerYear,
			VZ:   -2.96589568540237556e-05 * DaysPerYear,
			Mass: 4.36624404335156298e-05 * SolarMass,
		},
		// Neptune
		{
			X:    1.53796971148509165e+01,
			Y:    -2.59193146099879641e+01,
			Z:    1.79258772950371181e-01,
			VX:   2.68067772490389322e-03 * DaysPerYear,
			VY:   1.62824170038242295e-03 * DaysPerYear,
			VZ:   -9.51592254519715870e-05 * DaysPerYear,
			Mass: 5.15138902046611451e-05 * SolarMass,
		},
	}
}

// NewNBody creates the Jovian system with the Sun's velocity chosen so that
// the total momentum of the system is zero.
func NewNBody() *NBody {
	nb := &NBody{Bodies: JovianBodies()}
	nb.OffsetMomentum()
	return nb
}

// OffsetMomentum sets the Sun's velocity to cancel the momentum of every
// other body.
func (nb *NBody) OffsetMomentum() {
	px, py, pz := 0.0, 0.0, 0.0
	for i := range nb.Bodies {
		b := &nb.Bodies[i]
		px += b.VX * b.Mass
		py += b.VY * b.Mass
		pz += b.VZ * b.Mass
	}
	nb.Bodies[0].VX = -px / SolarMass
	nb.Bodies[0].VY = -py / SolarMass
	nb.Bodies[0].VZ = -pz / SolarMass
}

// Advance moves the system forward by dt. Every pairwise velocity update is
// applied before any position changes.
func (nb *NBody) Advance(dt float64) {
	for i := 0; i < NumBodies; i++ {
		for j := i + 1; j < NumBodies; j++ {
			nb.interact(i, j, dt)
		}
	}

	for i := range nb.Bodies {
		b := &nb.Bodies[i]
		b.X += dt * b.VX
		b.Y += dt * b.VY
		b.Z += dt * b.VZ
	}
}

// interact applies the equal and opposite gravitational impulse between
// bodies i and j, each scaled by the other body's mass.
func (nb *NBody) interact(i, j int, dt float64) {
	bi, bj := &nb.Bodies[i], &nb.Bodies[j]

	dx := bi.X - bj.X
	dy := bi.Y - bj.Y
	dz := bi.Z - bj.Z

	dist := math.Sqrt(dx*dx + dy*dy + dz*dz)
	mag := dt / (dist * dist * dist)

	bi.VX -= dx * bj.Mass * mag
	bi.VY -= dy * bj.Mass * mag
	bi.VZ -= dz * bj.Mass * mag

	bj.VX += dx * bi.Mass * mag
	bj.VY += dy * bi.Mass * mag
	bj.VZ += dz * bi.Mass * mag
}

// Energy returns the total kinetic energy minus the total pairwise potential
// energy. It does not modify the system.
func (nb *NBody) Energy() float64 {
	e := 0.0
	for i := 0; i < NumBodies; i++ {
		bi := &nb.Bodies[i]
		e += 0.5 * bi.Mass * (bi.VX*bi.VX + bi.VY*bi.VY + bi.VZ*bi.VZ)

		for j := i + 1; j < NumBodies; j++ {
			bj := &nb.Bodies[j]
			dx := bi.X - bj.X
			dy := bi.Y - bj.Y
			dz := bi.Z - bj.Z
			dist := math.Sqrt(dx*dx + dy*dy + dz*dz)
			e -= (bi.Mass * bj.Mass) / dist
		}
	}
	return e
}

// Momentum returns the total linear momentum of the system.
func (nb *NBody) Momentum() (px, py, pz float64) {
	for i := range nb.Bodies {
		b := &nb.Bodies[i]
		px += b.Mass * b.VX
		py += b.Mass * b.VY
		pz += b.Mass * b.VZ
	}
	return
}
