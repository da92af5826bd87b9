package engine

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/litescript/ls-frames/astro"
)

func TestTwoVectorFrameAxisAligned(t *testing.T) {
	_, star, _, _ := buildFixedSystem(t)

	// Primary +X along world X, secondary +Z along world Z: the frame is the
	// identity.
	frame := NewTwoVectorFrame(StarSelection(star),
		ConstantVector(mgl64.Vec3{1, 0, 0}, nil), 1,
		ConstantVector(mgl64.Vec3{0, 0, 1}, nil), 3)

	if !quatNear(frame.Orientation(astro.J2000), mgl64.QuatIdent(), 1e-9) {
		t.Errorf("orientation = %v, want identity", frame.Orientation(astro.J2000))
	}
	if frame.IsInertial() {
		t.Error("two-vector frames are never classified inertial")
	}
}

func TestTwoVectorFrameOrthonormal(t *testing.T) {
	_, star, _, _ := buildFixedSystem(t)

	frame := NewTwoVectorFrame(StarSelection(star),
		ConstantVector(mgl64.Vec3{1, 1, 0}, nil), 1,
		ConstantVector(mgl64.Vec3{0, 1, 1}, nil), 2)

	m := frame.Orientation(astro.J2000).Mat4().Mat3()
	rows := [3]mgl64.Vec3{
		{m.At(0, 0), m.At(0, 1), m.At(0, 2)},
		{m.At(1, 0), m.At(1, 1), m.At(1, 2)},
		{m.At(2, 0), m.At(2, 1), m.At(2, 2)},
	}

	// Row 0 is the normalized primary direction, bound exactly.
	want := mgl64.Vec3{1, 1, 0}.Normalize()
	if !vecNear(rows[0], want, 1e-9) {
		t.Errorf("primary axis = %v, want %v", rows[0], want)
	}

	// The secondary lies in the plane of the two input directions, on the
	// same side as the input.
	if rows[1].Dot(mgl64.Vec3{0, 1, 1}) <= 0 {
		t.Error("secondary axis points away from the secondary direction")
	}

	for i := 0; i < 3; i++ {
		if got := rows[i].Len(); math.Abs(got-1) > 1e-9 {
			t.Errorf("row %d length = %g, want 1", i, got)
		}
		if got := rows[i].Dot(rows[(i+1)%3]); math.Abs(got) > 1e-9 {
			t.Errorf("rows %d and %d not orthogonal: dot = %g", i, (i+1)%3, got)
		}
	}

	// Right-handed: x cross y = z.
	if !vecNear(rows[0].Cross(rows[1]), rows[2], 1e-9) {
		t.Error("axes are not a right-handed basis")
	}
}

func TestTwoVectorFrameNegativeAxes(t *testing.T) {
	_, star, _, _ := buildFixedSystem(t)

	// Binding -X to world X flips the frame's X axis.
	frame := NewTwoVectorFrame(StarSelection(star),
		ConstantVector(mgl64.Vec3{1, 0, 0}, nil), -1,
		ConstantVector(mgl64.Vec3{0, 0, 1}, nil), 3)

	m := frame.Orientation(astro.J2000).Mat4().Mat3()
	row0 := mgl64.Vec3{m.At(0, 0), m.At(0, 1), m.At(0, 2)}
	if !vecNear(row0, mgl64.Vec3{-1, 0, 0}, 1e-9) {
		t.Errorf("row 0 = %v, want (-1, 0, 0)", row0)
	}
}

func TestTwoVectorFrameCollinear(t *testing.T) {
	_, star, _, _ := buildFixedSystem(t)

	frame := NewTwoVectorFrame(StarSelection(star),
		ConstantVector(mgl64.Vec3{1, 0, 0}, nil), 1,
		ConstantVector(mgl64.Vec3{2, 0, 0}, nil), 2)

	if !quatNear(frame.Orientation(astro.J2000), mgl64.QuatIdent(), 1e-12) {
		t.Error("collinear directions should degrade to the identity")
	}
}

func TestTwoVectorFrameInvalidAxes(t *testing.T) {
	_, star, _, _ := buildFixedSystem(t)

	cases := []struct {
		name               string
		primary, secondary int
	}{
		{"zero primary", 0, 2},
		{"zero secondary", 1, 0},
		{"out of range", 4, 2},
		{"same axis", 1, -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("axes (%d, %d) should panic", tc.primary, tc.secondary)
				}
			}()
			NewTwoVectorFrame(StarSelection(star),
				ConstantVector(mgl64.Vec3{1, 0, 0}, nil), tc.primary,
				ConstantVector(mgl64.Vec3{0, 1, 0}, nil), tc.secondary)
		})
	}
}

func TestTwoVectorFrameRelativePosition(t *testing.T) {
	_, star, planet, _ := buildFixedSystem(t)

	// Primary +X points from the planet to the star, so the frame's X axis
	// is the world -X direction.
	frame := NewTwoVectorFrame(BodySelection(planet),
		RelativePosition(BodySelection(planet), StarSelection(star)), 1,
		ConstantVector(mgl64.Vec3{0, 1, 0}, nil), 2)

	m := frame.Orientation(astro.J2000).Mat4().Mat3()
	row0 := mgl64.Vec3{m.At(0, 0), m.At(0, 1), m.At(0, 2)}
	if !vecNear(row0, mgl64.Vec3{-1, 0, 0}, 1e-9) {
		t.Errorf("row 0 = %v, want (-1, 0, 0)", row0)
	}
}
