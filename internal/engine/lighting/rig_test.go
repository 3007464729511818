package lighting

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestDefaultRigPointPlacement(t *testing.T) {
	r := DefaultRig()

	want := []mgl32.Vec3{
		{0.7, 0.2, 2.0},
		{2.3, -3.3, -4.0},
		{-4.0, 2.0, -12.0},
		{0.0, 0.0, -3.0},
	}
	for i, p := range r.Points {
		if p.Position != want[i] {
			t.Errorf("point %d at %v, want %v", i, p.Position, want[i])
		}
		if p.Constant != 1.0 || p.Linear != 0.09 || p.Quadratic != 0.032 {
			t.Errorf("point %d attenuation = %v/%v/%v, want 1/0.09/0.032",
				i, p.Constant, p.Linear, p.Quadratic)
		}
	}
}

func TestDefaultRigSpotCone(t *testing.T) {
	r := DefaultRig()

	wantInner := math32.Cos(mgl32.DegToRad(12.5))
	wantOuter := math32.Cos(mgl32.DegToRad(15.0))
	if math32.Abs(r.Spot.CutOff-wantInner) > 1e-6 {
		t.Errorf("spot cutoff = %v, want cos(12.5 deg) = %v", r.Spot.CutOff, wantInner)
	}
	if math32.Abs(r.Spot.OuterCutOff-wantOuter) > 1e-6 {
		t.Errorf("spot outer cutoff = %v, want cos(15 deg) = %v", r.Spot.OuterCutOff, wantOuter)
	}
	// Soft edge needs the outer cone wider, so a smaller cosine.
	if r.Spot.OuterCutOff >= r.Spot.CutOff {
		t.Error("outer cutoff cosine should be below inner cutoff cosine")
	}
}

func TestDefaultMaterial(t *testing.T) {
	m := DefaultMaterial()
	if m.Ambient != (mgl32.Vec3{0.05, 0.1, 0.3}) {
		t.Errorf("ambient = %v", m.Ambient)
	}
	if m.Diffuse != (mgl32.Vec3{0.2, 0.5, 0.8}) {
		t.Errorf("diffuse = %v", m.Diffuse)
	}
	if m.Specular != (mgl32.Vec3{0.7, 0.9, 1.0}) {
		t.Errorf("specular = %v", m.Specular)
	}
	if m.Shininess != 32 {
		t.Errorf("shininess = %v, want 32", m.Shininess)
	}
}

func TestFollowCamera(t *testing.T) {
	r := DefaultRig()
	pos := mgl32.Vec3{1, 2, 3}
	front := mgl32.Vec3{0, 0, -1}

	r.FollowCamera(pos, front)
	if r.Spot.Position != pos {
		t.Errorf("spot position = %v, want %v", r.Spot.Position, pos)
	}
	if r.Spot.Direction != front {
		t.Errorf("spot direction = %v, want %v", r.Spot.Direction, front)
	}
}

func TestFlatUploadLayout(t *testing.T) {
	r := DefaultRig()

	positions := r.PointPositions()
	if len(positions) != MaxPointLights*3 {
		t.Fatalf("positions length %d, want %d", len(positions), MaxPointLights*3)
	}
	for i, p := range r.Points {
		got := mgl32.Vec3{positions[i*3], positions[i*3+1], positions[i*3+2]}
		if got != p.Position {
			t.Errorf("flattened position %d = %v, want %v", i, got, p.Position)
		}
	}

	ambients := r.PointAmbients()
	diffuses := r.PointDiffuses()
	speculars := r.PointSpeculars()
	if len(ambients) != 12 || len(diffuses) != 12 || len(speculars) != 12 {
		t.Fatal("color arrays must hold 4 RGB triples")
	}

	constant, linear, quadratic := r.PointAttenuations()
	for i := 0; i < MaxPointLights; i++ {
		if constant[i] != 1.0 || linear[i] != 0.09 || quadratic[i] != 0.032 {
			t.Errorf("attenuation %d = %v/%v/%v", i, constant[i], linear[i], quadratic[i])
		}
	}
}
