package models

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/taigrr/scanline/pkg/render"
)

func TestNewCube(t *testing.T) {
	m := NewCube(2, nil)

	if len(m.Vertices) != 24 {
		t.Errorf("len(Vertices) = %d, want 24", len(m.Vertices))
	}
	if m.TriangleCount() != 12 {
		t.Errorf("TriangleCount() = %d, want 12", m.TriangleCount())
	}
	if m.BoundsMin != (mgl64.Vec3{-1, -1, -1}) || m.BoundsMax != (mgl64.Vec3{1, 1, 1}) {
		t.Errorf("bounds = %v..%v", m.BoundsMin, m.BoundsMax)
	}
	if m.Center() != (mgl64.Vec3{}) {
		t.Errorf("Center() = %v, want origin", m.Center())
	}
	if r := m.Radius(); math.Abs(r-math.Sqrt(3)) > 1e-9 {
		t.Errorf("Radius() = %v, want sqrt(3)", r)
	}
}

func TestProject(t *testing.T) {
	cube := NewCube(2, nil)

	tests := []struct {
		name string
		view View
		want int
	}{
		{"front", View{}, 2},
		{"quarter turn", View{Yaw: math.Pi / 4}, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tris := cube.Project(tc.view, 64, 64)
			if len(tris) != tc.want {
				t.Fatalf("got %d triangles, want %d", len(tris), tc.want)
			}
			for i, tri := range tris {
				for _, v := range tri.V {
					if v.X < 0 || v.X >= 64 || v.Y < 0 || v.Y >= 64 {
						t.Errorf("triangle %d vertex %+v off canvas", i, v)
					}
				}
				if i > 0 && tris[i-1].Depth > tri.Depth {
					t.Errorf("triangle %d drawn before a farther one", i)
				}
			}
		})
	}
}

func TestProjectEmpty(t *testing.T) {
	if tris := NewMesh("empty").Project(View{}, 64, 64); tris != nil {
		t.Errorf("empty mesh projected to %d triangles", len(tris))
	}
	if tris := NewCube(1, nil).Project(View{}, 0, 64); tris != nil {
		t.Errorf("zero-width canvas got %d triangles", len(tris))
	}
}

func TestDraw(t *testing.T) {
	tex := render.NewCanvas(4, 4)
	tex.Clear(render.Green)

	tests := []struct {
		name string
		tex  *render.Canvas
		want render.ARGB
	}{
		{"textured", tex, render.Green},
		{"fallback", nil, render.Magenta},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dst := render.NewCanvas(64, 64)
			cube := NewCube(2, tc.tex)
			if err := cube.Draw(dst, View{Yaw: 0.3, Pitch: 0.2}, render.UVClamp, render.Magenta); err != nil {
				t.Fatalf("Draw: %v", err)
			}
			if got := dst.PixelAt(32, 32); got != tc.want.Uint32() {
				t.Errorf("centre pixel = %#08x, want %#08x", got, tc.want.Uint32())
			}
			if got := dst.PixelAt(0, 0); got != 0 {
				t.Errorf("corner pixel = %#08x, want 0", got)
			}
		})
	}
}

func TestDrawAliasedTexture(t *testing.T) {
	dst := render.NewCanvas(32, 32)
	cube := NewCube(2, dst)
	if err := cube.Draw(dst, View{}, render.UVWrap, render.White); err == nil {
		t.Error("expected error drawing a mesh textured with its own target")
	}
}

func BenchmarkCubeDraw(b *testing.B) {
	dst := render.NewCanvas(256, 256)
	cube := NewCube(2, render.NewCheckerCanvas(64, 64, 8, render.Red, render.White))
	view := View{Yaw: 0.7, Pitch: 0.4}
	for b.Loop() {
		_ = cube.Draw(dst, view, render.UVWrap, render.White)
	}
}
