package models

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/taigrr/scanline/pkg/render"
)

func TestLoadGLBInvalidPath(t *testing.T) {
	_, err := LoadGLB("/nonexistent/path.glb")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

// writeQuadGLB saves a one-quad GLB with a 2x2 embedded PNG texture.
func writeQuadGLB(t *testing.T, withTexture bool) string {
	t.Helper()
	return saveGLB(t, newQuadDoc(t, withTexture))
}

// newQuadDoc builds a one-quad document, optionally textured.
func newQuadDoc(t *testing.T, withTexture bool) *gltf.Document {
	t.Helper()

	doc := gltf.NewDocument()
	prim := &gltf.Primitive{
		Indices: gltf.Index(modeler.WriteIndices(doc, []uint16{0, 1, 2, 0, 2, 3})),
		Attributes: map[string]int{
			gltf.POSITION:   modeler.WritePosition(doc, [][3]float32{{-1, -1, 0}, {1, -1, 0}, {1, 1, 0}, {-1, 1, 0}}),
			gltf.TEXCOORD_0: modeler.WriteTextureCoord(doc, [][2]float32{{0, 1}, {1, 1}, {1, 0}, {0, 0}}),
		},
	}

	if withTexture {
		img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
		img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
		img.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})
		img.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255})
		img.SetNRGBA(1, 1, color.NRGBA{R: 255, G: 255, A: 255})
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			t.Fatalf("encode png: %v", err)
		}
		imgIdx, err := modeler.WriteImage(doc, "checker", "image/png", &buf)
		if err != nil {
			t.Fatalf("WriteImage: %v", err)
		}
		doc.Textures = []*gltf.Texture{{Source: gltf.Index(imgIdx)}}
		doc.Materials = []*gltf.Material{{
			Name: "checker",
			PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
				BaseColorTexture: &gltf.TextureInfo{Index: 0},
			},
		}}
		prim.Material = gltf.Index(0)
	}

	doc.Meshes = []*gltf.Mesh{{Name: "quad", Primitives: []*gltf.Primitive{prim}}}
	doc.Nodes = []*gltf.Node{{Name: "root", Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)
	return doc
}

func saveGLB(t *testing.T, doc *gltf.Document) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quad.glb")
	if err := gltf.SaveBinary(doc, path); err != nil {
		t.Fatalf("SaveBinary: %v", err)
	}
	return path
}

func TestLoadGLB(t *testing.T) {
	mesh, err := LoadGLB(writeQuadGLB(t, true))
	if err != nil {
		t.Fatalf("LoadGLB: %v", err)
	}

	if mesh.Name != "quad.glb" {
		t.Errorf("Name = %q, want quad.glb", mesh.Name)
	}
	if len(mesh.Vertices) != 4 {
		t.Errorf("len(Vertices) = %d, want 4", len(mesh.Vertices))
	}
	if mesh.TriangleCount() != 2 {
		t.Errorf("TriangleCount() = %d, want 2", mesh.TriangleCount())
	}
	if want := (Face{0, 2, 3}); mesh.Faces[1] != want {
		t.Errorf("Faces[1] = %v, want %v", mesh.Faces[1], want)
	}
	if v := mesh.Vertices[2]; v.U != 1 || v.V != 0 {
		t.Errorf("Vertices[2] uv = (%v, %v), want (1, 0)", v.U, v.V)
	}
	if mesh.BoundsMin != (mgl64.Vec3{-1, -1, 0}) || mesh.BoundsMax != (mgl64.Vec3{1, 1, 0}) {
		t.Errorf("bounds = %v..%v", mesh.BoundsMin, mesh.BoundsMax)
	}

	if mesh.Texture == nil {
		t.Fatal("texture not loaded")
	}
	if mesh.Texture.Width() != 2 || mesh.Texture.Height() != 2 {
		t.Errorf("texture size = %dx%d, want 2x2", mesh.Texture.Width(), mesh.Texture.Height())
	}
	if got := mesh.Texture.PixelAt(1, 0); got != render.Green.Uint32() {
		t.Errorf("texture pixel (1, 0) = %#08x, want green", got)
	}
}

func TestLoadGLBWithoutTexture(t *testing.T) {
	mesh, err := LoadGLB(writeQuadGLB(t, false))
	if err != nil {
		t.Fatalf("LoadGLB: %v", err)
	}
	if mesh.Texture != nil {
		t.Error("untextured mesh has a texture")
	}
}

func TestLoadGLBNoGeometry(t *testing.T) {
	doc := gltf.NewDocument()
	path := filepath.Join(t.TempDir(), "empty.glb")
	if err := gltf.SaveBinary(doc, path); err != nil {
		t.Fatalf("SaveBinary: %v", err)
	}

	if _, err := LoadGLB(path); !errors.Is(err, ErrNoGeometry) {
		t.Errorf("error = %v, want ErrNoGeometry", err)
	}
}

func TestLoadGLBMalformed(t *testing.T) {
	prim := func(d *gltf.Document) *gltf.Primitive { return d.Meshes[0].Primitives[0] }

	tests := []struct {
		name    string
		corrupt func(d *gltf.Document)
		wantErr bool
	}{
		{"image source out of range", func(d *gltf.Document) { d.Textures[0].Source = gltf.Index(7) }, false},
		{"image buffer view out of range", func(d *gltf.Document) { d.Images[0].BufferView = gltf.Index(99) }, false},
		{"material texture out of range", func(d *gltf.Document) { d.Materials[0].PBRMetallicRoughness.BaseColorTexture.Index = 5 }, false},
		{"position accessor out of range", func(d *gltf.Document) { prim(d).Attributes[gltf.POSITION] = 42 }, true},
		{"uv accessor out of range", func(d *gltf.Document) { prim(d).Attributes[gltf.TEXCOORD_0] = 42 }, true},
		{"index accessor out of range", func(d *gltf.Document) { prim(d).Indices = gltf.Index(42) }, true},
		{"accessor buffer view out of range", func(d *gltf.Document) { d.Accessors[prim(d).Attributes[gltf.POSITION]].BufferView = gltf.Index(99) }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := newQuadDoc(t, true)
			tc.corrupt(doc)

			mesh, err := LoadGLB(saveGLB(t, doc))
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadGLB: %v", err)
			}
			if mesh.Texture != nil {
				t.Error("broken texture was loaded")
			}
			if mesh.TriangleCount() != 2 {
				t.Errorf("TriangleCount() = %d, want 2", mesh.TriangleCount())
			}
		})
	}
}
