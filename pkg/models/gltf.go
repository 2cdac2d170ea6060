package models

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/taigrr/scanline/pkg/render"
)

// ErrNoGeometry is returned when a document holds no triangle primitives.
var ErrNoGeometry = errors.New("no triangle geometry")

// LoadGLB loads a glTF or GLB file. All triangle primitives of every mesh
// are merged into one Mesh, and the first base colour texture found is
// decoded into Mesh.Texture.
func LoadGLB(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	mesh := NewMesh(filepath.Base(path))
	texIndex := -1
	for _, m := range doc.Meshes {
		for _, prim := range m.Primitives {
			ok, err := appendPrimitive(doc, prim, mesh)
			if err != nil {
				return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
			}
			if ok && texIndex < 0 {
				texIndex = baseColorTexture(doc, prim)
			}
		}
	}
	if len(mesh.Faces) == 0 {
		return nil, fmt.Errorf("load %s: %w", path, ErrNoGeometry)
	}

	if texIndex >= 0 {
		tex, err := loadTexture(doc, filepath.Dir(path), texIndex)
		if err != nil {
			render.Logger().Warn("skipping mesh texture",
				slog.String("path", path),
				slog.Int("texture", texIndex),
				slog.Any("error", err))
		} else {
			mesh.Texture = tex
		}
	}

	mesh.CalculateBounds()
	render.Logger().Debug("loaded mesh",
		slog.String("path", path),
		slog.Int("vertices", len(mesh.Vertices)),
		slog.Int("faces", len(mesh.Faces)),
		slog.Bool("textured", mesh.Texture != nil))
	return mesh, nil
}

// appendPrimitive adds a triangle primitive's geometry to mesh. It reports
// false for primitives that were skipped.
func appendPrimitive(doc *gltf.Document, prim *gltf.Primitive, mesh *Mesh) (bool, error) {
	if prim.Mode != gltf.PrimitiveTriangles {
		return false, nil
	}
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return false, nil
	}

	acr, err := accessor(doc, posIdx)
	if err != nil {
		return false, fmt.Errorf("positions: %w", err)
	}
	positions, err := modeler.ReadPosition(doc, acr, nil)
	if err != nil {
		return false, fmt.Errorf("read positions: %w", err)
	}

	var uvs [][2]float32
	if uvIdx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		acr, err := accessor(doc, uvIdx)
		if err != nil {
			return false, fmt.Errorf("uvs: %w", err)
		}
		uvs, err = modeler.ReadTextureCoord(doc, acr, nil)
		if err != nil {
			return false, fmt.Errorf("read uvs: %w", err)
		}
	}

	base := len(mesh.Vertices)
	for i, p := range positions {
		v := Vertex{Pos: mgl64.Vec3{float64(p[0]), float64(p[1]), float64(p[2])}}
		if i < len(uvs) {
			v.U, v.V = float64(uvs[i][0]), float64(uvs[i][1])
		}
		mesh.Vertices = append(mesh.Vertices, v)
	}

	var indices []uint32
	if prim.Indices != nil {
		acr, err := accessor(doc, *prim.Indices)
		if err != nil {
			return false, fmt.Errorf("indices: %w", err)
		}
		indices, err = modeler.ReadIndices(doc, acr, nil)
		if err != nil {
			return false, fmt.Errorf("read indices: %w", err)
		}
	} else {
		// Non-indexed: consecutive vertex triples
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	for i := 0; i+2 < len(indices); i += 3 {
		f := Face{base + int(indices[i]), base + int(indices[i+1]), base + int(indices[i+2])}
		if f[0] >= len(mesh.Vertices) || f[1] >= len(mesh.Vertices) || f[2] >= len(mesh.Vertices) {
			return false, fmt.Errorf("face %d indexes past %d vertices", i/3, len(positions))
		}
		mesh.Faces = append(mesh.Faces, f)
	}
	return true, nil
}

// accessor returns the accessor at idx, checking that it and the buffer
// view it reads from exist.
func accessor(doc *gltf.Document, idx int) (*gltf.Accessor, error) {
	if idx < 0 || idx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", idx)
	}
	acr := doc.Accessors[idx]
	if acr.BufferView != nil {
		bv := *acr.BufferView
		if bv < 0 || bv >= len(doc.BufferViews) {
			return nil, fmt.Errorf("accessor %d: buffer view %d out of range", idx, bv)
		}
		if buf := doc.BufferViews[bv].Buffer; buf < 0 || buf >= len(doc.Buffers) {
			return nil, fmt.Errorf("accessor %d: buffer %d out of range", idx, buf)
		}
	}
	return acr, nil
}

// baseColorTexture returns the texture index of a primitive's base colour
// map, or -1.
func baseColorTexture(doc *gltf.Document, prim *gltf.Primitive) int {
	if prim.Material == nil || *prim.Material >= len(doc.Materials) {
		return -1
	}
	pbr := doc.Materials[*prim.Material].PBRMetallicRoughness
	if pbr == nil || pbr.BaseColorTexture == nil {
		return -1
	}
	return pbr.BaseColorTexture.Index
}

// loadTexture decodes the image behind a texture, whether it lives in a
// buffer view, a data URI or a file next to the document.
func loadTexture(doc *gltf.Document, dir string, texIndex int) (*render.Canvas, error) {
	if texIndex < 0 || texIndex >= len(doc.Textures) || doc.Textures[texIndex].Source == nil {
		return nil, fmt.Errorf("texture %d has no image", texIndex)
	}
	src := *doc.Textures[texIndex].Source
	if src < 0 || src >= len(doc.Images) {
		return nil, fmt.Errorf("texture %d: image %d out of range", texIndex, src)
	}
	img := doc.Images[src]

	var data []byte
	switch {
	case img.BufferView != nil:
		if *img.BufferView < 0 || *img.BufferView >= len(doc.BufferViews) {
			return nil, fmt.Errorf("image buffer view %d out of range", *img.BufferView)
		}
		bv := doc.BufferViews[*img.BufferView]
		if bv.Buffer < 0 || bv.Buffer >= len(doc.Buffers) {
			return nil, fmt.Errorf("buffer %d out of range", bv.Buffer)
		}
		buf := doc.Buffers[bv.Buffer]
		if bv.ByteOffset+bv.ByteLength > len(buf.Data) {
			return nil, errors.New("image buffer view out of range")
		}
		data = buf.Data[bv.ByteOffset : bv.ByteOffset+bv.ByteLength]
	case img.IsEmbeddedResource():
		var err error
		if data, err = img.MarshalData(); err != nil {
			return nil, fmt.Errorf("embedded image: %w", err)
		}
	case img.URI != "":
		var err error
		if data, err = os.ReadFile(filepath.Join(dir, img.URI)); err != nil {
			return nil, err
		}
	default:
		return nil, errors.New("image has no data")
	}

	decoded, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return render.CanvasFromImage(decoded, 0, 0), nil
}
