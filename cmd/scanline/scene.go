package main

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/taigrr/scanline/pkg/models"
	"github.com/taigrr/scanline/pkg/render"
)

// Unit pentagram, closed, and a unit triangle.
var (
	starPoints = [][2]float64{
		{1.0, 0.0},
		{-0.8090169943749473, 0.5877852522924732},
		{0.30901699437494723, -0.9510565162951536},
		{0.30901699437494745, 0.9510565162951535},
		{-0.8090169943749476, -0.587785252292473},
		{1.0, 0.0},
	}
	trianglePoints = [][2]float64{{0, -1}, {1, 1}, {-1, 1}}
)

// demo draws one frame of an animation at time s.counter.
type demo func(s *scene, c *render.Canvas) error

// demos in drawing order; "clear" is handled by the scene itself.
var demos = []struct {
	name string
	fn   demo
}{
	{"fill_rect", demoFillRect},
	{"rect", demoRect},
	{"hlines", demoHLines},
	{"vlines", demoVLines},
	{"rotating_line", demoRotatingLine},
	{"lines", demoLines},
	{"fill_polygon", demoFillPolygon},
	{"polygon", demoPolygon},
	{"fill_triangle", demoFillTriangle},
	{"fill_triangle_rot", demoFillTriangleRot},
	{"sprite", demoSprite},
	{"textured", demoTextured},
	{"model", demoModel},
}

func demoNames() []string {
	names := []string{"clear"}
	for _, d := range demos {
		names = append(names, d.name)
	}
	return append(names, "all")
}

// parseDemos resolves a comma separated list of demo names.
func parseDemos(list string) (map[string]bool, error) {
	enabled := make(map[string]bool)
	for name := range strings.SplitSeq(list, ",") {
		name = strings.TrimSpace(strings.ToLower(name))
		switch {
		case name == "":
			continue
		case name == "all":
			for _, n := range demoNames() {
				enabled[n] = true
			}
		case slices.Contains(demoNames(), name):
			enabled[name] = true
		default:
			return nil, fmt.Errorf("unknown demo %q (have %s)", name, strings.Join(demoNames(), ", "))
		}
	}
	delete(enabled, "all")
	return enabled, nil
}

// scene holds the animation state shared by all demos.
type scene struct {
	enabled map[string]bool
	bg      render.ARGB
	wrap    render.UVWrapMode

	sprite *render.Canvas
	mesh   *models.Mesh

	counter    float64
	yaw, pitch Spin
	fps        int
}

func newScene(enabled map[string]bool, bg render.ARGB, wrap render.UVWrapMode, fps int) *scene {
	return &scene{
		enabled: enabled,
		bg:      bg,
		wrap:    wrap,
		sprite:  render.NewCheckerCanvas(32, 32, 4, render.RGB(200, 200, 200), render.Transparent),
		mesh:    models.NewCube(2, render.NewCheckerCanvas(64, 64, 8, render.RGB(200, 200, 200), render.RGB(100, 100, 100))),
		yaw:     NewSpin(fps),
		pitch:   NewSpin(fps),
		fps:     fps,
	}
}

// loadAssets replaces the built-in sprite and cube with files, if given.
func (s *scene) loadAssets(texturePath, modelPath string) error {
	if texturePath != "" {
		tex, err := render.LoadCanvas(texturePath, 0, 0)
		if err != nil {
			return fmt.Errorf("load texture: %w", err)
		}
		s.sprite = tex
		s.mesh.Texture = tex
	}
	if modelPath != "" {
		mesh, err := models.LoadGLB(modelPath)
		if err != nil {
			return fmt.Errorf("load model: %w", err)
		}
		if mesh.Texture == nil {
			mesh.Texture = s.mesh.Texture
		}
		s.mesh = mesh
	}
	return nil
}

// step advances the animation by one frame.
func (s *scene) step() {
	s.counter += 0.01
	s.yaw.Update()
	s.pitch.Update()
}

// reset returns the animation to its starting state.
func (s *scene) reset() {
	s.counter = 0
	s.yaw = NewSpin(s.fps)
	s.pitch = NewSpin(s.fps)
}

// draw renders every enabled demo onto c.
func (s *scene) draw(c *render.Canvas) error {
	if s.enabled["clear"] {
		c.Clear(s.bg)
	}
	for _, d := range demos {
		if !s.enabled[d.name] {
			continue
		}
		if err := d.fn(s, c); err != nil {
			return fmt.Errorf("%s: %w", d.name, err)
		}
	}
	return nil
}

// angle is the current rotation of the spinning demos.
func (s *scene) angle() float64 {
	return s.counter + s.yaw.Position
}

// osc maps a sinusoid sample in [-1, 1] onto [0, scale].
func osc(v, scale float64) int {
	return int(math.Floor((v + 1) / 2 * scale))
}

// cycle returns a colour whose channels oscillate at the given rates.
func (s *scene) cycle(fr, fg, fb float64) render.ARGB {
	t := s.counter
	return render.RGB(
		uint8(osc(math.Sin(t*fr), 255)),
		uint8(osc(math.Cos(t*fg), 255)),
		uint8(osc(math.Sin(t*fb), 255)))
}

// rotated scales and rotates unit points about the canvas centre and
// returns them as a flat x,y list.
func rotated(c *render.Canvas, pts [][2]float64, size, angle float64) []int {
	sin, cos := math.Sincos(angle)
	cx, cy := float64(c.Width())/2, float64(c.Height())/2
	out := make([]int, 0, 2*len(pts))
	for _, p := range pts {
		x := p[0]*size*cos - p[1]*size*sin + cx
		y := p[0]*size*sin + p[1]*size*cos + cy
		out = append(out, int(x), int(y))
	}
	return out
}

func polySize(c *render.Canvas) float64 {
	return float64(min(c.Width(), c.Height())) / 3
}

func demoFillRect(s *scene, c *render.Canvas) error {
	t, w, h := s.counter, float64(c.Width()), float64(c.Height())
	x := osc(math.Sin(t*1.3), w/2)
	y := osc(math.Cos(t*1.5), h/2)
	rw := osc(math.Sin(t*2.1), w/2) + 16
	rh := osc(math.Cos(t*1.8), h/2) + 16
	c.FillRect(s.cycle(1.5, 1.7, 1.3), x, y, x+rw, y+rh)
	return nil
}

func demoRect(s *scene, c *render.Canvas) error {
	t, w, h := s.counter, float64(c.Width()), float64(c.Height())
	x := osc(math.Cos(t*1.8), w/2)
	y := osc(math.Sin(t*2.2), h/2)
	rw := osc(math.Cos(t*1.1), w/2) + 16
	rh := osc(math.Sin(t*1.4), h/2) + 16
	c.Rect(s.cycle(1.1, 1.4, 2.3), x, y, x+rw, y+rh)
	return nil
}

func demoHLines(s *scene, c *render.Canvas) error {
	t, w, h := s.counter, float64(c.Width()), float64(c.Height())
	x1 := osc(math.Sin(t*0.3), w)
	x2 := osc(math.Sin(t*1.1), w) + 16
	y := osc(math.Cos(t*0.5), h)
	c.Line(s.cycle(1.1, 0.8, 1.4), x1, y, x2, y)
	return nil
}

func demoVLines(s *scene, c *render.Canvas) error {
	t, w, h := s.counter, float64(c.Width()), float64(c.Height())
	y1 := osc(math.Sin(t*0.5), h)
	y2 := osc(math.Sin(t*1.2), h) + 16
	x := osc(math.Cos(t*0.3), w)
	c.Line(s.cycle(1.2, 1.3, 1.8), x, y1, x, y2)
	return nil
}

func demoRotatingLine(s *scene, c *render.Canvas) error {
	cx, cy := c.Width()/2, c.Height()/2
	r := float64(min(c.Width(), c.Height())) * 0.4
	sin, cos := math.Sincos(-s.angle())
	c.Line(s.cycle(1.4, 0.6, 0.9), cx, cy, cx+int(r*cos), cy+int(r*sin))
	return nil
}

func demoLines(s *scene, c *render.Canvas) error {
	t, w, h := s.counter, float64(c.Width()), float64(c.Height())
	x1 := osc(math.Sin(t*0.8), w)
	x2 := osc(math.Cos(t*1.1), w) + 16
	y1 := osc(math.Sin(t*0.5), h)
	y2 := osc(math.Cos(t*1.2), h) + 16
	c.Line(s.cycle(1.8, 0.2, 0.7), x1, y1, x2, y2)
	return nil
}

func demoFillPolygon(s *scene, c *render.Canvas) error {
	c.FillPolygon(s.cycle(0.7, 0.5, 0.2), rotated(c, starPoints, polySize(c), s.angle()))
	return nil
}

func demoPolygon(s *scene, c *render.Canvas) error {
	c.Polygon(s.cycle(1.4, 0.6, 0.9), false, rotated(c, starPoints, polySize(c), s.angle()))
	return nil
}

func demoFillTriangle(s *scene, c *render.Canvas) error {
	t, w, h := s.counter, float64(c.Width()), float64(c.Height())
	c.FillTriangle(s.cycle(0.25, 0.11, 0.81),
		osc(math.Cos(t*1.2), w), osc(math.Sin(t*1.5), h),
		osc(math.Cos(t*1.5), w), osc(math.Sin(t*1.2), h),
		osc(math.Cos(t*1.9), w), osc(math.Sin(t*1.7), h))
	return nil
}

func demoFillTriangleRot(s *scene, c *render.Canvas) error {
	p := rotated(c, trianglePoints, polySize(c)/2, s.angle()*1.8)
	c.FillTriangle(s.cycle(0.375, 0.73, 0.28), p[0], p[1], p[2], p[3], p[4], p[5])
	return nil
}

func demoSprite(s *scene, c *render.Canvas) error {
	t := s.counter
	x := osc(math.Sin(t*1.57), float64(c.Width()-s.sprite.Width()))
	y := osc(math.Cos(t*1.32), float64(c.Height()-s.sprite.Height()))
	return c.DrawCanvas(s.sprite, x, y)
}

// demoTextured spins a quad whose texture coordinates run to 2, so the
// wrap mode decides whether the texture repeats or smears its edge.
func demoTextured(s *scene, c *render.Canvas) error {
	quad := [][2]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	p := rotated(c, quad, polySize(c), s.angle()*0.5)
	uv := [4][2]float64{{0, 0}, {2, 0}, {2, 2}, {0, 2}}

	v := make([]render.UVVertex, 4)
	for i := range v {
		v[i] = render.NewUVVertex(p[2*i], p[2*i+1], uv[i][0], uv[i][1])
	}
	tex := s.mesh.Texture
	if tex == nil {
		tex = s.sprite
	}
	if err := c.TexturedTriangle(tex, v[0], v[1], v[2], s.wrap); err != nil {
		return err
	}
	return c.TexturedTriangle(tex, v[0], v[2], v[3], s.wrap)
}

func demoModel(s *scene, c *render.Canvas) error {
	view := models.View{Yaw: s.angle(), Pitch: 0.4 + s.pitch.Position}
	return s.mesh.Draw(c, view, s.wrap, render.Gray)
}
