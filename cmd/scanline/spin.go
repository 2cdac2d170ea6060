package main

import "github.com/charmbracelet/harmonica"

// Spin is one rotation axis whose velocity eases back to rest.
type Spin struct {
	Position float64
	Velocity float64
	spring   harmonica.Spring
	accel    float64 // spring velocity of Velocity itself
}

// NewSpin creates an axis at rest, stepped fps times a second.
func NewSpin(fps int) Spin {
	return Spin{
		// Critically damped: slows down without swinging back
		spring: harmonica.NewSpring(harmonica.FPS(max(fps, 1)), 4.0, 1.0),
	}
}

// Update advances Position by Velocity and decays Velocity toward zero.
func (s *Spin) Update() {
	s.Position += s.Velocity
	s.Velocity, s.accel = s.spring.Update(s.Velocity, s.accel, 0)
}

// Impulse adds v to the velocity.
func (s *Spin) Impulse(v float64) {
	s.Velocity += v
}
