package geometry

import (
	"github.com/df07/go-offline-raytracer/pkg/core"
	"github.com/df07/go-offline-raytracer/pkg/material"
)

// ShapeList is an unordered collection of shapes that is itself a Shape.
// Intersection is a linear scan keeping the closest hit.
type ShapeList struct {
	shapes []Shape
}

// NewShapeList creates a list from a fixed set of shapes
func NewShapeList(shapes ...Shape) *ShapeList {
	owned := make([]Shape, len(shapes))
	copy(owned, shapes)
	return &ShapeList{shapes: owned}
}

// Len returns the number of shapes in the list
func (l *ShapeList) Len() int {
	return len(l.shapes)
}

// Hit returns the closest intersection among all shapes within [tMin, tMax]
func (l *ShapeList) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, shape := range l.shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
