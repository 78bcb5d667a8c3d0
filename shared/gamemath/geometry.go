package gamemath

// Rect is an axis-aligned box in model coordinates.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// RectXYWH builds a Rect from a top-left corner and a size.
func RectXYWH(x, y, w, h float64) Rect {
	return Rect{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
}

func (r Rect) Width() float64  { return r.MaxX - r.MinX }
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

func (r Rect) Center() Vec {
	return Vec{X: (r.MinX + r.MaxX) / 2, Y: (r.MinY + r.MaxY) / 2}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// Intersects reports whether the closed boxes overlap.
func (r Rect) Intersects(o Rect) bool {
	return max(r.MinX, o.MinX) <= min(r.MaxX, o.MaxX) &&
		max(r.MinY, o.MinY) <= min(r.MaxY, o.MaxY)
}

// ClosestPoint returns the point of r nearest to p.
func (r Rect) ClosestPoint(p Vec) Vec {
	return Vec{
		X: ClampFloat(p.X, r.MinX, r.MaxX),
		Y: ClampFloat(p.Y, r.MinY, r.MaxY),
	}
}

// PolygonContains reports whether p is inside the simple polygon poly using
// the even-odd rule.
func PolygonContains(poly []Vec, p Vec) bool {
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			crossX := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < crossX {
				inside = !inside
			}
		}
	}
	return inside
}

// PolygonBounds returns the bounding box of poly.
func PolygonBounds(poly []Vec) Rect {
	if len(poly) == 0 {
		return Rect{}
	}
	r := Rect{MinX: poly[0].X, MinY: poly[0].Y, MaxX: poly[0].X, MaxY: poly[0].Y}
	for _, p := range poly[1:] {
		r.MinX = min(r.MinX, p.X)
		r.MinY = min(r.MinY, p.Y)
		r.MaxX = max(r.MaxX, p.X)
		r.MaxY = max(r.MaxY, p.Y)
	}
	return r
}
