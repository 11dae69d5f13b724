package core

// intersects reports strict AABB overlap; touching edges do not
// count as an intersection.
func intersects(a, b Rect) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// resolveAxisX applies one substep's horizontal delta and walks the
// world in order, pushing R out of any collider it now overlaps.
// Colliders are visited in full even after a match: a later collider
// in world order is allowed to override an earlier one's push, per
// the fixed iteration order the portability contract requires.
func resolveAxisX(r Rect, w World, dx float32) Rect {
	if dx == 0 {
		return r
	}
	r.X += Round32(dx)
	for _, c := range w {
		if !intersects(r, c) {
			continue
		}
		switch {
		case dx > 0:
			r.X = c.X - r.W
		case dx < 0:
			r.X = c.X + c.W
		}
	}
	return r
}

// resolveAxisY applies one substep's vertical delta. hitGround is set
// when downward motion was blocked (the collider is below the
// player); hitHead when upward motion was blocked (the collider is
// above).
func resolveAxisY(r Rect, w World, dy float32) (out Rect, hitGround, hitHead bool) {
	if dy == 0 {
		return r, false, false
	}
	r.Y += Round32(dy)
	for _, c := range w {
		if !intersects(r, c) {
			continue
		}
		switch {
		case dy > 0:
			hitGround = true
			r.Y = c.Y - r.H
		case dy < 0:
			hitHead = true
			r.Y = c.Y + c.H
		}
	}
	return r, hitGround, hitHead
}
