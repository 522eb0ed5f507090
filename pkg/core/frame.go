package core

// Frame is a right-handed orthonormal coordinate frame. For a camera, U points
// right, V points up and the view direction is -W.
type Frame struct {
	Origin  Vec3
	U, V, W Vec3
}

// WorldFrame is the identity frame at the world origin
var WorldFrame = Frame{
	Origin: Vec3{0, 0, 0},
	U:      Vec3{1, 0, 0},
	V:      Vec3{0, 1, 0},
	W:      Vec3{0, 0, 1},
}

// NewLookAtFrame builds the frame of an eye at eye looking toward target.
// If up is parallel to the view direction the world Y or Z axis is used instead.
func NewLookAtFrame(eye, target, up Vec3) Frame {
	w := eye.Subtract(target).Normalize()
	if w.IsZero() {
		w = Vec3{0, 0, 1}
	}
	u := up.Cross(w).Normalize()
	if u.IsZero() {
		alt := Vec3{0, 1, 0}
		if w.Cross(alt).IsZero() {
			alt = Vec3{0, 0, 1}
		}
		u = alt.Cross(w).Normalize()
	}
	v := w.Cross(u)
	return Frame{Origin: eye, U: u, V: v, W: w}
}

// ToWorldCoords converts a point expressed in this frame to world coordinates
func (f Frame) ToWorldCoords(p Vec3) Vec3 {
	return f.Origin.Add(f.ToWorldVector(p))
}

// ToWorldVector converts a direction expressed in this frame to world coordinates
func (f Frame) ToWorldVector(v Vec3) Vec3 {
	return f.U.Multiply(v.X).Add(f.V.Multiply(v.Y)).Add(f.W.Multiply(v.Z))
}

// ToFrameCoords converts a world point into this frame
func (f Frame) ToFrameCoords(p Vec3) Vec3 {
	return f.ToFrameVector(p.Subtract(f.Origin))
}

// ToFrameVector converts a world direction into this frame
func (f Frame) ToFrameVector(v Vec3) Vec3 {
	return Vec3{v.Dot(f.U), v.Dot(f.V), v.Dot(f.W)}
}
