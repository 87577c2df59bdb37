package spatial

// Ray3 is the directed line through Origin along Direction. It serves as the
// rotation axis of [Point3.RotateAbout] and [PolyLine3.RotateAbout].
type Ray3 struct {
	Origin    Point3
	Direction Vec3
}
