package camera

// CameraBinding is the camera capability of a controller's target, resolved once at attach time.
// It is a tagged union over {None, Perspective, Orthographic}; accessors that do not apply to
// the bound kind report ok=false or do nothing.
type CameraBinding struct {
	kind      ProjectionKind
	projector Projector
}

// ResolveCameraBinding inspects a navigable for a camera capability.
// The navigable itself may implement Projector, or it may expose one through ProjectorProvider.
// Anything else, including a projector reporting an unsupported kind, resolves to ProjectionNone.
//
// Parameters:
//   - target: the navigable the controller attaches to (may be nil)
//
// Returns:
//   - CameraBinding: the resolved binding
func ResolveCameraBinding(target Navigable) CameraBinding {
	var p Projector
	switch t := target.(type) {
	case Projector:
		p = t
	case ProjectorProvider:
		p = t.Projector()
	}
	if p == nil {
		return CameraBinding{kind: ProjectionNone}
	}

	switch kind := p.ProjectionKind(); kind {
	case ProjectionPerspective, ProjectionOrthographic:
		return CameraBinding{kind: kind, projector: p}
	default:
		return CameraBinding{kind: ProjectionNone}
	}
}

// Kind returns the projection kind captured at attach time.
func (b CameraBinding) Kind() ProjectionKind {
	return b.kind
}

// Valid reports whether a camera capability was found.
func (b CameraBinding) Valid() bool {
	return b.kind != ProjectionNone
}

// liveKind re-checks the bound projector. A projector that no longer reports the kind it
// was bound with yields an out-of-range kind so callers can disable the affected capability.
func (b CameraBinding) liveKind() ProjectionKind {
	if b.projector == nil {
		return ProjectionNone
	}
	if k := b.projector.ProjectionKind(); k != b.kind {
		return ProjectionKind(-1)
	}
	return b.kind
}

// Zoom returns the camera zoom, or 1 when unbound.
func (b CameraBinding) Zoom() float64 {
	if b.projector == nil {
		return 1
	}
	return b.projector.Zoom()
}

// SetZoom writes the zoom of an orthographic camera. Perspective cameras are left untouched.
//
// Parameters:
//   - zoom: new zoom factor
//
// Returns:
//   - bool: true if the zoom was written
func (b CameraBinding) SetZoom(zoom float64) bool {
	if b.kind != ProjectionOrthographic {
		return false
	}
	b.projector.SetZoom(zoom)
	return true
}

// Fov returns the vertical field of view of a perspective camera.
//
// Returns:
//   - float64: field of view in radians
//   - bool: false if the binding is not perspective
func (b CameraBinding) Fov() (float64, bool) {
	if b.kind != ProjectionPerspective {
		return 0, false
	}
	return b.projector.Fov(), true
}

// Extents returns the frustum extents of an orthographic camera.
//
// Returns:
//   - left, right, top, bottom: extents in view space
//   - ok: false if the binding is not orthographic
func (b CameraBinding) Extents() (left, right, top, bottom float64, ok bool) {
	if b.kind != ProjectionOrthographic {
		return 0, 0, 0, 0, false
	}
	left, right, top, bottom = b.projector.Extents()
	return left, right, top, bottom, true
}

// UpdateProjection asks the bound camera to recompute its projection.
func (b CameraBinding) UpdateProjection() {
	if b.projector != nil {
		b.projector.UpdateProjection()
	}
}

// restoreZoom writes a saved zoom regardless of kind, matching what SaveState captured.
func (b CameraBinding) restoreZoom(zoom float64) {
	if b.projector == nil {
		return
	}
	b.projector.SetZoom(zoom)
	b.projector.UpdateProjection()
}
