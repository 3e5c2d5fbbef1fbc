package camera

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Carmen-Shannon/oxy-orbit/common"
)

// pointerRegistry tracks the pointers currently down and their last known page positions.
// Only the first two ids take part in gesture classification.
type pointerRegistry struct {
	ids       []int
	positions map[int]mgl64.Vec2
}

func newPointerRegistry() *pointerRegistry {
	return &pointerRegistry{positions: make(map[int]mgl64.Vec2)}
}

// add registers a pointer id once; repeated downs for the same id are ignored.
func (r *pointerRegistry) add(id int) {
	for _, existing := range r.ids {
		if existing == id {
			return
		}
	}
	r.ids = append(r.ids, id)
}

func (r *pointerRegistry) remove(id int) {
	delete(r.positions, id)
	r.ids, _ = common.RemoveFirst(r.ids, id)
}

func (r *pointerRegistry) track(id int, x, y float64) {
	r.positions[id] = mgl64.Vec2{x, y}
}

func (r *pointerRegistry) count() int {
	return len(r.ids)
}

func (r *pointerRegistry) position(id int) (mgl64.Vec2, bool) {
	p, ok := r.positions[id]
	return p, ok
}

// other returns the position of the gesture partner of id: the second pointer when id is
// the first, otherwise the first.
func (r *pointerRegistry) other(id int) (mgl64.Vec2, bool) {
	if len(r.ids) < 2 {
		return mgl64.Vec2{}, false
	}
	partner := r.ids[0]
	if id == r.ids[0] {
		partner = r.ids[1]
	}
	return r.position(partner)
}

// anchor is the gesture anchor: the single pointer's position, or the midpoint of the first two.
func (r *pointerRegistry) anchor() mgl64.Vec2 {
	switch len(r.ids) {
	case 0:
		return mgl64.Vec2{}
	case 1:
		p, _ := r.position(r.ids[0])
		return p
	default:
		a, _ := r.position(r.ids[0])
		b, _ := r.position(r.ids[1])
		return a.Add(b).Mul(0.5)
	}
}

// spread is the distance between the first two pointers, the basis of two-finger dolly.
func (r *pointerRegistry) spread() float64 {
	if len(r.ids) < 2 {
		return 0
	}
	a, _ := r.position(r.ids[0])
	b, _ := r.position(r.ids[1])
	return a.Sub(b).Len()
}

func (r *pointerRegistry) clear() {
	r.ids = r.ids[:0]
	clear(r.positions)
}
