package settings

import (
	"fmt"
)

// CircleCount returns the number of circles.
func (s *Settings) CircleCount() int {
	var v int
	s.run(func() { v = len(s.circles) })
	return v
}

// CircleName returns the name of the circle at index, or "" when out of
// range.
func (s *Settings) CircleName(id int) string {
	var v string
	s.run(func() {
		if id < 0 || id >= len(s.circles) {
			log.WithField("id", id).Warn("Circle index out of range")
			return
		}
		v = s.circles[id].Name
	})
	return v
}

// SetCircleName renames the circle at index and autosaves the personal
// tier.
func (s *Settings) SetCircleName(id int, name string) {
	s.run(func() {
		if !s.loaded || id < 0 || id >= len(s.circles) {
			return
		}
		s.circles[id].Name = name
		s.savePersonalNow(s.global.currentProfile, s.passKey)
	})
}

// AddCircle appends a collapsed circle and returns its index. An empty
// name is replaced with a numbered placeholder. Autosaves the personal
// tier.
func (s *Settings) AddCircle(name string) int {
	v := -1
	s.run(func() {
		if !s.loaded {
			return
		}
		circle := Circle{Name: name}
		if circle.Name == "" {
			circle.Name = fmt.Sprintf("Circle #%d", len(s.circles)+1)
		}
		s.circles = append(s.circles, circle)
		s.savePersonalNow(s.global.currentProfile, s.passKey)
		v = len(s.circles) - 1
	})
	return v
}

// CircleExpanded reports whether the circle at index is expanded in the
// friend list; out of range indexes read as collapsed.
func (s *Settings) CircleExpanded(id int) bool {
	var v bool
	s.run(func() {
		if id < 0 || id >= len(s.circles) {
			return
		}
		v = s.circles[id].Expanded
	})
	return v
}

// SetCircleExpanded stores the circle's expanded state. Not persisted
// until the next save; expansion toggles are too frequent to autosave.
func (s *Settings) SetCircleExpanded(id int, expanded bool) {
	s.run(func() {
		if !s.loaded || id < 0 || id >= len(s.circles) {
			return
		}
		s.circles[id].Expanded = expanded
	})
}

// RemoveCircle drops the circle at index by moving the last circle into
// its slot and shrinking the list, keeping indexes contiguous. Friends
// referencing the moved circle keep its old index and go stale; callers
// that care must reassign them. Returns the new circle count. Autosaves
// the personal tier.
func (s *Settings) RemoveCircle(id int) int {
	v := -1
	s.run(func() {
		if !s.loaded || id < 0 || id >= len(s.circles) {
			return
		}
		s.circles[id] = s.circles[len(s.circles)-1]
		s.circles = s.circles[:len(s.circles)-1]
		s.savePersonalNow(s.global.currentProfile, s.passKey)
		v = len(s.circles)
	})
	return v
}

// Circles returns a snapshot of the circle list.
func (s *Settings) Circles() []Circle {
	var out []Circle
	s.run(func() {
		out = make([]Circle, len(s.circles))
		copy(out, s.circles)
	})
	return out
}
