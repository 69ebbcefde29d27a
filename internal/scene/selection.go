package scene

// Emphasis is the scale applied to the selected group.
const Emphasis = 1.2

// None is the selection index when nothing is selected.
const None = -1

// Selection tracks the single emphasised group.
//
// The selected group always carries exactly one Emphasis scale on top of its
// own transform; it is undone before the selection moves or clears.
type Selection struct {
	index int
}

// NewSelection returns a selection with nothing selected.
func NewSelection() *Selection {
	return &Selection{index: None}
}

// Selected returns the selected group index and whether there is one.
func (sel *Selection) Selected() (int, bool) {
	return sel.index, sel.index != None
}

// Index returns the selected index or None.
func (sel *Selection) Index() int {
	return sel.index
}

// SelectNext moves to the following group, wrapping to 0 after the last.
// From None it selects group 0. No-op on an empty scene.
func (sel *Selection) SelectNext(s *Scene) error {
	n := s.Len()
	if n == 0 {
		return nil
	}
	next := 0
	if sel.index != None {
		next = (sel.index + 1) % n
	}
	return sel.moveTo(s, next)
}

// SelectPrevious moves to the preceding group, wrapping to the last after 0.
// From None it selects the last group. No-op on an empty scene.
func (sel *Selection) SelectPrevious(s *Scene) error {
	n := s.Len()
	if n == 0 {
		return nil
	}
	prev := n - 1
	if sel.index != None {
		prev = (sel.index - 1 + n) % n
	}
	return sel.moveTo(s, prev)
}

// Select emphasises group idx directly. Selecting the current group is a
// no-op; an out-of-range idx leaves the selection unchanged.
func (sel *Selection) Select(s *Scene, idx int) error {
	if _, err := s.group(idx); err != nil {
		return err
	}
	if idx == sel.index {
		return nil
	}
	return sel.moveTo(s, idx)
}

// Deselect removes the emphasis from the selected group and selects nothing.
func (sel *Selection) Deselect(s *Scene) error {
	if sel.index == None {
		return nil
	}
	if err := s.Scale(1/Emphasis, sel.index); err != nil {
		return err
	}
	sel.index = None
	return nil
}

// Clear forgets the selection without touching any transform. Use it only
// after the transforms themselves have been reset.
func (sel *Selection) Clear() {
	sel.index = None
}

func (sel *Selection) moveTo(s *Scene, idx int) error {
	if err := sel.Deselect(s); err != nil {
		return err
	}
	if err := s.Scale(Emphasis, idx); err != nil {
		return err
	}
	sel.index = idx
	return nil
}
