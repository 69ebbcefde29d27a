package viewer

import (
	"go.uber.org/zap"

	"github.com/Faultbox/sceneview/internal/engine/picking"
)

// Pick selects the group under window position (x, y) of a w×h window.
// A click on empty space leaves the selection alone. It reports whether the
// selection changed.
func (v *State) Pick(x, y float64, w, h int) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	viewProj := v.Camera.ProjectionMatrix().Mul4(v.Camera.ViewMatrix())
	ray := picking.ScreenToRay(x, y, float64(w), float64(h), viewProj.Inv())

	idx, ok := picking.Pick(v.Scene, ray)
	if !ok || idx == v.Selection.Index() {
		return false
	}
	before := v.Selection.Index()
	if err := v.Selection.Select(v.Scene, idx); err != nil {
		v.log.Error("pick failed", zap.Int("group", idx), zap.Error(err))
		return false
	}
	v.log.Debug("selection picked", zap.Int("from", before), zap.Int("to", idx))
	return true
}
