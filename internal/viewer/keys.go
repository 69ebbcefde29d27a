package viewer

import (
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/Faultbox/sceneview/internal/scene"
)

// Step sizes per key press.
const (
	MoveStep   = 0.015 // camera translation, world units
	YawStep    = 0.015 // radians
	PitchStep  = 0.03  // radians
	ObjectStep = 0.015 // selected object translation, object units
	ObjectTurn = 0.02  // selected object rotation, radians
)

// Key names follow the KeyboardEvent.key convention: printable keys are the
// character typed (shift included), others are named.
const (
	KeyArrowRight = "ArrowRight"
	KeyArrowLeft  = "ArrowLeft"
	KeySpace      = " "
	KeyEscape     = "Escape"
)

type action func(v *State) error

func moveCamera(dx, dy, dz float64) action {
	return func(v *State) error {
		v.Camera.Move(mgl64.Vec3{dx, dy, dz})
		return nil
	}
}

func turnCamera(dYaw, dPitch float64) action {
	return func(v *State) error {
		v.Camera.Rotate(dYaw, dPitch)
		return nil
	}
}

func translateSelected(dx, dy, dz float64) action {
	return func(v *State) error {
		idx, ok := v.Selection.Selected()
		if !ok {
			return nil
		}
		return v.Scene.Translate(dx, dy, dz, idx)
	}
}

func rotateSelected(angle float64, axis mgl64.Vec3) action {
	return func(v *State) error {
		idx, ok := v.Selection.Selected()
		if !ok {
			return nil
		}
		return v.Scene.Rotate(angle, axis, idx)
	}
}

var keymap = map[string]action{
	// Camera translation: eye and target together.
	"a": moveCamera(-MoveStep, 0, 0),
	"d": moveCamera(MoveStep, 0, 0),
	"w": moveCamera(0, 0, MoveStep),
	"s": moveCamera(0, 0, -MoveStep),
	"q": moveCamera(0, MoveStep, 0),
	"e": moveCamera(0, -MoveStep, 0),

	// Camera look.
	"A": turnCamera(YawStep, 0),
	"D": turnCamera(-YawStep, 0),
	"W": turnCamera(0, PitchStep),
	"S": turnCamera(0, -PitchStep),

	KeyArrowRight: func(v *State) error { return v.Selection.SelectNext(v.Scene) },
	KeyArrowLeft:  func(v *State) error { return v.Selection.SelectPrevious(v.Scene) },
	KeySpace:      func(v *State) error { return v.Selection.Deselect(v.Scene) },

	// Selected object translation in its own frame.
	"k": translateSelected(ObjectStep, 0, 0),
	";": translateSelected(-ObjectStep, 0, 0),
	"o": translateSelected(0, 0, ObjectStep),
	"l": translateSelected(0, 0, -ObjectStep),
	"i": translateSelected(0, ObjectStep, 0),
	"p": translateSelected(0, -ObjectStep, 0),

	// Selected object rotation about its centroid.
	"K": rotateSelected(ObjectTurn, scene.AxisY),
	":": rotateSelected(-ObjectTurn, scene.AxisY),
	"O": rotateSelected(ObjectTurn, scene.AxisX),
	"L": rotateSelected(-ObjectTurn, scene.AxisX),
	"I": rotateSelected(ObjectTurn, scene.AxisZ),
	"P": rotateSelected(-ObjectTurn, scene.AxisZ),

	KeyEscape: func(v *State) error {
		v.Reset()
		return nil
	},
}

// HandleKey applies the action bound to key and reports whether key is bound.
func (v *State) HandleKey(key string) bool {
	act, ok := keymap[key]
	if !ok {
		return false
	}

	before := v.Selection.Index()
	if err := act(v); err != nil {
		// Selection indices always come from the scene itself, so this is a bug.
		v.log.Error("key action failed", zap.String("key", key), zap.Error(err))
		return true
	}
	if after := v.Selection.Index(); after != before {
		v.log.Debug("selection changed", zap.Int("from", before), zap.Int("to", after))
	}
	return true
}

