package exercise

import (
	"errors"
	"math"
)

var ErrUnknownExercise = errors.New("unknown exercise")

// Landmark names accepted in frames.
const (
	LeftHip   = "left_hip"
	LeftKnee  = "left_knee"
	LeftAnkle = "left_ankle"
	LeftEar   = "left_ear"
	RightEar  = "right_ear"
	Nose      = "nose"

	Wrist          = "wrist"
	ThumbTip       = "thumb_tip"
	IndexFingerTip = "index_finger_tip"
	PinkyTip       = "pinky_tip"
)

const (
	Squats          = "Squats"
	FingerTwirling  = "Finger Twirling"
	HeadRotation    = "Head Rotation"
	FistRotation    = "Fist Rotation"
	ShoulderCircles = "Shoulder Circles"
	ArmRaises       = "Arm Raises"
	WallPushUps     = "Wall Push-ups"
	ElbowFlexion    = "Elbow Flexion"
	WristRotations  = "Wrist Rotations"
	KneeExtensions  = "Knee Extensions"
	HeelSlides      = "Heel Slides"
	AnklePumps      = "Ankle Pumps"
	GluteBridges    = "Glute Bridges"
	StandingMarches = "Standing Marches"
)

// Catalogue lists every exercise a session can be started for.
var Catalogue = []string{
	Squats, FingerTwirling, HeadRotation, FistRotation, ShoulderCircles, ArmRaises,
	WallPushUps, ElbowFlexion, WristRotations, KneeExtensions, HeelSlides,
	AnklePumps, GluteBridges, StandingMarches,
}

// Frame is one observation: named pose landmarks and zero or more hands.
type Frame struct {
	Pose  map[string]Point
	Hands []map[string]Point
}

// counter advances the stage machine for one frame and reports the reps it completed.
type counter struct {
	points int
	step   func(stage string, f Frame) (string, int)
}

var counters = map[string]counter{
	Squats:         {points: 10, step: squatStep},
	FingerTwirling: {points: 5, step: fingerTwirlStep},
	HeadRotation:   {points: 7, step: headRotationStep},
	FistRotation:   {points: 8, step: fistRotationStep},
}

// Known reports whether name is in the catalogue.
func Known(name string) bool {
	for _, e := range Catalogue {
		if e == name {
			return true
		}
	}
	return false
}

// Counted reports whether frames for name change the rep count.
func Counted(name string) bool {
	_, ok := counters[name]
	return ok
}

func pose(f Frame, names ...string) ([]Point, bool) {
	pts := make([]Point, len(names))
	for i, n := range names {
		p, ok := f.Pose[n]
		if !ok {
			return nil, false
		}
		pts[i] = p
	}
	return pts, true
}

func squatStep(stage string, f Frame) (string, int) {
	pts, ok := pose(f, LeftHip, LeftKnee, LeftAnkle)
	if !ok {
		return stage, 0
	}
	angle := Angle(pts[0], pts[1], pts[2])
	switch {
	case angle > 160:
		return "up", 0
	case angle < 90 && stage == "up":
		return "down", 1
	}
	return stage, 0
}

func headRotationStep(stage string, f Frame) (string, int) {
	pts, ok := pose(f, LeftEar, Nose, RightEar)
	if !ok {
		return stage, 0
	}
	angle := Angle(pts[0], pts[1], pts[2])
	switch {
	case angle > 140:
		return "rotated", 0
	case angle < 100 && stage == "rotated":
		return "neutral", 1
	}
	return stage, 0
}

// Hands share the session stage and are visited in order, so two hands in
// one frame can complete a rep between them.
func fingerTwirlStep(stage string, f Frame) (string, int) {
	reps := 0
	for _, hand := range f.Hands {
		thumb, ok1 := hand[ThumbTip]
		index, ok2 := hand[IndexFingerTip]
		if !ok1 || !ok2 {
			continue
		}
		d := Distance(thumb, index)
		switch {
		case d < 0.03:
			stage = "closed"
		case d > 0.06 && stage == "closed":
			stage = "open"
			reps++
		}
	}
	return stage, reps
}

func fistRotationStep(stage string, f Frame) (string, int) {
	reps := 0
	for _, hand := range f.Hands {
		wrist, ok1 := hand[Wrist]
		pinky, ok2 := hand[PinkyTip]
		if !ok1 || !ok2 {
			continue
		}
		d := math.Abs(wrist.Y - pinky.Y)
		switch {
		case d > 0.1:
			stage = "down"
		case d < 0.05 && stage == "down":
			stage = "up"
			reps++
		}
	}
	return stage, reps
}
