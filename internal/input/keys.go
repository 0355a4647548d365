// Package input maps symbolic key presses onto simulator mutations.
//
// Backends translate their native key codes to [Key] and call [Apply] once
// per press; the binding table is shared by every backend.
package input

import (
	"github.com/san-kum/entropic/internal/physics"
	"github.com/san-kum/entropic/internal/sim"
)

// Key is a backend-independent key identity.
type Key int

const (
	KeyNone Key = iota
	Key1
	Key2
	Key3
	Key4
	KeyQ
	KeyA
	KeyW
	KeyS
	KeyE
	KeyD
	KeyR
	KeyF
	KeyBackspace
	KeyZ
	KeyX
	KeyC
	KeyV
	KeyT
	KeyH
	KeyEscape
)

// Keys lists every bound key; backends poll these each frame.
var Keys = []Key{
	Key1, Key2, Key3, Key4,
	KeyQ, KeyA, KeyW, KeyS, KeyE, KeyD, KeyR, KeyF,
	KeyBackspace, KeyZ, KeyX, KeyC, KeyV, KeyT, KeyH, KeyEscape,
}

var keyNames = map[Key]string{
	Key1: "1", Key2: "2", Key3: "3", Key4: "4",
	KeyQ: "Q", KeyA: "A", KeyW: "W", KeyS: "S", KeyE: "E", KeyD: "D",
	KeyR: "R", KeyF: "F", KeyBackspace: "Backspace",
	KeyZ: "Z", KeyX: "X", KeyC: "C", KeyV: "V", KeyT: "T", KeyH: "H",
	KeyEscape: "Escape",
}

func (k Key) String() string {
	if n, ok := keyNames[k]; ok {
		return n
	}
	return "None"
}

// Action tells the frame loop what to do after a key was applied.
type Action int

const (
	Continue Action = iota
	Quit
)

// KnobKeys pairs the increase/decrease keys of each knob slot.
var KnobKeys = [...][2]Key{
	{KeyQ, KeyA},
	{KeyW, KeyS},
	{KeyE, KeyD},
	{KeyR, KeyF},
}

// KnobLabel is the overlay label for a knob slot, e.g. "Q/A".
func KnobLabel(slot int) string {
	if slot < 0 || slot >= len(KnobKeys) {
		return ""
	}
	return KnobKeys[slot][0].String() + "/" + KnobKeys[slot][1].String()
}

var variantKeys = map[Key]physics.Variant{
	Key1: physics.Lorenz,
	Key2: physics.Rossler,
	Key3: physics.Aizawa,
	Key4: physics.ChenLee,
}

// Apply performs the binding for k on s.
func Apply(s *sim.Simulator, k Key) Action {
	if v, ok := variantKeys[k]; ok {
		s.SwitchVariant(v)
		return Continue
	}

	for slot, pair := range KnobKeys {
		dir := 0.0
		switch k {
		case pair[0]:
			dir = 1
		case pair[1]:
			dir = -1
		default:
			continue
		}
		// R/F only tune a fourth knob (Aizawa's ε); elsewhere they reseed.
		if !s.AdjustParam(slot, dir) {
			s.Reseed()
		}
		return Continue
	}

	switch k {
	case KeyBackspace:
		s.Reseed()
	case KeyZ:
		s.AdjustTimeScale(sim.TimeScaleStep)
	case KeyX:
		s.AdjustTimeScale(-sim.TimeScaleStep)
	case KeyC:
		s.AdjustParticleCount(sim.ParticleStep)
	case KeyV:
		s.AdjustParticleCount(-sim.ParticleStep)
	case KeyT:
		s.ToggleTrails()
	case KeyH:
		s.ToggleOverlay()
	case KeyEscape:
		return Quit
	}
	return Continue
}

// ParseKey maps a single printable character or a key name to a Key. It is
// used by text-oriented backends such as the terminal view.
func ParseKey(s string) Key {
	switch s {
	case "1":
		return Key1
	case "2":
		return Key2
	case "3":
		return Key3
	case "4":
		return Key4
	case "q", "Q":
		return KeyQ
	case "a", "A":
		return KeyA
	case "w", "W":
		return KeyW
	case "s", "S":
		return KeyS
	case "e", "E":
		return KeyE
	case "d", "D":
		return KeyD
	case "r", "R":
		return KeyR
	case "f", "F":
		return KeyF
	case "backspace":
		return KeyBackspace
	case "z", "Z":
		return KeyZ
	case "x", "X":
		return KeyX
	case "c", "C":
		return KeyC
	case "v", "V":
		return KeyV
	case "t", "T":
		return KeyT
	case "h", "H":
		return KeyH
	case "esc":
		return KeyEscape
	}
	return KeyNone
}
