package calc

import (
	"fmt"
	"strings"
)

// Gender selects gender-specific threshold tables.
type Gender int

const (
	Female Gender = iota
	Male
)

func (g Gender) String() string {
	switch g {
	case Female:
		return "female"
	case Male:
		return "male"
	default:
		return fmt.Sprintf("Gender(%d)", int(g))
	}
}

func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "female", "f", "":
		return Female, nil
	case "male", "m":
		return Male, nil
	default:
		return Female, fmt.Errorf("unknown gender %q, expected female or male", s)
	}
}

// FrameMethod is the body measurement used to estimate frame size.
type FrameMethod int

const (
	Wrist FrameMethod = iota
	Elbow
)

func (m FrameMethod) String() string {
	switch m {
	case Wrist:
		return "wrist"
	case Elbow:
		return "elbow"
	default:
		return fmt.Sprintf("FrameMethod(%d)", int(m))
	}
}

func ParseFrameMethod(s string) (FrameMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wrist", "":
		return Wrist, nil
	case "elbow":
		return Elbow, nil
	default:
		return Wrist, fmt.Errorf("unknown frame method %q, expected wrist or elbow", s)
	}
}

// Curve is an AP score curve preset.
type Curve int

const (
	Typical Curve = iota
	Lenient
	Strict
)

func (c Curve) String() string {
	switch c {
	case Typical:
		return "typical"
	case Lenient:
		return "lenient"
	case Strict:
		return "strict"
	default:
		return fmt.Sprintf("Curve(%d)", int(c))
	}
}

func ParseCurve(s string) (Curve, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "typical", "":
		return Typical, nil
	case "lenient":
		return Lenient, nil
	case "strict":
		return Strict, nil
	default:
		return Typical, fmt.Errorf("unknown curve %q, expected lenient, typical or strict", s)
	}
}
