package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Scale is a homeopathic dilution scale.
type Scale string

const (
	// ScaleX is the decimal (1:10) scale, also written with a D prefix.
	ScaleX Scale = "X"
	// ScaleC is the centesimal (1:100) scale, also written CH.
	ScaleC Scale = "C"
	// ScaleM counts thousands of centesimal steps (1M = 1000C).
	ScaleM Scale = "M"
	// ScaleLM is the fifty-millesimal scale.
	ScaleLM Scale = "LM"
	// ScaleQ marks an undiluted mother tincture.
	ScaleQ Scale = "Q"
)

// Scales lists every scale from least to most specialised.
var Scales = []Scale{ScaleX, ScaleC, ScaleM, ScaleLM, ScaleQ}

const maxPotencyValue = 100000

// Potency is a parsed dilution such as 30C or LM6.
type Potency struct {
	Scale Scale
	Value int
}

// IsZero reports whether the potency is unset.
func (p Potency) IsZero() bool {
	return p.Scale == ""
}

// String renders the canonical spelling: 6X, 30C, 1M, LM6 or Q.
func (p Potency) String() string {
	switch p.Scale {
	case "":
		return ""
	case ScaleQ:
		return string(ScaleQ)
	case ScaleLM:
		return string(ScaleLM) + strconv.Itoa(p.Value)
	default:
		return strconv.Itoa(p.Value) + string(p.Scale)
	}
}

// ParsePotency accepts the common spellings of a potency label. Case and
// inner spaces are ignored; D6 is read as 6X, 30CH as 30C, and Q, MT or Ø
// as a mother tincture.
func ParsePotency(raw string) (Potency, error) {
	value := strings.ToUpper(strings.Join(strings.Fields(raw), ""))
	if value == "" {
		return Potency{}, fmt.Errorf("potency is required")
	}
	switch value {
	case "Q", "MT", "Ø":
		return Potency{Scale: ScaleQ}, nil
	}

	var (
		scale  Scale
		digits string
	)
	switch {
	case strings.HasPrefix(value, "LM"):
		scale, digits = ScaleLM, strings.TrimPrefix(value, "LM")
	case strings.HasPrefix(value, "D"):
		scale, digits = ScaleX, strings.TrimPrefix(value, "D")
	case strings.HasSuffix(value, "CH"):
		scale, digits = ScaleC, strings.TrimSuffix(value, "CH")
	case strings.HasSuffix(value, "X"):
		scale, digits = ScaleX, strings.TrimSuffix(value, "X")
	case strings.HasSuffix(value, "C"):
		scale, digits = ScaleC, strings.TrimSuffix(value, "C")
	case strings.HasSuffix(value, "M"):
		scale, digits = ScaleM, strings.TrimSuffix(value, "M")
	default:
		return Potency{}, fmt.Errorf("potency %q has no recognised scale", raw)
	}

	n, err := strconv.Atoi(digits)
	if err != nil || n <= 0 || strings.HasPrefix(digits, "+") {
		return Potency{}, fmt.Errorf("potency %q must carry a positive whole number", raw)
	}
	if n > maxPotencyValue {
		return Potency{}, fmt.Errorf("potency %q exceeds %d", raw, maxPotencyValue)
	}
	return Potency{Scale: scale, Value: n}, nil
}

// ScaleRank orders scales the way they are listed in Scales; unknown scales
// sort last.
func ScaleRank(scale Scale) int {
	for i, s := range Scales {
		if s == scale {
			return i
		}
	}
	return len(Scales)
}
