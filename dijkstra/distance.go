package dijkstra

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// infinityLiteral is the JSON and text form of Infinity.
const infinityLiteral = "Infinity"

// Distance is a path length that is either finite or Infinity ("unreached").
// The zero value is Infinity.
type Distance struct {
	v      float64
	finite bool
}

// Infinity is the distance of a node not yet reached.
var Infinity = Distance{}

// Finite returns the finite distance v.
func Finite(v float64) Distance {
	return Distance{v: v, finite: true}
}

// IsInf reports whether d is Infinity.
func (d Distance) IsInf() bool { return !d.finite }

// Value returns the finite value of d and true, or 0 and false for Infinity.
func (d Distance) Value() (float64, bool) {
	return d.v, d.finite
}

// Add returns d + w. Infinity absorbs any addition.
func (d Distance) Add(w float64) Distance {
	if !d.finite {
		return Infinity
	}

	return Finite(d.v + w)
}

// Less reports whether d is strictly shorter than o.
// Every finite distance is shorter than Infinity; Infinity is shorter than nothing.
func (d Distance) Less(o Distance) bool {
	switch {
	case !d.finite:
		return false
	case !o.finite:
		return true
	default:
		return d.v < o.v
	}
}

// String renders finite values without trailing zeros and Infinity as "∞".
func (d Distance) String() string {
	if !d.finite {
		return "∞"
	}

	return strconv.FormatFloat(d.v, 'f', -1, 64)
}

// MarshalJSON emits a number, or the string "Infinity".
func (d Distance) MarshalJSON() ([]byte, error) {
	if !d.finite {
		return json.Marshal(infinityLiteral)
	}

	return json.Marshal(d.v)
}

// UnmarshalJSON accepts a number, "Infinity" or null (treated as Infinity).
func (d *Distance) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*d = Infinity
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s != infinityLiteral {
			return fmt.Errorf("dijkstra: invalid distance %q", s)
		}
		*d = Infinity
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("dijkstra: invalid distance: %w", err)
	}
	*d = Finite(v)

	return nil
}
