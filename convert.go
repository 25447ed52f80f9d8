package replkit

import (
	"fmt"
	"strconv"
	"strings"
)

// boolLiterals is the fixed set of accepted boolean spellings, matched
// case-insensitively. The same set feeds boolean argument completion, so
// everything the shell suggests is guaranteed to convert.
var boolLiterals = map[string]bool{
	"true":  true,
	"false": false,
	"yes":   true,
	"no":    false,
	"on":    true,
	"off":   false,
}

// boolCandidates returns the boolean literal set in sorted order for the
// completion engine.
func boolCandidates() []string {
	return []string{"false", "no", "off", "on", "true", "yes"}
}

// Convert turns a raw token into a typed value. Text conversion is the
// identity and never fails; integer conversion is base-10 with an optional
// leading sign; float conversion accepts standard textual notation; boolean
// conversion accepts only the documented literal set.
func Convert(raw string, t ArgType) (Value, error) {
	v := Value{Type: t, Raw: raw}
	switch t {
	case TypeText:
		v.Str = raw
	case TypeInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%q is not an integer", raw)
		}
		v.Int = n
	case TypeFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%q is not a number", raw)
		}
		v.Float = f
	case TypeBool:
		b, ok := boolLiterals[strings.ToLower(raw)]
		if !ok {
			return Value{}, fmt.Errorf("%q is not a boolean", raw)
		}
		v.Bool = b
	default:
		return Value{}, fmt.Errorf("unsupported argument type %d", t)
	}
	return v, nil
}
