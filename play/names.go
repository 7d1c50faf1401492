package play

import "strings"

// nameExceptions maps token sequences that do not follow the usual
// "<initial> . <surname>" shape to their regularized name code.
var nameExceptions = map[string]string{
	"[]":                "UNKNOWN",
	"Godfrey":           "R.Godfrey",
	"Daryl Jones":       "D.Jones",
	"Andre' Davis":      "A.Davis",
	"Kevin Smith":       "K.Smith",
	"Chris Long":        "C.Long",
	"Alex Smith":        "A.Smith",
	"Dhani Jones":       "D.Jones",
	"Bracy Walker":      "B.Walker",
	"Andra Davis":       "A.Davis",
	"Tank Williams":     "T.Williams",
	"Mike Lewis":        "M.Lewis",
	"DJ . Davis":        "D.Davis",
	"DJ . Williams":     "D.Williams",
	"Delanie . Walker":  "D.Walker",
	"Travis . Johnson":  "T.Johnson",
	"Josh . Brown":      "J.Brown",
	"Brian . Walker":    "B.Walker",
	"Jerome . Carter":   "J.Carter",
	"Roy E . Williams":  "Roy_E.Williams",
	"K . von Oelhoffen": "K.von_Oelhoffen",
	"B . St . Pierre":   "B.St.Pierre",
	"J . St . Claire":   "J.St.Claire",
}

const maxExceptionLen = 5

// penaltyWords look like surname continuations but start a penalty
// description, as in "PENALTY on PIT-A.Randle El Offensive Pass Interference".
var penaltyWords = map[string]bool{
	"Chop":             true,
	"Clipping":         true,
	"Defensive":        true,
	"Delay":            true,
	"Disqualification": true,
	"Encroachment":     true,
	"Face":             true,
	"Fair":             true,
	"False":            true,
	"Illegal":          true,
	"Ineligible":       true,
	"Intentional":      true,
	"Interference":     true,
	"Invalid":          true,
	"Kickoff":          true,
	"Leaping":          true,
	"Leverage":         true,
	"Low":              true,
	"Neutral":          true,
	"Offensive":        true,
	"Offside":          true,
	"Personal":         true,
	"Player":           true,
	"Roughing":         true,
	"Running":          true,
	"Taunting":         true,
	"Tripping":         true,
	"Unnecessary":      true,
	"Unsportsmanlike":  true,
}

// nameException returns the longest exception key at the front of c.
func nameException(c *Cursor) (int, string, bool) {
	for k := maxExceptionLen; k > 0; k-- {
		if c.Len() < k {
			continue
		}
		if name, ok := nameExceptions[strings.Join(c.window(k), " ")]; ok {
			return k, name, true
		}
	}
	return 0, "", false
}
