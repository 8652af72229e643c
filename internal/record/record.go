// Package record generates synthetic hiker records for the eaten-by-bear dataset.
// Every draw comes from a Generator's own seeded source; nothing here touches
// package-level random state.
package record

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the ISO 8601 calendar date layout used for birth dates.
const DateLayout = "2006-01-02"

// ColorSeparator joins the colors of a record. The same separator delimits
// fields on output, and colorsWorn is emitted unquoted.
const ColorSeparator = ", "

var header = []string{
	"name",
	"age",
	"birthDate",
	"distanceFromZoo",
	"meatObjectsWorn",
	"honeyRatio",
	"height",
	"weight",
	"combatTraining",
	"hasBearSpray",
	"numberofPicnicBaskets",
	"runningSpeed",
	"colorsWorn",
	"eatenByBear",
}

var palette = []string{
	"black", "white", "red", "orange", "yellow",
	"green", "cyan", "blue", "magenta", "purple",
}

// Record is one synthetic hiker and whether a bear ate them.
type Record struct {
	Name                  string
	Age                   int
	BirthDate             time.Time
	DistanceFromZoo       int
	MeatObjectsWorn       int
	HoneyRatio            float64
	Height                int
	Weight                int
	CombatTraining        bool
	HasBearSpray          bool
	NumberOfPicnicBaskets int
	RunningSpeed          float64
	ColorsWorn            []string
	EatenByBear           bool
}

// Header returns the output column names in emission order.
func Header() []string {
	out := make([]string, len(header))
	copy(out, header)
	return out
}

// Palette returns the colors colorsWorn is sampled from.
func Palette() []string {
	out := make([]string, len(palette))
	copy(out, palette)
	return out
}

// Values returns the textual form of each field, in Header order.
func (r Record) Values() []string {
	return []string{
		r.Name,
		strconv.Itoa(r.Age),
		r.BirthDate.Format(DateLayout),
		strconv.Itoa(r.DistanceFromZoo),
		strconv.Itoa(r.MeatObjectsWorn),
		formatFloat(r.HoneyRatio),
		strconv.Itoa(r.Height),
		strconv.Itoa(r.Weight),
		formatBool(r.CombatTraining),
		formatBool(r.HasBearSpray),
		strconv.Itoa(r.NumberOfPicnicBaskets),
		formatFloat(r.RunningSpeed),
		strings.Join(r.ColorsWorn, ColorSeparator),
		formatBool(r.EatenByBear),
	}
}

func formatBool(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

// formatFloat renders the shortest round-trip form, always with a fractional
// part so 0 prints as "0.0". Non-finite values print as +Inf, -Inf or NaN.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return s
	}
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
