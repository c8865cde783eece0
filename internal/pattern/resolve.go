package pattern

import "strings"

// catalog maps "{classID}_{subject}" (lower-cased) to its board pattern.
var catalog = map[string]PaperPattern{}

func init() {
	matric := map[string]PaperPattern{
		"science":     matricScience,
		"biology":     matricScience,
		"chemistry":   matricScience,
		"physics":     matricScience,
		"computer":    matricComputer,
		"mathematics": matricMathematics,
		"maths":       matricMathematics,
		"english":     matricEnglish,
	}
	inter := map[string]PaperPattern{
		"science":     interScience,
		"biology":     interScience,
		"chemistry":   interScience,
		"physics":     interScience,
		"computer":    interComputer,
		"mathematics": interMathematics,
		"maths":       interMathematics,
		"english":     interEnglish,
	}
	for subject, p := range matric {
		catalog["9th_"+subject] = p
		catalog["10th_"+subject] = p
	}
	for subject, p := range inter {
		catalog["11th_"+subject] = p
		catalog["12th_"+subject] = p
	}
}

// Resolve finds the pattern for a class/subject pair. The lookup key is
// case-insensitive. A miss falls through the class group's science
// structure and finally the generic default, so callers always get a
// renderable pattern. A missing board entry is therefore silent; run
// Known() up front if a configuration gap must be surfaced.
func Resolve(classID, subject string) PaperPattern {
	cls := strings.ToLower(strings.TrimSpace(classID))
	sub := strings.ToLower(strings.TrimSpace(subject))

	if p, ok := catalog[cls+"_"+sub]; ok {
		return p
	}
	if p, ok := catalog[cls+"_science"]; ok {
		return p
	}
	return genericDefault
}

// Known reports whether an explicit board pattern exists for the pair.
func Known(classID, subject string) bool {
	cls := strings.ToLower(strings.TrimSpace(classID))
	sub := strings.ToLower(strings.TrimSpace(subject))
	_, ok := catalog[cls+"_"+sub]
	return ok
}

// Default returns the built-in generic fallback pattern.
func Default() PaperPattern { return genericDefault }
