package plural

// probeCounts samples each rule at counts covering the boundaries of
// every known family: the teens, the x1/x2/x3 ordinal endings, and the
// Arabic mod-100 bands.
var probeCounts = []int{0, 1, 2, 3, 4, 5, 10, 11, 20, 21, 22, 23, 100, 101, 102, 103}

// Forms reports the distinct plural forms a rule produces over the probe
// counts, ordered zero, one, two, few, many, other. The enumeration is
// black-box sampling rather than rule inspection, so a form reachable
// only outside the probe set goes unreported.
func Forms(rule Rule) []Form {
	seen := make(map[Form]bool, len(probeCounts))
	for _, n := range probeCounts {
		seen[rule(n)] = true
	}

	var result []Form
	for _, form := range []Form{Zero, One, Two, Few, Many, Other} {
		if seen[form] {
			result = append(result, form)
		}
	}
	return result
}

// HasForm reports whether a rule produces form for any probe count.
func HasForm(rule Rule, form Form) bool {
	for _, n := range probeCounts {
		if rule(n) == form {
			return true
		}
	}
	return false
}
