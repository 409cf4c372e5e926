package buildresult

// Codes are the package build states in display order
var Codes = []string{
	"succeeded",
	"failed",
	"unresolvable",
	"broken",
	"blocked",
	"dispatching",
	"scheduled",
	"building",
	"signing",
	"finished",
	"disabled",
	"excluded",
	"locked",
	"deleting",
	"unknown",
}

// ProblemCodes are the states counted as problems on the project page
var ProblemCodes = []string{"failed", "broken", "unresolvable"}

// hidden by the monitor unless asked for explicitly
var defaultFilteredOut = map[string]bool{
	"disabled": true,
	"excluded": true,
	"unknown":  true,
}

var codeIndex = func() map[string]int {
	m := make(map[string]int, len(Codes))
	for i, c := range Codes {
		m[c] = i
	}
	return m
}()

// CodeIndex returns the display position of a code, unknown codes sort last
func CodeIndex(code string) int {
	if i, ok := codeIndex[code]; ok {
		return i
	}
	return len(Codes)
}

// IndexCode is the inverse of CodeIndex
func IndexCode(index int) string {
	if index < 0 || index >= len(Codes) {
		return "unknown"
	}
	return Codes[index]
}
