package cycles

import (
	"sort"

	"github.com/rs/zerolog"
)

// Merger folds overlapping cycle reports into disjoint numbered groups.
// Numbers start at 1 and are handed out in the order cycles are added.
type Merger struct {
	logger  zerolog.Logger
	numbers map[string]int
	count   int
}

func NewMerger(logger zerolog.Logger) *Merger {
	return &Merger{
		logger:  logger,
		numbers: make(map[string]int),
	}
}

// Add assigns a number to the cycle and returns it
func (m *Merger) Add(cycle []string) int {
	var known []int
	seen := make(map[int]bool)
	for _, pkg := range cycle {
		if nr, ok := m.numbers[pkg]; ok && !seen[nr] {
			seen[nr] = true
			known = append(known, nr)
		}
	}

	var nr int
	switch len(known) {
	case 0:
		m.count++
		nr = m.count
	case 1:
		nr = known[0]
	default:
		m.logger.Warn().
			Ints("cycles", known).
			Strs("packages", cycle).
			Msg("cycle overlaps several known cycles, merging into the first")
		nr = known[0]
	}

	for _, pkg := range cycle {
		m.numbers[pkg] = nr
	}
	return nr
}

// Groups returns the sorted members of every cycle number in ascending order,
// numbers without members are left out
func (m *Merger) Groups() [][]string {
	members := make(map[int][]string, m.count)
	for pkg, nr := range m.numbers {
		members[nr] = append(members[nr], pkg)
	}

	groups := make([][]string, 0, len(members))
	for nr := 1; nr <= m.count; nr++ {
		list, ok := members[nr]
		if !ok {
			continue
		}
		sort.Strings(list)
		groups = append(groups, list)
	}
	return groups
}

// Merge numbers the reported cycles and returns the resulting groups
func Merge(cycles [][]string, logger zerolog.Logger) [][]string {
	m := NewMerger(logger)
	for _, c := range cycles {
		m.Add(c)
	}
	return m.Groups()
}
