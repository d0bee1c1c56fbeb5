package baccarat

// Result tags one resolved baccarat hand
type Result int

const (
	Player Result = iota
	Banker
	Tie
)

// String returns the result name
func (r Result) String() string {
	switch r {
	case Player:
		return "player"
	case Banker:
		return "banker"
	case Tie:
		return "tie"
	default:
		return "unknown"
	}
}

// BeadRows is the fixed row count of the bead plate grid
const BeadRows = 6

// Cell is one roadmap cell. TieCount only applies to Big Road cells, where
// ties pile onto the most recent non-tie result instead of taking a cell.
type Cell struct {
	Result   Result
	TieCount int
}

// Column is one vertical run on a roadmap
type Column []Cell

// Mark is a derived-road cell: the three derived roads record only whether
// the shoe's column pattern repeated or broke.
type Mark int

const (
	Repeat Mark = iota
	Break
)

// GenerateBeadPlate places every result, ties included, into a 6-row grid
// in reading order, wrapping to a new column after each sixth entry.
func GenerateBeadPlate(results []Result) []Column {
	columns := []Column{}
	for i, r := range results {
		if i%BeadRows == 0 {
			columns = append(columns, Column{})
		}
		last := len(columns) - 1
		columns[last] = append(columns[last], Cell{Result: r})
	}
	return columns
}

// GenerateBigRoad groups consecutive identical non-tie results into
// columns. A tie never creates a cell: it increments the tie counter on the
// most recently placed cell, and a leading tie before any non-tie result is
// dropped.
func GenerateBigRoad(results []Result) []Column {
	columns := []Column{}
	for _, r := range results {
		if r == Tie {
			if len(columns) > 0 {
				col := columns[len(columns)-1]
				col[len(col)-1].TieCount++
			}
			continue
		}
		if len(columns) == 0 || columns[len(columns)-1][0].Result != r {
			columns = append(columns, Column{{Result: r}})
			continue
		}
		last := len(columns) - 1
		columns[last] = append(columns[last], Cell{Result: r})
	}
	return columns
}

// GenerateBigEyeBoy derives the repeat/break road at column offset 1
func GenerateBigEyeBoy(results []Result) [][]Mark {
	return derivedRoad(results, 1)
}

// GenerateSmallRoad derives the repeat/break road at column offset 2
func GenerateSmallRoad(results []Result) [][]Mark {
	return derivedRoad(results, 2)
}

// GenerateCockroachRoad derives the repeat/break road at column offset 3
func GenerateCockroachRoad(results []Result) [][]Mark {
	return derivedRoad(results, 3)
}

// derivedRoad compares the depth of each Big Road column against the column
// offset positions earlier: a cell whose depth the reference column also
// reached marks a repeat, anything deeper marks a break. These are
// descriptive statistics of streak periodicity, not predictions.
func derivedRoad(results []Result, offset int) [][]Mark {
	big := GenerateBigRoad(results)
	road := [][]Mark{}
	for i := offset; i < len(big); i++ {
		ref := big[i-offset]
		marks := make([]Mark, 0, len(big[i]))
		for depth := range big[i] {
			if depth < len(ref) {
				marks = append(marks, Repeat)
			} else {
				marks = append(marks, Break)
			}
		}
		road = append(road, marks)
	}
	return road
}
