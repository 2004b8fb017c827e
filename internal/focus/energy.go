package focus

// Energy categories, ordered low to high.
var energyOrder = []string{"low", "medium", "high"}

// energyCategory buckets a 1-10 energy level into low/medium/high.
func energyCategory(level int) string {
	switch {
	case level <= 3:
		return "low"
	case level <= 7:
		return "medium"
	default:
		return "high"
	}
}

func energyIndex(cat string) int {
	for i, c := range energyOrder {
		if c == cat {
			return i
		}
	}
	return -1
}
