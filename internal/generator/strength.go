package generator

// MaxScore is the highest value StrengthScore can return.
const MaxScore = 6

// Rating buckets a strength score.
type Rating int

const (
	Weak Rating = iota
	Medium
	Strong
)

func (r Rating) String() string {
	switch r {
	case Weak:
		return "Weak"
	case Medium:
		return "Medium"
	case Strong:
		return "Strong"
	}
	return "Unknown"
}

// StrengthScore rates a configuration, not a generated password. One point
// for a length above 8, another above 12, and one per selected class.
func StrengthScore(cfg Config) int {
	score := 0
	if cfg.Length > 8 {
		score++
	}
	if cfg.Length > 12 {
		score++
	}
	return score + cfg.Classes.Len()
}

// Classify maps a score to its rating: below 3 is Weak, 3 and 4 are Medium,
// 5 and above is Strong.
func Classify(score int) Rating {
	switch {
	case score < 3:
		return Weak
	case score < 5:
		return Medium
	default:
		return Strong
	}
}
