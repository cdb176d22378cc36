package scoring

// Medal grades a mastered level run by its average score per required win.
type Medal string

const (
	MedalGold   Medal = "GOLD"
	MedalSilver Medal = "SILVER"
	MedalBronze Medal = "BRONZE"
)

const (
	goldThreshold   = 600
	silverThreshold = 400
)

// GradeMedal returns the medal for a mastering run. avgScore is the
// session score divided by the level's required wins. Boundaries are
// inclusive: exactly 600 is GOLD, exactly 400 is SILVER.
func GradeMedal(avgScore float64) Medal {
	switch {
	case avgScore >= goldThreshold:
		return MedalGold
	case avgScore >= silverThreshold:
		return MedalSilver
	default:
		return MedalBronze
	}
}

// ParseMedal converts a stored medal string back to a Medal.
// Unknown values return ("", false).
func ParseMedal(s string) (Medal, bool) {
	switch Medal(s) {
	case MedalGold, MedalSilver, MedalBronze:
		return Medal(s), true
	}
	return "", false
}
