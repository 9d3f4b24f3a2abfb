package pet

// ExpForNextLevel returns the experience needed to leave the given level.
func ExpForNextLevel(level int) int {
	return level * ExpBase
}

// LevelProgress returns how far the pet is toward its next level, in [0,1].
func LevelProgress(s Stats) float64 {
	if s.Level >= MaxLevel {
		return 1.0
	}
	need := ExpForNextLevel(s.Level)
	if need <= 0 {
		return 0
	}
	return min(float64(s.Exp)/float64(need), 1.0)
}

// levelUp consumes one level worth of experience. It reports false when the
// pet cannot level any further right now.
func levelUp(s *Stats) bool {
	if s.Level >= MaxLevel || s.Exp < ExpForNextLevel(s.Level) {
		return false
	}
	s.Exp -= ExpForNextLevel(s.Level)
	s.Level++
	s.restoreNeeds()
	return true
}
