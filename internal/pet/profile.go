package pet

import (
	"fmt"
	"log"
	"strings"
)

// Profile holds the editable, descriptive part of a pet. Empty fields are
// left unchanged by UpdateProfile.
type Profile struct {
	Name        string
	Gender      Gender
	Personality string
	Hobby       string
}

// ProfileOf returns the pet's current profile.
func ProfileOf(s Stats) Profile {
	return Profile{Name: s.Name, Gender: s.Gender, Personality: s.Personality, Hobby: s.Hobby}
}

// UpdateProfile edits the pet's name, gender, personality and hobby and saves.
// An unknown gender is rejected and nothing is changed.
func (e *Engine) UpdateProfile(p Profile) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Personality = strings.TrimSpace(p.Personality)
	p.Hobby = strings.TrimSpace(p.Hobby)
	if p.Gender != "" && !p.Gender.Valid() {
		return fmt.Errorf("unknown gender %q (want %q or %q)", p.Gender, GenderMale, GenderFemale)
	}

	e.modifyStats(func(s *Stats) {
		if p.Name != "" {
			s.Name = p.Name
		}
		if p.Gender != "" {
			s.Gender = p.Gender
		}
		if p.Personality != "" {
			s.Personality = p.Personality
		}
		if p.Hobby != "" {
			s.Hobby = p.Hobby
		}
		log.Printf("Updated profile: %s (%s, %s, likes %s)", s.Name, s.Gender, s.Personality, s.Hobby)
	})
	return nil
}
