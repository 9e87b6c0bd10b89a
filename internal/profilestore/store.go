// Package profilestore holds the fixed, generated profile directory and the
// filter engine that narrows it. The store is built once at process start
// and is read-only afterwards; search preserves the store's natural order.
package profilestore

import (
	"fmt"
	"strconv"
	"strings"

	"fin-circle.backend/internal/domain/entities"
	domainerrors "fin-circle.backend/internal/domain/errors"
)

// Store is an immutable, id-indexed profile collection
type Store struct {
	profiles []entities.Profile
	index    map[string]int
}

// New builds a store over the given profiles, preserving their order
func New(profiles []entities.Profile) *Store {
	index := make(map[string]int, len(profiles))
	for i, p := range profiles {
		index[p.ID] = i
	}
	return &Store{profiles: profiles, index: index}
}

// Len returns the number of profiles in the store
func (s *Store) Len() int {
	return len(s.profiles)
}

// GetByID returns the full profile for an id, sensitive subset included
func (s *Store) GetByID(id string) (entities.Profile, bool) {
	i, ok := s.index[id]
	if !ok {
		return entities.Profile{}, false
	}
	return s.profiles[i], true
}

// Search applies each constrained dimension as an independent predicate
// (AND across dimensions, OR within the preference set) and returns the
// matching profiles in store order. An empty result is valid output.
// Malformed age brackets are rejected before any profile is inspected.
func (s *Store) Search(f entities.SearchFilters) ([]entities.Profile, error) {
	bracket, err := parseAgeBracket(f.AgeBracket)
	if err != nil {
		return nil, err
	}

	matches := make([]entities.Profile, 0, len(s.profiles))
	for _, p := range s.profiles {
		if constrained(f.Region) && p.Region != f.Region {
			continue
		}
		if constrained(f.Gender) && p.Gender != f.Gender {
			continue
		}
		if bracket != nil && !bracket.matches(p.Age) {
			continue
		}
		if constrained(f.IncomeBracket) && p.AnnualIncome != f.IncomeBracket {
			continue
		}
		if len(f.Preferences) > 0 && !overlaps(p.Preferences, f.Preferences) {
			continue
		}
		matches = append(matches, p)
	}
	return matches, nil
}

func constrained(dim string) bool {
	return dim != "" && dim != entities.Unrestricted
}

func overlaps(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}

// ageBracket is a parsed "min-max" (inclusive) or "min+" (open-ended) range
type ageBracket struct {
	min, max int
	open     bool
}

func (b ageBracket) matches(age int) bool {
	if age < b.min {
		return false
	}
	return b.open || age <= b.max
}

// parseAgeBracket parses an age bracket string. Empty and Unrestricted
// return nil (no predicate); anything else must be "min-max" or "min+".
func parseAgeBracket(s string) (*ageBracket, error) {
	if !constrained(s) {
		return nil, nil
	}

	if rest, ok := strings.CutSuffix(s, "+"); ok {
		min, err := strconv.Atoi(rest)
		if err != nil || min < 0 {
			return nil, domainerrors.BadRequest(fmt.Sprintf("invalid age bracket %q", s))
		}
		return &ageBracket{min: min, open: true}, nil
	}

	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return nil, domainerrors.BadRequest(fmt.Sprintf("invalid age bracket %q", s))
	}
	min, errMin := strconv.Atoi(lo)
	max, errMax := strconv.Atoi(hi)
	if errMin != nil || errMax != nil || min < 0 || max < min {
		return nil, domainerrors.BadRequest(fmt.Sprintf("invalid age bracket %q", s))
	}
	return &ageBracket{min: min, max: max}, nil
}

// ValidateFilters rejects malformed filter input without touching the store
func ValidateFilters(f entities.SearchFilters) error {
	_, err := parseAgeBracket(f.AgeBracket)
	return err
}
