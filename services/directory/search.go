package directory

import (
	"strings"

	"morisbiz/models"
)

// SearchBusinesses performs the free-text search. The store has no full-text
// index, so the whole collection is fetched and scanned in memory. That is
// O(collection size x field count) per search and only tolerable while the
// directory stays small; an external search index is the upgrade path, not
// a rewrite here.
func (s *DefaultDirectoryService) SearchBusinesses(term string) ([]models.Business, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []models.Business{}, nil
	}

	all, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}

	lowered := strings.ToLower(term)
	matched := []models.Business{}
	for _, b := range all {
		if matchesTerm(b, lowered) {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

// matchesTerm reports whether the lower-cased term appears in the name,
// description, category or any service entry.
func matchesTerm(b models.Business, lowered string) bool {
	if strings.Contains(strings.ToLower(b.Name), lowered) {
		return true
	}
	if strings.Contains(strings.ToLower(b.Description), lowered) {
		return true
	}
	if strings.Contains(strings.ToLower(b.Category), lowered) {
		return true
	}
	for _, svc := range b.Services {
		if strings.Contains(strings.ToLower(svc), lowered) {
			return true
		}
	}
	return false
}
