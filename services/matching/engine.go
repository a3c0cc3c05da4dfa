package matching

import (
	"sort"
	"strings"
)

// comparators holds one pure "less" strategy per sort key. Ties fall
// through to the shared tie-break, so pagination stays deterministic.
var comparators = map[SortKey]func(a, b Profile) int{
	SortByRating: func(a, b Profile) int {
		return a.Rating.Cmp(b.Rating)
	},
	SortByPrice: func(a, b Profile) int {
		return a.LowestPrice.Cmp(b.LowestPrice)
	},
	SortByExperience: func(a, b Profile) int {
		switch {
		case a.Experience < b.Experience:
			return -1
		case a.Experience > b.Experience:
			return 1
		}
		return 0
	},
	SortByResponseTime: func(a, b Profile) int {
		switch {
		case a.ResponseTimeSeconds < b.ResponseTimeSeconds:
			return -1
		case a.ResponseTimeSeconds > b.ResponseTimeSeconds:
			return 1
		}
		return 0
	},
}

// defaultOrder is the natural direction of each sort key when the caller
// does not specify one: best rating first, cheapest first, most experienced
// first, fastest responder first.
var defaultOrder = map[SortKey]SortOrder{
	SortByRating:       SortDesc,
	SortByPrice:        SortAsc,
	SortByExperience:   SortDesc,
	SortByResponseTime: SortAsc,
}

// Search filters and ranks a catalog snapshot. Pure: the same snapshot and
// filters always yield the same result.
func Search(snapshot []Profile, filters Filters, page, pageSize int) Result {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	matched := make([]Profile, 0, len(snapshot))
	for _, p := range snapshot {
		if matches(p, filters) {
			matched = append(matched, p)
		}
	}

	sortProfiles(matched, filters.SortBy, filters.SortOrder)

	total := len(matched)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return Result{
		Gamers:     matched[start:end],
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

func matches(p Profile, f Filters) bool {
	if f.Keywords != "" {
		needle := strings.ToLower(f.Keywords)
		if !strings.Contains(strings.ToLower(p.Username), needle) &&
			!strings.Contains(strings.ToLower(p.Title), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			return false
		}
	}

	if len(f.Skills) > 0 && !hasAnySkill(p.Skills, f.Skills) {
		return false
	}

	if f.PriceRange != nil {
		if !p.HasActiveService {
			return false
		}
		if p.LowestPrice.LessThan(f.PriceRange.Min) {
			return false
		}
		// A zero Max leaves the range open-ended.
		if f.PriceRange.Max.IsPositive() && p.LowestPrice.GreaterThan(f.PriceRange.Max) {
			return false
		}
	}

	if f.MinRating != nil && p.Rating.LessThan(*f.MinRating) {
		return false
	}

	if f.Gender != "" && p.Gender != f.Gender {
		return false
	}

	if f.IsOnline != nil && p.IsOnline != *f.IsOnline {
		return false
	}

	return true
}

func hasAnySkill(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if strings.EqualFold(h, w) {
				return true
			}
		}
	}
	return false
}

func sortProfiles(profiles []Profile, key SortKey, order SortOrder) {
	cmp, ok := comparators[key]
	if !ok {
		key = SortByRating
		cmp = comparators[key]
	}
	if order != SortAsc && order != SortDesc {
		order = defaultOrder[key]
	}

	sort.SliceStable(profiles, func(i, j int) bool {
		c := cmp(profiles[i], profiles[j])
		if c != 0 {
			if order == SortDesc {
				return c > 0
			}
			return c < 0
		}
		// Tie-break: busier reviewers first, then stable id order.
		if profiles[i].ReviewCount != profiles[j].ReviewCount {
			return profiles[i].ReviewCount > profiles[j].ReviewCount
		}
		return profiles[i].ID < profiles[j].ID
	})
}
