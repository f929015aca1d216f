package listing

import (
	"cmp"
	"slices"
	"strings"

	"doctor-directory/internal/domain/entity"
)

// Apply computes the displayed subsequence of dataset under state.
//
// Steps run in a fixed order: name search, consultation mode, specialties
// (any tag matches), then a stable sort. The input slice is never modified
// and the result is always a fresh, non-nil slice.
func Apply(dataset []entity.Doctor, state FilterSortState) []entity.Doctor {
	needle := strings.ToLower(state.SearchText)

	var tags map[string]struct{}
	if len(state.Specialties) > 0 {
		tags = make(map[string]struct{}, len(state.Specialties))
		for _, t := range state.Specialties {
			tags[t] = struct{}{}
		}
	}

	result := make([]entity.Doctor, 0, len(dataset))
	for _, d := range dataset {
		if needle != "" && !strings.Contains(strings.ToLower(d.Name), needle) {
			continue
		}
		if !matchesConsultMode(d, state.ConsultMode) {
			continue
		}
		if tags != nil && !d.HasSpecialty(tags) {
			continue
		}
		result = append(result, d)
	}

	switch state.SortKey {
	case SortFeeAscending:
		slices.SortStableFunc(result, func(a, b entity.Doctor) int {
			return a.Fee.Cmp(b.Fee)
		})
	case SortExperienceDescending:
		slices.SortStableFunc(result, func(a, b entity.Doctor) int {
			return cmp.Compare(b.Experience, a.Experience)
		})
	}

	return result
}

func matchesConsultMode(d entity.Doctor, mode ConsultMode) bool {
	switch mode {
	case ConsultVideoOnly:
		return d.VideoConsult
	case ConsultInClinicOnly:
		return d.InClinic
	default:
		return true
	}
}

// Specialties returns every specialty tag in dataset, sorted and unique.
func Specialties(dataset []entity.Doctor) []string {
	seen := make(map[string]struct{})
	tags := make([]string, 0)
	for _, d := range dataset {
		for _, s := range d.Specialty {
			if _, ok := seen[s]; ok || s == "" {
				continue
			}
			seen[s] = struct{}{}
			tags = append(tags, s)
		}
	}
	slices.Sort(tags)
	return tags
}
