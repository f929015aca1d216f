package listing

import (
	"net/url"
	"slices"
)

// Query parameter names owned by the listing. Any other parameter present in
// the address is passed through untouched.
const (
	ParamQuery       = "query"
	ParamConsultType = "consultType"
	ParamSpecialty   = "specialty"
	ParamSortBy      = "sortBy"
)

type ConsultMode int

const (
	ConsultAny ConsultMode = iota
	ConsultVideoOnly
	ConsultInClinicOnly
)

// Param returns the URL value for the mode, empty for ConsultAny.
func (m ConsultMode) Param() string {
	switch m {
	case ConsultVideoOnly:
		return "videoConsult"
	case ConsultInClinicOnly:
		return "inClinic"
	default:
		return ""
	}
}

// ParseConsultMode maps a URL value to a mode. Unknown values yield
// ConsultAny and false.
func ParseConsultMode(v string) (ConsultMode, bool) {
	switch v {
	case "videoConsult":
		return ConsultVideoOnly, true
	case "inClinic":
		return ConsultInClinicOnly, true
	default:
		return ConsultAny, false
	}
}

type SortKey int

const (
	SortNone SortKey = iota
	SortFeeAscending
	SortExperienceDescending
)

// Param returns the URL value for the key, empty for SortNone.
func (k SortKey) Param() string {
	switch k {
	case SortFeeAscending:
		return "fees"
	case SortExperienceDescending:
		return "experience"
	default:
		return ""
	}
}

// ParseSortKey maps a URL value to a sort key. Unknown values yield SortNone
// and false.
func ParseSortKey(v string) (SortKey, bool) {
	switch v {
	case "fees":
		return SortFeeAscending, true
	case "experience":
		return SortExperienceDescending, true
	default:
		return SortNone, false
	}
}

// FilterSortState is the committed filter and sort selection. It is a value:
// the With/Toggle methods return a modified copy and never touch the
// receiver. Zero value means no constraint on any axis.
//
// Specialties is nil when empty, holds no duplicates and keeps selection
// order.
type FilterSortState struct {
	SearchText  string
	ConsultMode ConsultMode
	Specialties []string
	SortKey     SortKey
}

func (s FilterSortState) IsZero() bool {
	return s.SearchText == "" && s.ConsultMode == ConsultAny && len(s.Specialties) == 0 && s.SortKey == SortNone
}

// Clone returns a copy that shares no memory with s.
func (s FilterSortState) Clone() FilterSortState {
	s.Specialties = slices.Clone(s.Specialties)
	return s
}

func (s FilterSortState) WithSearchText(text string) FilterSortState {
	s.Specialties = slices.Clone(s.Specialties)
	s.SearchText = text
	return s
}

func (s FilterSortState) WithConsultMode(mode ConsultMode) FilterSortState {
	s.Specialties = slices.Clone(s.Specialties)
	s.ConsultMode = mode
	return s
}

// ToggleConsultMode selects mode, or clears it when it is already selected.
func (s FilterSortState) ToggleConsultMode(mode ConsultMode) FilterSortState {
	if s.ConsultMode == mode {
		return s.WithConsultMode(ConsultAny)
	}
	return s.WithConsultMode(mode)
}

// ToggleSpecialty adds tag to the selection, or removes it if present.
func (s FilterSortState) ToggleSpecialty(tag string) FilterSortState {
	if tag == "" {
		s.Specialties = slices.Clone(s.Specialties)
		return s
	}
	var next []string
	found := false
	for _, t := range s.Specialties {
		if t == tag {
			found = true
			continue
		}
		next = append(next, t)
	}
	if !found {
		next = append(next, tag)
	}
	s.Specialties = next
	return s
}

func (s FilterSortState) WithSortKey(key SortKey) FilterSortState {
	s.Specialties = slices.Clone(s.Specialties)
	s.SortKey = key
	return s
}

// ToggleSortKey selects key, or clears it when it is already selected.
func (s FilterSortState) ToggleSortKey(key SortKey) FilterSortState {
	if s.SortKey == key {
		return s.WithSortKey(SortNone)
	}
	return s.WithSortKey(key)
}

// Decode reads the filter state out of URL parameters. Missing parameters
// and values outside the known vocabulary decode to "no constraint".
func Decode(values url.Values) FilterSortState {
	var state FilterSortState

	state.SearchText = values.Get(ParamQuery)
	state.ConsultMode, _ = ParseConsultMode(values.Get(ParamConsultType))
	state.SortKey, _ = ParseSortKey(values.Get(ParamSortBy))

	for _, tag := range values[ParamSpecialty] {
		if tag == "" || slices.Contains(state.Specialties, tag) {
			continue
		}
		state.Specialties = append(state.Specialties, tag)
	}

	return state
}

// Encode writes state into a copy of base. The listing's own parameters are
// replaced wholesale; unset fields are omitted rather than written empty.
func Encode(state FilterSortState, base url.Values) url.Values {
	values := make(url.Values, len(base)+4)
	for k, v := range base {
		values[k] = slices.Clone(v)
	}

	values.Del(ParamQuery)
	values.Del(ParamConsultType)
	values.Del(ParamSpecialty)
	values.Del(ParamSortBy)

	if state.SearchText != "" {
		values.Set(ParamQuery, state.SearchText)
	}
	if p := state.ConsultMode.Param(); p != "" {
		values.Set(ParamConsultType, p)
	}
	for _, tag := range state.Specialties {
		if tag != "" {
			values.Add(ParamSpecialty, tag)
		}
	}
	if p := state.SortKey.Param(); p != "" {
		values.Set(ParamSortBy, p)
	}

	return values
}
