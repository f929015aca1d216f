package listing

import (
	"context"
	"net/url"
	"slices"
	"sync"

	"doctor-directory/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// Status is the observable lifecycle of a listing.
type Status string

const (
	StatusLoading Status = "loading"
	StatusFailed  Status = "failed"
	StatusReady   Status = "ready"
	StatusEmpty   Status = "empty"
)

// User-facing messages for each non-result outcome.
const (
	MessageLoading = "Loading doctors..."
	MessageFailed  = "Failed to fetch doctors data. Please try again later."
	MessageEmpty   = "No doctors found matching your criteria. Please try different filters."
)

// DoctorSource supplies the full dataset. Implementations must be safe to
// call repeatedly; the orchestrator calls it once per Start.
type DoctorSource interface {
	FetchAll(ctx context.Context) ([]entity.Doctor, error)
}

// Navigator receives the canonical URL parameters after every state change.
// Implementations replace the current address in place.
type Navigator interface {
	Replace(values url.Values)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(values url.Values)

func (f NavigatorFunc) Replace(values url.Values) {
	f(values)
}

// View is a snapshot of what the rendering side should show.
type View struct {
	Status      Status
	Message     string
	Doctors     []entity.Doctor
	Specialties []string
	State       FilterSortState
	Query       url.Values
	Suggestions []entity.Doctor
	SearchInput string
}

// Orchestrator owns the dataset lifecycle and the committed filter state of
// one listing session. Every mutation runs to completion under a single lock:
// state update, recomputation of the visible list, then re-encoding of the
// address. Loading happens outside the lock.
type Orchestrator struct {
	mu sync.Mutex

	source DoctorSource
	nav    Navigator
	log    *logrus.Logger

	started     bool
	status      Status
	dataset     []entity.Doctor
	specialties []string
	state       FilterSortState
	params      url.Values
	visible     []entity.Doctor
	box         SearchBox
}

// NewOrchestrator creates a session in the Loading state with filter state
// decoded from initial. nav may be nil.
func NewOrchestrator(source DoctorSource, nav Navigator, log *logrus.Logger, initial url.Values) *Orchestrator {
	if log == nil {
		log = logrus.StandardLogger()
	}
	state := Decode(initial)
	o := &Orchestrator{
		source: source,
		nav:    nav,
		log:    log,
		status: StatusLoading,
		state:  state,
		params: Encode(state, initial),
	}
	o.box.text = state.SearchText
	return o
}

// Start loads the dataset. It runs at most once; later calls return
// immediately. A load failure moves the session to Failed and is returned
// for logging only.
func (o *Orchestrator) Start(ctx context.Context) error {
	o.mu.Lock()
	if o.started {
		o.mu.Unlock()
		return nil
	}
	o.started = true
	o.mu.Unlock()

	doctors, err := o.source.FetchAll(ctx)

	o.mu.Lock()
	defer o.mu.Unlock()

	if err != nil {
		o.log.Warnf("Failed to load doctors: %+v", err)
		o.status = StatusFailed
		o.dataset = nil
		o.visible = nil
		return err
	}

	o.dataset = doctors
	o.specialties = Specialties(doctors)
	o.recompute()
	o.log.Infof("Doctor listing ready: %d doctors loaded", len(doctors))
	return nil
}

// Fork starts a new session over the already loaded dataset with state
// decoded from params. The dataset is shared read-only.
func (o *Orchestrator) Fork(params url.Values, nav Navigator) *Orchestrator {
	o.mu.Lock()
	defer o.mu.Unlock()

	child := NewOrchestrator(o.source, nav, o.log, params)
	child.started = true
	child.status = o.status
	child.dataset = o.dataset
	child.specialties = o.specialties
	if o.status != StatusLoading && o.status != StatusFailed {
		child.recompute()
	}
	return child
}

// Type feeds keystrokes into the search box. Suggestions are refreshed from
// the full dataset; the committed search only changes when the box is
// cleared.
func (o *Orchestrator) Type(text string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.box.Type(o.dataset, text) && o.state.SearchText != "" {
		o.commitLocked(o.state.WithSearchText(""))
	}
}

// Commit makes text the active search, from a selected suggestion or a
// submitted form.
func (o *Orchestrator) Commit(text string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.commitLocked(o.state.WithSearchText(o.box.Commit(text)))
}

// DismissSuggestions hides the suggestion list without changing any state.
func (o *Orchestrator) DismissSuggestions() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.box.Dismiss()
}

// ToggleConsultMode selects a consultation mode, or clears it if already set.
func (o *Orchestrator) ToggleConsultMode(mode ConsultMode) {
	o.Update(func(s FilterSortState) FilterSortState {
		return s.ToggleConsultMode(mode)
	})
}

func (o *Orchestrator) ToggleSpecialty(tag string) {
	o.Update(func(s FilterSortState) FilterSortState {
		return s.ToggleSpecialty(tag)
	})
}

// ToggleSortKey selects a sort order, or clears it if already set.
func (o *Orchestrator) ToggleSortKey(key SortKey) {
	o.Update(func(s FilterSortState) FilterSortState {
		return s.ToggleSortKey(key)
	})
}

// Replace swaps the whole committed state, e.g. on back/forward navigation.
func (o *Orchestrator) Replace(state FilterSortState) {
	o.Update(func(FilterSortState) FilterSortState {
		return state
	})
}

// Update applies fn to the committed state as one atomic change.
func (o *Orchestrator) Update(fn func(FilterSortState) FilterSortState) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.commitLocked(fn(o.state))
}

func (o *Orchestrator) commitLocked(next FilterSortState) {
	o.state = next
	if o.status != StatusLoading && o.status != StatusFailed {
		o.recompute()
	}
	o.params = Encode(o.state, o.params)
	if o.nav != nil {
		o.nav.Replace(Encode(o.state, o.params))
	}
}

func (o *Orchestrator) recompute() {
	o.visible = Apply(o.dataset, o.state)
	if len(o.visible) == 0 {
		o.status = StatusEmpty
	} else {
		o.status = StatusReady
	}
}

// View returns a snapshot for rendering.
func (o *Orchestrator) View() View {
	o.mu.Lock()
	defer o.mu.Unlock()

	v := View{
		Status:      o.status,
		State:       o.state.Clone(),
		Query:       Encode(o.state, o.params),
		Specialties: slices.Clone(o.specialties),
		Suggestions: o.box.Suggestions(),
		SearchInput: o.box.Text(),
	}

	switch o.status {
	case StatusLoading:
		v.Message = MessageLoading
	case StatusFailed:
		v.Message = MessageFailed
	case StatusEmpty:
		v.Message = MessageEmpty
		v.Doctors = []entity.Doctor{}
	case StatusReady:
		v.Doctors = slices.Clone(o.visible)
	}

	return v
}

func (o *Orchestrator) Status() Status {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.status
}

func (o *Orchestrator) State() FilterSortState {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.state.Clone()
}
