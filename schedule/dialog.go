package schedule

import "errors"

type Step string

const (
	StepSchedule   Step = "schedule"
	StepPreview    Step = "preview"
	StepSubmitting Step = "submitting"
	StepClosed     Step = "closed"
)

var (
	ErrNoMovie      = errors.New("no movie selected")
	ErrNoRooms      = errors.New("no room selected")
	ErrEmptyPreview = errors.New("no showtime to save")
	ErrSlotOverlap  = errors.New("time slots overlap")
	ErrWrongStep    = errors.New("action not allowed in current step")
)

// Dialog tracks one batch scheduling session:
// schedule -> preview -> submitting -> closed.
type Dialog struct {
	Step     Step        `json:"step"`
	Spec     Spec        `json:"-"`
	Preview  []Candidate `json:"preview"`
	Overlaps []int       `json:"overlaps"`
	Alert    string      `json:"alert,omitempty"`

	// BlockOnOverlap turns the overlap warning into a save blocker.
	BlockOnOverlap bool `json:"-"`
}

func NewDialog(spec Spec, blockOnOverlap bool) *Dialog {
	return &Dialog{
		Step:           StepSchedule,
		Spec:           spec,
		Preview:        []Candidate{},
		Overlaps:       []int{},
		BlockOnOverlap: blockOnOverlap,
	}
}

func (d *Dialog) selectionError() error {
	if d.Spec.Movie.ID == 0 {
		return ErrNoMovie
	}
	if len(d.Spec.Rooms) == 0 {
		return ErrNoRooms
	}
	return nil
}

func (d *Dialog) CanPreview() bool {
	return d.selectionError() == nil
}

// Update replaces the selections. In preview the list is recomputed.
func (d *Dialog) Update(spec Spec) error {
	switch d.Step {
	case StepSchedule:
		d.Spec = spec
		return nil
	case StepPreview:
		d.Spec = spec
		return d.compute()
	default:
		return ErrWrongStep
	}
}

func (d *Dialog) compute() error {
	if err := d.selectionError(); err != nil {
		d.fail(err)
		return err
	}
	d.Preview = GenerateCandidates(d.Spec)
	d.Overlaps = DetectOverlaps(d.Spec.TimeSlots, d.Spec.Movie.DurationMinutes)
	d.Alert = ""
	return nil
}

func (d *Dialog) fail(err error) {
	d.Step = StepSchedule
	d.Alert = err.Error()
}

// GoToPreview needs a movie and at least one room.
func (d *Dialog) GoToPreview() error {
	if d.Step != StepSchedule && d.Step != StepPreview {
		return ErrWrongStep
	}
	if err := d.compute(); err != nil {
		return err
	}
	d.Step = StepPreview
	return nil
}

func (d *Dialog) BackToSchedule() error {
	if d.Step != StepPreview {
		return ErrWrongStep
	}
	d.Step = StepSchedule
	return nil
}

// BeginSubmit checks the local preconditions and hands back the candidates to
// send. A failed check returns the dialog to the schedule step.
func (d *Dialog) BeginSubmit() ([]Candidate, error) {
	if d.Step != StepPreview {
		return nil, ErrWrongStep
	}
	if err := d.selectionError(); err != nil {
		d.fail(err)
		return nil, err
	}
	if len(d.Preview) == 0 {
		d.fail(ErrEmptyPreview)
		return nil, ErrEmptyPreview
	}
	if d.BlockOnOverlap && len(d.Overlaps) > 0 {
		d.fail(ErrSlotOverlap)
		return nil, ErrSlotOverlap
	}
	d.Step = StepSubmitting
	out := make([]Candidate, len(d.Preview))
	copy(out, d.Preview)
	return out, nil
}

// FinishSubmit closes the dialog on success. On failure the preview is kept
// so the user can retry.
func (d *Dialog) FinishSubmit(err error) {
	if d.Step != StepSubmitting {
		return
	}
	if err != nil {
		d.Step = StepPreview
		d.Alert = err.Error()
		return
	}
	d.Step = StepClosed
	d.Alert = ""
}

func (d *Dialog) Close() {
	d.Step = StepClosed
}
