package params

import (
	"github.com/jrwynneiii/dvbparams/dvb"
)

// Resolution holds the engine identifiers of a validated parameter set. The
// optional identifiers are non-nil exactly when the matching parameter was
// supplied.
type Resolution struct {
	Standard      dvb.Standard    `json:"standard"`
	FrameSize     dvb.FrameSize   `json:"frame_size"`
	Code          dvb.CodeRate    `json:"code"`
	Constellation *dvb.Modulation `json:"constellation,omitempty"`
	Rolloff       *dvb.RollOff    `json:"rolloff,omitempty"`
	Pilots        *dvb.Pilots     `json:"pilots,omitempty"`
}

// Tuple returns the identifiers positionally: standard, frame size and code
// followed by whichever of constellation, roll-off and pilots were supplied,
// in that order.
func (r Resolution) Tuple() []any {
	t := []any{r.Standard, r.FrameSize, r.Code}
	if r.Constellation != nil {
		t = append(t, *r.Constellation)
	}
	if r.Rolloff != nil {
		t = append(t, *r.Rolloff)
	}
	if r.Pilots != nil {
		t = append(t, *r.Pilots)
	}
	return t
}

type Resolver struct {
	Validator *Validator
}

func NewResolver(v *Validator) *Resolver {
	return &Resolver{Validator: v}
}

// Resolve validates p and maps each supplied parameter to its engine
// identifier. Invalid input yields an *InvalidConfigurationError. It panics
// with *InvariantError if the catalog cannot map a code rate that passed
// validation.
func (r *Resolver) Resolve(p Params) (Resolution, error) {
	p = Normalize(p)
	if err := r.Validator.Check(p); err != nil {
		r.Validator.report(err)
		return Resolution{}, &InvalidConfigurationError{Standard: p.Standard, Err: err}
	}
	c := r.Validator.Catalog

	std, _ := c.Standard(p.Standard)
	frame, _ := c.FrameSize(p.FrameSize)
	code, _ := c.CodeRate(p.Code)

	res := Resolution{
		Standard:  std.ID,
		FrameSize: frame.ID,
		Code:      code.ID,
	}

	// The code rate identifier may depend on the frame size and VL-SNR mode
	if code.ContextDependent() {
		id, ok := code.Variant(p.FrameSize, p.VLSNR)
		if !ok {
			panic(&InvariantError{Code: p.Code, Frame: p.FrameSize, VLSNR: p.VLSNR})
		}
		res.Code = id
	}

	if p.Constellation != nil {
		m, _ := c.Constellation(*p.Constellation)
		res.Constellation = &m.ID
	}
	if p.Rolloff != nil {
		ro, _ := c.Rolloff(*p.Rolloff)
		res.Rolloff = &ro.ID
	}
	if p.Pilots != nil {
		pilots := c.PilotsID(p.Pilots.(bool))
		res.Pilots = &pilots
	}
	return res, nil
}
