package params

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	lev "github.com/agnivade/levenshtein"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"
	"github.com/jrwynneiii/dvbparams/catalog"
)

const wrapWidth = 78

type Validator struct {
	Catalog *catalog.Catalog
	// Lenient skips the exact frame size / VL-SNR check on code rates, so a
	// code rate with VL-SNR support in some other frame size passes.
	Lenient bool
	logger  *log.Logger
}

func NewValidator(cat *catalog.Catalog, logger *log.Logger) *Validator {
	if logger == nil {
		logger = NewDiagnosticLogger()
	}
	return &Validator{Catalog: cat, logger: logger}
}

// Validate reports whether p is a supported combination. On failure the
// reason and the legal alternatives are written to the diagnostic logger.
func (v *Validator) Validate(p Params) bool {
	if err := v.Check(p); err != nil {
		v.report(err)
		return false
	}
	return true
}

// Check is Validate without the diagnostic output. The returned error is
// always a *FieldError.
func (v *Validator) Check(p Params) error {
	p = Normalize(p)
	c := v.Catalog

	std, ok := c.Standard(p.Standard)
	if !ok {
		return fieldError("standard", p.Standard, "", c.StandardNames(),
			fmt.Sprintf("invalid DVB standard %q", p.Standard))
	}

	if _, ok := c.FrameSize(p.FrameSize); !ok {
		return fieldError("frame_size", p.FrameSize, std.Name, c.FrameSizeNames(),
			fmt.Sprintf("invalid frame size %q", p.FrameSize))
	}

	if p.Constellation != nil {
		choices := c.ConstellationsFor(std.Name)
		if !slices.Contains(choices, *p.Constellation) {
			return fieldError("constellation", *p.Constellation, std.Name, choices,
				fmt.Sprintf("%q not a supported %s constellation", *p.Constellation, std.Name))
		}
	}

	// The constellation is not cross-checked against the code rate.
	codes := c.CodeRatesFor(std.Name, p.FrameSize)
	if !slices.Contains(codes, p.Code) {
		return fieldError("code", p.Code, std.Name, codes,
			fmt.Sprintf("code rate %q not supported in %s with %s frame size", p.Code, std.Name, p.FrameSize))
	}
	code, _ := c.CodeRate(p.Code)

	if p.VLSNR {
		if !std.VLSNR {
			vlStd, _ := c.VLSNRStandard()
			return fieldError("vl_snr", "true", std.Name, nil,
				fmt.Sprintf("VL-SNR mode is only supported by the %s standard", vlStd.Name))
		}
		if !code.SupportsVLSNR() {
			return fieldError("vl_snr", "true", std.Name, nil,
				fmt.Sprintf("code rate %s does not support %s VL-SNR mode", p.Code, std.Name))
		}
	}

	if !v.Lenient {
		if _, ok := code.Variant(p.FrameSize, p.VLSNR); !ok {
			mode := "off"
			if p.VLSNR {
				mode = "on"
			}
			return fieldError("code", p.Code, std.Name, nil,
				fmt.Sprintf("code rate %s is not defined for %s frames with VL-SNR mode %s", p.Code, p.FrameSize, mode))
		}
	}

	if p.Rolloff != nil {
		choices := c.RolloffsFor(std.Name)
		r := strconv.FormatFloat(*p.Rolloff, 'f', -1, 64)
		if !slices.Contains(choices, r) {
			return fieldError("rolloff", r, std.Name, choices,
				fmt.Sprintf("%s is not a supported %s roll-off factor", r, std.Name))
		}
	}

	if p.Pilots != nil {
		if _, ok := p.Pilots.(bool); !ok {
			return fieldError("pilots", fmt.Sprint(p.Pilots), std.Name, nil,
				`the "pilots" flag must be a Boolean`)
		}
	}

	return nil
}

func (v *Validator) report(err error) {
	v.logger.Error(err.Error())
	fe, ok := err.(*FieldError)
	if !ok {
		return
	}
	if fe.Suggestion != "" {
		v.logger.Infof("did you mean %q?", fe.Suggestion)
	}
	if len(fe.Choices) > 0 {
		v.logger.Info(ansi.Wordwrap("choose from: "+strings.Join(fe.Choices, ", "), wrapWidth, ""))
	}
}

func fieldError(field, value, standard string, choices []string, msg string) *FieldError {
	return &FieldError{
		Field:      field,
		Value:      value,
		Standard:   standard,
		Choices:    choices,
		Suggestion: suggest(value, choices),
		msg:        msg,
	}
}

// suggest returns the closest choice when the value looks like a typo of it.
func suggest(value string, choices []string) string {
	if value == "" {
		return ""
	}
	best, bestDist := "", len(value)
	for _, choice := range choices {
		d := lev.ComputeDistance(strings.ToUpper(value), strings.ToUpper(choice))
		if d < bestDist {
			best, bestDist = choice, d
		}
	}
	if bestDist > 2 {
		return ""
	}
	return best
}
