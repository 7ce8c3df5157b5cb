// Package params validates DVB-S2/S2X/T2 parameter sets against the catalog
// and resolves valid sets into the identifiers the receiver blocks take.
//
// Most blocks need only the standard, frame size and LDPC code rate. The
// constellation, roll-off and pilots are taken by a few blocks only, so they
// are optional here: leaving one out means it is neither checked nor
// resolved.
package params

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/jrwynneiii/dvbparams/catalog"
)

type Params struct {
	Standard      string
	FrameSize     string
	Code          string
	Constellation *string
	Rolloff       *float64

	// Pilots is nil when unset. Anything other than a bool fails
	// validation; loosely typed config sources may put strings here.
	Pilots any
	VLSNR  bool
}

// Normalize applies the case convention of the catalog: upper case standard
// and constellation, lower case frame size.
func Normalize(p Params) Params {
	p.Standard = strings.ToUpper(p.Standard)
	p.FrameSize = strings.ToLower(p.FrameSize)
	if p.Constellation != nil {
		c := strings.ToUpper(*p.Constellation)
		p.Constellation = &c
	}
	return p
}

func NewDiagnosticLogger() *log.Logger {
	return log.NewWithOptions(os.Stdout, log.Options{Prefix: "params"})
}

var defaultResolver = sync.OnceValue(func() *Resolver {
	return NewResolver(NewValidator(catalog.Default(), NewDiagnosticLogger()))
})

// Validate checks p against the built-in catalog, printing a diagnostic to
// stdout when it is not valid.
func Validate(p Params) bool {
	return defaultResolver().Validator.Validate(p)
}

// Resolve maps p to engine identifiers using the built-in catalog.
func Resolve(p Params) (Resolution, error) {
	return defaultResolver().Resolve(p)
}
