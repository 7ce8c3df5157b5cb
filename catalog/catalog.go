// Package catalog holds the static table of DVB parameter combinations the
// receiver blocks support, and the engine identifier each entry maps to.
package catalog

import (
	"fmt"
	"slices"
	"strconv"
	"sync"

	"github.com/jrwynneiii/dvbparams/dvb"
)

type Standard struct {
	Name  string
	ID    dvb.Standard
	VLSNR bool
}

type FrameSize struct {
	Name string
	ID   dvb.FrameSize
}

type Constellation struct {
	Name      string
	ID        dvb.Modulation
	Standards []string
}

// Variant binds one (frame size, VL-SNR mode) context of a code rate to the
// engine identifier used in that context.
type Variant struct {
	Frame string
	VLSNR bool
	ID    dvb.CodeRate
}

// CodeRate is either single-valued (ID plus the Frames it applies to, never
// VL-SNR) or context-dependent (Variants, one per frame/VL-SNR key).
type CodeRate struct {
	Code      string
	Standards []string
	Frames    []string
	ID        dvb.CodeRate
	Variants  []Variant
}

type Rolloff struct {
	Factor    float64
	ID        dvb.RollOff
	Standards []string
}

type Catalog struct {
	Standards      []Standard
	FrameSizes     []FrameSize
	Constellations []Constellation
	CodeRates      []CodeRate
	Rolloffs       []Rolloff
	Pilots         map[bool]dvb.Pilots
}

func (c CodeRate) ContextDependent() bool {
	return len(c.Variants) > 0
}

func (c CodeRate) AppliesTo(standard string) bool {
	return slices.Contains(c.Standards, standard)
}

// FrameNames lists the frame sizes the code rate is declared for, in
// declaration order and without repeats.
func (c CodeRate) FrameNames() []string {
	if !c.ContextDependent() {
		return c.Frames
	}
	var frames []string
	for _, v := range c.Variants {
		if !slices.Contains(frames, v.Frame) {
			frames = append(frames, v.Frame)
		}
	}
	return frames
}

func (c CodeRate) SupportsFrame(frame string) bool {
	return slices.Contains(c.FrameNames(), frame)
}

func (c CodeRate) SupportsVLSNR() bool {
	for _, v := range c.Variants {
		if v.VLSNR {
			return true
		}
	}
	return false
}

// Variant returns the engine identifier for the given context. Single-valued
// code rates answer for any of their frames outside VL-SNR mode.
func (c CodeRate) Variant(frame string, vlsnr bool) (dvb.CodeRate, bool) {
	if !c.ContextDependent() {
		if !vlsnr && slices.Contains(c.Frames, frame) {
			return c.ID, true
		}
		return 0, false
	}
	for _, v := range c.Variants {
		if v.Frame == frame && v.VLSNR == vlsnr {
			return v.ID, true
		}
	}
	return 0, false
}

func (r Rolloff) String() string {
	return strconv.FormatFloat(r.Factor, 'f', -1, 64)
}

func (c *Catalog) Standard(name string) (Standard, bool) {
	for _, s := range c.Standards {
		if s.Name == name {
			return s, true
		}
	}
	return Standard{}, false
}

func (c *Catalog) VLSNRStandard() (Standard, bool) {
	for _, s := range c.Standards {
		if s.VLSNR {
			return s, true
		}
	}
	return Standard{}, false
}

func (c *Catalog) FrameSize(name string) (FrameSize, bool) {
	for _, f := range c.FrameSizes {
		if f.Name == name {
			return f, true
		}
	}
	return FrameSize{}, false
}

func (c *Catalog) Constellation(name string) (Constellation, bool) {
	for _, m := range c.Constellations {
		if m.Name == name {
			return m, true
		}
	}
	return Constellation{}, false
}

func (c *Catalog) CodeRate(code string) (CodeRate, bool) {
	for _, r := range c.CodeRates {
		if r.Code == code {
			return r, true
		}
	}
	return CodeRate{}, false
}

func (c *Catalog) Rolloff(factor float64) (Rolloff, bool) {
	for _, r := range c.Rolloffs {
		if r.Factor == factor {
			return r, true
		}
	}
	return Rolloff{}, false
}

func (c *Catalog) PilotsID(on bool) dvb.Pilots {
	return c.Pilots[on]
}

func (c *Catalog) StandardNames() []string {
	names := make([]string, 0, len(c.Standards))
	for _, s := range c.Standards {
		names = append(names, s.Name)
	}
	return names
}

func (c *Catalog) FrameSizeNames() []string {
	names := make([]string, 0, len(c.FrameSizes))
	for _, f := range c.FrameSizes {
		names = append(names, f.Name)
	}
	return names
}

func (c *Catalog) ConstellationsFor(standard string) []string {
	var names []string
	for _, m := range c.Constellations {
		if slices.Contains(m.Standards, standard) {
			names = append(names, m.Name)
		}
	}
	return names
}

func (c *Catalog) CodeRatesFor(standard, frame string) []string {
	var codes []string
	for _, r := range c.CodeRates {
		if r.AppliesTo(standard) && r.SupportsFrame(frame) {
			codes = append(codes, r.Code)
		}
	}
	return codes
}

func (c *Catalog) RolloffsFor(standard string) []string {
	var factors []string
	for _, r := range c.Rolloffs {
		if slices.Contains(r.Standards, standard) {
			factors = append(factors, r.String())
		}
	}
	return factors
}

// Verify checks the table is internally consistent. A catalog that fails
// here would let the validator accept inputs the resolver cannot map.
func (c *Catalog) Verify() error {
	vlsnr := 0
	for _, s := range c.Standards {
		if s.VLSNR {
			vlsnr++
		}
	}
	if vlsnr != 1 {
		return fmt.Errorf("catalog declares %d VL-SNR standards, want exactly 1", vlsnr)
	}

	checkStandards := func(kind, name string, standards []string) error {
		if len(standards) == 0 {
			return fmt.Errorf("%s %q applies to no standard", kind, name)
		}
		for _, s := range standards {
			if _, ok := c.Standard(s); !ok {
				return fmt.Errorf("%s %q references unknown standard %q", kind, name, s)
			}
		}
		return nil
	}
	checkFrame := func(code, frame string) error {
		if _, ok := c.FrameSize(frame); !ok {
			return fmt.Errorf("code rate %q references unknown frame size %q", code, frame)
		}
		return nil
	}

	for _, m := range c.Constellations {
		if err := checkStandards("constellation", m.Name, m.Standards); err != nil {
			return err
		}
	}
	for _, r := range c.Rolloffs {
		if err := checkStandards("roll-off", r.String(), r.Standards); err != nil {
			return err
		}
	}
	if _, ok := c.Pilots[true]; !ok {
		return fmt.Errorf("catalog has no identifier for pilots on")
	}
	if _, ok := c.Pilots[false]; !ok {
		return fmt.Errorf("catalog has no identifier for pilots off")
	}

	seen := make(map[string]bool)
	for _, r := range c.CodeRates {
		if seen[r.Code] {
			return fmt.Errorf("code rate %q declared twice", r.Code)
		}
		seen[r.Code] = true
		if err := checkStandards("code rate", r.Code, r.Standards); err != nil {
			return err
		}

		if !r.ContextDependent() {
			if len(r.Frames) == 0 {
				return fmt.Errorf("code rate %q declares no frame size", r.Code)
			}
			for _, f := range r.Frames {
				if err := checkFrame(r.Code, f); err != nil {
					return err
				}
			}
			continue
		}

		if len(r.Frames) > 0 {
			return fmt.Errorf("code rate %q mixes a frame list with context variants", r.Code)
		}
		keys := make(map[Variant]bool)
		for _, v := range r.Variants {
			if err := checkFrame(r.Code, v.Frame); err != nil {
				return err
			}
			key := Variant{Frame: v.Frame, VLSNR: v.VLSNR}
			if keys[key] {
				return fmt.Errorf("code rate %q declares frame %q with VL-SNR=%t twice", r.Code, v.Frame, v.VLSNR)
			}
			keys[key] = true
		}
	}
	return nil
}

// Default returns the built-in catalog. It panics if the built-in table is
// inconsistent, which only a bad edit to table.go can cause.
var Default = sync.OnceValue(func() *Catalog {
	c := builtin()
	if err := c.Verify(); err != nil {
		panic(fmt.Sprintf("catalog: built-in table: %v", err))
	}
	return c
})
