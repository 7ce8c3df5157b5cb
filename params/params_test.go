package params_test

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/jrwynneiii/dvbparams/catalog"
	"github.com/jrwynneiii/dvbparams/dvb"
	"github.com/jrwynneiii/dvbparams/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func newResolver(t *testing.T) (*params.Resolver, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	v := params.NewValidator(catalog.Default(), log.New(&buf))
	return params.NewResolver(v), &buf
}

func TestNormalize(t *testing.T) {
	p := params.Normalize(params.Params{
		Standard:      "dvb-s2x",
		FrameSize:     "SHORT",
		Code:          "1/3",
		Constellation: ptr("bpsk_sf2"),
	})
	assert.Equal(t, "DVB-S2X", p.Standard)
	assert.Equal(t, "short", p.FrameSize)
	assert.Equal(t, "BPSK_SF2", *p.Constellation)

	p = params.Normalize(params.Params{Standard: "DVB-T2", FrameSize: "normal"})
	assert.Nil(t, p.Constellation)
}

func TestNormalizeDoesNotAliasInput(t *testing.T) {
	in := params.Params{Constellation: ptr("qpsk")}
	params.Normalize(in)
	assert.Equal(t, "qpsk", *in.Constellation)
}

func TestValidateScenarios(t *testing.T) {
	r, _ := newResolver(t)
	v := r.Validator

	tests := []struct {
		name  string
		p     params.Params
		valid bool
		field string
	}{
		{"s2 quarter rate", params.Params{Standard: "DVB-S2", FrameSize: "normal", Code: "1/4"}, true, ""},
		{"vl-snr outside s2x", params.Params{Standard: "DVB-S2", FrameSize: "normal", Code: "1/4", VLSNR: true}, false, "vl_snr"},
		{"unknown standard", params.Params{Standard: "DVB-S9", FrameSize: "normal", Code: "1/4"}, false, "standard"},
		{"unknown frame", params.Params{Standard: "DVB-S2", FrameSize: "tiny", Code: "1/4"}, false, "frame_size"},
		{"t2 has no 8psk", params.Params{Standard: "DVB-T2", FrameSize: "normal", Code: "1/2", Constellation: ptr("8psk")}, false, "constellation"},
		{"t2 qam", params.Params{Standard: "DVB-T2", FrameSize: "short", Code: "3/5", Constellation: ptr("256qam")}, true, ""},
		{"9/10 has no short frame", params.Params{Standard: "DVB-S2", FrameSize: "short", Code: "9/10"}, false, "code"},
		{"s2x rate under s2", params.Params{Standard: "DVB-S2", FrameSize: "normal", Code: "13/45"}, false, "code"},
		{"code without vl-snr support", params.Params{Standard: "DVB-S2X", FrameSize: "normal", Code: "1/4", VLSNR: true}, false, "vl_snr"},
		{"vl-snr short", params.Params{Standard: "DVB-S2X", FrameSize: "short", Code: "1/3", VLSNR: true}, true, ""},
		{"vl-snr medium", params.Params{Standard: "DVB-S2X", FrameSize: "medium", Code: "1/5", VLSNR: true}, true, ""},
		{"medium needs vl-snr", params.Params{Standard: "DVB-S2X", FrameSize: "medium", Code: "1/3"}, false, "code"},
		{"vl-snr only in other frame", params.Params{Standard: "DVB-S2X", FrameSize: "normal", Code: "1/3", VLSNR: true}, false, "code"},
		{"s2x roll-off", params.Params{Standard: "DVB-S2X", FrameSize: "normal", Code: "154/180", Rolloff: ptr(0.05)}, true, ""},
		{"s2x roll-off under s2", params.Params{Standard: "DVB-S2", FrameSize: "normal", Code: "1/2", Rolloff: ptr(0.05)}, false, "rolloff"},
		{"unknown roll-off", params.Params{Standard: "DVB-S2", FrameSize: "normal", Code: "1/2", Rolloff: ptr(0.3)}, false, "rolloff"},
		{"pilots bool", params.Params{Standard: "DVB-S2", FrameSize: "normal", Code: "1/2", Pilots: false}, true, ""},
		{"pilots string", params.Params{Standard: "DVB-S2", FrameSize: "normal", Code: "1/2", Pilots: "on"}, false, "pilots"},
		{"pilots int", params.Params{Standard: "DVB-S2", FrameSize: "normal", Code: "1/2", Pilots: 1}, false, "pilots"},
	}
	for _, test := range tests {
		assert.Equal(t, test.valid, v.Validate(test.p), test.name)
		err := v.Check(test.p)
		if test.valid {
			assert.NoError(t, err, test.name)
			continue
		}
		var fe *params.FieldError
		if assert.ErrorAs(t, err, &fe, test.name) {
			assert.Equal(t, test.field, fe.Field, test.name)
		}
	}
}

func TestRuleOrder(t *testing.T) {
	r, _ := newResolver(t)
	// Bad constellation, code and pilots at once: the constellation rule
	// runs first.
	err := r.Validator.Check(params.Params{
		Standard:      "DVB-S2",
		FrameSize:     "normal",
		Code:          "1/7",
		Constellation: ptr("16QAM"),
		Pilots:        "yes",
	})
	var fe *params.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "constellation", fe.Field)
	assert.Equal(t, []string{"QPSK", "8PSK", "16APSK", "32APSK"}, fe.Choices)
}

func TestDiagnostics(t *testing.T) {
	r, buf := newResolver(t)
	assert.False(t, r.Validator.Validate(params.Params{Standard: "DVB-S9", FrameSize: "normal", Code: "1/4"}))
	out := buf.String()
	assert.Contains(t, out, `invalid DVB standard "DVB-S9"`)
	assert.Contains(t, out, `did you mean "DVB-S2"?`)
	assert.Contains(t, out, "DVB-S2, DVB-S2X, DVB-T2")

	buf.Reset()
	assert.False(t, r.Validator.Validate(params.Params{Standard: "DVB-S2", FrameSize: "normal", Code: "1/4", VLSNR: true}))
	assert.Contains(t, buf.String(), "VL-SNR mode is only supported by the DVB-S2X standard")

	buf.Reset()
	assert.True(t, r.Validator.Validate(params.Params{Standard: "DVB-S2", FrameSize: "normal", Code: "1/4"}))
	assert.Empty(t, buf.String())
}

func TestCheckIsSilent(t *testing.T) {
	r, buf := newResolver(t)
	assert.Error(t, r.Validator.Check(params.Params{Standard: "DVB-S9"}))
	assert.Empty(t, buf.String())
}

func TestCaseInsensitive(t *testing.T) {
	r, _ := newResolver(t)
	for _, code := range []string{"1/4", "9/10", "13/45"} {
		lower := params.Params{Standard: "dvb-s2", FrameSize: "NORMAL", Code: code}
		upper := params.Params{Standard: "DVB-S2", FrameSize: "normal", Code: code}
		assert.Equal(t, r.Validator.Validate(upper), r.Validator.Validate(lower), code)
	}
}

func TestCodeRateFrameCoverage(t *testing.T) {
	r, _ := newResolver(t)
	c := catalog.Default()
	vlStd, _ := c.VLSNRStandard()

	for _, std := range c.StandardNames() {
		for _, code := range c.CodeRates {
			if !code.AppliesTo(std) {
				continue
			}
			for _, frame := range c.FrameSizeNames() {
				if !code.SupportsFrame(frame) {
					assert.False(t, r.Validator.Validate(params.Params{Standard: std, FrameSize: frame, Code: code.Code}),
						"%s %s %s", std, frame, code.Code)
					assert.False(t, r.Validator.Validate(params.Params{Standard: std, FrameSize: frame, Code: code.Code, VLSNR: true}),
						"%s %s %s vl-snr", std, frame, code.Code)
				}
			}
			if !code.ContextDependent() {
				for _, frame := range code.Frames {
					assert.True(t, r.Validator.Validate(params.Params{Standard: std, FrameSize: frame, Code: code.Code}),
						"%s %s %s", std, frame, code.Code)
				}
				continue
			}
			for _, variant := range code.Variants {
				want := !variant.VLSNR || std == vlStd.Name
				p := params.Params{Standard: std, FrameSize: variant.Frame, Code: code.Code, VLSNR: variant.VLSNR}
				assert.Equal(t, want, r.Validator.Validate(p), "%s %+v", code.Code, variant)
			}
		}
	}
}

func TestVLSNRGating(t *testing.T) {
	r, _ := newResolver(t)
	c := catalog.Default()
	for _, std := range c.Standards {
		if std.VLSNR {
			continue
		}
		for _, frame := range c.FrameSizeNames() {
			for _, code := range c.CodeRates {
				p := params.Params{Standard: std.Name, FrameSize: frame, Code: code.Code, VLSNR: true}
				assert.False(t, r.Validator.Validate(p), "%s %s %s", std.Name, frame, code.Code)
			}
		}
	}
}

func TestResolveBasic(t *testing.T) {
	r, _ := newResolver(t)
	res, err := r.Resolve(params.Params{Standard: "DVB-S2", FrameSize: "NORMAL", Code: "1/4"})
	require.NoError(t, err)
	assert.Equal(t, params.Resolution{
		Standard:  dvb.StandardDVBS2,
		FrameSize: dvb.FECFrameNormal,
		Code:      dvb.C1_4,
	}, res)
	assert.Equal(t, []any{dvb.StandardDVBS2, dvb.FECFrameNormal, dvb.C1_4}, res.Tuple())
}

func TestResolveT2(t *testing.T) {
	r, _ := newResolver(t)
	res, err := r.Resolve(params.Params{Standard: "dvb-t2", FrameSize: "short", Code: "2/3", Constellation: ptr("64qam")})
	require.NoError(t, err)
	assert.Equal(t, dvb.StandardDVBT2, res.Standard)
	assert.Equal(t, dvb.FECFrameShort, res.FrameSize)
	assert.Equal(t, dvb.C2_3, res.Code)
	require.NotNil(t, res.Constellation)
	assert.Equal(t, dvb.Mod64QAM, *res.Constellation)
}

func TestResolveIdempotent(t *testing.T) {
	r, _ := newResolver(t)
	p := params.Params{
		Standard: "DVB-S2X", FrameSize: "short", Code: "11/45",
		Constellation: ptr("BPSK_SF2"), Rolloff: ptr(0.15), Pilots: true, VLSNR: true,
	}
	first, err := r.Resolve(p)
	require.NoError(t, err)
	second, err := r.Resolve(p)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, first.Tuple(), second.Tuple())
}

func TestResolveOptionalFields(t *testing.T) {
	r, _ := newResolver(t)
	base := params.Params{Standard: "DVB-S2", FrameSize: "short", Code: "3/4"}

	for mask := 0; mask < 8; mask++ {
		p := base
		want := []any{dvb.StandardDVBS2, dvb.FECFrameShort, dvb.C3_4}
		if mask&1 != 0 {
			p.Constellation = ptr("8psk")
			want = append(want, dvb.Mod8PSK)
		}
		if mask&2 != 0 {
			p.Rolloff = ptr(0.25)
			want = append(want, dvb.RollOff025)
		}
		if mask&4 != 0 {
			p.Pilots = true
			want = append(want, dvb.PilotsOn)
		}
		res, err := r.Resolve(p)
		require.NoError(t, err, "mask %03b", mask)
		assert.Equal(t, want, res.Tuple(), "mask %03b", mask)
		assert.Equal(t, mask&1 != 0, res.Constellation != nil)
		assert.Equal(t, mask&2 != 0, res.Rolloff != nil)
		assert.Equal(t, mask&4 != 0, res.Pilots != nil)
	}
}

func TestResolvePilotsOff(t *testing.T) {
	r, _ := newResolver(t)
	res, err := r.Resolve(params.Params{Standard: "DVB-S2", FrameSize: "normal", Code: "1/2", Pilots: false})
	require.NoError(t, err)
	require.NotNil(t, res.Pilots)
	assert.Equal(t, dvb.PilotsOff, *res.Pilots)
}

func TestResolveDisambiguation(t *testing.T) {
	r, _ := newResolver(t)
	resolve := func(code, frame string, vlsnr bool) dvb.CodeRate {
		res, err := r.Resolve(params.Params{Standard: "DVB-S2X", FrameSize: frame, Code: code, VLSNR: vlsnr})
		require.NoError(t, err, "%s %s %t", code, frame, vlsnr)
		return res.Code
	}

	assert.Equal(t, dvb.C1_3, resolve("1/3", "normal", false))
	assert.Equal(t, dvb.C1_3, resolve("1/3", "short", false))
	assert.Equal(t, dvb.C1_3_MEDIUM, resolve("1/3", "medium", true))
	assert.Equal(t, dvb.C1_3_VLSNR, resolve("1/3", "short", true))
	assert.Equal(t, dvb.C11_45, resolve("11/45", "short", false))
	assert.Equal(t, dvb.C11_45_MEDIUM, resolve("11/45", "medium", true))
	assert.Equal(t, dvb.C11_45_VLSNR_SF2, resolve("11/45", "short", true))
	assert.Equal(t, dvb.C1_5_MEDIUM, resolve("1/5", "medium", true))
	assert.Equal(t, dvb.C1_5_VLSNR, resolve("1/5", "short", true))
	assert.Equal(t, dvb.C2_9_VLSNR, resolve("2/9", "normal", true))

	// Any two contexts of a code rate that differ in VL-SNR mode resolve to
	// different identifiers.
	for _, code := range catalog.Default().CodeRates {
		for i, a := range code.Variants {
			for _, b := range code.Variants[i+1:] {
				if a.VLSNR == b.VLSNR {
					continue
				}
				assert.NotEqual(t,
					resolve(code.Code, a.Frame, a.VLSNR),
					resolve(code.Code, b.Frame, b.VLSNR),
					"%s %+v %+v", code.Code, a, b)
			}
		}
	}
}

func TestResolveInvalid(t *testing.T) {
	r, buf := newResolver(t)
	_, err := r.Resolve(params.Params{Standard: "dvb-s2", FrameSize: "normal", Code: "1/5"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, params.ErrInvalidConfiguration))
	assert.Contains(t, err.Error(), "invalid DVB-S2 parameters")

	var ice *params.InvalidConfigurationError
	require.ErrorAs(t, err, &ice)
	assert.Equal(t, "DVB-S2", ice.Standard)

	var fe *params.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "code", fe.Field)
	assert.Contains(t, buf.String(), `code rate "1/5" not supported in DVB-S2 with normal frame size`)
}

func TestLenientValidationGap(t *testing.T) {
	r, _ := newResolver(t)
	r.Validator.Lenient = true

	// 1/3 supports VL-SNR in medium and short frames, not in normal ones.
	p := params.Params{Standard: "DVB-S2X", FrameSize: "normal", Code: "1/3", VLSNR: true}
	assert.True(t, r.Validator.Validate(p))

	defer func() {
		rec := recover()
		ie, ok := rec.(*params.InvariantError)
		require.True(t, ok, "unexpected panic value %v", rec)
		assert.Equal(t, "1/3", ie.Code)
		assert.Equal(t, "normal", ie.Frame)
		assert.True(t, ie.VLSNR)
	}()
	r.Resolve(p)
	t.Fatal("Resolve did not panic")
}

func TestPackageLevelHelpers(t *testing.T) {
	assert.True(t, params.Validate(params.Params{Standard: "DVB-S2", FrameSize: "normal", Code: "1/4"}))
	res, err := params.Resolve(params.Params{Standard: "DVB-S2X", FrameSize: "short", Code: "4/15", VLSNR: true})
	require.NoError(t, err)
	assert.Equal(t, dvb.C4_15_VLSNR, res.Code)
}

func TestConcurrentResolve(t *testing.T) {
	r, _ := newResolver(t)
	p := params.Params{Standard: "DVB-S2X", FrameSize: "medium", Code: "11/45", VLSNR: true, Pilots: true}
	want, err := r.Resolve(p)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]params.Resolution, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = r.Resolve(p)
		}(i)
	}
	wg.Wait()
	for _, got := range results {
		assert.Equal(t, want, got)
	}
}
