package catalog

import "github.com/jrwynneiii/dvbparams/dvb"

const (
	DVBS2  = "DVB-S2"
	DVBS2X = "DVB-S2X"
	DVBT2  = "DVB-T2"
)

const (
	Normal = "normal"
	Medium = "medium"
	Short  = "short"
)

var (
	allStandards = []string{DVBS2, DVBS2X, DVBT2}
	satellite    = []string{DVBS2, DVBS2X}
	s2x          = []string{DVBS2X}
	t2           = []string{DVBT2}

	normalShort = []string{Normal, Short}
	normalOnly  = []string{Normal}
	shortOnly   = []string{Short}
)

func single(code string, id dvb.CodeRate, standards, frames []string) CodeRate {
	return CodeRate{Code: code, ID: id, Standards: standards, Frames: frames}
}

func variants(code string, standards []string, vs ...Variant) CodeRate {
	return CodeRate{Code: code, Standards: standards, Variants: vs}
}

func builtin() *Catalog {
	return &Catalog{
		// DVB-S2X shares the DVB-S2 receiver chain; the engine has no
		// separate standard identifier for it.
		Standards: []Standard{
			{Name: DVBS2, ID: dvb.StandardDVBS2},
			{Name: DVBS2X, ID: dvb.StandardDVBS2, VLSNR: true},
			{Name: DVBT2, ID: dvb.StandardDVBT2},
		},
		FrameSizes: []FrameSize{
			{Name: Normal, ID: dvb.FECFrameNormal},
			{Name: Medium, ID: dvb.FECFrameMedium},
			{Name: Short, ID: dvb.FECFrameShort},
		},
		Constellations: []Constellation{
			{Name: "QPSK", ID: dvb.ModQPSK, Standards: allStandards},
			{Name: "8PSK", ID: dvb.Mod8PSK, Standards: satellite},
			{Name: "16APSK", ID: dvb.Mod16APSK, Standards: satellite},
			{Name: "32APSK", ID: dvb.Mod32APSK, Standards: satellite},
			{Name: "BPSK", ID: dvb.ModBPSK, Standards: s2x},
			{Name: "BPSK_SF2", ID: dvb.ModBPSKSF2, Standards: s2x},
			{Name: "8APSK", ID: dvb.Mod8APSK, Standards: s2x},
			{Name: "8_8APSK", ID: dvb.Mod8_8APSK, Standards: s2x},
			{Name: "4_12_16APSK", ID: dvb.Mod4_12_16APSK, Standards: s2x},
			{Name: "4_8_4_16APSK", ID: dvb.Mod4_8_4_16APSK, Standards: s2x},
			{Name: "64APSK", ID: dvb.Mod64APSK, Standards: s2x},
			{Name: "8_16_20_20APSK", ID: dvb.Mod8_16_20_20APSK, Standards: s2x},
			{Name: "4_12_20_28APSK", ID: dvb.Mod4_12_20_28APSK, Standards: s2x},
			{Name: "128APSK", ID: dvb.Mod128APSK, Standards: s2x},
			{Name: "256APSK", ID: dvb.Mod256APSK, Standards: s2x},
			{Name: "16QAM", ID: dvb.Mod16QAM, Standards: t2},
			{Name: "64QAM", ID: dvb.Mod64QAM, Standards: t2},
			{Name: "256QAM", ID: dvb.Mod256QAM, Standards: t2},
		},
		CodeRates: []CodeRate{
			single("1/4", dvb.C1_4, allStandards, normalShort),
			variants("1/3", allStandards,
				Variant{Frame: Normal, ID: dvb.C1_3},
				Variant{Frame: Short, ID: dvb.C1_3},
				Variant{Frame: Medium, VLSNR: true, ID: dvb.C1_3_MEDIUM},
				Variant{Frame: Short, VLSNR: true, ID: dvb.C1_3_VLSNR},
			),
			single("2/5", dvb.C2_5, allStandards, normalShort),
			single("1/2", dvb.C1_2, allStandards, normalShort),
			single("3/5", dvb.C3_5, allStandards, normalShort),
			single("2/3", dvb.C2_3, allStandards, normalShort),
			single("3/4", dvb.C3_4, allStandards, normalShort),
			single("4/5", dvb.C4_5, allStandards, normalShort),
			single("5/6", dvb.C5_6, allStandards, normalShort),
			single("8/9", dvb.C8_9, satellite, normalShort),
			single("9/10", dvb.C9_10, satellite, normalOnly),

			// DVB-S2X normal frames
			variants("2/9", s2x, Variant{Frame: Normal, VLSNR: true, ID: dvb.C2_9_VLSNR}),
			single("13/45", dvb.C13_45, s2x, normalOnly),
			single("9/20", dvb.C9_20, s2x, normalOnly),
			single("90/180", dvb.C90_180, s2x, normalOnly),
			single("96/180", dvb.C96_180, s2x, normalOnly),
			single("11/20", dvb.C11_20, s2x, normalOnly),
			single("100/180", dvb.C100_180, s2x, normalOnly),
			single("104/180", dvb.C104_180, s2x, normalOnly),
			single("26/45", dvb.C26_45, s2x, normalShort),
			single("18/30", dvb.C18_30, s2x, normalOnly),
			single("28/45", dvb.C28_45, s2x, normalOnly),
			single("23/36", dvb.C23_36, s2x, normalOnly),
			single("116/180", dvb.C116_180, s2x, normalOnly),
			single("20/30", dvb.C20_30, s2x, normalOnly),
			single("124/180", dvb.C124_180, s2x, normalOnly),
			single("25/36", dvb.C25_36, s2x, normalOnly),
			single("128/180", dvb.C128_180, s2x, normalOnly),
			single("13/18", dvb.C13_18, s2x, normalOnly),
			single("132/180", dvb.C132_180, s2x, normalOnly),
			single("22/30", dvb.C22_30, s2x, normalOnly),
			single("135/180", dvb.C135_180, s2x, normalOnly),
			single("140/180", dvb.C140_180, s2x, normalOnly),
			single("7/9", dvb.C7_9, s2x, normalOnly),
			single("154/180", dvb.C154_180, s2x, normalOnly),

			// DVB-S2X short and medium frames, including the VL-SNR set.
			// The BPSK-S (SF2) form of 1/5 shares its frame/VL-SNR key with
			// plain BPSK and is therefore not reachable from this table.
			variants("1/5", s2x,
				Variant{Frame: Medium, VLSNR: true, ID: dvb.C1_5_MEDIUM},
				Variant{Frame: Short, VLSNR: true, ID: dvb.C1_5_VLSNR},
			),
			variants("11/45", s2x,
				Variant{Frame: Short, ID: dvb.C11_45},
				Variant{Frame: Medium, VLSNR: true, ID: dvb.C11_45_MEDIUM},
				Variant{Frame: Short, VLSNR: true, ID: dvb.C11_45_VLSNR_SF2},
			),
			variants("4/15", s2x,
				Variant{Frame: Short, ID: dvb.C4_15},
				Variant{Frame: Short, VLSNR: true, ID: dvb.C4_15_VLSNR},
			),
			single("14/45", dvb.C14_45, s2x, shortOnly),
			single("7/15", dvb.C7_15, s2x, shortOnly),
			single("8/15", dvb.C8_15, s2x, shortOnly),
			single("32/45", dvb.C32_45, s2x, shortOnly),
		},
		Rolloffs: []Rolloff{
			{Factor: 0.35, ID: dvb.RollOff035, Standards: satellite},
			{Factor: 0.25, ID: dvb.RollOff025, Standards: satellite},
			{Factor: 0.20, ID: dvb.RollOff020, Standards: satellite},
			{Factor: 0.15, ID: dvb.RollOff015, Standards: s2x},
			{Factor: 0.10, ID: dvb.RollOff010, Standards: s2x},
			{Factor: 0.05, ID: dvb.RollOff005, Standards: s2x},
		},
		Pilots: map[bool]dvb.Pilots{
			false: dvb.PilotsOff,
			true:  dvb.PilotsOn,
		},
	}
}
