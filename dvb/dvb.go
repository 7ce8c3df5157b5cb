// Package dvb mirrors the configuration enums of the gr-dtv / gr-dvbs2rx
// signal-processing blocks. The values are opaque to this module and only
// passed through to the engine.
package dvb

import "fmt"

type Standard int

const (
	StandardDVBS2 Standard = iota
	StandardDVBT2
)

var standardNames = []string{"STANDARD_DVBS2", "STANDARD_DVBT2"}

type FrameSize int

const (
	FECFrameShort FrameSize = iota
	FECFrameNormal
	FECFrameMedium
)

var frameSizeNames = []string{"FECFRAME_SHORT", "FECFRAME_NORMAL", "FECFRAME_MEDIUM"}

type CodeRate int

const (
	C1_4 CodeRate = iota
	C1_3
	C2_5
	C1_2
	C3_5
	C2_3
	C3_4
	C4_5
	C5_6
	C7_8
	C8_9
	C9_10
	C13_45
	C9_20
	C90_180
	C96_180
	C11_20
	C100_180
	C104_180
	C26_45
	C18_30
	C28_45
	C23_36
	C116_180
	C20_30
	C124_180
	C25_36
	C128_180
	C13_18
	C132_180
	C22_30
	C135_180
	C140_180
	C7_9
	C154_180
	C11_45
	C4_15
	C14_45
	C7_15
	C8_15
	C32_45
	C2_9_VLSNR
	C1_5_MEDIUM
	C11_45_MEDIUM
	C1_3_MEDIUM
	C1_5_VLSNR_SF2
	C11_45_VLSNR_SF2
	C1_5_VLSNR
	C4_15_VLSNR
	C1_3_VLSNR
	COther
)

var codeRateNames = []string{
	"C1_4", "C1_3", "C2_5", "C1_2", "C3_5", "C2_3", "C3_4", "C4_5", "C5_6", "C7_8",
	"C8_9", "C9_10", "C13_45", "C9_20", "C90_180", "C96_180", "C11_20", "C100_180",
	"C104_180", "C26_45", "C18_30", "C28_45", "C23_36", "C116_180", "C20_30",
	"C124_180", "C25_36", "C128_180", "C13_18", "C132_180", "C22_30", "C135_180",
	"C140_180", "C7_9", "C154_180", "C11_45", "C4_15", "C14_45", "C7_15", "C8_15",
	"C32_45", "C2_9_VLSNR", "C1_5_MEDIUM", "C11_45_MEDIUM", "C1_3_MEDIUM",
	"C1_5_VLSNR_SF2", "C11_45_VLSNR_SF2", "C1_5_VLSNR", "C4_15_VLSNR", "C1_3_VLSNR",
	"C_OTHER",
}

type Modulation int

const (
	ModBPSK Modulation = iota
	ModBPSKSF2
	ModQPSK
	Mod8PSK
	Mod8APSK
	Mod16APSK
	Mod8_8APSK
	Mod32APSK
	Mod4_12_16APSK
	Mod4_8_4_16APSK
	Mod64APSK
	Mod8_16_20_20APSK
	Mod4_12_20_28APSK
	Mod128APSK
	Mod256APSK
	Mod16QAM
	Mod64QAM
	Mod256QAM
	ModOther
)

var modulationNames = []string{
	"MOD_BPSK", "MOD_BPSK_SF2", "MOD_QPSK", "MOD_8PSK", "MOD_8APSK", "MOD_16APSK",
	"MOD_8_8APSK", "MOD_32APSK", "MOD_4_12_16APSK", "MOD_4_8_4_16APSK", "MOD_64APSK",
	"MOD_8_16_20_20APSK", "MOD_4_12_20_28APSK", "MOD_128APSK", "MOD_256APSK",
	"MOD_16QAM", "MOD_64QAM", "MOD_256QAM", "MOD_OTHER",
}

type RollOff int

const (
	RollOff035 RollOff = iota
	RollOff025
	RollOff020
	RollOffReserved
	RollOff015
	RollOff010
	RollOff005
)

var rollOffNames = []string{"RO_0_35", "RO_0_25", "RO_0_20", "RO_RESERVED", "RO_0_15", "RO_0_10", "RO_0_05"}

type Pilots int

const (
	PilotsOff Pilots = iota
	PilotsOn
)

var pilotsNames = []string{"PILOTS_OFF", "PILOTS_ON"}

func name(names []string, kind string, v int) string {
	if v < 0 || v >= len(names) {
		return fmt.Sprintf("%s(%d)", kind, v)
	}
	return names[v]
}

func (s Standard) String() string   { return name(standardNames, "Standard", int(s)) }
func (f FrameSize) String() string  { return name(frameSizeNames, "FrameSize", int(f)) }
func (c CodeRate) String() string   { return name(codeRateNames, "CodeRate", int(c)) }
func (m Modulation) String() string { return name(modulationNames, "Modulation", int(m)) }
func (r RollOff) String() string    { return name(rollOffNames, "RollOff", int(r)) }
func (p Pilots) String() string     { return name(pilotsNames, "Pilots", int(p)) }

// The engine symbol names double as the text encoding so resolutions
// serialize to something a flowgraph author recognizes.
func (s Standard) MarshalText() ([]byte, error)   { return []byte(s.String()), nil }
func (f FrameSize) MarshalText() ([]byte, error)  { return []byte(f.String()), nil }
func (c CodeRate) MarshalText() ([]byte, error)   { return []byte(c.String()), nil }
func (m Modulation) MarshalText() ([]byte, error) { return []byte(m.String()), nil }
func (r RollOff) MarshalText() ([]byte, error)    { return []byte(r.String()), nil }
func (p Pilots) MarshalText() ([]byte, error)     { return []byte(p.String()), nil }
