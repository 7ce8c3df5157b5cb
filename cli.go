package main

type ProfileFlags struct {
	Standard      string `help:"DVB standard (DVB-S2, DVB-S2X, DVB-T2)"`
	FrameSize     string `help:"Frame size (normal, medium, short)"`
	Code          string `help:"LDPC code rate identifier (e.g. 1/4, 13/45)"`
	Constellation string `help:"Constellation (QPSK, 8PSK, 16APSK, ...)"`
	Rolloff       string `help:"Roll-off factor"`
	Pilots        string `help:"Whether physical layer pilots are enabled (true/false)"`
	VLSNR         bool   `name:"vl-snr" help:"DVB-S2X very-low SNR mode"`
	Lenient       bool   `help:"Accept code rates whose VL-SNR support is in another frame size"`
}

var cli struct {
	Verbose bool   `help:"Prints debug output by default"`
	Config  string `help:"Path to an HCL config file" type:"path"`

	Validate struct {
		ProfileFlags `embed:""`
	} `cmd:"" help:"Check a parameter set against the catalog"`
	Resolve struct {
		ProfileFlags `embed:""`

		JSON bool `name:"json" help:"Print the resolution as JSON"`
	} `cmd:"" help:"Map a parameter set to the receiver block identifiers"`
	List struct {
		Standard string `help:"Only list this standard"`
	} `cmd:"" help:"List the supported parameters per standard"`
	Browse struct {
		Standard string `default:"DVB-S2X" help:"Standard to browse"`
	} `cmd:"" help:"Browse the catalog in a terminal UI"`
}
