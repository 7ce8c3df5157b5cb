package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/jrwynneiii/dvbparams/catalog"
	"github.com/jrwynneiii/dvbparams/config"
	"github.com/jrwynneiii/dvbparams/params"
	"github.com/jrwynneiii/dvbparams/tui"
	jsoniter "github.com/json-iterator/go"
)

// applyFlags overlays the command line on the configured profile. Flags left
// empty keep the configured value.
func applyFlags(conf config.Conf, flags ProfileFlags) (params.Params, bool, error) {
	p := conf.Profile.Params()
	if flags.Standard != "" {
		p.Standard = flags.Standard
	}
	if flags.FrameSize != "" {
		p.FrameSize = flags.FrameSize
	}
	if flags.Code != "" {
		p.Code = flags.Code
	}
	if flags.Constellation != "" {
		c := flags.Constellation
		p.Constellation = &c
	}
	if flags.Rolloff != "" {
		ro, err := strconv.ParseFloat(flags.Rolloff, 64)
		if err != nil {
			return p, false, fmt.Errorf("roll-off %q is not a number: %w", flags.Rolloff, err)
		}
		p.Rolloff = &ro
	}
	if flags.Pilots != "" {
		if on, err := strconv.ParseBool(flags.Pilots); err == nil {
			p.Pilots = on
		} else {
			p.Pilots = flags.Pilots
		}
	}
	if flags.VLSNR {
		p.VLSNR = true
	}
	return p, conf.Validation.Lenient || flags.Lenient, nil
}

func newResolver(lenient bool) *params.Resolver {
	v := params.NewValidator(catalog.Default(), params.NewDiagnosticLogger())
	v.Lenient = lenient
	return params.NewResolver(v)
}

func logCatalog(cat *catalog.Catalog, only string) {
	for _, std := range cat.Standards {
		if only != "" && !strings.EqualFold(only, std.Name) {
			continue
		}
		log.Infof("Standard: %s (%s)", std.Name, std.ID)
		if std.VLSNR {
			log.Info("\tVL-SNR mode supported")
		}
		log.Infof("\tConstellations: %v", cat.ConstellationsFor(std.Name))
		if rolloffs := cat.RolloffsFor(std.Name); len(rolloffs) > 0 {
			log.Infof("\tRoll-off factors: %v", rolloffs)
		}
		for _, frame := range cat.FrameSizeNames() {
			codes := cat.CodeRatesFor(std.Name, frame)
			if len(codes) == 0 {
				continue
			}
			log.Infof("\tCode rates (%s): %v", frame, codes)
		}
	}
}

func main() {
	flags := kong.Parse(&cli)
	if cli.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	path := cli.Config
	if path == "" {
		path = config.FindConfigPath(config.SearchPaths)
	}
	k, err := config.Load(path)
	if err != nil {
		log.Errorf("Could not read environment config: %v", err)
	}
	conf, err := config.Unmarshal(k)
	if err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	if conf.Log.Level != "" && !cli.Verbose {
		level, err := log.ParseLevel(conf.Log.Level)
		if err != nil {
			log.Fatalf("Invalid log level %q: %v", conf.Log.Level, err)
		}
		log.SetLevel(level)
	}

	switch flags.Command() {
	case "validate":
		p, lenient, err := applyFlags(conf, cli.Validate.ProfileFlags)
		if err != nil {
			log.Fatal(err)
		}
		log.Debugf("Validating %+v", p)
		if !newResolver(lenient).Validator.Validate(p) {
			os.Exit(1)
		}
		log.Info("Parameters are valid")

	case "resolve":
		p, lenient, err := applyFlags(conf, cli.Resolve.ProfileFlags)
		if err != nil {
			log.Fatal(err)
		}
		res, err := newResolver(lenient).Resolve(p)
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}
		if cli.Resolve.JSON {
			out, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(res, "", "  ")
			if err != nil {
				log.Fatalf("Could not encode resolution: %v", err)
			}
			fmt.Println(string(out))
			return
		}
		var fields []string
		for _, id := range res.Tuple() {
			fields = append(fields, fmt.Sprint(id))
		}
		fmt.Println(strings.Join(fields, " "))

	case "list":
		logCatalog(catalog.Default(), cli.List.Standard)

	case "browse":
		if err := tui.StartUI(catalog.Default(), strings.ToUpper(cli.Browse.Standard)); err != nil {
			log.Fatal(err)
		}

	default:
		log.Info("Command not recognized")
	}
}
