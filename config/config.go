package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/jrwynneiii/dvbparams/params"
	"github.com/knadh/koanf/parsers/hcl"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const EnvPrefix = "DVBPARAMS_"

var SearchPaths = []string{"/etc/dvbparams/config.hcl", "~/.config/dvbparams/config.hcl", "./config.hcl"}

type ProfileConf struct {
	Standard      string   `koanf:"standard"`
	FrameSize     string   `koanf:"frame_size"`
	Code          string   `koanf:"code"`
	Constellation string   `koanf:"constellation"`
	Rolloff       *float64 `koanf:"rolloff"`
	Pilots        any      `koanf:"pilots"`
	VLSNR         bool     `koanf:"vl_snr"`
}

type ValidationConf struct {
	Lenient bool `koanf:"lenient"`
}

type LogConf struct {
	Level string `koanf:"level"`
}

type Conf struct {
	Profile    ProfileConf    `koanf:"profile"`
	Validation ValidationConf `koanf:"validation"`
	Log        LogConf        `koanf:"log"`
}

// Params converts the profile to validator input. An empty constellation
// counts as not supplied.
func (p ProfileConf) Params() params.Params {
	out := params.Params{
		Standard:  p.Standard,
		FrameSize: p.FrameSize,
		Code:      p.Code,
		Rolloff:   p.Rolloff,
		Pilots:    p.Pilots,
		VLSNR:     p.VLSNR,
	}
	if p.Constellation != "" {
		c := p.Constellation
		out.Constellation = &c
	}
	return out
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// FindConfigPath returns the first of paths that exists, or "".
func FindConfigPath(paths []string) string {
	for _, path := range paths {
		path = expandHome(path)
		if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
			log.Infof("Found config file: %s", path)
			return path
		}
	}
	log.Info("Config file not found!")
	return ""
}

// Load reads the HCL file at path. When there is no file, or it cannot be
// read, DVBPARAMS_* environment variables are used instead.
func Load(path string) (*koanf.Koanf, error) {
	k := koanf.New(".")
	if path != "" {
		err := k.Load(file.Provider(path), hcl.Parser(true))
		if err == nil {
			return k, nil
		}
		log.Errorf("Could not read config file: %v", err)
	}

	log.Info("Attempting to use environment variables")
	err := k.Load(env.Provider(".", env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: transformEnv,
	}), nil)
	return k, err
}

// transformEnv maps DVBPARAMS_PROFILE_FRAME_SIZE to profile.frame_size.
// Boolean keys are parsed; a value that does not parse is kept as a string
// so validation can reject it.
func transformEnv(k, v string) (string, any) {
	key := strings.ToLower(strings.TrimPrefix(k, EnvPrefix))
	key = strings.Replace(key, "_", ".", 1)
	log.Debugf("Found config env var: %s=%v", key, v)

	switch key {
	case "profile.pilots", "profile.vl_snr", "validation.lenient":
		if b, err := strconv.ParseBool(v); err == nil {
			return key, b
		}
	}
	return key, v
}

func Unmarshal(k *koanf.Koanf) (Conf, error) {
	var conf Conf
	err := k.Unmarshal("", &conf)
	return conf, err
}
