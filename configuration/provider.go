package configuration

import (
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/maps"
	"github.com/spf13/pflag"

	"github.com/iotaledger/hive.go/ierrors"
)

var errUnsupportedByProvider = ierrors.New("pflag provider does not support this method")

// lowerPosflag implements a pflag command line provider that lower cases all keys.
type lowerPosflag struct {
	delim   string
	flagset *pflag.FlagSet
	ko      *koanf.Koanf
}

// lowerPosflagProvider returns a commandline flags provider that returns a nested map where the nesting hierarchy of
// keys is defined by delim, so "bench.loop" becomes {bench: {loop: ...}}.
//
// Flags that were not changed on the command line only contribute their default value if the key was not loaded from
// another provider (e.g. a config file) before.
func lowerPosflagProvider(f *pflag.FlagSet, delim string, ko *koanf.Koanf) *lowerPosflag {
	return &lowerPosflag{
		flagset: f,
		delim:   delim,
		ko:      ko,
	}
}

// Read reads the flag variables and returns a nested conf map.
func (p *lowerPosflag) Read() (map[string]interface{}, error) {
	mp := make(map[string]interface{})
	p.flagset.VisitAll(func(f *pflag.Flag) {
		key := strings.ToLower(f.Name)
		if !f.Changed && (p.ko == nil || p.ko.Exists(key)) {
			return
		}

		mp[key] = p.flagValue(f)
	})

	return maps.Unflatten(mp, p.delim), nil
}

func (p *lowerPosflag) flagValue(f *pflag.Flag) interface{} {
	switch f.Value.Type() {
	case "int":
		i, _ := p.flagset.GetInt(f.Name)

		return int64(i)
	case "int64":
		i, _ := p.flagset.GetInt64(f.Name)

		return i
	case "uint":
		u, _ := p.flagset.GetUint(f.Name)

		return uint64(u)
	case "uint64":
		u, _ := p.flagset.GetUint64(f.Name)

		return u
	case "bool":
		b, _ := p.flagset.GetBool(f.Name)

		return b
	case "stringSlice":
		s, _ := p.flagset.GetStringSlice(f.Name)

		return s
	case "intSlice":
		s, _ := p.flagset.GetIntSlice(f.Name)

		return s
	default:
		return f.Value.String()
	}
}

// ReadBytes is not supported by the pflag provider.
func (p *lowerPosflag) ReadBytes() ([]byte, error) {
	return nil, errUnsupportedByProvider
}

// Watch is not supported.
func (p *lowerPosflag) Watch(func(event interface{}, err error)) error {
	return errUnsupportedByProvider
}
