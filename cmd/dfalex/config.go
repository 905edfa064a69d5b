package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/npillmayer/dfalex"
	"github.com/npillmayer/dfalex/deflang"
	"github.com/npillmayer/dfalex/scanner"
	"github.com/npillmayer/dfalex/tables"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/pflag"
)

// Configuration keys
const (
	keyScan      = "dfalex.tables.scan"
	keyToken     = "dfalex.tables.token"
	keyKeyword   = "dfalex.tables.keyword"
	keyDelimiter = "dfalex.delimiter"
	keySkip      = "dfalex.skip"
	keyTrace     = "tracing.level"
	keyPanic     = "panic-on-inconsistent-tables"
)

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"scan":                         keyScan,
	"token":                        keyToken,
	"keyword":                      keyKeyword,
	"delimiter":                    keyDelimiter,
	"skip":                         keySkip,
	"trace":                        keyTrace,
	"panic-on-inconsistent-tables": keyPanic,
}

var tracerKeys = []string{
	"dfalex.tables", "dfalex.scanner", "dfalex.tokenizer", "dfalex.lexmach", "dfalex.cli",
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		keyDelimiter: string(tables.DefaultDelimiter),
		keySkip:      []string{string(deflang.WhiteSpace), string(deflang.Comment)},
		keyTrace:     "Error",
		keyPanic:     false,
	}
}

// loadConfig layers configuration sources: defaults, an optional JSON file,
// environment variables with prefix DFALEX_ and command line flags set by the
// user, each overriding the former.
func loadConfig(path string, flags *pflag.FlagSet) (*koanf.Koanf, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), json.Parser()); err != nil {
			return nil, fmt.Errorf("cannot load configuration: %w", err)
		}
		tracer().Infof("loaded configuration from %q", path)
	}
	if err := k.Load(env.Provider("DFALEX_", ".", envKey), nil); err != nil {
		return nil, err
	}
	if flags != nil {
		if err := k.Load(confmap.Provider(flagOverrides(flags), "."), nil); err != nil {
			return nil, err
		}
	}
	return k, nil
}

// envKey maps DFALEX_TABLES_SCAN to dfalex.tables.scan.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), "_", ".")
}

func flagOverrides(flags *pflag.FlagSet) map[string]interface{} {
	m := make(map[string]interface{})
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		var v interface{}
		var err error
		switch f.Value.Type() {
		case "bool":
			v, err = flags.GetBool(name)
		case "stringSlice":
			v, err = flags.GetStringSlice(name)
		default:
			v = f.Value.String()
		}
		if err == nil {
			m[key] = v
		}
	}
	return m
}

func initTracing(level string) {
	lvl := tracing.TraceLevelFromString(level)
	for _, key := range tracerKeys {
		tracing.Select(key).SetTraceLevel(lvl)
	}
}

// newScanner creates a scanner with the default tables installed, then replaces
// tables for which the configuration names a file.
func newScanner(conf *koanf.Koanf) (*scanner.Scanner, error) {
	opts := []scanner.Option{scanner.PanicOnInconsistentTables(conf.Bool(keyPanic))}
	if d := conf.String(keyDelimiter); d != "" {
		r, _ := utf8.DecodeRuneInString(d)
		opts = append(opts, scanner.TableOptions(tables.Delimiter(r)))
	}
	sc := scanner.New(opts...)
	if err := deflang.Install(sc); err != nil {
		return nil, err
	}
	if p := conf.String(keyScan); p != "" {
		if err := sc.LoadTransitionTable(p); err != nil {
			return nil, err
		}
	}
	if p := conf.String(keyToken); p != "" {
		if err := sc.LoadTokenTable(p); err != nil {
			return nil, err
		}
	}
	if p := conf.String(keyKeyword); p != "" {
		if err := sc.LoadKeywordTable(p); err != nil {
			return nil, err
		}
	}
	return sc, nil
}

func skipKinds(conf *koanf.Koanf) map[dfalex.Kind]bool {
	skip := make(map[dfalex.Kind]bool)
	kinds := conf.Strings(keySkip)
	if len(kinds) == 0 { // set from the environment as a comma separated list
		kinds = strings.Split(conf.String(keySkip), ",")
	}
	for _, k := range kinds {
		if k = strings.TrimSpace(k); k != "" {
			skip[dfalex.Kind(k)] = true
		}
	}
	return skip
}
