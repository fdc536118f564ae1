// Command settings loads a settings file and prints it, a single key, or a
// conversion to TOML, YAML or JSON.
//
// Usage:
//
//	settings [-sep :] [-format lines|toml|yaml|json] [-get key] [-require k1,k2] [-debug] <file>
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/lixenwraith/settings"
	"github.com/lixenwraith/settings/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("settings", flag.ContinueOnError)
	fs.SetOutput(stderr)

	sep := fs.String("sep", settings.DefaultSeparator, "separator between key and value")
	formatName := fs.String("format", string(settings.FormatLines), "output format: lines, toml, yaml or json")
	get := fs.String("get", "", "print only the value of this key")
	require := fs.String("require", "", "comma-separated keys that must be present")
	debug := fs.Bool("debug", false, "log parse details to stderr")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: settings [flags] <file>")
		fs.PrintDefaults()
		return 2
	}

	logCfg := logging.DefaultConfig()
	if *debug {
		logCfg = logging.DebugConfig()
	}
	logger, err := logging.New(logCfg)
	if err != nil {
		fmt.Fprintf(stderr, "failed to create logger: %v\n", err)
		return 1
	}
	defer logger.Sync()

	format, err := settings.ParseFormat(*formatName)
	if err != nil {
		logger.Error("invalid format", zap.Error(err))
		return 2
	}

	path := fs.Arg(0)
	store, err := settings.NewBuilder().
		WithFile(path).
		WithSeparator(*sep).
		WithLogger(logger).
		WithRequired(splitKeys(*require)...).
		Build()
	if err != nil {
		logger.Error("failed to load settings", zap.String("path", path), zap.Error(err))
		return 1
	}
	logger.Info("settings loaded", zap.String("path", path), zap.Int("entries", store.Len()))

	if *get != "" {
		item, ok := store.Lookup(*get)
		if !ok {
			logger.Error("key not found", zap.String("key", *get))
			return 1
		}
		fmt.Fprintln(stdout, item)
		return 0
	}

	if err := store.Encode(stdout, format); err != nil {
		logger.Error("failed to encode settings", zap.Error(err))
		return 1
	}
	return 0
}

// splitKeys parses a comma-separated key list, dropping empty entries.
func splitKeys(list string) []string {
	var keys []string
	for _, key := range strings.Split(list, ",") {
		if key = strings.TrimSpace(key); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}
