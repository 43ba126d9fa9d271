// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"
)

const defaultLogLevel = "info"

// config defines the configuration options for the bech32 CLI.
//
// See loadConfig for details on the configuration load process.
type config struct {
	Bech32m  bool   `short:"m" long:"bech32m" description:"Use the Bech32m checksum variant instead of Bech32 (encode only)"`
	LogFile  string `short:"L" long:"logfile" description:"File to write rotated logs to; logging is disabled if unset"`
	LogLevel string `long:"loglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`
	CacheLog bool   `long:"cachelog" description:"Log validation-cache hits at debug level (validate command only)"`
}

// loadConfig initializes and parses config using command line options,
// returning it along with the non-flag arguments (the command and its
// operands).
func loadConfig() (*config, []string, error) {
	cfg := config{
		LogLevel: defaultLogLevel,
	}

	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = "[OPTIONS] <encode|decode|locate|validate> [args...]"
	remainingArgs, err := parser.Parse()
	if err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, nil, err
	}

	if len(remainingArgs) == 0 {
		err := fmt.Errorf("loadConfig: no command given")
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	if _, err := btclogLevelOrError(cfg.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil, nil, err
	}

	return &cfg, remainingArgs, nil
}
