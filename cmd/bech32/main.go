// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command bech32 encodes, decodes, and diagnoses Bech32/Bech32m strings
// from the command line, driving the github.com/btcsuite/bech32core/bech32
// library.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	bversion "github.com/btcsuite/bech32core/address/bech32"
	"github.com/btcsuite/bech32core/bech32"
	"github.com/btcsuite/bech32core/bech32cache"
	"github.com/btcsuite/bech32core/internal/log"
	"github.com/btcsuite/btclog"
)

// btclogLevelOrError validates a log level string, returning an error if
// it isn't one btclog recognizes.
func btclogLevelOrError(level string) (btclog.Level, error) {
	l, ok := btclog.LevelFromString(level)
	if !ok {
		return l, fmt.Errorf("loadConfig: invalid log level %q", level)
	}
	return l, nil
}

func main() {
	cfg, args, err := loadConfig()
	if err != nil {
		// loadConfig already printed usage/error to stderr.
		os.Exit(1)
	}

	if err := run(cfg, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg *config, args []string) error {
	if cfg.LogFile != "" {
		log.InitLogRotator(cfg.LogFile)
		log.SetLogLevels(cfg.LogLevel)
	} else {
		log.Bech32Log.SetLevel(btclog.LevelOff)
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "encode":
		return cmdEncode(cfg, rest)
	case "decode":
		return cmdDecode(rest)
	case "locate":
		return cmdLocate(rest)
	case "validate":
		return cmdValidate(cfg, rest)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// parseData parses a comma-separated list of 5-bit symbols, e.g.
// "0,1,2,31".
func parseData(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	data := make([]byte, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid data symbol %q: %w", p, err)
		}
		if v < 0 || v > 31 {
			return nil, fmt.Errorf("data symbol %d out of range 0..31", v)
		}
		data[i] = byte(v)
	}
	return data, nil
}

func cmdEncode(cfg *config, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: encode <hrp> <data symbols, comma-separated>")
	}
	hrp, rawData := args[0], args[1]

	data, err := parseData(rawData)
	if err != nil {
		return err
	}

	variant := bversion.Version0
	if cfg.Bech32m {
		variant = bversion.VersionM
	}

	out, err := bech32.Encode(variant, hrp, data)
	if err != nil {
		return err
	}

	log.Bech32Log.Debugf("encoded %s string for hrp %q", variant, hrp)
	fmt.Println(out)
	return nil
}

func cmdDecode(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: decode <string>")
	}

	result, err := bech32.Decode(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("variant: %s\n", result.Variant)
	fmt.Printf("hrp: %s\n", result.HRP)
	fmt.Printf("data: %s\n", joinBytes(result.Data))
	return nil
}

func cmdLocate(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: locate <string>")
	}

	d := bech32.LocateErrors(args[0])
	if d.Message == "" {
		fmt.Println("no errors found")
		return nil
	}

	fmt.Println(d.Message)
	fmt.Printf("positions: %s\n", joinInts(d.Positions))
	return nil
}

// cmdValidate checks each line of stdin (or each argument, if any are
// given) against bech32.Decode, using a ValidationCache so repeated lines
// in a long-running watch loop don't recompute PolyMod every time.
func cmdValidate(cfg *config, args []string) error {
	cache := bech32cache.New(0)

	check := func(s string) {
		if good, ok := cache.Lookup(s); ok {
			if cfg.CacheLog {
				log.Bech32Log.Debugf("cache hit for %q: good=%v", s, good)
			}
			printValidation(s, good)
			return
		}

		_, err := bech32.Decode(s)
		good := err == nil
		if good {
			cache.MarkGood(s)
		} else {
			cache.MarkBad(s)
		}
		printValidation(s, good)
	}

	if len(args) > 0 {
		for _, a := range args {
			check(a)
		}
		return nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		check(line)
	}
	return scanner.Err()
}

func printValidation(s string, good bool) {
	status := "ok"
	if !good {
		status = "invalid"
	}
	fmt.Printf("%s: %s\n", s, status)
}

func joinBytes(data []byte) string {
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = strconv.Itoa(int(b))
	}
	return strings.Join(parts, ",")
}

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
