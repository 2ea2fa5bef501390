// Copyright 2021, 2026 Tamás Gulácsi. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

// Command csv2xlsx converts CSV files into the sheets of one xlsx workbook.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/UNO-SOFT/zlog/v2"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/peterbourgon/ff/v3/ffyaml"

	"github.com/UNO-SOFT/sheetexport"
	"github.com/UNO-SOFT/sheetexport/xlsx"
)

var verbose zlog.VerboseVar
var logger = zlog.NewLogger(zlog.MaybeConsoleHandler(&verbose, os.Stderr)).SLog()

func main() {
	if err := Main(); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		logger.Error("MAIN", "error", err)
		os.Exit(1)
	}
}

func Main() error {
	fs := flag.NewFlagSet("csv2xlsx", flag.ContinueOnError)
	fs.Var(&verbose, "v", "logging verbosity")
	flagEnc := fs.String("charset", sheetexport.EncName, "csv charset name")
	flagNumbers := fs.Bool("numbers", false, "write numeric fields as numbers")
	flagMtime := fs.String("mtime", "", "modification time of the workbook parts, in RFC3339 (default: now)")
	_ = fs.String("config", "", "config file (YAML)")

	app := ffcli.Command{Name: "csv2xlsx", FlagSet: fs,
		ShortUsage: "csv2xlsx [flags] <output.xlsx|-> [[sheet:]input.csv ...]",
		LongHelp: `Converts the CSV files (stdin if none given) into the sheets of one workbook.

The sheet is named after the file, unless given as "sheet:file.csv".
Flags can be set from CSV2XLSX_* environment variables, or a YAML config file.`,
		Options: []ff.Option{
			ff.WithEnvVarPrefix("CSV2XLSX"),
			ff.WithConfigFileFlag("config"),
			ff.WithConfigFileParser(ffyaml.Parser),
		},
		Exec: func(ctx context.Context, args []string) error {
			if len(args) == 0 {
				return flag.ErrHelp
			}
			now := time.Now
			if *flagMtime != "" {
				t, err := time.Parse(time.RFC3339, *flagMtime)
				if err != nil {
					return fmt.Errorf("mtime %q: %w", *flagMtime, err)
				}
				now = func() time.Time { return t }
			}
			out, inputs := args[0], args[1:]
			if len(inputs) == 0 {
				inputs = []string{"-"}
			}
			sheets := make([]xlsx.Sheet, 0, len(inputs))
			for i, fn := range inputs {
				sheetName := fmt.Sprintf("Sheet%d", i+1)
				if i := strings.IndexByte(fn, ':'); i >= 0 {
					sheetName, fn = fn[:i], fn[i+1:]
				} else if fn != "" && fn != "-" {
					sheetName = strings.TrimSuffix(filepath.Base(fn), ".csv")
				}
				rows, err := readCsv(fn, *flagEnc, *flagNumbers)
				if err != nil {
					return fmt.Errorf("%q: %w", fn, err)
				}
				logger.Info("read", "file", fn, "sheet", sheetName, "rows", len(rows))
				sheets = append(sheets, xlsx.Sheet{Name: sheetName, Rows: rows})
			}

			exp := xlsx.Exporter{Now: now}
			if out == "" || out == "-" {
				exp.Sink = xlsx.WriterSink(os.Stdout)
			} else {
				exp.Sink = xlsx.DirSink(filepath.Dir(out))
			}
			return exp.Export(zlog.NewSContext(ctx, logger), sheets, filepath.Base(out))
		},
	}

	if err := app.Parse(os.Args[1:]); err != nil {
		return err
	}
	logger.Debug("parsed", "args", os.Args[1:])

	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return app.Run(ctx)
}

// readCsv reads all records of fn.
//
// With numbers, the numeric fields are returned as sheetexport.Number.
func readCsv(fn, encName string, numbers bool) ([][]any, error) {
	cr, err := sheetexport.OpenCsv(fn, encName)
	if err != nil {
		return nil, err
	}
	defer cr.Close()
	var rows [][]any
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return rows, err
		}
		row := make([]any, len(rec))
		for i, s := range rec {
			if numbers && isNumeric(s) {
				row[i] = sheetexport.Number(s)
			} else {
				row[i] = s
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// isNumeric reports whether s is a plain decimal number, such as -12.5 or 1e3.
//
// Numbers with leading zeros (ZIP codes, identifiers) are not numeric.
func isNumeric(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}
	var digits, dot, exp bool
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case '0' <= c && c <= '9':
			if c == '0' && i == 0 && len(s) > 1 && '0' <= s[1] && s[1] <= '9' && !dot && !exp {
				return false
			}
			digits = true
		case c == '.' && !dot && !exp:
			dot = true
		case (c == 'e' || c == 'E') && digits && !exp:
			exp, digits = true, false
			if i+1 < len(s) && (s[i+1] == '+' || s[i+1] == '-') {
				i++
			}
		default:
			return false
		}
	}
	return digits
}
