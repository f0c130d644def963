package cmd

/* Tim Henderson (tadh@case.edu)
*
* Copyright (c) 2015, Tim Henderson, Case Western Reserve University
* Cleveland, Ohio 44106. All Rights Reserved.
*
* This library is free software; you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation; either version 3 of the License, or (at
* your option) any later version.
*
* This library is distributed in the hope that it will be useful, but
* WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
* General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this library; if not, write to the Free Software
* Foundation, Inc.,
*   51 Franklin Street, Fifth Floor,
*   Boston, MA  02110-1301
*   USA
 */

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/timtadh/fpm/config"
	"github.com/timtadh/fpm/lattice"
	"github.com/timtadh/fpm/miners"
	"github.com/timtadh/fpm/miners/levelwise"
	"github.com/timtadh/fpm/miners/reporters"
	"github.com/timtadh/fpm/types/itemset"
	"github.com/timtadh/fpm/types/sequence"
)

var ErrorCodes map[string]int = map[string]int{
	"usage":    0,
	"load":     1,
	"mine":     1,
	"opts":     3,
	"badint":   5,
	"badfloat": 6,
	"badfile":  7,
	"config":   8,
}

var UsageMessage string
var ExtendedMessage string

func Usage(code int) {
	fmt.Fprintln(os.Stderr, UsageMessage)
	if code == 0 {
		fmt.Fprintln(os.Stdout, ExtendedMessage)
		code = ErrorCodes["usage"]
	} else {
		fmt.Fprintln(os.Stderr, "Try -h or --help for help")
	}
	os.Exit(code)
}

// Input opens a regular file, a gzip file (by its .gz extension) or a
// directory whose regular files are read one after another in name order.
func Input(input_path string) (reader io.Reader, closeall func(), err error) {
	stat, err := os.Stat(input_path)
	if err != nil {
		return nil, nil, &lattice.IOError{Op: "open", Path: input_path, Err: err}
	}
	if stat.IsDir() {
		return InputDir(input_path)
	} else {
		return InputFile(input_path)
	}
}

func InputFile(input_path string) (reader io.Reader, closeall func(), err error) {
	freader, err := os.Open(input_path)
	if err != nil {
		return nil, nil, &lattice.IOError{Op: "open", Path: input_path, Err: err}
	}
	if strings.HasSuffix(input_path, ".gz") {
		greader, err := gzip.NewReader(freader)
		if err != nil {
			freader.Close()
			return nil, nil, &lattice.IOError{Op: "gunzip", Path: input_path, Err: err}
		}
		return greader, func() {
			greader.Close()
			freader.Close()
		}, nil
	}
	return freader, func() {
		freader.Close()
	}, nil
}

func InputDir(input_dir string) (reader io.Reader, closeall func(), err error) {
	var readers []io.Reader
	var closers []func()
	closeall = func() {
		for _, closer := range closers {
			closer()
		}
	}
	dir, err := os.ReadDir(input_dir)
	if err != nil {
		return nil, nil, &lattice.IOError{Op: "read dir", Path: input_dir, Err: err}
	}
	for _, info := range dir {
		if !info.Type().IsRegular() {
			continue
		}
		creader, closer, err := InputFile(path.Join(input_dir, info.Name()))
		if err != nil {
			closeall()
			return nil, nil, err
		}
		readers = append(readers, &lineEnder{r: creader})
		closers = append(closers, closer)
	}
	return io.MultiReader(readers...), closeall, nil
}

// lineEnder supplies a final '\n' when a non-empty stream does not end with
// one, so the last line of a file never runs into the next file.
type lineEnder struct {
	r       io.Reader
	last    byte
	seen    bool
	eof     bool
	pending bool
}

func (l *lineEnder) Read(p []byte) (int, error) {
	if l.eof {
		if l.pending && len(p) > 0 {
			p[0] = '\n'
			l.pending = false
			return 1, io.EOF
		}
		return 0, io.EOF
	}
	n, err := l.r.Read(p)
	if n > 0 {
		l.last = p[n-1]
		l.seen = true
	}
	if err == io.EOF {
		l.eof = true
		l.pending = l.seen && l.last != '\n'
		if l.pending {
			if n < len(p) {
				p[n] = '\n'
				n++
				l.pending = false
			} else {
				return n, nil
			}
		}
	}
	return n, err
}

func ParseInt(str string) int {
	i, err := strconv.Atoi(str)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing '%v' expected an int\n", str)
		Usage(ErrorCodes["badint"])
	}
	return i
}

func ParseFloat(str string) float64 {
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing '%v' expected a float\n", str)
		Usage(ErrorCodes["badfloat"])
	}
	return f
}

func AssertFile(fname string) string {
	fname = path.Clean(fname)
	fi, err := os.Stat(fname)
	if err != nil && os.IsNotExist(err) {
		return fname
	} else if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		Usage(ErrorCodes["badfile"])
	} else if fi.IsDir() {
		fmt.Fprintf(os.Stderr, "Passed in file was a directory, %s\n", fname)
		Usage(ErrorCodes["badfile"])
	}
	return fname
}

func listKeys(name string, keys []string) {
	sort.Strings(keys)
	fmt.Fprintf(os.Stderr, "%v:\n", name)
	for _, k := range keys {
		fmt.Fprintln(os.Stderr, "  ", k)
	}
}

func TypeNames() []string {
	names := make([]string, 0, len(Types))
	for k := range Types {
		names = append(names, k)
	}
	return names
}

func ReporterNames() []string {
	names := make([]string, 0, len(Reporters))
	for k := range Reporters {
		names = append(names, k)
	}
	return names
}

func noOpts(name string, argv []string) []string {
	args, optargs, err := getopt.GetOpt(argv, "h", []string{"help"})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		Usage(ErrorCodes["opts"])
	}
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v' for %v\n", oa.Opt(), name)
			Usage(ErrorCodes["opts"])
		}
	}
	return args
}

type Type func([]string, *config.Config) (lattice.Loader, func(lattice.DataType) lattice.Formatter, []string)

func itemsetType(argv []string, conf *config.Config) (lattice.Loader, func(lattice.DataType) lattice.Formatter, []string) {
	args := noOpts("itemset", argv)
	fmtr := func(dt lattice.DataType) lattice.Formatter {
		return &itemset.Formatter{Labels: dt.Labels()}
	}
	return itemset.NewLoader(), fmtr, args
}

func sequenceType(argv []string, conf *config.Config) (lattice.Loader, func(lattice.DataType) lattice.Formatter, []string) {
	args := noOpts("sequence", argv)
	fmtr := func(dt lattice.DataType) lattice.Formatter {
		return &sequence.Formatter{Labels: dt.Labels()}
	}
	return sequence.NewLoader(), fmtr, args
}

type Reporter func(map[string]Reporter, []string, lattice.Formatter, *config.Config) (miners.Reporter, []string, error)

func logReporter(rptrs map[string]Reporter, argv []string, fmtr lattice.Formatter, conf *config.Config) (miners.Reporter, []string, error) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hl:p:",
		[]string{
			"help",
			"level=",
			"prefix=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		Usage(ErrorCodes["opts"])
	}
	level := "INFO"
	prefix := ""
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-l", "--level":
			level = oa.Arg()
		case "-p", "--prefix":
			prefix = oa.Arg()
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	return reporters.NewLog(fmtr, level, prefix), args, nil
}

func fileReporter(rptrs map[string]Reporter, argv []string, fmtr lattice.Formatter, conf *config.Config) (miners.Reporter, []string, error) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"ho:",
		[]string{
			"help",
			"output=",
		},
	)
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		Usage(ErrorCodes["opts"])
	}
	output := conf.Output
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-o", "--output":
			output = oa.Arg()
		default:
			errors.Logf("ERROR", "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	fr, err := reporters.NewFile(fmtr, output)
	if err != nil {
		return nil, nil, err
	}
	return fr, args, nil
}

func countReporter(rptrs map[string]Reporter, argv []string, fmtr lattice.Formatter, conf *config.Config) (miners.Reporter, []string, error) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hf:",
		[]string{
			"help",
			"filename=",
		},
	)
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		Usage(ErrorCodes["opts"])
	}
	filename := conf.Output + ".counts"
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-f", "--filename":
			filename = oa.Arg()
		default:
			errors.Logf("ERROR", "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	return reporters.NewCount(filename), args, nil
}

func heapProfileReporter(rptrs map[string]Reporter, argv []string, fmtr lattice.Formatter, conf *config.Config) (miners.Reporter, []string, error) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hp:",
		[]string{
			"help",
			"profile=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		Usage(ErrorCodes["opts"])
	}
	profile := ""
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-p", "--profile":
			profile = oa.Arg()
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	if profile == "" {
		fmt.Fprintf(os.Stderr, "You must supply a location to write the profiles (-p) in heap-profile.\n")
		Usage(ErrorCodes["opts"])
	}
	return reporters.NewHeapProfile(profile), args, nil
}

func chainReporter(reports map[string]Reporter, argv []string, fmtr lattice.Formatter, conf *config.Config) (miners.Reporter, []string, error) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"h",
		[]string{
			"help",
		},
	)
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		Usage(ErrorCodes["opts"])
	}
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		default:
			errors.Logf("ERROR", "Unknown flag '%v'", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	chain := &reporters.Chain{}
	for len(args) >= 1 {
		if args[0] == "endchain" {
			args = args[1:]
			break
		}
		if _, has := reports[args[0]]; !has {
			errors.Logf("ERROR", "Unknown reporter '%v'\n", args[0])
			listKeys("Reporters", ReporterNames())
			Usage(ErrorCodes["opts"])
		}
		var rptr miners.Reporter
		rptr, args, err = reports[args[0]](reports, args[1:], fmtr, conf)
		if err != nil {
			chain.Close()
			return nil, nil, err
		}
		chain.Reporters = append(chain.Reporters, rptr)
	}
	if len(chain.Reporters) == 0 {
		errors.Logf("ERROR", "Empty chain")
		fmt.Fprintln(os.Stderr, "try: chain log file")
		Usage(ErrorCodes["opts"])
	}
	return chain, args, nil
}

var Types map[string]Type

var Reporters map[string]Reporter

func init() {
	Types = map[string]Type{
		"itemset":  itemsetType,
		"sequence": sequenceType,
	}
	Reporters = map[string]Reporter{
		"log":          logReporter,
		"file":         fileReporter,
		"count":        countReporter,
		"chain":        chainReporter,
		"heap-profile": heapProfileReporter,
	}
}

// Main loads the corpus named on the command line, mines it level by level
// and returns the process exit code. Malformed command lines exit through
// Usage.
func Main(ctx context.Context, args []string, conf *config.Config) int {
	if err := conf.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return ErrorCodes["config"]
	}
	if conf.Output == "" {
		fmt.Fprintf(os.Stderr, "%v\n", &config.ConfigError{Field: "output", Value: `""`, Reason: "an output file (-o) is required"})
		return ErrorCodes["config"]
	}

	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "You must supply a type\n")
		Usage(ErrorCodes["opts"])
	} else if _, has := Types[args[0]]; !has {
		fmt.Fprintf(os.Stderr, "Unknown data type '%v'\n", args[0])
		listKeys("Types", TypeNames())
		Usage(ErrorCodes["opts"])
	}
	loader, makeFmtr, args := Types[args[0]](args[1:], conf)

	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "You must supply exactly an input path\n")
		fmt.Fprintf(os.Stderr, "You gave: %v\n", args)
		Usage(ErrorCodes["opts"])
	}
	inputPath := path.Clean(args[0])
	args = args[1:]
	if _, err := os.Stat(inputPath); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", &lattice.IOError{Op: "open", Path: inputPath, Err: err})
		return ErrorCodes["badfile"]
	}

	reporterArgs := args
	if len(reporterArgs) == 0 {
		reporterArgs = []string{"chain", "log", "file"}
	} else if _, has := Reporters[reporterArgs[0]]; !has {
		fmt.Fprintf(os.Stderr, "Unknown reporter '%v'\n", reporterArgs[0])
		listKeys("Reporters", ReporterNames())
		Usage(ErrorCodes["opts"])
	}

	getInput := func() (io.Reader, func(), error) {
		return Input(inputPath)
	}

	errors.Logf("INFO", "Got configuration about to load dataset")
	dt, err := loader.Load(getInput)
	if err != nil {
		fmt.Fprintf(os.Stderr, "There was error during the loading process\n")
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return ErrorCodes["load"]
	}
	fmtr := makeFmtr(dt)

	rptr, rest, err := Reporters[reporterArgs[0]](Reporters, reporterArgs[1:], fmtr, conf)
	if err != nil {
		dt.Close()
		fmt.Fprintf(os.Stderr, "There was error creating the reporters\n")
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return ErrorCodes["badfile"]
	}
	if len(rest) != 0 {
		rptr.Close()
		dt.Close()
		fmt.Fprintf(os.Stderr, "unconsumed commandline options: '%v'\n", strings.Join(rest, " "))
		Usage(ErrorCodes["opts"])
	}

	if conf.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, conf.Timeout)
		defer cancel()
	}

	errors.Logf("INFO", "loaded data, about to start mining")
	miner := levelwise.NewMiner(conf)
	mineErr := miner.Mine(ctx, dt, rptr, fmtr)

	code := 0
	if e := miner.Close(); e != nil {
		fmt.Fprintf(os.Stderr, "error closing %v\n", e)
		code = ErrorCodes["mine"]
	}
	if mineErr != nil {
		fmt.Fprintf(os.Stderr, "There was error during the mining process\n")
		fmt.Fprintf(os.Stderr, "%v\n", mineErr)
		code = ErrorCodes["mine"]
	} else {
		errors.Logf("INFO", "Done!")
	}
	return code
}
