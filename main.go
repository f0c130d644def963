package main

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
	"context"
	"fmt"
	"os"
	"runtime/pprof"
	"strings"
	"time"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/timtadh/fpm/cmd"
	"github.com/timtadh/fpm/config"
)

func init() {
	cmd.UsageMessage = "fpm --help"
	cmd.ExtendedMessage = `
fpm - level-wise frequent pattern mining

$ fpm -s <float> -o <path> [Global Options] \
    <type> [Type Options] <input-path> \
    [<reporter> [Reporter Options]]

Note: You must supply [Global Options] then [<type> [Type Options]] and then
      <input-path>. Changes in ordering are not supported.

Note: You may either supply the <input-path> as a regular file, a gzipped
      file or a directory. If supplying a gzip file the file extension must be
      '.gz'. The regular files in a directory are read in name order.

Note: If you don't supply a reporter by default it will use 'chain log file'.
      See the the documentations for Reporters for details.

Note: A pattern is frequent when it occurs in more than floor(s * N) of the
      N transactions.


Global Options
    -h, --help                view this message
    --types                   show the available types
    --reporters               show the available reporters
    -s, --support=<float>     relative support, 0 < s <= 1 (required)
    -o, --output=<path>       path to the output file (required)
                              NB: will overwrite the file
    -w, --workers=<int>       number of counting workers (default 1, -1 uses
                              every cpu)
    --timeout=<duration>      stop mining after this long, eg. 30s or 5m
    --config=<path>           read a yaml run profile. Flags given on the
                              command line take precedence.
    --skip-log=<level>        don't output the given log level.

Developer Options
    --cpu-profile=<path>      write a cpu-profile to this location

    heap-profile Reporter

        $ fpm ... <type> ... chain ... heap-profile [options]

        -p, profile=<path>    heap profiles are written to <path>.<level>

Config File
    support: 0.05
    output: /tmp/patterns.txt
    workers: 4
    timeout: 10m
    skip-log:
      - DEBUG

Types
    itemset                   unordered sets of items
    sequence                  ordered sequences of tokens, patterns are
                              contiguous runs of tokens

    itemset Example
        $ fpm -s .01 -o /tmp/patterns.txt itemset ./data/transactions.txt

    itemset File Format
        one transaction per line, items separated by ';'

            milk;bread;eggs
            bread;butter

    sequence Example
        $ fpm -s .01 -o /tmp/phrases.txt sequence ./data/reviews.txt.gz

    sequence File Format
        one sequence per line, tokens separated by a single space

            the food was great
            great service


Reporters
    chain                     chain several reporters together (end the chain
                              with endchain)
    log                       log the patterns
    file                      write the patterns to the output file
    count                     write the number of patterns found per level

    log Options
        -l, level=<string>    log level the logger should use
        -p, prefix=<string>   a prefix to put before the log line

    file Options
        -o, output=<path>     write here instead of the global output path

        Note: each line is <count>:<label>;<label>;... Patterns are written
              one level at a time and sorted by item id within a level.

    count Options
        -f, filename=<path>   where to write the counts (default
                              <output>.counts)

    Examples

        $ fpm -s .5 -o /tmp/patterns.txt \
            itemset ./transactions.txt \
            chain log file

        $ fpm --skip-log=DEBUG -s .01 -o /tmp/phrases.txt -w -1 \
            sequence ./reviews.txt \
            chain \
                log -p phrase \
                file \
                count -f /tmp/phrases.counts \
            endchain
`
}

func main() {
	os.Exit(run())
}

func run() int {
	args, opts := parseOptions(os.Args[1:])
	conf, err := opts.Config()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cmd.ErrorCodes["config"]
	}
	for _, level := range conf.SkipLog {
		errors.Logf("INFO", "not logging level %v", level)
		errors.SkipLogging[level] = true
	}

	if conf.Output != "" {
		conf.Output = cmd.AssertFile(conf.Output)
	}
	cpuProfile := ""
	if opts.cpuProfile != "" {
		cpuProfile = cmd.AssertFile(opts.cpuProfile)
	}

	if cpuProfile != "" {
		errors.Logf("DEBUG", "starting cpu profile: %v", cpuProfile)
		f, err := os.Create(cpuProfile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return cmd.ErrorCodes["badfile"]
		}
		err = pprof.StartCPUProfile(f)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return cmd.ErrorCodes["badfile"]
		}
		defer func() {
			errors.Logf("DEBUG", "closing cpu profile")
			pprof.StopCPUProfile()
			err := f.Close()
			errors.Logf("DEBUG", "closed cpu profile, err: %v", err)
		}()
	}

	return cmd.Main(context.Background(), args, conf)
}

// options are the global flags in command line order. They are folded over
// the --config profile so a flag wins wherever --config appears.
type options struct {
	configPath string
	cpuProfile string
	flags      []func(*config.Config)
}

func parseOptions(argv []string) ([]string, *options) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hs:o:w:",
		[]string{
			"help",
			"types", "reporters",
			"support=",
			"output=",
			"workers=",
			"timeout=",
			"config=",
			"skip-log=",
			"cpu-profile=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "could not process your arguments (perhaps you forgot a type?) try:")
		fmt.Fprintf(os.Stderr, "$ %v itemset %v\n", os.Args[0], strings.Join(argv, " "))
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	opts := &options{}
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		case "-s", "--support":
			support := cmd.ParseFloat(oa.Arg())
			opts.flags = append(opts.flags, func(c *config.Config) { c.Support = support })
		case "-o", "--output":
			output := oa.Arg()
			opts.flags = append(opts.flags, func(c *config.Config) { c.Output = output })
		case "-w", "--workers":
			workers := cmd.ParseInt(oa.Arg())
			opts.flags = append(opts.flags, func(c *config.Config) { c.Parallelism = workers })
		case "--timeout":
			timeout, err := time.ParseDuration(oa.Arg())
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing '%v' expected a duration\n", oa.Arg())
				cmd.Usage(cmd.ErrorCodes["opts"])
			}
			opts.flags = append(opts.flags, func(c *config.Config) { c.Timeout = timeout })
		case "--config":
			opts.configPath = oa.Arg()
		case "--types":
			fmt.Fprintln(os.Stderr, "Types:")
			for _, k := range cmd.TypeNames() {
				fmt.Fprintln(os.Stderr, "  ", k)
			}
			os.Exit(0)
		case "--reporters":
			fmt.Fprintln(os.Stderr, "Reporters:")
			for _, k := range cmd.ReporterNames() {
				fmt.Fprintln(os.Stderr, "  ", k)
			}
			os.Exit(0)
		case "--skip-log":
			level := oa.Arg()
			opts.flags = append(opts.flags, func(c *config.Config) { c.SkipLog = append(c.SkipLog, level) })
		case "--cpu-profile":
			opts.cpuProfile = oa.Arg()
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}
	return args, opts
}

// Config reads the --config profile, applies the flags and validates the
// result. No other file is touched until it returns.
func (o *options) Config() (*config.Config, error) {
	conf := &config.Config{}
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return nil, err
		}
		conf = loaded
	}
	for _, flag := range o.flags {
		flag(conf)
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}
