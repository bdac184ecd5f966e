package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/aleister1102/sitemapdiff/internal/urlhandler"
)

// AppFlags holds the parsed command line arguments.
type AppFlags struct {
	SitemapA          string
	SitemapB          string
	OutputFile        string
	LabelA            string
	LabelB            string
	KeepTrailingSlash bool
	RespectCase       bool
	IncludeQuery      bool
	GlobalConfigFile  string
	LogLevel          string

	set map[string]bool
}

// IsSet reports whether the named flag was given explicitly on the command line.
func (f AppFlags) IsSet(name string) bool {
	return f.set[name]
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] <sitemap_a_url> <sitemap_b_url>\n\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "Compare URL path structures between two websites by resolving their sitemaps.")
	fmt.Fprintln(os.Stderr, "\nFlags:")
	flag.PrintDefaults()
}

// ParseFlags parses and validates the command line. It exits the process on
// invalid input.
func ParseFlags() AppFlags {
	outputFile := flag.String("out", "", "Output xlsx file path (default sitemap_comparison.xlsx)")
	outputFileAlias := flag.String("o", "", "Alias for -out")

	labelA := flag.String("label-a", "", "Label for site A in the report (default OLD)")
	labelB := flag.String("label-b", "", "Label for site B in the report (default NEW)")

	keepTrailingSlash := flag.Bool("keep-trailing-slash", false, "Keep trailing slash during normalization")
	respectCase := flag.Bool("respect-case", false, "Do not lowercase paths during normalization")
	includeQuery := flag.Bool("include-query", false, "Include query string in the comparison key")

	globalConfigFile := flag.String("config", "", "Path to the global YAML/JSON configuration file. If not set, searches default locations.")
	globalConfigFileAlias := flag.String("c", "", "Alias for -config")

	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")

	flag.Usage = usage
	flag.Parse()

	flags := AppFlags{
		KeepTrailingSlash: *keepTrailingSlash,
		RespectCase:       *respectCase,
		IncludeQuery:      *includeQuery,
		LabelA:            *labelA,
		LabelB:            *labelB,
		LogLevel:          *logLevel,
		set:               make(map[string]bool),
	}
	flag.Visit(func(f *flag.Flag) {
		flags.set[f.Name] = true
	})

	// Consolidate alias flags
	if *outputFile != "" {
		flags.OutputFile = *outputFile
	} else if *outputFileAlias != "" {
		flags.OutputFile = *outputFileAlias
		flags.set["out"] = true
	}

	if *globalConfigFile != "" {
		flags.GlobalConfigFile = *globalConfigFile
	} else if *globalConfigFileAlias != "" {
		flags.GlobalConfigFile = *globalConfigFileAlias
	}

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "[FATAL] exactly two positional arguments are required: <sitemap_a_url> <sitemap_b_url>")
		usage()
		os.Exit(2)
	}

	for i, arg := range args {
		if err := urlhandler.ValidateURLFormat(arg); err != nil {
			fmt.Fprintf(os.Stderr, "[FATAL] invalid sitemap URL (argument %d): %v\n", i+1, err)
			os.Exit(2)
		}
	}

	flags.SitemapA = args[0]
	flags.SitemapB = args[1]

	return flags
}
