// Command ldapbatch batch-applies user lifecycle actions (create,
// update/rename, delete) against an OpenLDAP directory.
//
// Usage:
//
//	ldapbatch -file input.json -out output.csv [-config ldapbatch.json]
//
// The input document carries a "useractions" list; the output is a CSV
// report with one row per action in input order. A failing record never
// aborts the batch; the report is the authoritative record of per-user
// outcomes.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/campus-idm/ldapbatch/internal/account"
	"github.com/campus-idm/ldapbatch/internal/batch"
	"github.com/campus-idm/ldapbatch/internal/config"
	"github.com/campus-idm/ldapbatch/internal/ldap"
	"github.com/campus-idm/ldapbatch/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := flag.NewFlagSet("ldapbatch", flag.ContinueOnError)

	var inputPath, outputPath, configPath string
	flags.StringVar(&inputPath, "file", "", "input JSON file with user actions and params")
	flags.StringVar(&inputPath, "f", "", "input JSON file (shorthand)")
	flags.StringVar(&outputPath, "out", "", "output file with results of ldap user actions")
	flags.StringVar(&outputPath, "o", "", "output file (shorthand)")
	flags.StringVar(&configPath, "config", "ldapbatch.json", "settings file")

	if err := flags.Parse(args); err != nil {
		return 1
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: unable to parse the settings file: %v\n", err)
		return 1
	}

	logger, closeLog, err := logging.Setup(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: unable to open the log file: %v\n", err)
		return 1
	}
	defer closeLog()

	if inputPath == "" || outputPath == "" {
		logger.Error("required arguments missing - provide input and output file names")
		flags.Usage()
		return 1
	}

	in, err := os.Open(inputPath)
	if err != nil {
		logger.Error("unable to open input file", "file", inputPath, "error", err)
		fmt.Fprintf(os.Stderr, "ERROR: Unable to open input file %s\n", inputPath)
		return 1
	}
	defer in.Close()
	logger.Info("opened file", "file", inputPath)

	records, err := batch.ParseInput(in)
	if err != nil {
		logger.Error("unable to parse input file", "file", inputPath, "error", err)
		fmt.Fprintf(os.Stderr, "ERROR: Unable to parse input file %s: %v\n", inputPath, err)
		return 1
	}

	out, err := os.Create(outputPath)
	if err != nil {
		logger.Error("unable to open output file", "file", outputPath, "error", err)
		fmt.Fprintf(os.Stderr, "ERROR: Unable to open output file %s\n", outputPath)
		return 1
	}
	defer out.Close()
	logger.Info("opened file", "file", outputPath)

	connCfg := cfg.ConnectionConfig()
	classifier := account.NewClassifier(cfg.StudentPattern, cfg.GuestPattern)
	builder := account.NewDNBuilder(classifier, cfg.StudentOU, cfg.GuestOU, cfg.EmployeeOU)
	lookup := account.NewLookup(cfg.BaseDN, logger)

	dial := func() (ldap.Directory, error) {
		return ldap.Connect(connCfg, logger)
	}
	proc := account.NewProcessor(dial, classifier, builder, lookup, cfg.MailDomain, logger)

	results := batch.NewRunner(proc, logger).Run(records)

	if err := batch.WriteReport(out, results); err != nil {
		logger.Error("unable to write report", "file", outputPath, "error", err)
		fmt.Fprintf(os.Stderr, "ERROR: unknown error while attempting to write to file: %v\n", err)
		return 1
	}

	return 0
}
