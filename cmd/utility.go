package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/devknife/devknife/internal/core"
	pkgerrors "github.com/devknife/devknife/internal/errors"
	"github.com/devknife/devknife/internal/format"
	"github.com/devknife/devknife/internal/logging"
)

// optionFlag maps a utility option key onto a CLI flag.
type optionFlag struct {
	flag     string
	kind     string // "bool", "int" or "string"
	boolDef  bool
	intDef   int
	strDef   string
	usage    string
	inverted bool // flag true means option false
}

// optionFlags declares the CLI flag for every option key a built-in utility
// supports. Keys without an entry get a plain string flag named after the
// key.
var optionFlags = map[string]optionFlag{
	"decode":       {flag: "decode", kind: "bool", usage: "decode instead of encode"},
	"indent":       {flag: "indent", kind: "int", intDef: 2, usage: "indentation width"},
	"recover":      {flag: "recover", kind: "bool", usage: "attempt automatic repair of malformed input"},
	"has_header":   {flag: "no-header", kind: "bool", inverted: true, usage: "treat the first row as data, not a header"},
	"name":         {flag: "name", kind: "string", strDef: "Generated", usage: "name of the generated type"},
	"to_base":      {flag: "to-base", kind: "string", usage: "target base: binary, octal, decimal or hex"},
	"algorithm":    {flag: "algorithm", kind: "string", usage: "digest algorithm: md5, sha1 or sha256"},
	"reverse":      {flag: "reverse", kind: "bool", usage: "convert a date back to a timestamp"},
	"format":       {flag: "time-format", kind: "string", usage: "timestamp output style"},
	"utc":          {flag: "utc", kind: "bool", boolDef: true, usage: "report in UTC"},
	"version":      {flag: "uuid-version", kind: "int", intDef: 4, usage: "UUID version: 1 or 4"},
	"count":        {flag: "count", kind: "int", intDef: 1, usage: "how many values to generate"},
	"length":       {flag: "length", kind: "int", intDef: 16, usage: "generated password length"},
	"symbols":      {flag: "no-symbols", kind: "bool", inverted: true, usage: "exclude symbol characters"},
	"uppercase":    {flag: "no-upper", kind: "bool", inverted: true, usage: "exclude uppercase letters"},
	"lowercase":    {flag: "no-lower", kind: "bool", inverted: true, usage: "exclude lowercase letters"},
	"digits":       {flag: "no-digits", kind: "bool", inverted: true, usage: "exclude digits"},
	"no_ambiguous": {flag: "no-ambiguous", kind: "bool", usage: "exclude ambiguous characters like 0, O, 1, l"},
	"unique":       {flag: "unique", kind: "bool", boolDef: true, usage: "drop duplicate URLs"},
	"base_url":     {flag: "base-url", kind: "string", usage: "base URL for resolving relative references"},
	"repeat":       {flag: "repeat", kind: "int", intDef: 1, usage: "number of repetitions"},
}

// utilityCommand builds the cobra subcommand for one registered utility.
// Its flags are derived from the utility's supported option keys; only
// flags the user actually set are forwarded as options.
func (a *App) utilityCommand(info core.Command) *cobra.Command {
	help, _ := a.router.CommandHelp(info.Name)
	keys := a.supportedOptionKeys(info.Name)

	var filePath string
	var outputFormat string
	var rawOptions []string

	cmd := &cobra.Command{
		Use:           info.Name,
		Short:         info.Description,
		Long:          help,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runUtility(cmd, info.Name, args, filePath, outputFormat, keys, rawOptions)
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "read input from a file")
	cmd.Flags().StringVar(&outputFormat, "format", "", "output format: plain, json, table or auto")
	cmd.Flags().StringArrayVar(&rawOptions, "opt", nil, "extra option as key=value, repeatable")

	for _, key := range keys {
		def, ok := optionFlags[key]
		if !ok {
			def = optionFlag{flag: strings.ReplaceAll(key, "_", "-"), kind: "string"}
		}
		switch def.kind {
		case "bool":
			cmd.Flags().Bool(def.flag, def.boolDef, def.usage)
		case "int":
			cmd.Flags().Int(def.flag, def.intDef, def.usage)
		default:
			cmd.Flags().String(def.flag, def.strDef, def.usage)
		}
	}
	return cmd
}

// runUtility acquires input, routes the command and renders the outcome.
func (a *App) runUtility(cmd *cobra.Command, name string, args []string, filePath, outputFormat string, keys []string, rawOptions []string) error {
	data, err := a.reader.Acquire(args, filePath)
	if err != nil {
		result := pkgerrors.Translate(err, name)
		pkgerrors.PrintCLIError(result)
		logging.Error("input acquisition failed", "command", name, "error", err.Error())
		return errCommandFailed
	}

	options := collectOptions(cmd, keys)
	options = mergeRawOptions(options, rawOptions)
	result := a.router.RouteCommand(name, data, options)
	if !result.Success {
		pkgerrors.PrintCLIError(result)
		logging.Error("command failed", "command", name, "error", result.ErrorMessage)
		return errCommandFailed
	}

	for _, warning := range result.Warnings {
		fmt.Fprintln(cmd.ErrOrStderr(), "경고: "+warning)
	}

	selected := outputFormat
	if selected == "" {
		selected = a.cfg.OutputFormat
	}
	rendered, err := a.formatter.FormatOutput(result.Output, format.ParseFormat(selected))
	if err != nil {
		pkgerrors.PrintCLIError(core.NewErrorResult("Failed to format output: %v", err))
		return errCommandFailed
	}

	fmt.Fprintln(cmd.OutOrStdout(), rendered)
	logging.Info("command completed", "command", name, "source", string(data.Source))
	return nil
}

// collectOptions builds the options map from flags the user explicitly set.
func collectOptions(cmd *cobra.Command, keys []string) map[string]any {
	options := make(map[string]any)
	for _, key := range keys {
		def, ok := optionFlags[key]
		if !ok {
			def = optionFlag{flag: strings.ReplaceAll(key, "_", "-"), kind: "string"}
		}
		if !cmd.Flags().Changed(def.flag) {
			continue
		}
		switch def.kind {
		case "bool":
			value, _ := cmd.Flags().GetBool(def.flag)
			if def.inverted {
				value = !value
			}
			options[key] = value
		case "int":
			value, _ := cmd.Flags().GetInt(def.flag)
			options[key] = value
		default:
			value, _ := cmd.Flags().GetString(def.flag)
			options[key] = value
		}
	}
	if len(options) == 0 {
		return nil
	}
	return options
}

// mergeRawOptions folds repeated --opt key=value pairs into the options
// map. Values are coerced the same way typed flags are; a bare key means
// boolean true. Typed flags win on key collision.
func mergeRawOptions(options map[string]any, rawOptions []string) map[string]any {
	if len(rawOptions) == 0 {
		return options
	}
	if options == nil {
		options = make(map[string]any, len(rawOptions))
	}
	for _, raw := range rawOptions {
		key, value, found := strings.Cut(raw, "=")
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if _, exists := options[key]; exists {
			continue
		}
		if !found {
			options[key] = true
			continue
		}
		options[key] = coerceOptionValue(value)
	}
	return options
}

func coerceOptionValue(value string) any {
	switch strings.ToLower(value) {
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := strconv.Atoi(value); err == nil {
		return n
	}
	return value
}

// supportedOptionKeys reads the option keys off a transient utility
// instance; the router's cached instance stays untouched.
func (a *App) supportedOptionKeys(name string) []string {
	factory := a.registry.UtilityFactory(name)
	if factory == nil {
		return nil
	}
	return factory().SupportedOptions()
}
