package jsonstore

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "A key-value store that keeps each value in its own JSON file"
	MsgGetShort        = "Print the value stored under one or more keys"
	MsgSetShort        = "Store a JSON value under a key"
	MsgHasShort        = "Report whether a key has a record"
	MsgRemoveShort     = "Remove the records of one or more keys"
	MsgClearShort      = "Remove every record in the root directory"
	MsgKeysShort       = "List the keys in the root directory"
	MsgPathShort       = "Print the root directory or the file of a key"
	MsgWatchShort      = "Stream record changes until interrupted"
	MsgConfigShort     = "Inspect and create configuration"
	MsgConfigShowShort = "Print the effective configuration"
	MsgConfigInitShort = "Write a commented configuration file"
	MsgConfigPathShort = "Print the configuration file location"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgHasLong         = "Has prints true or false and exits with status 1 when the key has no record."
	MsgKeysLong        = "Keys lists every record file directly inside the root directory. Nested directories are not searched."
	MsgPathLong        = "Path prints the absolute root directory, or the file a key is stored in. Nothing is read or created."
	MsgConfigInitLong  = "Init writes the default configuration with every value commented out. Existing files are never overwritten."
	MsgConfigWritten   = "Configuration written to %s"
	MsgRemoveLong      = "Rm deletes the record of each key. Keys without a record are skipped silently."
	MsgClearLong       = "Clear deletes every *.json file directly inside the root directory. Other files and subdirectories are left alone."
	MsgWatchLong       = "Watch prints one line per record change in the root directory, including changes made by other programs, until interrupted."
	MsgConfigLong      = "Configuration is read from embedded defaults, then the config file, then JSONSTORE_ environment variables, then flags. See 'jsonstore help configuration'."

	// Error messages
	MsgErrNoCommand    = "no command specified"
	MsgErrInvalidJSON  = "value is not valid JSON (use --string to store plain text)"
	MsgErrTrailingJSON = "value must be a single JSON document"
	MsgErrValueTwice   = "give the value either as an argument or with --file, not both"

	// Flag descriptions
	MsgFlagVerbose        = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig         = "Config file (default $XDG_CONFIG_HOME/jsonstore/config.toml)"
	MsgFlagRoot           = "Directory records are stored in"
	MsgFlagAppendRoot     = "Subdirectory appended beneath the root"
	MsgFlagBackend        = "Filesystem backend: os, memory or synthfs"
	MsgFlagFormat         = "Output format: auto, term, text, json or yaml"
	MsgFlagFile           = "Read the value from a file"
	MsgFlagString         = "Store the input as a JSON string instead of parsing it"
	MsgFlagQuiet          = "Print nothing, report through the exit status only"
	MsgFlagConfigInitPath = "Write to this path instead of the user config location"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/get-long.txt
	msgGetLongRaw string
	MsgGetLong    = strings.TrimSpace(msgGetLongRaw)

	//go:embed msgs/get-example.txt
	msgGetExampleRaw string
	MsgGetExample    = strings.TrimRight(msgGetExampleRaw, "\n")

	//go:embed msgs/set-long.txt
	msgSetLongRaw string
	MsgSetLong    = strings.TrimSpace(msgSetLongRaw)

	//go:embed msgs/set-example.txt
	msgSetExampleRaw string
	MsgSetExample    = strings.TrimRight(msgSetExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
