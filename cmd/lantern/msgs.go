package main

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Deploy static notebook sites to Lantern"
	MsgDeployShort     = "Deploy the built site to its Lantern project"
	MsgWhoamiShort     = "Show the authenticated user and workspaces"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgTopicsShort     = "Display available documentation topics"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagMessage = "Deploy message (required in non-interactive mode)"
	MsgFlagBuild   = "Build output directory (overrides lantern.toml)"
	MsgFlagRoot    = "Site root directory (defaults to the current directory)"

	// Error messages
	MsgErrSiteRoot = "failed to determine site root: %w"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/deploy-long.txt
	msgDeployLongRaw string
	MsgDeployLong    = strings.TrimSpace(msgDeployLongRaw)

	//go:embed msgs/deploy-example.txt
	msgDeployExampleRaw string
	MsgDeployExample    = strings.TrimSpace(msgDeployExampleRaw)
)
