package main

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Build metadata injected via ldflags by the release pipeline. Local builds
// leave these empty and resolveBuildVersion fills them from the module
// build info instead.
var (
	version = ""
	commit  = ""
	date    = ""
)

// buildVersion describes the running binary.
type buildVersion struct {
	version string
	commit  string
	date    string
	goVer   string
}

// String renders the single-line form printed by the version subcommand.
func (b buildVersion) String() string {
	return fmt.Sprintf("pokefetch %s (commit %s, built %s, %s)",
		b.version, b.commit, b.date, b.goVer)
}

// resolveBuildVersion merges ldflags values with debug.ReadBuildInfo.
// ldflags win; a missing commit and date fall back to the vcs stamps the Go
// toolchain embeds, then to "unknown".
func resolveBuildVersion() buildVersion {
	b := buildVersion{
		version: version,
		commit:  commit,
		date:    date,
		goVer:   runtime.Version(),
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return b.withDefaults()
	}

	if b.version == "" {
		b.version = info.Main.Version
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if b.commit == "" {
				b.commit = shortRevision(setting.Value)
			}
		case "vcs.time":
			if b.date == "" {
				b.date = setting.Value
			}
		}
	}
	return b.withDefaults()
}

// withDefaults replaces fields no source could provide.
func (b buildVersion) withDefaults() buildVersion {
	if b.version == "" {
		b.version = "(devel)"
	}
	if b.commit == "" {
		b.commit = "unknown"
	}
	if b.date == "" {
		b.date = "unknown"
	}
	return b
}

// shortRevision trims a full vcs revision to the familiar 7-character form.
func shortRevision(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the version, commit hash, and build date of pokefetch.`,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), resolveBuildVersion())
		},
	}
}
