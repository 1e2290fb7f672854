package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is injected at build time via -ldflags "-X main.version=...".
var version = ""

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print the firecatalog version",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "firecatalog %s\n", versionValue())
			return nil
		},
	}
}

// versionValue prefers the injected version, then the module version, then
// the VCS tag or revision recorded by the toolchain.
func versionValue() string {
	if version != "" {
		return version
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
		var vcsTag, vcsRev string
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.tag":
				vcsTag = setting.Value
			case "vcs.revision":
				vcsRev = setting.Value
			}
		}
		if vcsTag != "" {
			return vcsTag
		}
		if vcsRev != "" {
			return vcsRev
		}
	}
	return "dev"
}
