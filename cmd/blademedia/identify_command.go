package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"blademedia/internal/identify"
)

func newIdentifyCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "identify <filename>",
		Short: "Show how a filename would be identified",
		Long: `Run the filename matchers against a single name and print the result.
Useful for checking why a file was skipped during an organize run. The
argument may be a bare filename or a path; only the final component is used.`,
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			name := filepath.Base(strings.TrimSpace(args[0]))
			out := cmd.OutOrStdout()

			if id, ok := identify.ParseEpisode(name); ok {
				fmt.Fprintln(out, renderTable(
					[]string{"Field", "Value"},
					[][]string{
						{"Type", "TV episode"},
						{"Show", id.Show},
						{"Season", fmt.Sprintf("%d", id.Season)},
						{"Episode", fmt.Sprintf("%d", id.Episode)},
						{"Episode title", id.EpisodeTitle},
					},
					nil,
				))
				return nil
			}
			if id, ok := identify.ParseMovie(name); ok {
				fmt.Fprintln(out, renderTable(
					[]string{"Field", "Value"},
					[][]string{
						{"Type", "Movie"},
						{"Title", id.Title},
						{"Year", fmt.Sprintf("%d", id.Year)},
					},
					nil,
				))
				return nil
			}

			fmt.Fprintf(out, "No matcher recognized %q\n", name)
			if guess := identify.DeriveTitle(name); guess != "" {
				fmt.Fprintf(out, "Best-effort title guess: %s\n", guess)
			}
			return nil
		},
	}
}
