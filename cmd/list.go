package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var listAll bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the configured route table",
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "include hidden groups and routes")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, _, err := loadConfig(logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, group := range cfg.Groups {
		if group.Hidden && !listAll {
			continue
		}
		fmt.Fprintf(out, "%s:\n", group.Name)

		keywords := make([]string, 0, len(group.Routes))
		for keyword := range group.Routes {
			keywords = append(keywords, keyword)
		}
		sort.Strings(keywords)

		for _, keyword := range keywords {
			route := group.Routes[keyword]
			if route.Hidden && !listAll {
				continue
			}
			if keyword == cfg.DefaultRoute {
				fmt.Fprintf(out, "  %-12s %s (default)\n", keyword, route.Path)
			} else {
				fmt.Fprintf(out, "  %-12s %s\n", keyword, route.Path)
			}
		}
	}
	return nil
}
