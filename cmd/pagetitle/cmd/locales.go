package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/taigram/docs-theme/internal/i18n"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

var localesCmd = &cobra.Command{
	Use:   "locales",
	Short: "List supported locales and their default titles",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "LOCALE\tLANGUAGE\tDEFAULT TITLE")

		for _, key := range i18n.Supported() {
			tr, err := i18n.For(key)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", key, languageName(key), tr.PropertyDefaults.Title)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(localesCmd)
}

// languageName returns the locale's name in its own language, title-cased
// by that language's rules, e.g. "Русский (Россия)".
func languageName(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return locale
	}
	name := display.Self.Name(tag)
	if name == "" {
		return locale
	}
	return cases.Title(tag).String(name)
}
