// Package main is the spdx command line tool: validate license expressions,
// look up license metadata, and refresh catalog data from spdx.org.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/git-pkgs/spdx"
	"github.com/git-pkgs/spdx/fetch"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:           "spdx",
	Short:         "Validate SPDX license expressions and look up license metadata",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = version + " (commit=" + commit + ", built=" + date + ")"
	rootCmd.SetVersionTemplate("spdx version {{.Version}}\n")

	rootCmd.PersistentFlags().String("catalog", "", "Path to an alternate catalog file (default: embedded license list)")

	rootCmd.AddCommand(validateCmd, infoCmd, listCmd, updateCmd)

	listCmd.Flags().Bool("osi", false, "Only list OSI-approved licenses")

	updateCmd.Flags().String("url", "", "License list URL (default: "+fetch.DefaultURL+")")
	updateCmd.Flags().String("out", "", "Output file for the catalog data")
	_ = updateCmd.MarkFlagRequired("out")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "spdx:", err)
		os.Exit(1)
	}
}

func loadCatalog(cmd *cobra.Command) (*spdx.Catalog, error) {
	path, _ := cmd.Flags().GetString("catalog")
	if path == "" {
		return spdx.DefaultCatalog(), nil
	}
	return spdx.LoadCatalogFile(path)
}

var validateCmd = &cobra.Command{
	Use:   "validate <expression>...",
	Short: "Validate a license expression",
	Long: `Validate a license expression written in SPDX tag notation.

Multiple arguments are validated as alternatives, the same as the
parenthesized disjunction "(arg1 OR arg2 ...)". Exits non-zero when the
expression is invalid.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		v := spdx.NewValidator(catalog)

		if !v.ValidateAny(args) {
			return fmt.Errorf("invalid license expression")
		}
		fmt.Println("valid")
		return nil
	},
}

var infoCmd = &cobra.Command{
	Use:   "info <identifier>",
	Short: "Show metadata for a license identifier",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog(cmd)
		if err != nil {
			return err
		}

		l, ok := catalog.Get(args[0])
		if !ok {
			return fmt.Errorf("unknown license identifier %q", args[0])
		}

		fmt.Printf("%s\t%s\n", "ID:", l.ID)
		fmt.Printf("%s\t%s\n", "Name:", l.Name)
		fmt.Printf("%s\t%v\n", "OSI:", l.OSIApproved)
		fmt.Printf("%s\t%s\n", "Text:", l.TextURL())
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List known license identifiers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		osiOnly, _ := cmd.Flags().GetBool("osi")

		for _, id := range catalog.IDs() {
			if osiOnly {
				if l, _ := catalog.Get(id); !l.OSIApproved {
					continue
				}
			}
			fmt.Println(id)
		}
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:   "update --out <file>",
	Short: "Fetch the current SPDX license list and write it as catalog data",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		url, _ := cmd.Flags().GetString("url")
		out, _ := cmd.Flags().GetString("out")

		fetcher := fetch.NewCircuitBreakerFetcher(fetch.NewFetcher())
		list, err := fetcher.Fetch(cmd.Context(), url)
		if err != nil {
			return err
		}

		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()

		if err := list.WriteCatalog(f); err != nil {
			return err
		}

		log.Printf("wrote %d licenses (list version %s) to %s", len(list.Licenses), list.Version, out)
		return nil
	},
}
