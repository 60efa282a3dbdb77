// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// openCatalog loads the configured catalog file (or catalogPath when set)
// into a fresh session.
func openCatalog(catalogPath string) *Catalog {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}
	if catalogPath != "" {
		config.Catalog.Path = expandHome(catalogPath)
	}

	logger := newLogger(config.Log.Level)
	catalog := NewCatalog(config, logger)
	if config.Catalog.Path == "" {
		logger.Debug("no catalog configured, starting with an empty shelf")
		return catalog
	}

	var progress io.Writer
	if config.Catalog.ShowProgress && isatty.IsTerminal(os.Stderr.Fd()) {
		progress = os.Stderr
	}
	stats, err := catalog.ImportFile(config.Catalog.Path, progress)
	if err != nil {
		log.Fatalf("Error loading catalog: %v", err)
	}
	if stats.Rejected > 0 {
		logger.Warn("some books were skipped", "rejected", stats.Rejected)
	}
	return catalog
}

func main() {
	asciiLogo := `
███████╗██╗  ██╗███████╗██╗     ███████╗
██╔════╝██║  ██║██╔════╝██║     ██╔════╝
███████╗███████║█████╗  ██║     █████╗
╚════██║██╔══██║██╔══╝  ██║     ██╔══╝
███████║██║  ██║███████╗███████╗██║
╚══════╝╚═╝  ╚═╝╚══════╝╚══════╝╚═╝
A personal book catalog on a self-balancing search tree [Version: %s%s%s]

Copyright @ Naren Yellavula

`

	InitializeColors()
	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var catalogPath string

	var cmdList = &cobra.Command{
		Use:   "list",
		Short: "List every book in ISBN order",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `List prints every book on the shelf with the total count`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			catalog := openCatalog(catalogPath)
			printRecords(os.Stdout, catalog.Records(), "The shelf is empty")
		},
	}

	var cmdSearch = &cobra.Command{
		Use:   "search",
		Short: "Search books by title, author or ISBN",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Search looks up books by exact title, author name, ISBN or ISBN prefix`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			title, _ := cmd.Flags().GetString("title")
			author, _ := cmd.Flags().GetString("author")
			isbn, _ := cmd.Flags().GetString("isbn")
			prefix, _ := cmd.Flags().GetString("isbn-prefix")

			catalog := openCatalog(catalogPath)
			switch {
			case isbn != "":
				rec, ok := catalog.Lookup(isbn)
				if !ok {
					fmt.Printf("%sNo book with ISBN %s%s\n", Info, isbn, Reset)
					return
				}
				fmt.Println(renderRecordCard(rec))
			case prefix != "":
				printRecords(os.Stdout, catalog.FindISBNPrefix(prefix), fmt.Sprintf("No ISBN starts with %q", prefix))
			case title != "":
				printRecords(os.Stdout, catalog.FindTitle(title), fmt.Sprintf("No book titled %q", title))
			case author != "":
				records, _ := catalog.FindAuthor(author)
				printRecords(os.Stdout, records, fmt.Sprintf("No books by %q", author))
			default:
				cmd.Help()
			}
		},
	}

	cmdSearch.Flags().String("title", "", "exact title, case-insensitive")
	cmdSearch.Flags().String("author", "", "author name, case and spacing insensitive")
	cmdSearch.Flags().String("isbn", "", "exact ISBN")
	cmdSearch.Flags().String("isbn-prefix", "", "ISBN prefix")
	cmdSearch.MarkFlagsMutuallyExclusive("title", "author", "isbn", "isbn-prefix")

	var cmdShow = &cobra.Command{
		Use:   "show <isbn>",
		Short: "Show the details of one book",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Show renders one book; --copy puts its citation on the clipboard`),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			catalog := openCatalog(catalogPath)
			rec, ok := catalog.Lookup(args[0])
			if !ok {
				fmt.Printf("%sNo book with ISBN %s%s\n", Info, args[0], Reset)
				os.Exit(1)
			}
			fmt.Print(renderMarkdown(recordMarkdown(rec)))

			if copyFlag, _ := cmd.Flags().GetBool("copy"); copyFlag {
				if err := clipboard.WriteAll(citation(rec)); err != nil {
					fmt.Printf("%s❌ Failed to copy to clipboard: %v%s\n", Error, err, Reset)
					return
				}
				fmt.Printf("%s📋 Citation copied to clipboard%s\n", Green, Reset)
			}
		},
	}

	cmdShow.Flags().Bool("copy", false, "copy the book's citation to the clipboard")

	var cmdTree = &cobra.Command{
		Use:   "tree",
		Short: "Print the index tree as Graphviz DOT",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Tree prints the shape of the index; pipe it to 'dot -Tpng'`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			catalog := openCatalog(catalogPath)
			if err := writeDOT(os.Stdout, catalog.Nodes()); err != nil {
				log.Fatalf("Error writing tree: %v", err)
			}
		},
	}

	var cmdExport = &cobra.Command{
		Use:   "export",
		Short: "Print the catalog as YAML",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Export writes every valid book back out in catalog file format`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			catalog := openCatalog(catalogPath)
			if err := catalog.Export(os.Stdout); err != nil {
				log.Fatalf("Error exporting catalog: %v", err)
			}
		},
	}

	var cmdShell = &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive session",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Shell opens a session where books can be added, deleted and searched`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			catalog := openCatalog(catalogPath)
			fmt.Printf("%d book(s) loaded. Type 'help' for commands.\n", catalog.Len())
			if err := NewShell(catalog, os.Stdin, os.Stdout).Run(); err != nil {
				log.Fatalf("Error reading input: %v", err)
			}
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Shelf usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the shelf CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show configuration settings",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Settings prints the effective configuration, creating ~/.shelf.yaml if missing`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings(os.Stdout)
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Shelf version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "shelf",
		Version: version,
		Long:    asciiLogo,
		Run: func(cmd *cobra.Command, args []string) {
			// Default to listing the shelf when no subcommand is provided
			catalog := openCatalog(catalogPath)
			printRecords(os.Stdout, catalog.Records(), "The shelf is empty")
		},
	}
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "catalog file to load (overrides catalog.path)")
	rootCmd.AddCommand(cmdList, cmdSearch, cmdShow, cmdTree, cmdExport, cmdShell, cmdUsage, cmdSettings, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
