package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"periodic-tutor/internal/export"
)

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "periodic-tutor",
		Short:         "Interactive periodic table backed by an element ontology",
		Long:          "Shows a clickable periodic table. Element details are read from an OWL ontology, the embedded one unless --ontology is given.",
		Version:       AppVersion,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := bootstrap(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return NewApplication(s).Run()
		},
	}

	flags := root.PersistentFlags()
	flags.StringArrayVar(&opts.configFiles, "config", nil, "YAML config file, may be repeated; later files override earlier ones")
	flags.StringVar(&opts.ontologyPath, "ontology", "", "ontology file (.owl, .rdf, .xml, .ttl, .nt); empty uses the embedded ontology")
	flags.StringVar(&opts.elementClass, "element-class", "", "IRI of the element class")
	flags.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")
	flags.StringVar(&opts.logFormat, "log-format", "", "console or json")

	root.AddCommand(newLookupCmd(opts), newExportCmd(opts))
	return root
}

func newLookupCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <symbol>",
		Short: "Print the details of one element",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := bootstrap(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			record, err := s.lookup.Search(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), record.Details())
			return nil
		},
	}
}

func newExportCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file.xlsx>",
		Short: "Write the element catalog to a spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := bootstrap(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			records := s.lookup.Catalog().Records()
			if err := export.SaveAs(args[0], records); err != nil {
				return err
			}
			s.log.Info("main", "catalog exported", map[string]interface{}{
				"path":    args[0],
				"records": len(records),
			})
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d elements to %s\n", len(records), args[0])
			return nil
		},
	}
}
