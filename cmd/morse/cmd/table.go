package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/msto63/morsetree/internal/morse/codec"
	"github.com/msto63/morsetree/internal/morse/service"
	coreerr "github.com/msto63/morsetree/pkg/core/errors"
)

func (a *app) newTableCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "table [tree-file]",
		Short: "Print the code table of a tree",
		Long: `Print every symbol of the code tree together with its code, in
depth-first order with the dot branch first.`,
		Args: maxOneArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := service.LoadTree(a.treePath(args), a.logger)
			if err != nil {
				return err
			}

			entries := codec.Table(root)
			a.logger.Debug("Code table built", "entries", len(entries), "format", format)
			return writeTable(a.stdout, entries, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, yaml, json)")
	return cmd
}

func writeTable(out io.Writer, entries []codec.Entry, format string) error {
	switch strings.ToLower(format) {
	case "text", "":
		return writeTableText(out, entries)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return coreerr.Wrap(err, "failed to write table").WithCode(coreerr.CodeIO)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(entries); err != nil {
			return coreerr.Wrap(err, "failed to write table").WithCode(coreerr.CodeIO)
		}
		return nil
	default:
		return coreerr.Newf(coreerr.CodeUsage, "unknown table format %q", format)
	}
}

func writeTableText(out io.Writer, entries []codec.Entry) error {
	styles := newTableStyles(out)

	var b strings.Builder
	b.WriteString(styles.header.Render("SYMBOL"))
	b.WriteString(styles.header.UnsetWidth().Render("CODE"))
	b.WriteString("\n")
	for _, e := range entries {
		b.WriteString(styles.symbol.Render(e.Symbol))
		b.WriteString(styles.code.Render(e.Code))
		b.WriteString("\n")
	}
	b.WriteString(styles.footer.Render(fmt.Sprintf("%d symbols", len(entries))))
	b.WriteString("\n")

	if _, err := io.WriteString(out, b.String()); err != nil {
		return coreerr.Wrap(err, "failed to write table").WithCode(coreerr.CodeIO)
	}
	return nil
}

func maxOneArg(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return coreerr.Newf(coreerr.CodeUsage, "unexpected arguments %q", args[1:])
	}
	return nil
}
