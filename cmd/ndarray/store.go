package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/born-ml/ndarray/internal/codec"
	"github.com/born-ml/ndarray/internal/config"
	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/born-ml/ndarray/internal/serialization"
	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"
)

// pathEscaper keeps array names such as "layer.0.weight" as single keys.
var pathEscaper = strings.NewReplacer(".", `\.`, "*", `\*`, "?", `\?`)

func newSaveCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:     "save FILE ARRAY",
		Short:   "Store an array in a binary .nda file",
		Example: "  ndarray save m.nda '[[1,2],[3,4]]' --name m",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := readArray(cmd, args[1])
			if err != nil {
				return err
			}
			slog.Debug("save", "file", args[0], "name", name, "shape", a.Dim().String())
			return serialization.WriteFile(args[0], map[string]*ndarray.Array[float64]{name: a}, nil)
		},
	}
	cmd.Flags().StringVar(&name, "name", "array", "Name to store the array under")
	return cmd
}

func newLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load FILE",
		Short: "Print the arrays stored in a .nda file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := serialization.ReadFile(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			doc := "{}"
			for _, name := range f.Names() {
				a, err := serialization.Array[float64](f, name)
				if err != nil {
					return err
				}
				if activeCfg.Output.Format == config.FormatJSON {
					enc, err := codec.Encode(a, activeCfg.Output.Precision)
					if err != nil {
						return err
					}
					if doc, err = sjson.SetRaw(doc, pathEscaper.Replace(name), enc); err != nil {
						return err
					}
					continue
				}
				if _, err := fmt.Fprintf(out, "%s:\n", name); err != nil {
					return err
				}
				if err := writeArray(out, a, activeCfg.Output); err != nil {
					return err
				}
			}

			if activeCfg.Output.Format == config.FormatJSON {
				_, err = fmt.Fprintln(out, doc)
			}
			return err
		},
	}
}
