package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/born-ml/ndarray/internal/codec"
	"github.com/born-ml/ndarray/internal/config"
	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/spf13/cobra"
)

func newMatMulCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "matmul A B",
		Short:   "Multiply two matrices",
		Example: "  ndarray matmul '[[0,1,2],[3,4,5]]' '[[0,1],[2,3],[4,5]]'",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := readArray(cmd, args[0])
			if err != nil {
				return err
			}
			b, err := readArray(cmd, args[1])
			if err != nil {
				return err
			}
			slog.Debug("matmul", "a", a.Dim().String(), "b", b.Dim().String())

			c, err := ndarray.MatMul(a, b)
			if err != nil {
				return err
			}
			return writeArray(cmd.OutOrStdout(), c, activeCfg.Output)
		},
	}
}

func newSliceCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "slice ARRAY SLICES",
		Short:   "Select a strided view, e.g. '1:, ::-1'",
		Example: "  ndarray slice '[[0,1,2,3],[4,5,6,7],[8,9,10,11]]' '1:, ::2'\n" +
			"  ndarray slice -- '[0,1,2,3]' -1   # -- before a leading minus",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := readArray(cmd, args[0])
			if err != nil {
				return err
			}
			slices, err := ndarray.ParseSlices(args[1])
			if err != nil {
				return err
			}
			slog.Debug("slice", "shape", a.Dim().String(), "slices", args[1])

			view, err := a.Slice(slices...)
			if err != nil {
				return err
			}
			return writeArray(cmd.OutOrStdout(), view, activeCfg.Output)
		},
	}
}

func newReshapeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "reshape ARRAY SHAPE",
		Short:   "Reshape to a comma-separated shape, e.g. '2,3'",
		Example: "  ndarray reshape '[0,1,2,3,4,5]' 2,3",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := readArray(cmd, args[0])
			if err != nil {
				return err
			}
			dim, err := parseShape(args[1])
			if err != nil {
				return err
			}
			slog.Debug("reshape", "from", a.Dim().String(), "to", dim.String())

			out, err := a.Reshape(dim)
			if err != nil {
				return err
			}
			return writeArray(cmd.OutOrStdout(), out, activeCfg.Output)
		},
	}
}

func newDiagCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diag ARRAY",
		Short: "Print the diagonal of an array",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := readArray(cmd, args[0])
			if err != nil {
				return err
			}
			d := a.Diag()
			data := make([]float64, 0, d.Len())
			for v, ok := d.Next(); ok; v, ok = d.Next() {
				data = append(data, v)
			}
			out, err := ndarray.FromSlice(ndarray.Shape(len(data)), data)
			if err != nil {
				return err
			}
			return writeArray(cmd.OutOrStdout(), out, activeCfg.Output)
		},
	}
}

// readArray decodes a JSON argument, or stdin when the argument is "-".
func readArray(cmd *cobra.Command, arg string) (*ndarray.Array[float64], error) {
	if arg == "-" {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		arg = string(raw)
	}
	return codec.Decode(arg)
}

func parseShape(s string) (ndarray.Dim, error) {
	var extents []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return ndarray.Dim{}, fmt.Errorf("invalid shape %q: %w", s, err)
		}
		extents = append(extents, n)
	}
	return ndarray.NewDim(extents...)
}

func writeArray(w io.Writer, a *ndarray.Array[float64], out config.OutputConfig) error {
	if out.Format == config.FormatJSON {
		s, err := codec.Encode(a, out.Precision)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, s)
		return err
	}

	verb := "%v"
	if out.Precision >= 0 {
		verb = "%." + strconv.Itoa(out.Precision) + "f"
	}
	_, err := fmt.Fprintf(w, verb+"\n", a)
	return err
}
