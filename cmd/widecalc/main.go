// Command widecalc is a small calculator over the wide integer types,
// mostly useful for poking at the library from a shell.
//
//	widecalc add 0xf473e8e5f6e812c3fde4523b51b6d251 1
//	widecalc --width 256 mul 0xaf5705a489525e79 12345
//	widecalc --signed quorem -- -7 2
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/widemath/wide"
)

var (
	width    int
	signed   bool
	logLevel string
)

func main() {
	root := &cobra.Command{
		Use:           "widecalc",
		Short:         "fixed-width 128/256-bit integer calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().IntVar(&width, "width", 128, "integer width in bits (128 or 256)")
	root.PersistentFlags().BoolVar(&signed, "signed", false, "treat operands as signed")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "zerolog level")

	for _, op := range []string{"add", "sub", "mul", "quo", "rem", "quorem"} {
		root.AddCommand(binaryCmd(op))
	}
	root.AddCommand(muldivCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "widecalc:", err)
		os.Exit(1)
	}
}

func logger() zerolog.Logger {
	lvl, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		lvl = zerolog.WarnLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).With().Timestamp().Logger()
}

func binaryCmd(op string) *cobra.Command {
	return &cobra.Command{
		Use:   op + " <a> <b>",
		Short: op + " two integers",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return calc(op, args)
		},
	}
}

func muldivCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "muldiv <a> <m> <d>",
		Short: "compute (a*m)/d without intermediate overflow",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return calc("muldiv", args)
		},
	}
}

func calc(op string, args []string) error {
	log := logger()
	log.Debug().Str("op", op).Int("width", width).Bool("signed", signed).Msg("evaluating")

	switch {
	case width == 128 && !signed:
		return evalU128(op, args)
	case width == 128 && signed:
		return evalI128(op, args)
	case width == 256 && !signed:
		return evalU256(op, args)
	case width == 256 && signed:
		return evalI256(op, args)
	default:
		return fmt.Errorf("unsupported width %d", width)
	}
}

func evalU128(op string, args []string) error {
	vs := make([]wide.U128, len(args))
	for i, a := range args {
		v, err := wide.ParseU128(a)
		if err != nil {
			return err
		}
		vs[i] = v
	}
	switch op {
	case "add":
		fmt.Println(vs[0].Add(vs[1]))
	case "sub":
		fmt.Println(vs[0].Sub(vs[1]))
	case "mul":
		fmt.Println(vs[0].Mul(vs[1]))
	case "quo":
		fmt.Println(vs[0].Quo(vs[1]))
	case "rem":
		fmt.Println(vs[0].Rem(vs[1]))
	case "quorem":
		q, r := vs[0].QuoRem(vs[1])
		fmt.Println(q, r)
	case "muldiv":
		fmt.Println(vs[0].MulDiv(vs[1], vs[2]))
	}
	return nil
}

func evalI128(op string, args []string) error {
	vs := make([]wide.I128, len(args))
	for i, a := range args {
		v, err := wide.ParseI128(a)
		if err != nil {
			return err
		}
		vs[i] = v
	}
	switch op {
	case "add":
		fmt.Println(vs[0].Add(vs[1]))
	case "sub":
		fmt.Println(vs[0].Sub(vs[1]))
	case "mul":
		fmt.Println(vs[0].Mul(vs[1]))
	case "quo":
		fmt.Println(vs[0].Quo(vs[1]))
	case "rem":
		fmt.Println(vs[0].Rem(vs[1]))
	case "quorem":
		q, r := vs[0].QuoRem(vs[1])
		fmt.Println(q, r)
	case "muldiv":
		fmt.Println(vs[0].MulDiv(vs[1], vs[2]))
	}
	return nil
}

func evalU256(op string, args []string) error {
	vs := make([]wide.U256, len(args))
	for i, a := range args {
		v, err := wide.ParseU256(a)
		if err != nil {
			return err
		}
		vs[i] = v
	}
	switch op {
	case "add":
		fmt.Println(vs[0].Add(vs[1]))
	case "sub":
		fmt.Println(vs[0].Sub(vs[1]))
	case "mul":
		fmt.Println(vs[0].Mul(vs[1]))
	case "quo":
		fmt.Println(vs[0].Quo(vs[1]))
	case "rem":
		fmt.Println(vs[0].Rem(vs[1]))
	case "quorem":
		q, r := vs[0].QuoRem(vs[1])
		fmt.Println(q, r)
	case "muldiv":
		fmt.Println(vs[0].MulDiv(vs[1], vs[2]))
	}
	return nil
}

func evalI256(op string, args []string) error {
	vs := make([]wide.I256, len(args))
	for i, a := range args {
		v, err := wide.ParseI256(a)
		if err != nil {
			return err
		}
		vs[i] = v
	}
	switch op {
	case "add":
		fmt.Println(vs[0].Add(vs[1]))
	case "sub":
		fmt.Println(vs[0].Sub(vs[1]))
	case "mul":
		fmt.Println(vs[0].Mul(vs[1]))
	case "quo":
		fmt.Println(vs[0].Quo(vs[1]))
	case "rem":
		fmt.Println(vs[0].Rem(vs[1]))
	case "quorem":
		q, r := vs[0].QuoRem(vs[1])
		fmt.Println(q, r)
	case "muldiv":
		fmt.Println(vs[0].MulDiv(vs[1], vs[2]))
	}
	return nil
}
