package main

import (
	"flag"
	"fmt"
	"os"

	bytepack "github.com/reoring/bytepack"
	"github.com/reoring/bytepack/dsl"
	"github.com/reoring/bytepack/layoutschema"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "size":
		sizeCmd(os.Args[2:])
	case "demo":
		demoCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "bytepack CLI\n\nUsage:\n  bytepack size -p <pattern>\n  bytepack demo [-format json|yaml]\n\nNotes:\n  - size validates a pattern string and prints its fixed packed byte size.\n  - demo prints the layout report of a small built-in example type.")
}

func sizeCmd(args []string) {
	fs := flag.NewFlagSet("size", flag.ExitOnError)
	var pattern string
	fs.StringVar(&pattern, "p", "", "pack pattern string, e.g. I4sBBB")
	_ = fs.Parse(args)
	if pattern == "" {
		fs.Usage()
		os.Exit(2)
	}
	n, err := bytepack.PatternSize(pattern)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	fmt.Println(n)
}

func demoCmd(args []string) {
	fs := flag.NewFlagSet("demo", flag.ExitOnError)
	var format string
	fs.StringVar(&format, "format", "json", "output format: json or yaml")
	_ = fs.Parse(args)

	point := dsl.Struct("Point").
		Field("x", dsl.F32()).
		Field("y", dsl.F32())
	order := dsl.Struct("Order").
		Field("id", dsl.U64()).
		Field("ticker", dsl.String(8)).
		Field("qty", dsl.U32()).Default(uint32(1)).
		Field("venue", dsl.Nested(point.Type())).
		Field("levels", dsl.ListOf(dsl.F64(), 4)).
		MustBuild()

	doc, err := layoutschema.FromLayout(order)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	var out []byte
	switch format {
	case "yaml":
		out, err = doc.EncodeYAML()
	default:
		out, err = doc.EncodeJSON()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
