// Command shapegen turns the text-art piece catalog into Go source.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

func main() {
	in := flag.String("in", "shapes.txt", "The catalog to read.")
	out := flag.String("out", "shapes_gen.go", "The Go file to write.")
	pkg := flag.String("package", "tetris", "The package name of the generated file.")
	flag.Parse()

	if err := run(*in, *out, *pkg); err != nil {
		log.Fatalf("shapegen: %v", err)
	}
}

func run(in, out, pkg string) error {
	f, err := os.Open(in)
	if err != nil {
		return fmt.Errorf("opening %s: %w", in, err)
	}
	defer f.Close()

	kinds, err := Parse(f)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	src, err := Generate(pkg, filepath.Base(in), out, kinds)
	if err != nil {
		return err
	}

	if err := os.WriteFile(out, src, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	log.Printf("wrote %d kinds to %s", len(kinds), out)
	return nil
}
