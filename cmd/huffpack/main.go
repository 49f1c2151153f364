// Command huffpack compresses and decompresses single text files using the
// huffpack container format. Output is written to a temporary file and
// renamed into place, so a failed run never leaves a partial artifact behind.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gmz007/huffpack"
)

const packedExt = ".hpk"

func main() {
	log.SetFlags(0)
	log.SetPrefix("huffpack: ")

	decompress := flag.Bool("d", false, "decompress instead of compress")
	output := flag.String("o", "", "output path (default derived from the input name)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: huffpack [-d] [-o output] file\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	input := flag.Arg(0)

	var err error
	if *decompress {
		err = unpackFile(input, *output)
	} else {
		err = packFile(input, *output)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func packFile(input, output string) error {
	if output == "" {
		output = input + packedExt
	}
	f, err := os.Open(input)
	if err != nil {
		return err
	}
	defer f.Close()

	packed, err := huffpack.Compress(f)
	if err != nil {
		return err
	}
	return writeAtomic(output, packed)
}

func unpackFile(input, output string) error {
	if output == "" {
		if !strings.HasSuffix(input, packedExt) {
			return fmt.Errorf("cannot derive output name from %q, use -o", input)
		}
		output = strings.TrimSuffix(input, packedExt)
	}
	f, err := os.Open(input)
	if err != nil {
		return err
	}
	defer f.Close()

	text, err := huffpack.DecompressFrom(f)
	if err != nil {
		return err
	}
	return writeAtomic(output, []byte(text))
}

// writeAtomic writes data to a temporary file in the destination directory
// and renames it over path once fully written and synced.
func writeAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".huffpack-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
