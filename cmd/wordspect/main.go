// wordspect decodes packed words: hex arguments, TOML manifests of named
// words, and CBOR snapshots.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tliron/commonlog"

	"github.com/chazu/packword/word"
	"github.com/chazu/packword/wordio"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	verbose := flag.Bool("v", false, "Enable library debug logging")
	manifestPath := flag.String("manifest", "", "Inspect every named word in a TOML manifest")
	snapshotPath := flag.String("snapshot", "", "Inspect every word in a CBOR snapshot")
	outPath := flag.String("o", "", "Write the given hex words as a CBOR snapshot instead of inspecting")
	label := flag.String("label", "", "Snapshot label (used with -o)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: wordspect [options] [hexword...]\n\n")
		fmt.Fprintf(os.Stderr, "Decodes packed words into their pointer/tag/data fields.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  wordspect 0x8002000000fe3a05          # Inspect one word\n")
		fmt.Fprintf(os.Stderr, "  wordspect -manifest words.toml        # Inspect named words\n")
		fmt.Fprintf(os.Stderr, "  wordspect -snapshot dump.cbor         # Inspect a snapshot\n")
		fmt.Fprintf(os.Stderr, "  wordspect -o dump.cbor -label boot 0x1f8 0x2a0  # Capture a snapshot\n")
	}
	flag.Parse()

	if *verbose {
		commonlog.Configure(1, nil)
	}

	if err := run(flag.Args(), *manifestPath, *snapshotPath, *outPath, *label); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, manifestPath, snapshotPath, outPath, label string) error {
	words := make([]uint64, 0, len(args))
	names := make([]string, 0, len(args))
	for _, arg := range args {
		w, err := wordio.ParseWord(arg)
		if err != nil {
			return err
		}
		words = append(words, w)
		names = append(names, arg)
	}

	if manifestPath != "" {
		m, err := wordio.LoadManifest(manifestPath)
		if err != nil {
			return err
		}
		mNames, mWords, err := m.Resolve()
		if err != nil {
			return err
		}
		names = append(names, mNames...)
		words = append(words, mWords...)
	}

	if snapshotPath != "" {
		data, err := os.ReadFile(snapshotPath)
		if err != nil {
			return fmt.Errorf("cannot read %s: %w", snapshotPath, err)
		}
		s, err := wordio.UnmarshalSnapshot(data)
		if err != nil {
			return err
		}
		for i, w := range s.Words {
			names = append(names, fmt.Sprintf("%s[%d]", s.Label, i))
			words = append(words, w)
		}
	}

	if len(words) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if outPath != "" {
		data, err := wordio.MarshalSnapshot(wordio.NewSnapshot(label, words))
		if err != nil {
			return err
		}
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			return fmt.Errorf("cannot write %s: %w", outPath, err)
		}
		fmt.Printf("wrote %d words to %s\n", len(words), outPath)
		return nil
	}

	for i, w := range words {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s\n%s\n", names[i], word.Inspect(w))
	}
	return nil
}
