package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"cglogic/internal/dialect"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB: ограничение для тестового корпуса
	maxFuzzInput = 1 << 16  // 64 KiB
)

// builtinSeeds покрывают обе нотации, включая заведомо сломанный ввод.
var builtinSeeds = []string{
	"",
	"[Cat]",
	"[Person: *x] (Loves ?x ?x)",
	"[Person: @every *p] (Mortal ?p)",
	"~[[Cat: *c] (On ?c Mat)]",
	"[Number: *a] (Plus ?a 1 | *s) (Even ?s)",
	"[Situation: [Cat: *c] (Sits ?c)]",
	"/* unterminated",
	"[Cat: *x] [Dog: *x]",
	"(R ?nowhere)",
	"[[[[",
	"(forall (x) (if (Man x) (Mortal x)))",
	"(exists ((x Person) y) (and (P x) (= x y)))",
	"; comment only",
	"(not",
	")))(((",
	"(P ?x *y @every)",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// все исходники CGIF/CL из testdata
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || !dialect.IsSourcePath(path) {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}
