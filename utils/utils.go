package utils

import (
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/lanevec/vasm/driver"
)

type TestData struct {
	Label    string
	Enable   bool
	Input    string
	Expected map[string]string
}

func ReadTestData(s []byte) []TestData {
	var data []TestData
	if err := yaml.Unmarshal(s, &data); err != nil {
		panic(err)
	}

	// Remove disabled test cases.
	i := 0
	for _, d := range data {
		if d.Enable {
			data[i] = d
			i++
		}
	}
	data = data[:i]

	return data
}

// FindSourceFiles returns every .vasm file under dir.
func FindSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".vasm") {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// RunTest tokenizes input and compares the printed lexeme stream, one
// lexeme per line without a trailing newline, against expected.
func RunTest(t testing.TB, label, input, expected string) {
	t.Helper()
	lexemes, err := driver.Tokenize(input)
	if err != nil {
		t.Errorf("%s: %v", label, err)
		return
	}
	var b strings.Builder
	for i, lx := range lexemes {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(lx.String())
	}
	if diff := cmp.Diff(expected, b.String()); diff != "" {
		t.Errorf("%s: mismatch (-want +got):\n%s", label, diff)
	}
}
