package e2e_test

import (
	"fmt"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// generateLargeDocument writes an XML-RPC value document holding an array
// of itemCount struct values.
func generateLargeDocument(t testing.TB, filePath string, itemCount int) {
	// Seed random for reproducible results
	rng := rand.New(rand.NewSource(42))

	var b strings.Builder
	b.WriteString("<value><array><data>\n")
	for i := 0; i < itemCount; i++ {
		fmt.Fprintf(&b, "<value><struct>"+
			"<member><name>id</name><value><int>%d</int></value></member>"+
			"<member><name>name</name><value><string>Item %d</string></value></member>"+
			"<member><name>price</name><value><double>%g</double></value></member>"+
			"<member><name>active</name><value><boolean>%d</boolean></value></member>"+
			"</struct></value>\n",
			i+1, i+1, rng.Float64()*1000, rng.Intn(2))
	}
	b.WriteString("</data></array></value>\n")

	err := os.WriteFile(filePath, []byte(b.String()), 0644)
	require.NoError(t, err)
}

// BenchmarkLargeDocument benchmarks the CLI against large value documents.
func BenchmarkLargeDocument(b *testing.B) {
	// Skip in short mode
	if testing.Short() {
		b.Skip("skipping benchmark in short mode")
	}

	tempDir, err := os.MkdirTemp("", "xmlrpcval-bench")
	require.NoError(b, err)
	defer os.RemoveAll(tempDir)

	sizes := []struct {
		name      string
		itemCount int
	}{
		{"100Items", 100},
		{"1000Items", 1000},
		{"10000Items", 10000},
	}

	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			xmlFile := filepath.Join(tempDir, fmt.Sprintf("%s.xml", size.name))
			generateLargeDocument(b, xmlFile, size.itemCount)

			outputFile := filepath.Join(tempDir, fmt.Sprintf("%s.json", size.name))

			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				cmd := exec.Command("go", "run", "../../main.go", "-i", xmlFile, "-o", outputFile)
				output, err := cmd.CombinedOutput()
				require.NoError(b, err, "CLI command failed: %s", string(output))

				_, err = os.Stat(outputFile)
				require.NoError(b, err, "Output file was not created")

				os.Remove(outputFile)
			}
		})
	}
}
