// bench - numtower notation benchmark runner
//
// For each corpus of literals it measures:
//   - Bytes as written by the source vs canonical notation vs a JSON array
//   - Parse throughput
//   - Stern-Brocot search cost for the real values
//
// Corpora come from the files named on the command line, or from built-in
// generated sets when none are given.
//
// Output: CSV and markdown summary
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Neumenon/numtower/notation"
	"github.com/Neumenon/numtower/numeric"
)

type CaseResult struct {
	Name           string
	Literals       int
	SourceBytes    int
	CanonicalBytes int
	JSONBytes      int
	BytesPct       float64 // canonical vs JSON, positive when canonical is smaller
	ParseNanos     float64 // per literal
	MeanIterations float64
	Unconverged    int
}

type corpus struct {
	name string
	text string
}

func main() {
	var corpora []corpus
	if len(os.Args) > 1 {
		for _, path := range os.Args[1:] {
			data, err := os.ReadFile(path) // #nosec G304 -- benchmark inputs are named by the user
			if err != nil {
				fmt.Fprintf(os.Stderr, "Skip %s: %v\n", path, err)
				continue
			}
			corpora = append(corpora, corpus{name: filepath.Base(path), text: string(data)})
		}
	} else {
		corpora = generated()
	}

	fmt.Fprintf(os.Stderr, "numtower Benchmark Runner\n")
	fmt.Fprintf(os.Stderr, "=========================\n")
	fmt.Fprintf(os.Stderr, "Corpora: %d\n\n", len(corpora))

	approx := numeric.Approximator{Epsilon: 1e-9, MaxIterations: numeric.DefaultMaxIterations}

	var results []CaseResult
	var totalCanonical, totalJSON, totalLiterals int
	for _, c := range corpora {
		r, err := runCase(c, approx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Skip %s: %v\n", c.name, err)
			continue
		}
		results = append(results, r)
		totalCanonical += r.CanonicalBytes
		totalJSON += r.JSONBytes
		totalLiterals += r.Literals
	}

	csvPath := "bench_results.csv"
	csvFile, err := os.Create(csvPath)
	if err == nil {
		writeCSV(csvFile, results)
		csvFile.Close()
		fmt.Fprintf(os.Stderr, "CSV written to: %s\n", csvPath)
	}

	mdPath := "BENCH.md"
	mdFile, err := os.Create(mdPath)
	if err == nil {
		writeMarkdown(mdFile, results, totalCanonical, totalJSON)
		mdFile.Close()
		fmt.Fprintf(os.Stderr, "Markdown written to: %s\n", mdPath)
	}

	fmt.Printf("\n=== SUMMARY ===\n")
	fmt.Printf("Cases:          %d\n", len(results))
	fmt.Printf("Literals:       %d\n", totalLiterals)
	fmt.Printf("Canonical:      %d bytes\n", totalCanonical)
	fmt.Printf("JSON:           %d bytes\n", totalJSON)
	if totalJSON > 0 {
		fmt.Printf("Bytes saved:    %d (%.1f%%)\n", totalJSON-totalCanonical, float64(totalJSON-totalCanonical)/float64(totalJSON)*100)
	}
}

func runCase(c corpus, approx numeric.Approximator) (CaseResult, error) {
	start := time.Now()
	nums, err := notation.ReadString(c.text, notation.DefaultReaderOptions())
	elapsed := time.Since(start)
	if err != nil {
		return CaseResult{}, err
	}

	canonical, err := notation.WriteString(nums, notation.DefaultWriterOptions())
	if err != nil {
		return CaseResult{}, err
	}

	// JSON strings keep every kind exact; numbers would lose ratios and big values.
	strs := make([]string, len(nums))
	for i, n := range nums {
		strs[i] = numeric.Format(n)
	}
	jsonData, _ := json.Marshal(strs)

	r := CaseResult{
		Name:           c.name,
		Literals:       len(nums),
		SourceBytes:    len(c.text),
		CanonicalBytes: len(canonical),
		JSONBytes:      len(jsonData),
	}
	if r.JSONBytes > 0 {
		r.BytesPct = float64(r.JSONBytes-r.CanonicalBytes) / float64(r.JSONBytes) * 100.0
	}
	if r.Literals > 0 {
		r.ParseNanos = float64(elapsed.Nanoseconds()) / float64(r.Literals)
	}

	searched, iterations := 0, 0
	for _, n := range nums {
		if !n.IsReal() {
			continue
		}
		a, err := approx.Approximate(n.Float64())
		if err != nil {
			r.Unconverged++
			continue
		}
		searched++
		iterations += a.Iterations
	}
	if searched > 0 {
		r.MeanIterations = float64(iterations) / float64(searched)
	}
	return r, nil
}

// generated builds deterministic corpora covering each literal kind.
func generated() []corpus {
	rng := rand.New(rand.NewPCG(1, 2))
	build := func(n int, gen func() string) string {
		parts := make([]string, n)
		for i := range parts {
			parts[i] = gen()
		}
		return strings.Join(parts, " ")
	}

	return []corpus{
		{"ints", build(1000, func() string {
			return strconv.FormatInt(rng.Int64N(2_000_000)-1_000_000, 10)
		})},
		{"bigints", build(500, func() string {
			return strconv.FormatUint(rng.Uint64(), 10) + "9N"
		})},
		{"ratios", build(1000, func() string {
			return fmt.Sprintf("%d/%d", rng.Int64N(2000)-1000, rng.Int64N(999)+1)
		})},
		{"floats", build(1000, func() string {
			return strconv.FormatFloat(rng.NormFloat64()*100, 'g', -1, 64)
		})},
		{"decimals", build(1000, func() string {
			return fmt.Sprintf("%d.%02dM", rng.IntN(10000), rng.IntN(100))
		})},
		{"complex", build(500, func() string {
			return fmt.Sprintf("%d.5%+di", rng.IntN(100), rng.IntN(200)-100)
		})},
		{"mixed", build(1000, func() string {
			switch rng.IntN(4) {
			case 0:
				return strconv.Itoa(rng.IntN(100))
			case 1:
				return fmt.Sprintf("%d/%d", rng.IntN(100), rng.IntN(99)+1)
			case 2:
				return strconv.FormatFloat(math.Round(rng.Float64()*1e4)/1e4, 'g', -1, 64)
			default:
				return fmt.Sprintf("+%d.0%dM", rng.IntN(100), rng.IntN(10))
			}
		})},
	}
}

func writeCSV(w io.Writer, results []CaseResult) {
	fmt.Fprintln(w, "name,literals,source_bytes,canonical_bytes,json_bytes,bytes_pct,parse_ns,mean_iterations,unconverged")
	for _, r := range results {
		fmt.Fprintf(w, "%s,%d,%d,%d,%d,%.1f,%.0f,%.1f,%d\n",
			r.Name, r.Literals, r.SourceBytes, r.CanonicalBytes, r.JSONBytes,
			r.BytesPct, r.ParseNanos, r.MeanIterations, r.Unconverged)
	}
}

func writeMarkdown(w io.Writer, results []CaseResult, totalCanonical, totalJSON int) {
	fmt.Fprintf(w, "# numtower Benchmark Results\n\n")
	fmt.Fprintf(w, "**Cases:** %d  \n\n", len(results))

	fmt.Fprintf(w, "## Summary\n\n")
	fmt.Fprintf(w, "| Metric | JSON (string array) | Canonical notation | Savings |\n")
	fmt.Fprintf(w, "|--------|---------------------|--------------------|---------|\n")
	saved := totalJSON - totalCanonical
	pct := 0.0
	if totalJSON > 0 {
		pct = float64(saved) / float64(totalJSON) * 100
	}
	fmt.Fprintf(w, "| **Bytes** | %d | %d | %d (%.1f%%) |\n\n", totalJSON, totalCanonical, saved, pct)

	fmt.Fprintf(w, "## Approximation Cost\n\n")
	sorted := make([]CaseResult, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].MeanIterations > sorted[j].MeanIterations
	})
	fmt.Fprintf(w, "| Case | Mean iterations | Unconverged |\n")
	fmt.Fprintf(w, "|------|-----------------|-------------|\n")
	for _, r := range sorted {
		fmt.Fprintf(w, "| %s | %.1f | %d |\n", r.Name, r.MeanIterations, r.Unconverged)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "## Methodology\n\n")
	fmt.Fprintf(w, "- **Canonical:** space-separated output of `notation.WriteString`\n")
	fmt.Fprintf(w, "- **JSON:** `json.Marshal` of the canonical literals as strings\n")
	fmt.Fprintf(w, "- **Approximation:** epsilon 1e-9, default cap on direction changes\n\n")

	fmt.Fprintf(w, "## Detailed Results\n\n")
	fmt.Fprintf(w, "| Case | Literals | Source | Canonical | JSON | Bytes %% | ns/literal |\n")
	fmt.Fprintf(w, "|------|----------|--------|-----------|------|---------|------------|\n")
	for _, r := range results {
		sign := ""
		if r.BytesPct > 0 {
			sign = "+"
		}
		fmt.Fprintf(w, "| %s | %d | %d | %d | %d | %s%.1f%% | %.0f |\n",
			truncateName(r.Name, 25), r.Literals, r.SourceBytes, r.CanonicalBytes,
			r.JSONBytes, sign, r.BytesPct, r.ParseNanos)
	}
}

func truncateName(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
