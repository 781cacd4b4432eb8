package outputs

import (
	"os"
	"regexp"
	"strconv"
)

var classPattern = regexp.MustCompile(`(?m)^class [A-Za-z]+_(\d+)\(LLM_Strategy\):`)

// DoneIndices scans the artifact for emitted class declarations and returns
// the batch indices already present.
func (a *Artifact) DoneIndices() (map[int]bool, error) {
	content, err := os.ReadFile(a.path)
	if err != nil {
		return nil, err
	}

	done := make(map[int]bool)
	for _, match := range classPattern.FindAllSubmatch(content, -1) {
		n, err := strconv.Atoi(string(match[1]))
		if err != nil {
			continue
		}
		done[n] = true
	}
	return done, nil
}

// Remaining computes the ascending work list for a target of count batches,
// skipping indices already done. Indices start at 1.
func Remaining(done map[int]bool, count int) []int {
	var remaining []int
	for n := 1; n <= count; n++ {
		if !done[n] {
			remaining = append(remaining, n)
		}
	}
	return remaining
}
