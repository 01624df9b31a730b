package adcopy

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// ReadFile loads ads from a file, dispatching on extension: .json holds a
// single ad object or an array, .jsonl one ad per line, .jsonl.zst a
// zstd-compressed JSONL dump.
func ReadFile(path string) ([]Ad, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ads: %w", err)
	}
	defer f.Close()

	switch {
	case strings.HasSuffix(path, ".jsonl.zst"):
		decoder, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("create zstd decoder: %w", err)
		}
		defer decoder.Close()
		return ReadJSONL(decoder)
	case strings.HasSuffix(path, ".jsonl"):
		return ReadJSONL(f)
	case strings.HasSuffix(path, ".json"):
		return readJSON(f)
	default:
		return nil, fmt.Errorf("unsupported ads file %s (want .json, .jsonl, or .jsonl.zst)", path)
	}
}

// readJSON reads a single ad object or a JSON array of ads.
func readJSON(r io.Reader) ([]Ad, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read ads: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var ads []Ad
		if err := json.Unmarshal(trimmed, &ads); err != nil {
			return nil, fmt.Errorf("parse ads array: %w", err)
		}
		return ads, nil
	}

	var ad Ad
	if err := json.Unmarshal(trimmed, &ad); err != nil {
		return nil, fmt.Errorf("parse ad: %w", err)
	}
	return []Ad{ad}, nil
}

// ReadJSONL reads newline-delimited ad records. Blank lines are skipped;
// a malformed line fails the load with its line number.
func ReadJSONL(r io.Reader) ([]Ad, error) {
	var ads []Ad
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 10*1024*1024) // 10MB max line

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var ad Ad
		if err := json.Unmarshal([]byte(line), &ad); err != nil {
			return nil, fmt.Errorf("parse ad at line %d: %w", lineNum, err)
		}
		ads = append(ads, ad)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan ads: %w", err)
	}
	return ads, nil
}
