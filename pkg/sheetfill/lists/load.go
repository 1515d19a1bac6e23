package lists

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ParseCustomList reads a custom list: one entry per line, a line holding
// only Delimiter starts a new group. Blank lines and lines starting with
// "#" are ignored.
func ParseCustomList(r io.Reader) (*CustomList, error) {
	var entries []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read custom list: %w", err)
	}
	return NewCustomList(entries), nil
}

// LoadCustomList reads a custom list file.
func LoadCustomList(path string) (*CustomList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseCustomList(f)
}
