// assets/embed.go
//
// Built-in word lists, used when no word files are configured.
//   - answers.txt: candidate targets.
//   - allowed.txt: accepted guesses.
// Blank lines and lines starting with "#" are skipped; words are upper-cased.

package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed allowed.txt answers.txt
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToUpper(s))
	}
	return out, sc.Err()
}

// AnswersList returns the embedded candidate list.
func AnswersList() ([]string, error) {
	return readLines("answers.txt")
}

// AllowedList returns the embedded accepted-guess list.
func AllowedList() ([]string, error) {
	return readLines("allowed.txt")
}
