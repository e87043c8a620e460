package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"samewords/internal/config"
	"samewords/internal/letters"
)

const noMatchesMessage = "No matching words found."

func renderResult(out io.Writer, words []string, elapsed time.Duration, style string) error {
	fmt.Fprintf(out, "\nExecution Time: %.2f seconds\n", elapsed.Seconds())
	if len(words) == 0 {
		_, err := fmt.Fprintln(out, noMatchesMessage)
		return err
	}

	if style == config.StyleTable {
		fmt.Fprintf(out, "Matching words (%d found):\n", len(words))
		rows := make([][]string, 0, len(words))
		for i, word := range words {
			rows = append(rows, []string{strconv.Itoa(i + 1), word, strconv.Itoa(letters.Length(word))})
		}
		_, err := fmt.Fprintln(out, renderTable([]string{"#", "Word", "Letters"}, rows, []columnAlignment{alignRight, alignLeft, alignRight}))
		return err
	}

	_, err := fmt.Fprintf(out, "Matching words (%d found): %s\n", len(words), strings.Join(words, ", "))
	return err
}
