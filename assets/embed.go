package assets

import (
	_ "embed"
	"fmt"
	"io"
	"strings"
)

// Instructions is the usage text printed on start.
//
//go:embed instructions.txt
var Instructions string

// PrintInstructions writes the usage text followed by a blank line.
func PrintInstructions(w io.Writer) error {
	if strings.TrimSpace(Instructions) == "" {
		return fmt.Errorf("embedded instructions.txt is empty")
	}
	_, err := fmt.Fprintln(w, strings.TrimRight(Instructions, "\n")+"\n")
	return err
}
