package seed

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Emit writes the cleaned response text to w unchanged, ending with a newline.
func Emit(w io.Writer, cleaned string) error {
	if !strings.HasSuffix(cleaned, "\n") {
		cleaned += "\n"
	}
	_, err := io.WriteString(w, cleaned)
	return err
}

// WriteFile saves records to path as JSON indented with two spaces.
func WriteFile(path string, records *RecordSet) error {
	data, err := records.Indent()
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}
