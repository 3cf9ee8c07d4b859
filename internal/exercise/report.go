package exercise

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"
)

// WriteReport writes the session's samples as CSV with a header row.
func WriteReport(w io.Writer, s *Session) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"exercise", "time", "reps", "points"}); err != nil {
		return err
	}
	for _, smp := range s.Samples {
		row := []string{
			s.Exercise,
			smp.Time.UTC().Format(time.RFC3339),
			strconv.Itoa(smp.Reps),
			strconv.Itoa(smp.Points),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
