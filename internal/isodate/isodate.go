// Package isodate formats and parses the fixed-width date layout XML-RPC
// uses for dateTime.iso8601 nodes: YYYYMMDD "T" HH:MM:SS, no zone
// designator.
package isodate

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/mcncl/xmlrpcval/internal/errors"
)

var pattern = regexp.MustCompile(`^(\d{4})(\d{2})(\d{2})T(\d{2}):(\d{2}):(\d{2})$`)

// Format renders t in the wire layout. The timestamp's zone is dropped
// entirely; the wire format has nowhere to carry an offset.
func Format(t time.Time) string {
	return fmt.Sprintf("%04d%02d%02dT%02d:%02d:%02d",
		t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second())
}

// Parse reads the wire layout back into a time.Time. Because the text names
// a calendar point with no offset, the result carries the decoding host's
// local zone; the sender's offset is unrecoverable.
func Parse(s string) (time.Time, error) {
	m := pattern.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, errors.NewDateError(
			fmt.Sprintf("date text %q does not match YYYYMMDDTHH:MM:SS", s), nil)
	}
	n := make([]int, 6)
	for i := range n {
		// Submatches are all digits, so Atoi cannot fail here.
		n[i], _ = strconv.Atoi(m[i+1])
	}
	return time.Date(n[0], time.Month(n[1]), n[2], n[3], n[4], n[5], 0, time.Local), nil
}
