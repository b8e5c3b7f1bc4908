package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// nextSequenceNumber computes the next document number for the given prefix
// and date, e.g. TRF-20240115-0001. last is the highest existing number with
// the same prefix, or "" when none exist.
func nextSequenceNumber(prefix string, now time.Time, last string) string {
	datePart := now.Format("20060102")
	full := prefix + "-" + datePart + "-"
	seq := 1
	if strings.HasPrefix(last, full) {
		if n, err := strconv.Atoi(strings.TrimPrefix(last, full)); err == nil {
			seq = n + 1
		}
	}
	return fmt.Sprintf("%s%04d", full, seq)
}

// nextRequestNumber computes the next maintenance request number, e.g.
// MR202401150001. Unlike nextSequenceNumber the segments carry no separator.
func nextRequestNumber(now time.Time, last string) string {
	full := "MR" + now.Format("20060102")
	seq := 1
	if strings.HasPrefix(last, full) {
		if n, err := strconv.Atoi(strings.TrimPrefix(last, full)); err == nil {
			seq = n + 1
		}
	}
	return fmt.Sprintf("%s%04d", full, seq)
}
