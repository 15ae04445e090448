package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// nextNumber produces the next document number for the given day, e.g.
// RCP-20240115-003. The sequence is per-day and derived from the stored
// numbers, so deleting a document never reissues an earlier number.
func nextNumber(kind string, existing []string, on time.Time) string {
	prefix := fmt.Sprintf("%s-%s-", kind, on.Format("20060102"))
	max := 0
	for _, n := range existing {
		if !strings.HasPrefix(n, prefix) {
			continue
		}
		if seq, err := strconv.Atoi(strings.TrimPrefix(n, prefix)); err == nil && seq > max {
			max = seq
		}
	}
	return fmt.Sprintf("%s%03d", prefix, max+1)
}
