package services

import "fmt"

// nextSequentialCode formats the next human-readable code for a collection
// currently holding existingCount entities: "{prefix}-{existingCount+1}",
// zero-padded to at least three digits ("BE-001", "INV-042"). Past 999 the
// number simply grows to four digits.
//
// The count is read with a plain collection count immediately before insert
// and nothing reserves the number, so concurrent creates can be assigned the
// same code. Callers that need uniqueness must serialize creates.
func nextSequentialCode(prefix string, existingCount int64) string {
	return fmt.Sprintf("%s-%03d", prefix, existingCount+1)
}
