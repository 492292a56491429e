package model

import (
	"strconv"
	"strings"
)

// SourceRef is the parsed form of a filed contact's sourceId column. The
// column carries either nothing, an opaque direct reference, or a
// "BC-<rowIndex>" pointer back to the business-card row the contact was
// filed from.
type SourceRef struct {
	Raw      string
	RowIndex int
	IsCard   bool
}

const cardRefPrefix = "BC-"

// ParseSourceRef classifies a sourceId value. A "BC-" prefix with a
// non-numeric suffix is treated the same as no card reference at all;
// malformed refs never fail the caller.
func ParseSourceRef(raw string) SourceRef {
	ref := SourceRef{Raw: raw}
	if !strings.HasPrefix(raw, cardRefPrefix) {
		return ref
	}
	n, err := strconv.Atoi(strings.TrimPrefix(raw, cardRefPrefix))
	if err != nil {
		return ref
	}
	ref.RowIndex = n
	ref.IsCard = true
	return ref
}
