package models

import "errors"

// ErrStructuralRow marks a raw row that cannot be interpreted at all
// (e.g., missing respondent identifier). The row is excluded from every
// tally and counted in Summary.RejectedRows.
var ErrStructuralRow = errors.New("structurally invalid row")

// ErrConsistency marks an internal invariant violation, such as a
// single-choice category whose candidate counts exceed its valid
// response total. It aborts report generation; it is never recovered.
var ErrConsistency = errors.New("tally consistency violation")
