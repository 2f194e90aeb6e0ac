package models

import "time"

// Database type constants
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

// Sort locale constants (see tally.KeyForLocale)
const (
	LocalePinyin = "pinyin"
	LocaleFold   = "fold"
)

// Input types

// RawRow is one row of the survey export, keyed by header cell.
type RawRow struct {
	Line  int // 1-based line in the source file (header is line 1)
	Cells map[string]string
}

// Reference data (loaded once, immutable for the run)

type Candidate struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

type Category struct {
	ID            string      `json:"id" yaml:"id"`
	Name          string      `json:"name" yaml:"name"`
	Column        string      `json:"column" yaml:"column"`
	MinSelections int         `json:"min_selections" yaml:"min_selections"`
	MaxSelections int         `json:"max_selections" yaml:"max_selections"`
	Candidates    []Candidate `json:"candidates" yaml:"candidates"`
}

// SingleChoice reports whether at most one candidate may be selected.
func (c Category) SingleChoice() bool {
	return c.MaxSelections <= 1
}

type Definitions struct {
	RespondentColumn string     `json:"respondent_column" yaml:"respondent_column"`
	Categories       []Category `json:"categories" yaml:"categories"`
}

// Pipeline types

// Response is one respondent's canonicalized submission.
// Selections maps category id to the deduplicated candidate ids voted for.
type Response struct {
	RespondentID string
	Selections   map[string][]string
}

// Warning records a recovered category-level normalization issue.
type Warning struct {
	Category string
	Row      int
	Reason   string
}

// TallyEntry is the accumulated state for one (category, candidate) pair.
type TallyEntry struct {
	CandidateID string
	Name        string
	Count       int
	Percent     float64
}

// Report types (one schema, shared by the JSON and MessagePack encodings)

type RankedEntry struct {
	CandidateID string  `json:"candidate_id" msgpack:"candidate_id"`
	Name        string  `json:"name" msgpack:"name"`
	Count       int     `json:"count" msgpack:"count"`
	Percent     float64 `json:"percent" msgpack:"percent"`
	Rank        int     `json:"rank" msgpack:"rank"` // 1-indexed, ties share a rank
}

type CategoryResult struct {
	CategoryID     string        `json:"category_id" msgpack:"category_id"`
	Name           string        `json:"name" msgpack:"name"`
	ValidResponses int           `json:"valid_responses" msgpack:"valid_responses"`
	Entries        []RankedEntry `json:"entries" msgpack:"entries"`
}

type Summary struct {
	TotalRespondents int `json:"total_respondents" msgpack:"total_respondents"`
	RejectedRows     int `json:"rejected_rows" msgpack:"rejected_rows"`
	Warnings         int `json:"warnings" msgpack:"warnings"`
}

type Report struct {
	RunID       string           `json:"run_id" msgpack:"run_id"`
	GeneratedAt time.Time        `json:"generated_at" msgpack:"generated_at"`
	Summary     Summary          `json:"summary" msgpack:"summary"`
	Categories  []CategoryResult `json:"categories" msgpack:"categories"`
}
