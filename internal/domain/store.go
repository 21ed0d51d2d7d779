package domain

import "context"

// Logical table names agreed with the external schema
const (
	TableClients    = "p1_clients"
	TableProjects   = "p1_projects"
	TableCandidates = "p1_candidates"
	TableShortlist  = "p1_cms"
)

// Row is one record of a table snapshot. Fields are addressed by position;
// the order is the column order declared in TableColumns.
type Row []any

// TableColumns is the positional contract for every table the service reads.
// Stores must return rows with exactly these columns in exactly this order.
var TableColumns = map[string][]string{
	TableClients: {
		"client_id", "company", "city", "industry", "note",
		"ci_name", "ci_phone", "ci_email",
	},
	TableProjects: {
		"project_id", "client", "project_name", "job_position",
		"number_employees", "note", "compensation",
	},
	TableCandidates: {
		"candidate_id", "name_surname", "gender", "birth_year", "city",
		"phone", "mail", "linkedin", "note", "school", "major",
		"business_skills", "licences", "languages", "current_position",
		"work_experience", "optimal_position", "talent_score", "project_id",
		"blacklisted", "kn1_description", "kn1_score", "kn2_description",
		"kn2_score", "competencies", "c_description", "pv_description",
	},
	TableShortlist: {
		"project_id", "candidate_id", "note", "rating",
		"accepted", "reserve", "rejected",
	},
}

// TableKeys lists the key columns of each table. A store must never hold two
// rows with the same key.
var TableKeys = map[string][]string{
	TableClients:    {"client_id"},
	TableProjects:   {"project_id"},
	TableCandidates: {"candidate_id"},
	TableShortlist:  {"project_id", "candidate_id"},
}

// StatementKind selects how a Statement is applied
type StatementKind int

const (
	StatementInsert StatementKind = iota
	StatementUpdate
)

// Statement is a parameterized write template. Positional arguments passed to
// ExecuteWrite bind to Columns first and then, for updates, to KeyColumns.
type Statement struct {
	Table      string
	Kind       StatementKind
	Columns    []string
	KeyColumns []string
	// IgnoreConflict makes an insert of an existing key a no-op instead of a failure
	IgnoreConflict bool
}

// RecordStore is the storage collaborator. Reads return whole-table
// snapshots; writes return no rows.
type RecordStore interface {
	ReadTable(ctx context.Context, table string) ([]Row, error)
	ExecuteWrite(ctx context.Context, stmt Statement, args ...any) error
}

// Locker serializes work on a named key across callers
type Locker interface {
	// Acquire blocks until the key is held or ctx is done. The returned
	// function releases the key.
	Acquire(ctx context.Context, key string) (func(), error)
}
