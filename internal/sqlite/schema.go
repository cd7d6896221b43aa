// Package sqlite stores the commit history of a design: every commit is a
// full snapshot of the document, chained to its predecessor and tagged with
// an author and a branch. See docs/ARCHITECTURE.md § Commit store.
package sqlite

// Schema DDL. Authors and branches are interned by name; commits carry the
// design payload column by column.
const (
	createAuthors = `CREATE TABLE IF NOT EXISTS authors (
    author_id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE
);`

	createBranches = `CREATE TABLE IF NOT EXISTS branches (
    branch_id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE
);`

	createCommits = `CREATE TABLE IF NOT EXISTS commits (
    commit_id TEXT PRIMARY KEY,
    previous_id TEXT,
    branch_id TEXT NOT NULL,
    author_id TEXT NOT NULL,
    date TEXT NOT NULL,
    description TEXT NOT NULL,
    mechanism TEXT NOT NULL,
    link_colors BLOB NOT NULL,
    storage BLOB NOT NULL,
    input_data BLOB NOT NULL,
    path_data BLOB NOT NULL,
    FOREIGN KEY (previous_id) REFERENCES commits(commit_id),
    FOREIGN KEY (branch_id) REFERENCES branches(branch_id),
    FOREIGN KEY (author_id) REFERENCES authors(author_id)
);`

	idxCommitsBranch = `CREATE INDEX IF NOT EXISTS idx_commits_branch ON commits(branch_id, date);`
)

// schemaDDL lists the statements in dependency order.
var schemaDDL = []string{
	createAuthors,
	createBranches,
	createCommits,
	idxCommitsBranch,
}
