package logging

// Structured logging keys.
const (
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"

	// Run settings.
	FieldRewrite = "rewrite"
	FieldDryRun  = "dry_run"
	FieldCheck   = "check"
	FieldFormat  = "format"
	FieldJobs    = "jobs"

	// Statistics.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesChanged    = "files_changed"
	FieldFilesModified   = "files_modified"
	FieldFilesFailed     = "files_failed"
	FieldRenames         = "renames"
	FieldCount           = "count"
	FieldLine            = "line"

	// Version.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
