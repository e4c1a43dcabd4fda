package logging

// Standard field names for structured log entries.
const (
	FieldAccount     = "account"
	FieldFile        = "file_path"
	FieldRow         = "row"
	FieldRecord      = "record"
	FieldMethod      = "method"
	FieldStore       = "store"
	FieldItem        = "item"
	FieldNote        = "note"
	FieldReason      = "reason"
	FieldError       = "error"
	FieldCount       = "count"
	FieldSkipped     = "skipped"
	FieldRunID       = "run_id"
	FieldInputFile   = "input_file"
	FieldOutputFile  = "output_file"
	FieldComponent   = "component"
	FieldDuration    = "duration_ms"
	FieldEncoding    = "encoding"
	FieldCatalogSize = "catalog_size"
)
