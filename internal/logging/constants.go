package logging

// Standardized field names for structured logging.
const (
	FieldSubject    = "subject_id"
	FieldPeriod     = "period"
	FieldRowIndex   = "row_index"
	FieldRowID      = "row_id"
	FieldField      = "field"
	FieldValue      = "value"
	FieldCount      = "count"
	FieldFormat     = "format"
	FieldBackend    = "backend"
	FieldOperation  = "operation"
	FieldError      = "error"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldModel      = "model"
)
