package errs

// Default codes, one per category
const (
	CodeFailure      = "General.Failure"
	CodeUnexpected   = "General.Unexpected"
	CodeValidation   = "General.Validation"
	CodeConflict     = "General.Conflict"
	CodeNotFound     = "General.NotFound"
	CodeUnauthorized = "General.UnAuthorized"
)

// Default descriptions. The wording is part of the public contract and is
// kept as published, spelling included.
var defaultDescriptions = map[Category]string{
	CategoryFailure:      "A failure occured",
	CategoryUnexpected:   "An unexpected err has occured",
	CategoryValidation:   "A validation err has occured",
	CategoryConflict:     "An conflict err has occured",
	CategoryNotFound:     "An not found err has occured",
	CategoryUnauthorized: "An unauthorized err has occured",
}

var defaultCodes = map[Category]string{
	CategoryFailure:      CodeFailure,
	CategoryUnexpected:   CodeUnexpected,
	CategoryValidation:   CodeValidation,
	CategoryConflict:     CodeConflict,
	CategoryNotFound:     CodeNotFound,
	CategoryUnauthorized: CodeUnauthorized,
}

// Default returns the default code and description for a category.
// Both are empty for CategoryNone or an invalid category.
func Default(c Category) (code, description string) {
	return defaultCodes[c], defaultDescriptions[c]
}
