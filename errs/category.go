package errs

// Category classifies the nature of an Err
type Category uint8

const (
	// CategoryNone is the zero value, left by New when no category is given
	CategoryNone Category = iota

	CategoryFailure
	CategoryUnexpected
	CategoryValidation
	CategoryConflict
	CategoryNotFound
	CategoryUnauthorized
)

var categoryNames = map[Category]string{
	CategoryNone:         "None",
	CategoryFailure:      "Failure",
	CategoryUnexpected:   "Unexpected",
	CategoryValidation:   "Validation",
	CategoryConflict:     "Conflict",
	CategoryNotFound:     "NotFound",
	CategoryUnauthorized: "Unauthorized",
}

// Categories returns the closed set of categories in declaration order.
// CategoryNone is not part of it.
func Categories() []Category {
	return []Category{
		CategoryFailure,
		CategoryUnexpected,
		CategoryValidation,
		CategoryConflict,
		CategoryNotFound,
		CategoryUnauthorized,
	}
}

// IsValid returns whether c is one of the six public categories
func (c Category) IsValid() bool {
	return c >= CategoryFailure && c <= CategoryUnauthorized
}

// String implements the Stringer interface
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}

	return "Category(invalid)"
}
