package systemcodes

// Process exit codes of the ghsdk binary.
const (
	ErrorCodeGeneric = 1
	// ErrorCodeConfig is returned when configuration cannot be loaded.
	ErrorCodeConfig = 3
	// ErrorCodeDecode is returned when a body does not match its shape.
	ErrorCodeDecode = 4
	// ErrorCodeAPI is returned when the API answered with an error status.
	ErrorCodeAPI = 5
)
