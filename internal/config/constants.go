package config

const SourceFileExt = ".lox"

// SourceFileExtensions are all recognized source file extensions
var SourceFileExtensions = []string{".lox"}

// IsTestMode indicates if the program is running under go test.
// Set once by test setup; the CLI never changes it.
var IsTestMode = false

const Version = "0.4.0"

// Native function names, bound in the global environment.
const (
	ClockFuncName = "clock"
	SqrtFuncName  = "sqrt"
	MaxFuncName   = "max"
)

// Reserved binding names
const (
	ThisName        = "this"
	SuperName       = "super"
	InitializerName = "init"
)

// Limits
const (
	// MaxArgs is the largest number of parameters or call arguments.
	MaxArgs = 255
	// DefaultMaxCallDepth bounds nested Lox calls before a stack overflow error.
	DefaultMaxCallDepth = 1024
)

// Config file names, in lookup order.
var ConfigFileNames = []string{"lox.yaml", "lox.yml"}

const (
	EnvMaxCallDepth = "LOX_MAX_CALL_DEPTH"
	EnvTrace        = "LOX_TRACE"
	EnvNoColor      = "NO_COLOR"
)
