package flatc

import "errors"

var (
	// Args are incomplete: empty out dir, lang or inputs.
	ERR_CONFIG = errors.New("invalid flatc args")
	// Out dir cannot be passed to flatc as a UTF-8 string.
	ERR_ENCODING = errors.New("only UTF-8 convertible paths are supported")
	// flatc could not be started, failed `--version`, or printed something unexpected.
	ERR_TOOL_UNAVAILABLE = errors.New("flatc is not available")
	// flatc was started for a real run and failed.
	ERR_EXECUTION = errors.New("flatc failed")
)
