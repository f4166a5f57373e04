package recognizer

import "github.com/pkg/errors"

// A broken hull invariant means a bug in the maintainer, not a condition the
// caller can respond to, so there is no error return threaded through the
// insertion path. Instead we panic with a distinguished error type, and the
// public API recovers to convert it to an error.

type RecognizeError error

// Panic with a RecognizeError.
func fatalf(format string, args ...interface{}) {
	panic(RecognizeError(errors.Errorf(format, args...)))
}

func HandleRecognizePanicRecover(r interface{}) error {
	if r != nil {
		if recognizeError, ok := r.(RecognizeError); ok {
			return recognizeError
		}
		panic(r)
	}
	return nil
}
