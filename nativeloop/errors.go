package nativeloop

import "errors"

// Standard errors.
var (
	ErrUnsupported     = errors.New("nativeloop: not supported on this platform")
	ErrLoopClosed      = errors.New("nativeloop: loop closed")
	ErrLoopRunning     = errors.New("nativeloop: loop already running")
	ErrNilTask         = errors.New("nativeloop: nil task")
	ErrFDOutOfRange    = errors.New("nativeloop: fd out of range")
	ErrFDRegistered    = errors.New("nativeloop: fd already registered")
	ErrFDNotRegistered = errors.New("nativeloop: fd not registered")
)
