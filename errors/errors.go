package errors

import "fmt"

var (
	ErrUploadInFlight  = fmt.Errorf("an upload is already in progress")
	ErrNoFileSelected  = fmt.Errorf("no file selected")
	ErrSessionResolved = fmt.Errorf("session already resolved, reset before starting a new upload")
)
