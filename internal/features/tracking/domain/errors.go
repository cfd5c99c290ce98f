package domain

// ProviderError is returned when the tracking provider's payload reports
// failure through its own success flag. Message carries the provider's text
// when it sent one.
type ProviderError struct {
	Message string
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	if e.Message == "" {
		return "tracking provider did not recognize the access key"
	}
	return "tracking provider rejected the lookup: " + e.Message
}
