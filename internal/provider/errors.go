package provider

import (
	"fmt"
	"strings"
)

// ConfigurationError reports an unknown vendor key. Resolution is
// exact-match only; ambiguity is a hard error, never a guess.
type ConfigurationError struct {
	Key       string
	Supported []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("unknown model provider %q, supported providers: %s",
		e.Key, strings.Join(e.Supported, ", "))
}

// MissingCredentialError reports a nil or empty credential map at
// connector construction. Every vendor requires at least one credential
// field; there is no anonymous mode.
type MissingCredentialError struct {
	Provider string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("%s connector requires at least one credential field", e.Provider)
}

// InvalidInputError reports malformed caller input: nil agent input, an
// empty list at the dispatch boundary, or a blank model id or provider.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return e.Reason
}

// UnsupportedSourceError reports a URL-sourced media block whose URI is
// not in the object-store form the vendor requires.
type UnsupportedSourceError struct {
	Provider string
	URL      string
}

func (e *UnsupportedSourceError) Error() string {
	return fmt.Sprintf("%s requires an s3://bucket/key object-store uri for url-sourced media, got %q",
		e.Provider, e.URL)
}

// CapabilityError reports a content modality the selected vendor does not
// accept in any source form.
type CapabilityError struct {
	Provider string
	Modality string
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("%s does not support %s content", e.Provider, e.Modality)
}
