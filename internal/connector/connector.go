package connector

// Protocol names for the two auth schemes in use.
const (
	ProtocolAWSSigV4 = "aws_sigv4"
	ProtocolHTTP     = "http"
)

// RetryPolicy is applied by the network layer that later executes the
// connector; nothing in this module retries.
type RetryPolicy struct {
	MaxRetries int `json:"max_retries"`
}

// Action describes one HTTP call against the upstream model endpoint.
// BodyTemplate is expanded by a downstream templating stage; parameters
// listed in a mapping result's no-escape set must survive substitution
// verbatim.
type Action struct {
	Method       string            `json:"method"`
	URL          string            `json:"url"`
	Headers      map[string]string `json:"headers,omitempty"`
	BodyTemplate string            `json:"body_template"`
}

// Descriptor is a self-contained specification of how to reach and
// authenticate against an upstream model endpoint. Credentials are folded
// into AuthParameters so no call-time lookup of external state is needed
// to issue the described request.
type Descriptor struct {
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Protocol       string            `json:"protocol"`
	Parameters     map[string]string `json:"parameters,omitempty"`
	AuthParameters map[string]string `json:"auth_parameters,omitempty"`
	Retry          RetryPolicy       `json:"retry_policy"`
	Actions        []Action          `json:"actions"`
}
