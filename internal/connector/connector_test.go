package connector

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestDescriptorJSON(t *testing.T) {
	desc := Descriptor{
		Name:        "Amazon Bedrock Connector: converse",
		Description: "Connector for the Amazon Bedrock Converse API",
		Protocol:    ProtocolAWSSigV4,
		Parameters:  map[string]string{"region": "us-east-1"},
		AuthParameters: map[string]string{
			"access_key":   "AKIA123",
			"region":       "us-east-1",
			"service_name": "bedrock",
		},
		Retry: RetryPolicy{MaxRetries: 3},
		Actions: []Action{
			{
				Method:       "POST",
				URL:          "https://bedrock-runtime.us-east-1.amazonaws.com/model/m/converse",
				Headers:      map[string]string{"content-type": "application/json"},
				BodyTemplate: "${parameters.body}",
			},
		},
	}

	out, err := json.Marshal(desc)
	require.NoError(t, err)
	body := string(out)

	assert.Equal(t, "aws_sigv4", gjson.Get(body, "protocol").String())
	assert.Equal(t, int64(3), gjson.Get(body, "retry_policy.max_retries").Int())
	assert.Equal(t, "${parameters.body}", gjson.Get(body, "actions.0.body_template").String())
	assert.Equal(t, "bedrock", gjson.Get(body, "auth_parameters.service_name").String())
}

func TestDescriptorJSONOmitsEmptyMaps(t *testing.T) {
	out, err := json.Marshal(Descriptor{Name: "c", Protocol: ProtocolHTTP})
	require.NoError(t, err)
	body := string(out)

	assert.False(t, gjson.Get(body, "parameters").Exists())
	assert.False(t, gjson.Get(body, "auth_parameters").Exists())
}
