package provision

import (
	"strings"

	"go.uber.org/zap"

	"searchforge/mlbridge/internal/connector"
	"searchforge/mlbridge/internal/provider"
)

// ModelSpec is the caller-supplied description of a model to provision.
type ModelSpec struct {
	ModelID    string            `yaml:"model_id" json:"model_id"`
	Provider   string            `yaml:"provider" json:"provider"`
	Credential map[string]string `yaml:"credential" json:"credential,omitempty"`
	Parameters map[string]string `yaml:"parameters" json:"parameters,omitempty"`
}

// Registration is a ready-to-register model descriptor. It is handed to
// the external registration pipeline and never mutated afterwards.
type Registration struct {
	Name      string                `json:"name"`
	Connector *connector.Descriptor `json:"connector"`
	Deploy    bool                  `json:"deploy"`
}

// NewRegistration wraps a connector with a generated display name.
// Provisioning never requests deployment; activating the model is the
// registration pipeline's decision, not this module's.
func NewRegistration(modelName string, conn *connector.Descriptor) *Registration {
	return &Registration{
		Name:      "Auto-generated model for " + modelName,
		Connector: conn,
	}
}

// Service provisions model registration descriptors from model specs.
type Service struct {
	registry *provider.Registry
	log      *zap.SugaredLogger
}

// NewService returns a provisioning service over the given registry.
func NewService(registry *provider.Registry) *Service {
	return &Service{
		registry: registry,
		log:      zap.S(),
	}
}

// CreateModelFromSpec validates the model spec, resolves the vendor adapter,
// and composes the connector and registration descriptors. Adapter errors
// propagate unchanged so callers can tell credential problems from
// capability problems from configuration problems.
func (s *Service) CreateModelFromSpec(spec *ModelSpec) (*Registration, error) {
	if spec == nil {
		return nil, &provider.InvalidInputError{Reason: "model spec cannot be nil"}
	}
	if strings.TrimSpace(spec.ModelID) == "" {
		return nil, &provider.InvalidInputError{Reason: "model id cannot be blank"}
	}
	if strings.TrimSpace(spec.Provider) == "" {
		return nil, &provider.InvalidInputError{Reason: "model provider cannot be blank"}
	}

	adapter, err := s.registry.Resolve(spec.Provider)
	if err != nil {
		return nil, err
	}

	conn, err := adapter.CreateConnector(spec.ModelID, spec.Credential, spec.Parameters)
	if err != nil {
		return nil, err
	}

	s.log.Infow("provisioned model connector",
		"model", spec.ModelID,
		"provider", spec.Provider,
		"protocol", conn.Protocol,
	)

	return NewRegistration(spec.ModelID, conn), nil
}
