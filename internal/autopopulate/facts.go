package autopopulate

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// CompanyFacts is the organization profile that inference strategies
// draw on. All fields are optional; strategies decline when the facts
// they need are absent.
type CompanyFacts struct {
	BusinessType          string             `json:"business_type"`
	Industry              string             `json:"industry"`
	EmployeeCount         int                `json:"employee_count"`
	TechnologySystems     []TechnologySystem `json:"technology_systems"`
	CurrentSecurity       SecurityPosture    `json:"current_security"`
	ComplianceObligations []string           `json:"compliance_obligations"`
}

// TechnologySystem describes one system in the organization's
// technology inventory.
type TechnologySystem struct {
	Name             string   `json:"name"`
	Type             string   `json:"type"`
	DeploymentType   string   `json:"deployment_type"`
	Features         []string `json:"features"`
	SecurityFeatures []string `json:"security_features"`
}

// SecurityPosture captures what the organization has already stated
// about its own security program. HasSecurityOfficer is a pointer so
// "not stated" is distinguishable from "stated no".
type SecurityPosture struct {
	HasSecurityOfficer *bool  `json:"has_security_officer,omitempty"`
	EmployeeTraining   string `json:"employee_training,omitempty"`
}

// ParseFacts decodes a company profile from JSON. Unknown fields are
// rejected so a typo in a profile file fails loudly instead of
// silently disabling strategies.
func ParseFacts(data []byte) (*CompanyFacts, error) {
	var facts CompanyFacts
	if err := unmarshalStrict(data, &facts); err != nil {
		return nil, fmt.Errorf("parse company facts: %w", err)
	}
	return &facts, nil
}

func unmarshalStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// deployments returns the distinct deployment types across the
// technology inventory.
func (f *CompanyFacts) deployments() map[string]bool {
	out := make(map[string]bool, 2)
	for _, sys := range f.TechnologySystems {
		if sys.DeploymentType != "" {
			out[sys.DeploymentType] = true
		}
	}
	return out
}

func (f *CompanyFacts) hasSystems() bool {
	return len(f.TechnologySystems) > 0
}
