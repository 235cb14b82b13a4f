package module

import dom "reviewtrust/internal/services/api/trust/domain"

// Ports holds the ports exposed by the trust module
type Ports struct {
	Service  dom.ServicePort
	Defaults dom.DefaultsPort
}

// Ports returns the module ports (Service, Defaults)
func (m *Module) Ports() any { return m.ports }
