package entities

// Tenant and TenantDomain are only written by the demo seeder; everything else
// in this module is tenant-agnostic.
type Tenant struct {
	TenantID string `json:"tenant_id"`
	Name     string `json:"name"`
}

type TenantDomain struct {
	DomainID string `json:"domain_id"`
	TenantID string `json:"tenant_id"`
	Domain   string `json:"domain"`
}
