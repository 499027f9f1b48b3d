package common

const (
	ComponentEventService  = "event-service"
	ComponentValidator     = "validator"
	ComponentChainClient   = "chain-client"
	ComponentTrustStore    = "trust-store"
	ComponentProgressStore = "progress-store"
	ComponentAutoWhitelist = "auto-whitelist"
	ComponentPublisher     = "publisher"
	ComponentRegistry      = "registry"
	ComponentLibrary       = "library"
	ComponentMaintenance   = "maintenance"
	ComponentAPI           = "api"
)

var AllComponents = map[string]struct{}{
	ComponentEventService:  {},
	ComponentValidator:     {},
	ComponentChainClient:   {},
	ComponentTrustStore:    {},
	ComponentProgressStore: {},
	ComponentAutoWhitelist: {},
	ComponentPublisher:     {},
	ComponentRegistry:      {},
	ComponentLibrary:       {},
	ComponentMaintenance:   {},
	ComponentAPI:           {},
}
