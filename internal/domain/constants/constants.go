// Package constants holds shared domain-level constants.
package constants

const (
	// PubSubProviderLocal selects the local HTTP push simulator for development.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

// Deployment environment names.
const (
	// EnvDevelop is the local development environment.
	EnvDevelop = "develop"
	// EnvProduction is the production environment.
	EnvProduction = "production"
)

// Post-sign-in destinations, evaluated in strict priority order.
const (
	// RouteAdminConsole is where admins land after sign-in.
	RouteAdminConsole = "/admin"
	// RouteProviderDashboard is where approved providers land after sign-in.
	RouteProviderDashboard = "/dashboard/provider"
	// RouteProviderPending is shown to provider accounts without an approved listing.
	RouteProviderPending = "/provider/pending"
	// RouteCustomerDashboard is where regular users land after sign-in.
	RouteCustomerDashboard = "/dashboard"
	// RouteHome is the final fallback when no rule matches and no return path was stored.
	RouteHome = "/"
)
