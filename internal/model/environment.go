package model

// Environment names the deployment stage the process runs in.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)

// Networks the service can be configured to serve.
var KnownNetworks = []string{"mainnet", "testnet", "devnet", "localnet"}

// Valid reports whether e is a known environment.
func (e Environment) Valid() bool {
	switch e {
	case EnvironmentDevelopment, EnvironmentStaging, EnvironmentProduction:
		return true
	}
	return false
}
