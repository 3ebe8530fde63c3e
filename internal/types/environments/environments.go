// Package environments names the deployment environments the config and
// logger layers switch on.
package environments

type Environment string

const (
	Production  Environment = "production"
	Staging     Environment = "staging"
	Development Environment = "development"
	Test        Environment = "test"
)

// IsProduction gates behavior that must never run against a live chain by
// accident, like the fake chain client.
func (e Environment) IsProduction() bool {
	return e == Production
}
