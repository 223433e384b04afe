package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Warehouse.validate(); err != nil {
		return fmt.Errorf("warehouse: %w", err)
	}
	if err := c.Learner.validate(); err != nil {
		return fmt.Errorf("learner: %w", err)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range (got %d)", c.Server.Port)
	}
	return nil
}

func (c *DatabaseConfig) validate() error {
	switch c.SSLMode {
	case "", "disable", "require":
	default:
		return fmt.Errorf("ssl_mode must be \"disable\" or \"require\" (got %q)", c.SSLMode)
	}
	if c.Schema == "" {
		return fmt.Errorf("schema must not be empty")
	}
	if c.MaxConns < c.MinConns {
		return fmt.Errorf("max_conns (%d) must be >= min_conns (%d)", c.MaxConns, c.MinConns)
	}
	return nil
}
