package events

import "strings"

// Config holds the Kafka settings. Leaving Brokers empty disables publishing.
type Config struct {
	// Brokers is a comma separated list of host:port pairs.
	Brokers  string `mapstructure:"brokers" default:""`
	Topic    string `mapstructure:"topic" default:"team-inventory.ledger"`
	ClientID string `mapstructure:"client_id" default:"team-inventory"`
	Retries  int    `mapstructure:"retries" default:"3"`
	// Acks is 0, 1 or all.
	Acks string `mapstructure:"acks" default:"all"`
}

// BrokerList splits Brokers, dropping blanks.
func (c Config) BrokerList() []string {
	var out []string
	for _, b := range strings.Split(c.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

// Enabled reports whether at least one broker is configured.
func (c Config) Enabled() bool {
	return len(c.BrokerList()) > 0
}
