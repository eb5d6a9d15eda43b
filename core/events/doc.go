// Package events publishes ledger changes for downstream consumers.
//
// Every successful check-out, check-in, item removal and roster import emits
// one Event. The Kafka publisher keys messages by inventory item so that all
// movements of one item land on the same partition in order. When no brokers
// are configured the service runs with NopPublisher.
package events
