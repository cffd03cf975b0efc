// Package models defines the core domain models for QuantoDeu.
//
// # Entities
//
//   - People: a registered person, identified by phone number for login purposes
//   - Event: a social event (e.g. a barbecue) with a shareable invite hash
//   - Item: something the event needs, either required or optional, with a total cost
//
// Required items are split across every event member; the responsibility
// relation is derived from membership and never stored per person. Optional
// items are split only across the people who explicitly selected them, and
// those selections are the only mutable edge in the graph after creation.
//
// # Design Principles
//
// 1. **Derived costs**: per-person amounts are always computed, never stored
// 2. **Numeric IDs**: entities use int64 keys assigned by the store
// 3. **Avoid circular references**: relations use IDs instead of pointers
package models
