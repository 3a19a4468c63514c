// Package roleassignment implements event role management inside hexclan.
//
// Layering:
// - domain: core entities, invariants, errors
// - application: commands using explicit ports
// - ports: stable boundaries for entity resolution and pivot persistence
// - adapters: concrete HTTP, memory, and postgres implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - Keep this module self-contained under event-management context.
// - Do not import other context adapters into domain/application.
// - Event, User, and Tenant rows are owned by external collaborators; this
//   module only resolves them and mutates the event_users pivot.
package roleassignment
