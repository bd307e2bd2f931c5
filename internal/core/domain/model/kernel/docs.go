// Package kernel provides the shared domain primitives of the ordering service.
//
// The package includes:
//   - UUID: a value object for identifiers of aggregates and entities
//   - DomainEvent and EventRecorder: the buffer aggregates use to record facts
//     for dispatch after a successful commit
package kernel
