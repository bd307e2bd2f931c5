// Package ports declares the contracts between the application core and its adapters:
// repositories, the unit of work, the clock, token and identity services and the
// post-commit domain event dispatcher. The listing filter and sort key types shared by
// repositories and query handlers live here as well.
package ports
