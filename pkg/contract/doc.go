// Package contract describes the submission payload as an OpenAPI 3 document.
//
// The schema is derived from a model.FormSchema so the description handed to
// downstream consumers never drifts from the field descriptors the controller
// validates against. Check reuses the same schema to verify a payload before
// it crosses the submission boundary.
package contract
