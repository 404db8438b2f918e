// Package tool defines the tool abstraction consumed by the pipeline
// orchestrator.
//
// A Tool is a named unit of work that executes with a tracking identifier
// and reports its outcome as a Result. Tools are registered in a Registry
// built once at process start and injected wherever tool lookup is needed,
// so tests can substitute fakes without touching global state.
package tool
