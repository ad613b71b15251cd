// Package methods is the catalog of remote VK API operations the client can
// invoke. Each operation name is bound to an HTTP verb, and the package
// builds the fully query-encoded request URL for a call.
//
// The catalog is closed: Has reports whether an operation is known, and the
// client turns an unknown name into a normalized not-found response without
// touching the network.
package methods
