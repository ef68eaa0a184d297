// Package countries ships an embedded country address-format dataset and a
// schema.Provider backed by it, for callers that want address resolution
// without a remote schema service.
package countries
