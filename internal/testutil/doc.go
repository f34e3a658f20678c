// Package testutil contains helper builders used across tests to reduce
// boilerplate when constructing call records, both typed (core.Call) and in
// their untyped decoded-JSON form. They are not intended for production usage.
package testutil
