// Package schema checks decoded JSON payloads against declared shapes before
// the rest of the client trusts them.
//
// A shape lists, per JSON key, a go-playground/validator tag string. Besides
// the validator built-ins (required, email, uuid, min, ...) the package
// registers:
//
//	string   value is a JSON string (empty allowed)
//	bool     value is a JSON boolean
//	iso8601  value is an RFC 3339 timestamp, fractional seconds allowed
//	record   value is a JSON object
//
// A key is optional and nullable only when its rule starts with "omitempty";
// any other rule fails on a missing key or a null value. Keys not named in the
// shape are ignored.
//
// Shape.Decode validates first and only then decodes into the Go type, so a
// payload that fails validation is never returned to the caller. Failures are
// reported as *ValidationError listing every offending field path.
package schema
