// Package config holds generator settings and directive arguments.
//
// Settings come from an optional YAML file:
//
//	tag: arraystruct              # build tag guarding template files
//	suffix: _arraystruct.go       # output file suffix
//	runtime_import: array-as-struct/arraystruct
//	comments: true                # emit doc comments on generated code
//	generator: arraystruct-gen    # name written in the DO NOT EDIT header
//
// Unknown keys are rejected with a suggestion for the closest known key.
package config
