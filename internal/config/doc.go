// Package config provides configuration loading, merging, and validation
// facilities for the control panel.
//
// Configuration is assembled from multiple sources; for every field the
// first source that sets it wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The result is an explicit [StructuredConfig] value handed to constructors;
// the package keeps no global state.
package config
