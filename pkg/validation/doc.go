// Package validation reports problems in the builder's derived artifacts.
// Nothing here runs on the commit path; the checks back tests, the CLI debug
// mode and exports.
package validation
