// Package palette loads the catalogue of components a user can drag onto the
// form: layout containers and input fields, grouped for display. The default
// catalogue is embedded; callers may load their own JSON or YAML files with
// LoadFS.
package palette
