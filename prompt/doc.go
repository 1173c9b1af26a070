// Package prompt loads, runs, versions, and compares YAML prompt templates.
//
// A template is a YAML mapping with required name and user fields, optional
// system text, a variables map interpolated into the user prompt, and
// per-template model overrides. Versioning snapshots a template file as
// immutable v<N>.yaml copies under the promptctl home directory.
package prompt
