// Package render prints query results as styled text, JSON or YAML.
//
// A Printer is bound to one writer and one Format. Text output uses lipgloss
// styles, which degrade to plain text when the writer is not a terminal.
// JSON and YAML output encode the result types as they are, using their
// struct tags, so scripts can consume them.
package render
