// Package errors provides structured errors for Arbor.
//
// Errors carry a stable code (e.g. "E451"), a category matching the
// library's failure taxonomy (input, dom, component, event, tick, render,
// config, cli), an optional suggestion, and a documentation link. Known
// codes are kept in a registry; New("E451") materializes the registered
// template and Newf builds ad-hoc errors for a category.
//
// Format renders an error for terminal display with ANSI colors; colors
// can be disabled globally with DisableColors.
package errors
