// Package command maps named, key-bindable editor commands to delimiter pairs.
//
// Every command runs the same toggle engine; only the pair differs.
package command
