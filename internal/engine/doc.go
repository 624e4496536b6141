// Package engine hosts the Starlark evaluator that runs the user's packaging
// script. The engine predeclares the discovered resources, already converted
// into their scripting values, and routes the script's print output to the
// application writer.
package engine
