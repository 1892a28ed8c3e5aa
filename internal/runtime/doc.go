// Package runtime implements the stroke lifecycle state machine.
package runtime
