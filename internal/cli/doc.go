// Package cli wires the brush runtime, adapters and observability into the commands of the brush binary.
package cli
