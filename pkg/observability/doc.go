/*
Package observability provides tools for monitoring the brush engine.

It turns lifecycle hooks into Prometheus metrics, so hosts can see how many strokes
are drawn, how long they are, and how often tracking drops. Structured logging is
done by the brush itself through WithLogger.
*/
package observability
