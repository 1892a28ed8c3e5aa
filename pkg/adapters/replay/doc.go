/*
Package replay plays recorded tracking sessions back through the brush engine.

A trace is a list of frames. Each frame lists the tracked nodes visible on that tick
(each with an optional position and an optional rotation) and the raw values of the
input controls. A frame can be held for several ticks with repeat.

	name: quick-line
	frames:
	  - nodes:
	      - node: right_hand
	        position: [0, 1, 0]
	        rotation: [1, 0, 0, 0]
	    axes:
	      Right Trigger: 0.8
	    repeat: 3
	  - nodes:
	      - node: right_hand
	    axes:
	      Right Trigger: 0.8
*/
package replay
